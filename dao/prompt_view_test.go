package dao

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	driver "github.com/go-sql-driver/mysql"
)

func TestPromptViewRecord(t *testing.T) {
	db, mock := newMockDB(t)
	d := NewPromptViewDAO(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `prompt_views`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE `prompts` SET `view_count`").
		WithArgs(int64(1), int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	recorded, err := d.Record(context.Background(), 10, nil, "1.1.1.1")
	if err != nil {
		t.Fatalf("record view: %v", err)
	}
	if !recorded {
		t.Fatal("expected recorded = true")
	}
	expectationsMet(t, mock)
}

// 同 IP 重复浏览：唯一键冲突，事务回滚，计数不变，不算错误
func TestPromptViewRecordDuplicate(t *testing.T) {
	db, mock := newMockDB(t)
	d := NewPromptViewDAO(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `prompt_views`").
		WillReturnError(&driver.MySQLError{Number: 1062, Message: "Duplicate entry"})
	mock.ExpectRollback()

	recorded, err := d.Record(context.Background(), 10, nil, "1.1.1.1")
	if err != nil {
		t.Fatalf("record view: %v", err)
	}
	if recorded {
		t.Fatal("duplicate view must not be recorded")
	}
	expectationsMet(t, mock)
}
