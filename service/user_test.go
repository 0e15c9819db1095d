package service

import (
	"context"
	"testing"
	"time"

	"promptbox/config"
	"promptbox/dao"
	"promptbox/pkg/jwt"
	"promptbox/types"

	"github.com/DATA-DOG/go-sqlmock"
	driver "github.com/go-sql-driver/mysql"
)

func testConfig() *config.Config {
	return &config.Config{
		Jwt: &config.Jwt{Secret: "test-secret"},
	}
}

func newUserService(t *testing.T) (*UserService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t)
	return &UserService{
		UserDAO: dao.NewUsers(db),
		Config:  testConfig(),
	}, mock
}

func userRows(t *testing.T, id int64, username, password string) *sqlmock.Rows {
	t.Helper()
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "state", "created_at", "updated_at"}).
		AddRow(id, username, nil, hash, int8(0), now, now)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	s, mock := newUserService(t)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(int64(1)))

	_, err := s.Register(context.Background(), &types.RegisterRequest{Username: "alice", Password: "secret1"})
	if code := bizCode(t, err); code != 400 {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestLogin(t *testing.T) {
	s, mock := newUserService(t)

	mock.ExpectQuery("SELECT \\* FROM `users` WHERE username = \\?").
		WillReturnRows(userRows(t, 1, "alice", "secret1"))

	resp, err := s.Login(context.Background(), &types.LoginRequest{Username: "alice", Password: "secret1"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.AccessToken == "" || resp.TokenType != "bearer" {
		t.Fatalf("unexpected token response: %+v", resp)
	}
	if resp.User.Username != "alice" {
		t.Fatalf("unexpected user: %+v", resp.User)
	}

	// 签出的令牌要能解析回同一个用户
	claims, err := jwt.ParseToken([]byte("test-secret"), resp.AccessToken)
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	if claims.UserID != 1 {
		t.Fatalf("expected user id 1, got %d", claims.UserID)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	s, mock := newUserService(t)

	mock.ExpectQuery("SELECT \\* FROM `users` WHERE username = \\?").
		WillReturnRows(userRows(t, 1, "alice", "secret1"))

	_, err := s.Login(context.Background(), &types.LoginRequest{Username: "alice", Password: "wrong"})
	if code := bizCode(t, err); code != 400 {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	s, mock := newUserService(t)

	mock.ExpectQuery("SELECT \\* FROM `users` WHERE username = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "state", "created_at", "updated_at"}))

	_, err := s.Login(context.Background(), &types.LoginRequest{Username: "ghost", Password: "secret1"})
	if code := bizCode(t, err); code != 400 {
		t.Fatalf("expected 400, got %d", code)
	}
}

type fakeVerify struct {
	ok  bool
	err error
}

func (f *fakeVerify) SendCode(_ context.Context, _ string) error { return f.err }

func (f *fakeVerify) Consume(_ context.Context, _, _ string) (bool, error) { return f.ok, f.err }

// 并发注册同名用户，预检通过但插入撞唯一键，也要按重名返回
func TestRegisterDuplicateUsernameRace(t *testing.T) {
	s, mock := newUserService(t)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(int64(0)))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnError(&driver.MySQLError{Number: 1062, Message: "Duplicate entry"})
	mock.ExpectRollback()

	_, err := s.Register(context.Background(), &types.RegisterRequest{Username: "alice", Password: "secret1"})
	if code := bizCode(t, err); code != 400 {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestBindEmailBadCode(t *testing.T) {
	s, _ := newUserService(t)
	s.Verify = &fakeVerify{ok: false}

	err := s.BindEmail(context.Background(), 1, &types.BindEmailRequest{Email: "bob@example.com", Code: "123456"})
	if code := bizCode(t, err); code != 400 {
		t.Fatalf("expected 400, got %d", code)
	}
}

// 邮箱已被其他账号绑定
func TestBindEmailTaken(t *testing.T) {
	s, mock := newUserService(t)
	s.Verify = &fakeVerify{ok: true}

	email := "bob@example.com"
	now := time.Now()
	mock.ExpectQuery("SELECT \\* FROM `users` WHERE email = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "state", "created_at", "updated_at"}).
			AddRow(int64(2), "bob", email, "x", int8(1), now, now))

	err := s.BindEmail(context.Background(), 1, &types.BindEmailRequest{Email: email, Code: "123456"})
	if code := bizCode(t, err); code != 400 {
		t.Fatalf("expected 400, got %d", code)
	}
}

// 绑定成功要同时落 email 和 state=1
func TestBindEmail(t *testing.T) {
	s, mock := newUserService(t)
	s.Verify = &fakeVerify{ok: true}

	mock.ExpectQuery("SELECT \\* FROM `users` WHERE email = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "state", "created_at", "updated_at"}))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `users` SET `email`=\\?,`state`=\\?").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := s.BindEmail(context.Background(), 1, &types.BindEmailRequest{Email: "bob@example.com", Code: "123456"}); err != nil {
		t.Fatalf("bind email: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet sql expectations: %v", err)
	}
}

// 重新绑定自己已占用的邮箱是幂等操作
func TestBindEmailSameOwner(t *testing.T) {
	s, mock := newUserService(t)
	s.Verify = &fakeVerify{ok: true}

	email := "bob@example.com"
	now := time.Now()
	mock.ExpectQuery("SELECT \\* FROM `users` WHERE email = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "state", "created_at", "updated_at"}).
			AddRow(int64(1), "bob", email, "x", int8(1), now, now))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `users` SET `email`=\\?,`state`=\\?").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := s.BindEmail(context.Background(), 1, &types.BindEmailRequest{Email: email, Code: "123456"}); err != nil {
		t.Fatalf("bind email: %v", err)
	}
}

func TestResetPasswordBadCode(t *testing.T) {
	s, _ := newUserService(t)
	s.Verify = &fakeVerify{ok: false}

	err := s.ResetPassword(context.Background(), &types.ResetPasswordRequest{
		Email: "bob@example.com", Code: "123456", NewPassword: "secret2",
	})
	if code := bizCode(t, err); code != 400 {
		t.Fatalf("expected 400, got %d", code)
	}
}

// 邮箱没有绑定任何账户
func TestResetPasswordUnknownEmail(t *testing.T) {
	s, mock := newUserService(t)
	s.Verify = &fakeVerify{ok: true}

	mock.ExpectQuery("SELECT \\* FROM `users` WHERE email = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "state", "created_at", "updated_at"}))

	err := s.ResetPassword(context.Background(), &types.ResetPasswordRequest{
		Email: "ghost@example.com", Code: "123456", NewPassword: "secret2",
	})
	if code := bizCode(t, err); code != 404 {
		t.Fatalf("expected 404, got %d", code)
	}
}

func TestResetPassword(t *testing.T) {
	s, mock := newUserService(t)
	s.Verify = &fakeVerify{ok: true}

	email := "bob@example.com"
	now := time.Now()
	mock.ExpectQuery("SELECT \\* FROM `users` WHERE email = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "state", "created_at", "updated_at"}).
			AddRow(int64(1), "bob", email, "old-hash", int8(1), now, now))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `users` SET `password_hash`=\\?").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.ResetPassword(context.Background(), &types.ResetPasswordRequest{
		Email: email, Code: "123456", NewPassword: "secret2",
	})
	if err != nil {
		t.Fatalf("reset password: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet sql expectations: %v", err)
	}
}
