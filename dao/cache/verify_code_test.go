package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestStorage(t *testing.T) (*VerifyCodeStorage, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rds := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewVerifyCodeStorage(rds), mr
}

func TestConsume(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	if err := s.Set(ctx, "a@b.com", "123456"); err != nil {
		t.Fatalf("set code: %v", err)
	}

	ok, err := s.Consume(ctx, "a@b.com", "123456")
	if err != nil {
		t.Fatalf("consume: %v", err)
	}
	if !ok {
		t.Fatal("expected code to be accepted")
	}

	// 第二次消费同一个码必须失败
	ok, err = s.Consume(ctx, "a@b.com", "123456")
	if err != nil {
		t.Fatalf("consume twice: %v", err)
	}
	if ok {
		t.Fatal("code accepted twice")
	}
}

func TestConsumeMismatch(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	if err := s.Set(ctx, "a@b.com", "123456"); err != nil {
		t.Fatalf("set code: %v", err)
	}

	ok, err := s.Consume(ctx, "a@b.com", "654321")
	if err != nil {
		t.Fatalf("consume: %v", err)
	}
	if ok {
		t.Fatal("wrong code accepted")
	}

	// 错误提交不应消耗正确的码
	ok, err = s.Consume(ctx, "a@b.com", "123456")
	if err != nil {
		t.Fatalf("consume: %v", err)
	}
	if !ok {
		t.Fatal("correct code rejected after a failed attempt")
	}
}

func TestConsumeMissing(t *testing.T) {
	s, _ := newTestStorage(t)

	ok, err := s.Consume(context.Background(), "nobody@b.com", "123456")
	if err != nil {
		t.Fatalf("consume: %v", err)
	}
	if ok {
		t.Fatal("missing code accepted")
	}
}

func TestConsumeExpired(t *testing.T) {
	s, mr := newTestStorage(t)
	ctx := context.Background()

	if err := s.Set(ctx, "a@b.com", "123456"); err != nil {
		t.Fatalf("set code: %v", err)
	}

	mr.FastForward(CodeTTL + time.Second)

	ok, err := s.Consume(ctx, "a@b.com", "123456")
	if err != nil {
		t.Fatalf("consume: %v", err)
	}
	if ok {
		t.Fatal("expired code accepted")
	}
}

func TestSetOverwrites(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	if err := s.Set(ctx, "a@b.com", "111111"); err != nil {
		t.Fatalf("set code: %v", err)
	}
	if err := s.Set(ctx, "a@b.com", "222222"); err != nil {
		t.Fatalf("set code: %v", err)
	}

	// 后发的码生效，旧码作废
	if ok, _ := s.Consume(ctx, "a@b.com", "111111"); ok {
		t.Fatal("stale code accepted")
	}
	if ok, _ := s.Consume(ctx, "a@b.com", "222222"); !ok {
		t.Fatal("latest code rejected")
	}
}
