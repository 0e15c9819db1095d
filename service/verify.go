package service

import (
	"context"
	"math/rand"
	"strconv"

	"promptbox/dao/cache"
	"promptbox/pkg/log"

	"go.uber.org/zap"
)

var _ IVerifyService = (*VerifyService)(nil)

type IVerifyService interface {
	SendCode(ctx context.Context, email string) error
	Consume(ctx context.Context, email, code string) (bool, error)
}

type VerifyService struct {
	Storage *cache.VerifyCodeStorage
	Email   IEmailService
}

// genCode 生成 [100000, 999999] 的 6 位数字验证码
func genCode() string {
	return strconv.Itoa(rand.Intn(900000) + 100000)
}

// SendCode 生成验证码、写入缓存并发送邮件
// 同一邮箱重复请求会覆盖旧码
func (s *VerifyService) SendCode(ctx context.Context, email string) error {
	code := genCode()
	if err := s.Storage.Set(ctx, email, code); err != nil {
		return err
	}
	if err := s.Email.SendVerifyCode(email, code); err != nil {
		log.L.Error("send verify code failed", zap.String("email", email), zap.Error(err))
		return err
	}
	return nil
}

// Consume 校验并一次性消费验证码
func (s *VerifyService) Consume(ctx context.Context, email, code string) (bool, error) {
	return s.Storage.Consume(ctx, email, code)
}
