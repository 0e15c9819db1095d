package service

import (
	"fmt"

	"promptbox/config"

	"gopkg.in/gomail.v2"
)

var _ IEmailService = (*EmailService)(nil)

type IEmailService interface {
	SendVerifyCode(email, code string) error
}

type EmailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService(conf *config.Config) IEmailService {
	return &EmailService{
		dialer: gomail.NewDialer(conf.Smtp.Host, conf.Smtp.Port, conf.Smtp.Username, conf.Smtp.Password),
		from:   conf.Smtp.From,
	}
}

func (s *EmailService) SendVerifyCode(email, code string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "验证码")
	m.SetBody("text/plain", fmt.Sprintf("您的验证码是: %s，有效期5分钟。", code))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send verify code: %w", err)
	}
	return nil
}
