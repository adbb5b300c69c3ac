package service

import (
	"Conexus/internal/pkg/cache"
	"Conexus/internal/pkg/consts"
	"Conexus/internal/pkg/util"
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type SmsService interface {
	SendSms(ctx context.Context, phone string) error
	CheckCode(ctx context.Context, phone string, code string) (string, error)
	VerifyCode(ctx context.Context, phone string, code string) (bool, error)
	DelSmsRegToken(ctx context.Context, phone string) error
}

type SmsServiceImpl struct {
	sender *util.SmsSender
	cache  cache.Cache
}

func NewSmsService(sender *util.SmsSender, c cache.Cache) SmsService {
	return &SmsServiceImpl{
		sender: sender,
		cache:  c,
	}
}

func (s *SmsServiceImpl) SendSms(ctx context.Context, phone string) error {
	code := util.GenerateCode(6)
	err := s.cache.Set(ctx, consts.SmsKey+phone, code, 10*time.Minute)
	if err != nil {
		return err
	}
	return s.sender.Send(phone, code)
}

// CheckCode burns the code and hands back a short-lived registration token.
func (s *SmsServiceImpl) CheckCode(ctx context.Context, phone string, code string) (string, error) {
	ok, err := s.VerifyCode(ctx, phone, code)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrCodeIncorrect
	}
	tempToken := strconv.Itoa(int(uuid.New().ID()))
	err = s.cache.Set(ctx, consts.SmsCheckTokenKey+phone, tempToken, 1*time.Hour)
	if err != nil {
		return "", err
	}
	return tempToken, nil
}

// VerifyCode reports whether the code matches; a mismatch is a false, not
// an error.
func (s *SmsServiceImpl) VerifyCode(ctx context.Context, phone string, code string) (bool, error) {
	cachedCode, err := s.cache.Get(ctx, consts.SmsKey+phone)
	if err != nil {
		return false, err
	}
	if cachedCode == "" || cachedCode != code {
		return false, nil
	}
	_ = s.cache.Delete(ctx, consts.SmsKey+phone)
	return true, nil
}

func (s *SmsServiceImpl) DelSmsRegToken(ctx context.Context, phone string) error {
	return s.cache.Delete(ctx, consts.SmsCheckTokenKey+phone)
}
