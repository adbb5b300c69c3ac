package util

import (
	"Conexus/internal/api/config"
	"fmt"
	log "log/slog"
	"math/rand"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const SuccessResp = "0"
const digits = "0123456789"

type SmsSender struct {
	cfg    config.SMSConfig
	client *resty.Client
}

func NewSmsSender(cfg config.SMSConfig) *SmsSender {
	return &SmsSender{
		cfg:    cfg,
		client: resty.New().SetTimeout(10 * time.Second),
	}
}

// Send delivers a verification code through the SMS gateway.
func (s *SmsSender) Send(phone string, code string) error {
	content := fmt.Sprintf("[Conexus] Your verification code is %s.", code)

	resp, err := s.client.R().
		SetQueryParams(map[string]string{
			"u": s.cfg.Username,
			"p": s.cfg.ApiKey,
			"m": phone,
			"c": content,
		}).
		Get(s.cfg.URL)
	if err != nil {
		return err
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("sms send failed: %s", resp.Status())
	}
	if resp.String() != SuccessResp {
		return fmt.Errorf("sms send failed: response code %s", resp.String())
	}

	log.Info("sms gateway response", "phone", phone, "resp", resp.String())
	return nil
}

// GenerateCode produces a numeric verification code of the given length.
func GenerateCode(length int) string {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	code := make([]byte, length)
	for i := range code {
		code[i] = digits[r.Intn(len(digits))]
	}
	return string(code)
}
