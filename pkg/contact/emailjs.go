package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/cloudypatil/portfolio/pkg/config"
)

// DefaultEndpoint EmailJS REST 接口
const DefaultEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// ErrNotConfigured 缺少服务、模板或公钥
var ErrNotConfigured = errors.New("emailjs is not configured")

// EmailJSClient 通过 EmailJS REST 接口发送联系表单
type EmailJSClient struct {
	endpoint   string
	serviceID  string
	templateID string
	publicKey  string
	client     *http.Client
}

// NewEmailJSClient 根据站点配置创建客户端
func NewEmailJSClient(cfg config.ContactConfig) *EmailJSClient {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &EmailJSClient{
		endpoint:   endpoint,
		serviceID:  cfg.ServiceID,
		templateID: cfg.TemplateID,
		publicKey:  cfg.PublicKey,
		client:     &http.Client{},
	}
}

type emailJSRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

// Send 实现 Sender
// 超时由调用方的 ctx 控制
func (c *EmailJSClient) Send(ctx context.Context, sub Submission) error {
	if c.serviceID == "" || c.templateID == "" || c.publicKey == "" {
		return ErrNotConfigured
	}

	body, err := json.Marshal(emailJSRequest{
		ServiceID:  c.serviceID,
		TemplateID: c.templateID,
		UserID:     c.publicKey,
		TemplateParams: map[string]string{
			string(FieldFromName):  sub.Fields.Name,
			string(FieldFromEmail): sub.Fields.Email,
			string(FieldMessage):   sub.Fields.Message,
			"submission_id":        sub.ID,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to marshal emailjs request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("emailjs request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return fmt.Errorf("failed to read emailjs response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("emailjs returned status %d: %s", resp.StatusCode, bytes.TrimSpace(respBody))
	}
	return nil
}
