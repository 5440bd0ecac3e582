// Package identity 提供服务账号凭据的加载与校验
package identity

import (
	"context"
	"encoding/json"
	"encoding/pem"
	"fmt"
	"strings"
	"time"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"

	"fitsun-api/internal/config"
)

const defaultVerifyTimeout = 5 * time.Second

// serviceAccountKey 服务账号 JSON 凭据格式
type serviceAccountKey struct {
	Type         string `json:"type"`
	ProjectID    string `json:"project_id"`
	PrivateKeyID string `json:"private_key_id"`
	PrivateKey   string `json:"private_key"`
	ClientEmail  string `json:"client_email"`
	ClientID     string `json:"client_id"`
	AuthURI      string `json:"auth_uri"`
	TokenURI     string `json:"token_uri"`
}

// Client 服务账号身份客户端
type Client struct {
	projectID     string
	clientEmail   string
	jwt           *jwt.Config
	verifyTimeout time.Duration
}

// New 从配置构建服务账号凭据。
// 私钥中字面量 "\n" 会被替换为换行，便于通过单行环境变量注入。
func New(cfg config.IdentityConfig) (*Client, error) {
	if cfg.ClientEmail == "" {
		return nil, fmt.Errorf("identity client_email is required")
	}

	privateKey := NormalizePrivateKey(cfg.PrivateKey)
	if block, _ := pem.Decode([]byte(privateKey)); block == nil {
		return nil, fmt.Errorf("identity private_key is not a PEM block")
	}

	raw, err := json.Marshal(serviceAccountKey{
		Type:         "service_account",
		ProjectID:    cfg.ProjectID,
		PrivateKeyID: cfg.PrivateKeyID,
		PrivateKey:   privateKey,
		ClientEmail:  cfg.ClientEmail,
		ClientID:     cfg.ClientID,
		AuthURI:      "https://accounts.google.com/o/oauth2/auth",
		TokenURI:     google.JWTTokenURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode service account: %w", err)
	}

	jwtCfg, err := google.JWTConfigFromJSON(raw, cfg.Scopes...)
	if err != nil {
		return nil, fmt.Errorf("failed to load service account credentials: %w", err)
	}

	timeout := cfg.VerifyTimeout
	if timeout <= 0 {
		timeout = defaultVerifyTimeout
	}

	return &Client{
		projectID:     cfg.ProjectID,
		clientEmail:   cfg.ClientEmail,
		jwt:           jwtCfg,
		verifyTimeout: timeout,
	}, nil
}

// NormalizePrivateKey 将转义的换行还原
func NormalizePrivateKey(key string) string {
	return strings.ReplaceAll(key, `\n`, "\n")
}

// ProjectID 返回项目 ID
func (c *Client) ProjectID() string {
	return c.projectID
}

// ClientEmail 返回服务账号邮箱
func (c *Client) ClientEmail() string {
	return c.clientEmail
}

// HealthCheck 通过换取一次访问令牌校验凭据
func (c *Client) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.verifyTimeout)
	defer cancel()

	tok, err := c.jwt.TokenSource(ctx).Token()
	if err != nil {
		return fmt.Errorf("service account token exchange failed: %w", err)
	}
	if !tok.Valid() {
		return fmt.Errorf("service account returned an invalid token")
	}
	return nil
}
