package oauth

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"meroprofile/pkg/config"
)

// Providers supported for social sign-in
const (
	ProviderGoogle   = "google"
	ProviderFacebook = "facebook"
)

// UserInfo is the subset of provider profile data the directory needs
type UserInfo struct {
	Email string
	Name  string
}

// Client verifies provider access tokens against the providers' userinfo
// endpoints.
type Client struct {
	cfg        *config.OAuthConfig
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// NewClient creates a provider client from configuration
func NewClient(cfg *config.OAuthConfig, logger *zap.Logger) *Client {
	return &Client{
		cfg:        cfg,
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
		Logger:     logger,
	}
}

// FetchUserInfo validates accessToken with the named provider and returns
// the associated profile. An invalid token yields an error, never a profile.
func (c *Client) FetchUserInfo(provider, accessToken string) (*UserInfo, error) {
	var endpoint string
	switch provider {
	case ProviderGoogle:
		endpoint = c.cfg.Google.UserInfoURL
	case ProviderFacebook:
		endpoint = c.cfg.Facebook.UserInfoURL
	default:
		return nil, fmt.Errorf("unsupported provider %q", provider)
	}

	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Logger.Error("Userinfo request failed",
			zap.String("provider", provider),
			zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.Logger.Warn("Provider rejected access token",
			zap.String("provider", provider),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body))
		return nil, fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	// Google and Facebook differ in field names; decode both shapes.
	var payload struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode userinfo response: %w", err)
	}
	if payload.Email == "" {
		return nil, fmt.Errorf("provider did not return an email address")
	}

	return &UserInfo{Email: payload.Email, Name: payload.Name}, nil
}
