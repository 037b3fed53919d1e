package auth

import (
	"fmt"
	"time"

	"capacity-planner-backend/internal/config"
)

const defaultTokenTTL = time.Hour

// AuthConfig holds the token settings used to sign and verify bearer tokens
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" json:"jwt_secret"`
	Issuer    string        `yaml:"issuer" json:"issuer"`
	TokenTTL  time.Duration `yaml:"token_ttl" json:"token_ttl"`
}

// NewAuthConfig derives the auth configuration from the application configuration
func NewAuthConfig(cfg *config.Config) (*AuthConfig, error) {
	authConfig := &AuthConfig{
		JWTSecret: cfg.JWTSecret,
		Issuer:    cfg.JWTIssuer,
		TokenTTL:  defaultTokenTTL,
	}

	if err := authConfig.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("auth config validation failed: %w", err)
	}

	return authConfig, nil
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if c.Issuer == "" {
		return fmt.Errorf("JWT issuer is required")
	}

	if c.TokenTTL <= 0 {
		return fmt.Errorf("token TTL must be positive")
	}

	return nil
}
