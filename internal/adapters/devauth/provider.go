package devauth

// Package devauth provides a no-op auth provider for local development.
// It skips the browser round trip entirely and issues a fixed identity.

import (
	"context"
	"errors"
	"net/url"
	"time"

	domainauth "github.com/kinship-labs/kinship-ui/internal/domain/auth"
	"github.com/kinship-labs/kinship-ui/internal/ports"
)

// Provider implements ports.AuthProvider with a fixed local identity.
type Provider struct {
	identity   domainauth.Identity
	sessionTTL time.Duration
}

// ProviderConfig holds the fixed identity the dev provider issues.
type ProviderConfig struct {
	UserID     string
	FirstName  string
	LastName   string
	Email      string
	Groups     []string
	SessionTTL time.Duration
}

// NewProvider creates a development provider. Empty fields get placeholder
// defaults so a bare DEV_AUTH=true env still produces a usable login.
func NewProvider(cfg ProviderConfig) *Provider {
	if cfg.UserID == "" {
		cfg.UserID = "dev-user"
	}
	if cfg.FirstName == "" {
		cfg.FirstName = "Dev"
	}
	if cfg.LastName == "" {
		cfg.LastName = "User"
	}
	if cfg.Email == "" {
		cfg.Email = "dev@localhost"
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 12 * time.Hour
	}
	return &Provider{
		identity: domainauth.Identity{
			UserID:    cfg.UserID,
			FirstName: cfg.FirstName,
			LastName:  cfg.LastName,
			Email:     cfg.Email,
			Groups:    cfg.Groups,
		},
		sessionTTL: cfg.SessionTTL,
	}
}

// Begin short-circuits the redirect dance: the "authorization URL" points
// straight back at our own callback with a dummy code.
func (p *Provider) Begin(_ context.Context, in ports.BeginInput) (string, string, string, error) {
	if in.RedirectURL == "" {
		return "", "", "", errors.New("redirect URL is required")
	}
	state := "dev-state"
	nonce := "dev-nonce"
	authURL := in.RedirectURL + "?code=dev&state=" + url.QueryEscape(state)
	return authURL, state, nonce, nil
}

// Exchange returns the configured identity regardless of the code.
func (p *Provider) Exchange(_ context.Context, _ ports.ExchangeInput) (domainauth.Identity, error) {
	id := p.identity
	id.ExpiresAt = time.Now().Add(p.sessionTTL)
	return id, nil
}
