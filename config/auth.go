package config

import (
	"fmt"
	"strings"
	"time"
)

// AuthMode represents the authentication mode for the application.
type AuthMode string

const (
	// AuthModeOIDC uses OIDC/OAuth2 for authentication.
	AuthModeOIDC AuthMode = "oidc"
	// AuthModeDev uses a fixed local identity (for development only).
	AuthModeDev AuthMode = "dev"
)

// UnmarshalText implements encoding.TextUnmarshaler for AuthMode.
func (a *AuthMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "oidc", "dev":
		*a = AuthMode(v)
		return nil
	default:
		return fmt.Errorf("invalid AuthMode: %q (valid options: oidc, dev)", v)
	}
}

// OIDCConfig contains OIDC/OAuth2 configuration.
type OIDCConfig struct {
	IssuerURL    string `env:"ISSUER_URL"`
	ClientID     string `env:"CLIENT_ID"     envDefault:"kinship-ui"`
	ClientSecret string `env:"CLIENT_SECRET"`
	RedirectURL  string `env:"REDIRECT_URL"  envDefault:"http://localhost:8080/auth/callback"`
	Scope        string `env:"SCOPE"         envDefault:"openid profile email groups"`
}

// DevAuthConfig controls the fixed development identity.
// Used when AUTH_MODE=dev for development and testing.
type DevAuthConfig struct {
	UserID    string   `env:"USER_ID"    envDefault:"dev-user"`
	FirstName string   `env:"FIRST_NAME" envDefault:"Dev"`
	LastName  string   `env:"LAST_NAME"  envDefault:"User"`
	Email     string   `env:"EMAIL"      envDefault:"dev@example.com"`
	Groups    []string `env:"GROUPS"     envDefault:"kinship-owners"  envSeparator:";"`
}

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// Mode determines which authentication provider to use.
	Mode AuthMode `env:"AUTH_MODE" envDefault:"oidc"`

	// OIDC configuration (used when Mode=oidc).
	OIDC OIDCConfig `envPrefix:"OIDC_"`

	// DevAuth configuration (used when Mode=dev).
	DevAuth DevAuthConfig `envPrefix:"DEV_AUTH_"`

	// OwnerGroup is the directory group whose members own projects.
	OwnerGroup string `env:"OWNER_GROUP" envDefault:"kinship-owners"`

	// EditorGroup is the directory group whose members may edit projects.
	// Authenticated users outside both groups get read-only access.
	EditorGroup string `env:"EDITOR_GROUP" envDefault:"kinship-editors"`

	// SessionTTL bounds how long a dev-mode session lasts. OIDC sessions
	// expire with the provider token instead.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"12h"`
}
