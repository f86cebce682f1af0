package bootstrap

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/kinship-labs/kinship-ui/config"
	"github.com/kinship-labs/kinship-ui/internal/adapters/access"
	"github.com/kinship-labs/kinship-ui/internal/adapters/devauth"
	"github.com/kinship-labs/kinship-ui/internal/adapters/oidc"
	redisadapter "github.com/kinship-labs/kinship-ui/internal/adapters/redis"
	"github.com/kinship-labs/kinship-ui/internal/service"
)

// AuthConfig contains configuration for auth service.
type AuthConfig struct {
	Auth        config.AuthConfig
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// BuildAuthService creates an auth service based on the configured auth mode.
// Returns nil if auth is not configured or configuration is invalid.
func BuildAuthService(ctx context.Context, cfg AuthConfig) *service.AuthService {
	if cfg.RedisClient == nil {
		if cfg.Logger != nil {
			cfg.Logger.Warn("auth service disabled: redis client not configured", "mode", cfg.Auth.Mode)
		}
		return nil
	}

	// Redis session store and group mapper are shared by both modes
	sessionStore := redisadapter.NewSessionStoreWithPrefix(cfg.RedisClient, "session:")
	accessMapper := access.NewStaticMapper(cfg.Auth.OwnerGroup, cfg.Auth.EditorGroup)

	switch cfg.Auth.Mode {
	case config.AuthModeDev:
		return buildDevAuthService(cfg, sessionStore, accessMapper)

	case config.AuthModeOIDC:
		return buildOIDCAuthService(ctx, cfg, sessionStore, accessMapper)

	default:
		return nil
	}
}

func buildDevAuthService(
	cfg AuthConfig,
	sessionStore *redisadapter.SessionStore,
	accessMapper *access.StaticMapper,
) *service.AuthService {
	prov := devauth.NewProvider(devauth.ProviderConfig{
		UserID:     cfg.Auth.DevAuth.UserID,
		FirstName:  cfg.Auth.DevAuth.FirstName,
		LastName:   cfg.Auth.DevAuth.LastName,
		Email:      cfg.Auth.DevAuth.Email,
		Groups:     cfg.Auth.DevAuth.Groups,
		SessionTTL: cfg.Auth.SessionTTL,
	})

	return service.NewAuthService(service.AuthServiceOptions{
		Provider: prov,
		Sessions: sessionStore,
		Access:   accessMapper,
	})
}

func buildOIDCAuthService(
	ctx context.Context,
	cfg AuthConfig,
	sessionStore *redisadapter.SessionStore,
	accessMapper *access.StaticMapper,
) *service.AuthService {
	// Only enable when fully configured
	oc := cfg.Auth.OIDC
	if oc.IssuerURL == "" || oc.ClientID == "" || oc.ClientSecret == "" {
		if cfg.Logger != nil {
			cfg.Logger.Warn("AuthModeOIDC selected but required config missing; auth disabled",
				"issuer_url_empty", oc.IssuerURL == "",
				"client_id_empty", oc.ClientID == "",
				"client_secret_empty", oc.ClientSecret == "",
			)
		}
		return nil
	}

	prov, err := oidc.NewProvider(ctx, oidc.ProviderConfig{
		IssuerURL:    oc.IssuerURL,
		ClientID:     oc.ClientID,
		ClientSecret: oc.ClientSecret,
		RedirectURL:  oc.RedirectURL,
		Scope:        oc.Scope,
	})
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.Warn("failed to create OIDC provider, auth disabled", "error", err)
		}
		return nil
	}

	return service.NewAuthService(service.AuthServiceOptions{
		Provider: prov,
		Sessions: sessionStore,
		Access:   accessMapper,
	})
}
