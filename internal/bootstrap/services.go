package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/kinship-labs/kinship-ui/config"
	redisadapter "github.com/kinship-labs/kinship-ui/internal/adapters/redis"
	"github.com/kinship-labs/kinship-ui/internal/apiclient"
	"github.com/kinship-labs/kinship-ui/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Feed          *service.ActivityFeedService
	Notes         *service.NoteService
	Collaborators *service.CollaboratorService
	Projects      *service.ProjectService
	Auth          *service.AuthService
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// BuildServices wires the backend client, caches, and services together.
func BuildServices(ctx context.Context, deps ServiceDeps) (ServiceContainer, error) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := deps.Config
	if cfg == nil {
		return ServiceContainer{}, fmt.Errorf("config is required")
	}

	backend, err := apiclient.New(apiclient.Config{
		BaseURL:          cfg.Backend.BaseURL,
		Timeout:          cfg.Backend.Timeout,
		ErrorMessagePath: cfg.Backend.ErrorMessagePath,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("build backend client: %w", err)
	}

	// The summary cache degrades to direct backend fetches without Redis.
	var summaryStore *redisadapter.SummaryStore
	if deps.RedisClient != nil {
		summaryStore = redisadapter.NewSummaryStore(deps.RedisClient, cfg.Cache.SummaryTTL)
	}

	feedOpts := service.ActivityFeedOptions{
		Backend:     backend,
		Logger:      logger,
		MaxPageSize: cfg.Backend.MaxPageSize,
		SummarySize: cfg.Cache.SummarySize,
	}
	if summaryStore != nil {
		feedOpts.Summary = summaryStore
	}
	feed := service.NewActivityFeedService(feedOpts)

	notes := service.NewNoteService(service.NoteServiceOptions{
		Backend: backend,
		Feed:    feed,
		Logger:  logger,
	})

	collaborators := service.NewCollaboratorService(service.CollaboratorServiceOptions{
		Backend: backend,
		Feed:    feed,
		Logger:  logger,
	})

	projects := service.NewProjectService(service.ProjectServiceOptions{
		Backend: backend,
		Feed:    feed,
		Logger:  logger,
	})

	auth := BuildAuthService(ctx, AuthConfig{
		Auth:        cfg.Auth,
		RedisClient: deps.RedisClient,
		Logger:      logger,
	})

	return ServiceContainer{
		Feed:          feed,
		Notes:         notes,
		Collaborators: collaborators,
		Projects:      projects,
		Auth:          auth,
	}, nil
}
