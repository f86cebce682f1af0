package config

import (
	"strings"
	"time"
)

// BackendConfig contains configuration for the research backend REST API
// that owns all project, event, and person data.
type BackendConfig struct {
	// BaseURL is the backend root, e.g. "https://api.kinship.example.com".
	BaseURL string `env:"BACKEND_BASE_URL" envDefault:"http://localhost:9000"`

	// Timeout is the per-request timeout for backend calls.
	Timeout time.Duration `env:"BACKEND_TIMEOUT" envDefault:"15s"`

	// ErrorMessagePath is a JMESPath expression locating the human-readable
	// message inside backend error payloads. Empty uses the client default.
	ErrorMessagePath string `env:"BACKEND_ERROR_MESSAGE_PATH" envDefault:""`

	// MaxPageSize caps the page_size a browser may request from the feed.
	MaxPageSize int `env:"BACKEND_MAX_PAGE_SIZE" envDefault:"100"`
}

// Sanitize applies guardrails to backend configuration values.
func (b *BackendConfig) Sanitize() {
	b.BaseURL = strings.TrimRight(strings.TrimSpace(b.BaseURL), "/")
	if b.Timeout <= 0 {
		b.Timeout = 15 * time.Second
	}
	if b.MaxPageSize < 1 {
		b.MaxPageSize = 100
	}
}
