package devauth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinship-labs/kinship-ui/internal/ports"
)

func TestProvider_Begin(t *testing.T) {
	p := NewProvider(ProviderConfig{})

	authURL, state, nonce, err := p.Begin(context.Background(), ports.BeginInput{
		RedirectURL: "http://localhost:8080/auth/callback",
	})

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/auth/callback?code=dev&state=dev-state", authURL)
	assert.Equal(t, "dev-state", state)
	assert.Equal(t, "dev-nonce", nonce)
}

func TestProvider_Begin_RequiresRedirect(t *testing.T) {
	p := NewProvider(ProviderConfig{})

	_, _, _, err := p.Begin(context.Background(), ports.BeginInput{})
	assert.ErrorContains(t, err, "redirect URL is required")
}

func TestProvider_Exchange(t *testing.T) {
	p := NewProvider(ProviderConfig{
		UserID:     "jane-d",
		FirstName:  "Jane",
		LastName:   "Doe",
		Email:      "jane@example.com",
		Groups:     []string{"kinship-owners"},
		SessionTTL: time.Hour,
	})

	id, err := p.Exchange(context.Background(), ports.ExchangeInput{Code: "anything"})

	require.NoError(t, err)
	assert.Equal(t, "jane-d", id.UserID)
	assert.Equal(t, "Jane", id.FirstName)
	assert.Equal(t, []string{"kinship-owners"}, id.Groups)
	assert.WithinDuration(t, time.Now().Add(time.Hour), id.ExpiresAt, 5*time.Second)
}

func TestNewProvider_Defaults(t *testing.T) {
	p := NewProvider(ProviderConfig{})

	id, err := p.Exchange(context.Background(), ports.ExchangeInput{})
	require.NoError(t, err)
	assert.Equal(t, "dev-user", id.UserID)
	assert.Equal(t, "Dev", id.FirstName)
	assert.Equal(t, "User", id.LastName)
	assert.Equal(t, "dev@localhost", id.Email)
	assert.WithinDuration(t, time.Now().Add(12*time.Hour), id.ExpiresAt, 5*time.Second)
}
