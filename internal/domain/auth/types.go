package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import (
	"strings"
	"time"
)

// AccessLevel is the capability tag gating whether write actions are
// permitted for the current viewer. Kept in string form for easy persistence.
type AccessLevel string

const (
	AccessReadOnly AccessLevel = "read_only"
	AccessEditor   AccessLevel = "editor"
	AccessOwner    AccessLevel = "owner"
)

// CanEdit reports whether this access level permits write actions
// (adding research notes, adding collaborators).
func (a AccessLevel) CanEdit() bool {
	return a == AccessEditor || a == AccessOwner
}

// Identity represents the authenticated principal returned by an IdP.
// Adapters map provider-specific claims into this shape.
type Identity struct {
	UserID    string // stable user identifier (e.g., sub)
	FirstName string
	LastName  string
	Email     string
	Groups    []string
	ExpiresAt time.Time // absolute expiry from IdP token
}

// Session is the server-side record we persist for an authenticated viewer.
// ID is an opaque session identifier.
type Session struct {
	ID        string      `json:"id"`
	UserID    string      `json:"user_id"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Email     string      `json:"email"`
	Access    AccessLevel `json:"access"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// CanEdit reports whether the session's access level permits writes.
func (s Session) CanEdit() bool { return s.Access.CanEdit() }

// DisplayName returns the viewer's name for the header, falling back to the
// email when names are absent.
func (s Session) DisplayName() string {
	name := strings.TrimSpace(strings.TrimSpace(s.FirstName) + " " + strings.TrimSpace(s.LastName))
	if name != "" {
		return name
	}
	return s.Email
}
