// Package mocks provides mock implementations for testing the kinship UI services.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our port interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	backend := mocks.NewMockBackend(ctrl)
//	backend.EXPECT().GetProject(gomock.Any(), "p1").Return(project, nil)
package mocks

// Generate mock for the Backend interface from internal/ports.
// This creates MockBackend with methods for all Backend interface methods:
// GetProject, ListProjectEvents, AddResearchNote, AddCollaborator, SearchPeople
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=backend_mock.go github.com/kinship-labs/kinship-ui/internal/ports Backend

// Generate mock for the SummaryStore interface from internal/ports.
// This creates MockSummaryStore with methods for all SummaryStore interface methods:
// Get, Set, Invalidate
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=summary_store_mock.go github.com/kinship-labs/kinship-ui/internal/ports SummaryStore
