package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kinship-labs/kinship-ui/internal/domain/model"
	"github.com/kinship-labs/kinship-ui/internal/mocks"
)

func TestNoteService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := mocks.NewMockBackend(ctrl)
	svc := NewNoteService(NoteServiceOptions{Backend: backend, Logger: testLogger(), ListSize: 25})

	ctx := context.Background()
	wantQuery := model.DefaultFeedQuery(25).WithEventType(model.EventTypeResearchMilestone)
	notes := []model.Event{{ID: "n1", EventType: model.EventTypeResearchMilestone}}

	backend.EXPECT().
		ListProjectEvents(ctx, "p1", wantQuery).
		Return(&model.EventPage{Events: notes}, nil)

	got, err := svc.List(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, notes, got)
}

func TestNoteService_List_BackendError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := mocks.NewMockBackend(ctrl)
	svc := NewNoteService(NoteServiceOptions{Backend: backend, Logger: testLogger()})

	backend.EXPECT().
		ListProjectEvents(gomock.Any(), "p1", gomock.Any()).
		Return(nil, errors.New("boom"))

	_, err := svc.List(context.Background(), "p1")
	assert.ErrorContains(t, err, "list research notes")
}

func TestNoteService_Add(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := mocks.NewMockBackend(ctrl)
	summary := mocks.NewMockSummaryStore(ctrl)
	feed := NewActivityFeedService(ActivityFeedOptions{Backend: backend, Summary: summary, Logger: testLogger()})
	svc := NewNoteService(NoteServiceOptions{Backend: backend, Feed: feed, Logger: testLogger()})

	ctx := context.Background()

	backend.EXPECT().AddResearchNote(ctx, "p1", "Confirmed 1891 census entry").Return(nil)
	summary.EXPECT().Invalidate(ctx, "p1").Return(nil)

	err := svc.Add(ctx, "p1", "  Confirmed 1891 census entry  ")
	require.NoError(t, err)
}

func TestNoteService_Add_EmptyTextRejectedBeforeBackend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No expectations: the whitespace-only note must not reach the backend.
	backend := mocks.NewMockBackend(ctrl)
	svc := NewNoteService(NoteServiceOptions{Backend: backend, Logger: testLogger()})

	for _, text := range []string{"", "   ", "\n\t"} {
		err := svc.Add(context.Background(), "p1", text)
		assert.ErrorIs(t, err, ErrEmptyNote)
	}
}

func TestNoteService_Add_BackendError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := mocks.NewMockBackend(ctrl)
	summary := mocks.NewMockSummaryStore(ctrl)
	feed := NewActivityFeedService(ActivityFeedOptions{Backend: backend, Summary: summary, Logger: testLogger()})
	svc := NewNoteService(NoteServiceOptions{Backend: backend, Feed: feed, Logger: testLogger()})

	// A failed write must not invalidate the summary cache.
	backend.EXPECT().AddResearchNote(gomock.Any(), "p1", "note").Return(errors.New("boom"))

	err := svc.Add(context.Background(), "p1", "note")
	assert.ErrorContains(t, err, "add research note")
}

func TestNoteService_Add_WithoutFeed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := mocks.NewMockBackend(ctrl)
	svc := NewNoteService(NoteServiceOptions{Backend: backend, Logger: testLogger()})

	backend.EXPECT().AddResearchNote(gomock.Any(), "p1", "note").Return(nil)

	require.NoError(t, svc.Add(context.Background(), "p1", "note"))
}
