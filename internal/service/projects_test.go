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

func TestProjectService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := mocks.NewMockBackend(ctrl)
	svc := NewProjectService(ProjectServiceOptions{Backend: backend, Logger: testLogger()})

	ctx := context.Background()
	project := &model.Project{ID: "p1", Name: "Walsh Family of County Mayo"}

	backend.EXPECT().GetProject(ctx, "p1").Return(project, nil)

	got, err := svc.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, project, got)
}

func TestProjectService_Get_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := mocks.NewMockBackend(ctrl)
	svc := NewProjectService(ProjectServiceOptions{Backend: backend, Logger: testLogger()})

	backend.EXPECT().GetProject(gomock.Any(), "p1").Return(nil, errors.New("boom"))

	_, err := svc.Get(context.Background(), "p1")
	assert.ErrorContains(t, err, "get project")
}

func TestProjectService_Overview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := mocks.NewMockBackend(ctrl)
	feed := NewActivityFeedService(ActivityFeedOptions{Backend: backend, Logger: testLogger()})
	svc := NewProjectService(ProjectServiceOptions{Backend: backend, Feed: feed, Logger: testLogger()})

	project := &model.Project{ID: "p1", Name: "Walsh Family of County Mayo"}
	recent := []model.Event{{ID: "e1"}}

	backend.EXPECT().GetProject(gomock.Any(), "p1").Return(project, nil)
	backend.EXPECT().
		ListProjectEvents(gomock.Any(), "p1", gomock.Any()).
		Return(&model.EventPage{Events: recent}, nil)

	got, err := svc.Overview(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, project, got.Project)
	assert.Equal(t, recent, got.Recent)
	assert.False(t, got.FeedUnavailable)
}

func TestProjectService_Overview_SummaryFailureDegrades(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := mocks.NewMockBackend(ctrl)
	feed := NewActivityFeedService(ActivityFeedOptions{Backend: backend, Logger: testLogger()})
	svc := NewProjectService(ProjectServiceOptions{Backend: backend, Feed: feed, Logger: testLogger()})

	project := &model.Project{ID: "p1"}

	backend.EXPECT().GetProject(gomock.Any(), "p1").Return(project, nil)
	backend.EXPECT().
		ListProjectEvents(gomock.Any(), "p1", gomock.Any()).
		Return(nil, errors.New("feed down"))

	got, err := svc.Overview(context.Background(), "p1")
	require.NoError(t, err, "a failed summary degrades instead of failing the overview")
	assert.Equal(t, project, got.Project)
	assert.Empty(t, got.Recent)
	assert.True(t, got.FeedUnavailable)
}

func TestProjectService_Overview_ProjectFailureIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := mocks.NewMockBackend(ctrl)
	feed := NewActivityFeedService(ActivityFeedOptions{Backend: backend, Logger: testLogger()})
	svc := NewProjectService(ProjectServiceOptions{Backend: backend, Feed: feed, Logger: testLogger()})

	backend.EXPECT().GetProject(gomock.Any(), "p1").Return(nil, errors.New("not found"))
	backend.EXPECT().
		ListProjectEvents(gomock.Any(), "p1", gomock.Any()).
		Return(&model.EventPage{Events: []model.Event{}}, nil).
		AnyTimes()

	_, err := svc.Overview(context.Background(), "p1")
	assert.ErrorContains(t, err, "get project")
}
