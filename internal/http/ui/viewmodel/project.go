package viewmodel

import (
	"time"

	"github.com/kinship-labs/kinship-ui/internal/domain/model"
)

// ProjectSummary is the overview panel's view of a project record.
type ProjectSummary struct {
	ID          string
	Name        string
	Description string
	Surnames    []string
	Status      string
	StatusLabel string
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewProjectSummary maps a project onto its overview rendering.
func NewProjectSummary(p model.Project) ProjectSummary {
	return ProjectSummary{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Surnames:    p.Surnames,
		Status:      p.Status,
		StatusLabel: model.EventTypeLabel(p.Status),
		Completed:   p.IsCompleted(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
