package domain

import (
	"time"

	"github.com/google/uuid"
)

// Template is a reusable document body with {{placeholder}} markers.
type Template struct {
	ID          uuid.UUID
	Name        string
	Description *string
	Type        TemplateType
	Category    string
	Content     string
	Variables   []TemplateVariable
	IsPublic    bool
	Tags        []string
	UsageCount  int
	Version     int
	CreatedByID uuid.UUID
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TemplateVariable describes one placeholder the template expects.
type TemplateVariable struct {
	Name         string       `json:"name"`
	Label        string       `json:"label"`
	Type         VariableType `json:"type"`
	Required     bool         `json:"required"`
	DefaultValue *string      `json:"defaultValue,omitempty"`
	Options      []string     `json:"options,omitempty"`
}

// TemplateUpdateParams holds the mutable fields of a template.
// Nil fields are left unchanged.
type TemplateUpdateParams struct {
	Name        *string
	Description *string
	Type        *TemplateType
	Category    *string
	Content     *string
	Variables   *[]TemplateVariable
	IsPublic    *bool
	Tags        *[]string
}

// TemplateFilter narrows a template listing. Visibility is applied through
// ViewerID: when non-nil only public templates or templates created by the
// viewer are returned. Inactive templates are never returned.
type TemplateFilter struct {
	ViewerID *uuid.UUID
	Search   *string
	Type     *TemplateType
	Category *string
	Tag      *string
	Limit    int
	Offset   int
}

// TemplateUsage is a template ranked by how often it was used.
type TemplateUsage struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	UsageCount int       `json:"usageCount"`
}

// TemplateStats summarizes the templates visible to a viewer.
type TemplateStats struct {
	Total      int
	Public     int
	Private    int
	TotalUsage int
	ByType     []CountByKey
	ByCategory []CountByKey
	MostUsed   []TemplateUsage
}
