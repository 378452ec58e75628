package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/laborcrm-backend/internal/domain"
)

type templateResponse struct {
	ID          uuid.UUID                 `json:"id"`
	Name        string                    `json:"name"`
	Description *string                   `json:"description"`
	Type        domain.TemplateType       `json:"type"`
	Category    string                    `json:"category"`
	Content     string                    `json:"content"`
	Variables   []domain.TemplateVariable `json:"variables"`
	IsPublic    bool                      `json:"isPublic"`
	Tags        []string                  `json:"tags"`
	UsageCount  int                       `json:"usageCount"`
	Version     int                       `json:"version"`
	CreatedByID uuid.UUID                 `json:"createdById"`
	IsActive    bool                      `json:"isActive"`
	CreatedAt   time.Time                 `json:"createdAt"`
	UpdatedAt   time.Time                 `json:"updatedAt"`
}

func toTemplateResponse(t *domain.Template) templateResponse {
	vars := t.Variables
	if vars == nil {
		vars = []domain.TemplateVariable{}
	}
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return templateResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Type:        t.Type,
		Category:    t.Category,
		Content:     t.Content,
		Variables:   vars,
		IsPublic:    t.IsPublic,
		Tags:        tags,
		UsageCount:  t.UsageCount,
		Version:     t.Version,
		CreatedByID: t.CreatedByID,
		IsActive:    t.IsActive,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

type templateStatsResponse struct {
	Total      int                    `json:"total"`
	Public     int                    `json:"public"`
	Private    int                    `json:"private"`
	TotalUsage int                    `json:"totalUsage"`
	ByType     map[string]int         `json:"byType"`
	ByCategory map[string]int         `json:"byCategory"`
	MostUsed   []domain.TemplateUsage `json:"mostUsed"`
}

func toTemplateStatsResponse(s *domain.TemplateStats) templateStatsResponse {
	mostUsed := s.MostUsed
	if mostUsed == nil {
		mostUsed = []domain.TemplateUsage{}
	}
	return templateStatsResponse{
		Total:      s.Total,
		Public:     s.Public,
		Private:    s.Private,
		TotalUsage: s.TotalUsage,
		ByType:     countsToMap(s.ByType),
		ByCategory: countsToMap(s.ByCategory),
		MostUsed:   mostUsed,
	}
}

type auditRecordResponse struct {
	ID          uuid.UUID          `json:"id"`
	Action      domain.AuditAction `json:"action"`
	Entity      domain.EntityType  `json:"entity"`
	EntityID    *uuid.UUID         `json:"entityId"`
	EntityName  *string            `json:"entityName"`
	UserID      uuid.UUID          `json:"userId"`
	UserEmail   string             `json:"userEmail"`
	UserName    string             `json:"userName"`
	Description *string            `json:"description"`
	OldData     map[string]any     `json:"oldData"`
	NewData     map[string]any     `json:"newData"`
	Metadata    map[string]any     `json:"metadata"`
	IPAddress   *string            `json:"ipAddress"`
	UserAgent   *string            `json:"userAgent"`
	CreatedAt   time.Time          `json:"createdAt"`
}

func toAuditRecordResponse(a *domain.AuditRecord) auditRecordResponse {
	return auditRecordResponse{
		ID:          a.ID,
		Action:      a.Action,
		Entity:      a.Entity,
		EntityID:    a.EntityID,
		EntityName:  a.EntityName,
		UserID:      a.UserID,
		UserEmail:   a.UserEmail,
		UserName:    a.UserName,
		Description: a.Description,
		OldData:     a.OldData,
		NewData:     a.NewData,
		Metadata:    a.Metadata,
		IPAddress:   a.IPAddress,
		UserAgent:   a.UserAgent,
		CreatedAt:   a.CreatedAt,
	}
}

type auditStatsResponse struct {
	Period   domain.StatsPeriod    `json:"period"`
	Since    time.Time             `json:"since"`
	Total    int                   `json:"total"`
	ByAction map[string]int        `json:"byAction"`
	ByEntity map[string]int        `json:"byEntity"`
	ByUser   []domain.UserActivity `json:"byUser"`
}

func toAuditStatsResponse(s *domain.AuditStats) auditStatsResponse {
	byUser := s.ByUser
	if byUser == nil {
		byUser = []domain.UserActivity{}
	}
	return auditStatsResponse{
		Period:   s.Period,
		Since:    s.Since,
		Total:    s.Total,
		ByAction: countsToMap(s.ByAction),
		ByEntity: countsToMap(s.ByEntity),
		ByUser:   byUser,
	}
}

type notificationResponse struct {
	ID            uuid.UUID                   `json:"id"`
	Title         string                      `json:"title"`
	Message       string                      `json:"message"`
	Type          domain.NotificationType     `json:"type"`
	Priority      domain.NotificationPriority `json:"priority"`
	IsRead        bool                        `json:"isRead"`
	ReadAt        *time.Time                  `json:"readAt"`
	ActionURL     *string                     `json:"actionUrl"`
	Metadata      map[string]any              `json:"metadata"`
	UserID        uuid.UUID                   `json:"userId"`
	CaseID        *uuid.UUID                  `json:"caseId"`
	DocumentID    *uuid.UUID                  `json:"documentId"`
	AppointmentID *uuid.UUID                  `json:"appointmentId"`
	CreatedAt     time.Time                   `json:"createdAt"`
}

func toNotificationResponse(n *domain.Notification) notificationResponse {
	return notificationResponse{
		ID:            n.ID,
		Title:         n.Title,
		Message:       n.Message,
		Type:          n.Type,
		Priority:      n.Priority,
		IsRead:        n.IsRead,
		ReadAt:        n.ReadAt,
		ActionURL:     n.ActionURL,
		Metadata:      n.Metadata,
		UserID:        n.UserID,
		CaseID:        n.CaseID,
		DocumentID:    n.DocumentID,
		AppointmentID: n.AppointmentID,
		CreatedAt:     n.CreatedAt,
	}
}

func countsToMap(counts []domain.CountByKey) map[string]int {
	out := make(map[string]int, len(counts))
	for _, c := range counts {
		out[c.Key] = c.Count
	}
	return out
}

// mapSlice converts a slice of domain values with fn. A nil input yields an
// empty slice so that JSON never carries null arrays.
func mapSlice[T, R any](in []T, fn func(*T) R) []R {
	out := make([]R, 0, len(in))
	for i := range in {
		out = append(out, fn(&in[i]))
	}
	return out
}
