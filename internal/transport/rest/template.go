package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/laborcrm-backend/internal/domain"
	"github.com/heartmarshall/laborcrm-backend/internal/service/template"
)

type templateService interface {
	List(ctx context.Context, input template.ListInput) (*template.ListResult, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Template, error)
	Stats(ctx context.Context) (*domain.TemplateStats, error)
	Create(ctx context.Context, input template.CreateInput) (*domain.Template, error)
	Update(ctx context.Context, id uuid.UUID, input template.UpdateInput) (*domain.Template, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Duplicate(ctx context.Context, id uuid.UUID, input template.DuplicateInput) (*domain.Template, error)
	Generate(ctx context.Context, id uuid.UUID, input template.GenerateInput) (*template.GenerateResult, error)
}

// TemplateHandler serves the template endpoints.
type TemplateHandler struct {
	svc templateService
	log *slog.Logger
}

// NewTemplateHandler creates a TemplateHandler.
func NewTemplateHandler(svc templateService, logger *slog.Logger) *TemplateHandler {
	return &TemplateHandler{svc: svc, log: logger.With("handler", "template")}
}

type variableRequest struct {
	Name         string   `json:"name"         validate:"required"`
	Label        string   `json:"label"`
	Type         string   `json:"type"         validate:"omitempty,oneof=TEXT TEXTAREA NUMBER DATE SELECT BOOLEAN"`
	Required     bool     `json:"required"`
	DefaultValue *string  `json:"defaultValue"`
	Options      []string `json:"options"`
}

type createTemplateRequest struct {
	Name        string            `json:"name"        validate:"required"`
	Description *string           `json:"description"`
	Type        string            `json:"type"        validate:"required,oneof=DOCUMENT PETITION CONTRACT LETTER EMAIL REPORT OTHER"`
	Category    string            `json:"category"`
	Content     string            `json:"content"     validate:"required"`
	Variables   []variableRequest `json:"variables"   validate:"omitempty,dive"`
	IsPublic    bool              `json:"isPublic"`
	Tags        []string          `json:"tags"`
}

type updateTemplateRequest struct {
	Name        *string            `json:"name"`
	Description *string            `json:"description"`
	Type        *string            `json:"type"        validate:"omitempty,oneof=DOCUMENT PETITION CONTRACT LETTER EMAIL REPORT OTHER"`
	Category    *string            `json:"category"`
	Content     *string            `json:"content"`
	Variables   *[]variableRequest `json:"variables"   validate:"omitempty,dive"`
	IsPublic    *bool              `json:"isPublic"`
	Tags        *[]string          `json:"tags"`
}

type duplicateTemplateRequest struct {
	Name string `json:"name" validate:"required"`
}

type generateRequest struct {
	Variables    map[string]any `json:"variables"`
	DocumentName *string        `json:"documentName"`
	CaseID       *string        `json:"caseId" validate:"omitempty,uuid"`
}

type generateResponse struct {
	Content      string    `json:"content"`
	DocumentID   uuid.UUID `json:"documentId"`
	DocumentName string    `json:"documentName"`
	TemplateID   uuid.UUID `json:"templateId"`
	TemplateName string    `json:"templateName"`
}

type templateListResponse struct {
	Templates  []templateResponse `json:"templates"`
	Pagination pagination         `json:"pagination"`
}

func toVariables(in []variableRequest) []domain.TemplateVariable {
	out := make([]domain.TemplateVariable, 0, len(in))
	for _, v := range in {
		out = append(out, domain.TemplateVariable{
			Name:         v.Name,
			Label:        v.Label,
			Type:         domain.VariableType(v.Type),
			Required:     v.Required,
			DefaultValue: v.DefaultValue,
			Options:      v.Options,
		})
	}
	return out
}

// List handles GET /templates.
func (h *TemplateHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryReader(r)
	input := template.ListInput{
		Search:   q.optString("search"),
		Category: q.optString("category"),
		Tag:      q.optString("tag"),
		Page:     q.positiveInt("page"),
		Limit:    q.positiveInt("limit"),
	}
	if t := q.optString("type"); t != nil {
		tt := domain.TemplateType(*t)
		input.Type = &tt
	}
	if err := q.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, templateListResponse{
		Templates: mapSlice(res.Templates, toTemplateResponse),
		Pagination: pagination{
			Page:       res.Page,
			Limit:      res.Limit,
			Total:      res.Total,
			TotalPages: res.TotalPages,
		},
	})
}

// Stats handles GET /templates/stats.
func (h *TemplateHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTemplateStatsResponse(stats))
}

// Get handles GET /templates/{id}.
func (h *TemplateHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	t, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTemplateResponse(t))
}

// Create handles POST /templates.
func (h *TemplateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTemplateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	t, err := h.svc.Create(r.Context(), template.CreateInput{
		Name:        req.Name,
		Description: req.Description,
		Type:        domain.TemplateType(req.Type),
		Category:    req.Category,
		Content:     req.Content,
		Variables:   toVariables(req.Variables),
		IsPublic:    req.IsPublic,
		Tags:        req.Tags,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTemplateResponse(t))
}

// Update handles PUT /templates/{id}.
func (h *TemplateHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req updateTemplateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	input := template.UpdateInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Content:     req.Content,
		IsPublic:    req.IsPublic,
		Tags:        req.Tags,
	}
	if req.Type != nil {
		t := domain.TemplateType(*req.Type)
		input.Type = &t
	}
	if req.Variables != nil {
		vars := toVariables(*req.Variables)
		input.Variables = &vars
	}

	t, err := h.svc.Update(r.Context(), id, input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTemplateResponse(t))
}

// Delete handles DELETE /templates/{id}.
func (h *TemplateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Duplicate handles POST /templates/{id}/duplicate.
func (h *TemplateHandler) Duplicate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req duplicateTemplateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	t, err := h.svc.Duplicate(r.Context(), id, template.DuplicateInput{Name: req.Name})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTemplateResponse(t))
}

// Generate handles POST /templates/{id}/generate.
func (h *TemplateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req generateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	input := template.GenerateInput{
		Variables:    req.Variables,
		DocumentName: req.DocumentName,
	}
	if req.CaseID != nil {
		caseID, err := uuid.Parse(*req.CaseID)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("caseId", "must be a valid id"))
			return
		}
		input.CaseID = &caseID
	}

	res, err := h.svc.Generate(r.Context(), id, input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, generateResponse{
		Content:      res.Content,
		DocumentID:   res.DocumentID,
		DocumentName: res.DocumentName,
		TemplateID:   res.TemplateID,
		TemplateName: res.TemplateName,
	})
}
