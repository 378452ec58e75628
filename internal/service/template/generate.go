package template

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/laborcrm-backend/internal/domain"
	"github.com/heartmarshall/laborcrm-backend/pkg/ctxutil"
)

const documentDateLayout = "02/01/2006"

// GenerateResult is a rendered document. The document is not persisted.
type GenerateResult struct {
	Content      string
	DocumentID   uuid.UUID
	DocumentName string
	TemplateID   uuid.UUID
	TemplateName string
}

// Generate renders a readable template with the supplied variables and
// counts the use. Placeholders without a supplied value are kept verbatim.
func (s *Service) Generate(ctx context.Context, id uuid.UUID, input GenerateInput) (*GenerateResult, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	t, err := s.load(ctx, actor, id, opRead)
	if err != nil {
		return nil, err
	}

	content := Render(t.Content, input.Variables)

	if err := s.templates.IncrementUsage(ctx, t.ID); err != nil {
		return nil, fmt.Errorf("template.Generate: %w", err)
	}

	res := &GenerateResult{
		Content:      content,
		DocumentID:   uuid.New(),
		DocumentName: fmt.Sprintf("%s - %s", t.Name, s.now().Format(documentDateLayout)),
		TemplateID:   t.ID,
		TemplateName: t.Name,
	}
	if name := trimOrNil(input.DocumentName); name != nil {
		res.DocumentName = *name
	}

	meta := map[string]any{
		"templateId":     t.ID.String(),
		"templateName":   t.Name,
		"variablesCount": len(input.Variables),
	}
	if input.CaseID != nil {
		meta["caseId"] = input.CaseID.String()
	}
	s.audit.LogGenerate(ctx, domain.EntityTypeDocument,
		domain.Ref{ID: res.DocumentID, Name: res.DocumentName},
		domain.Ref{ID: t.ID, Name: t.Name},
		meta,
	)
	s.log.InfoContext(ctx, "document generated",
		slog.String("user_id", actor.ID.String()),
		slog.String("template_id", t.ID.String()),
		slog.Int("variables", len(input.Variables)),
	)
	return res, nil
}

// Render replaces every {{name}} in content with the stringified value of
// vars[name] in a single pass, so substituted values are never re-expanded.
func Render(content string, vars map[string]any) string {
	if len(vars) == 0 {
		return content
	}

	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	slices.Sort(names)

	pairs := make([]string, 0, 2*len(names))
	for _, name := range names {
		pairs = append(pairs, "{{"+name+"}}", stringify(vars[name]))
	}
	return strings.NewReplacer(pairs...).Replace(content)
}

func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case json.Number:
		return val.String()
	case fmt.Stringer:
		return val.String()
	case int, int32, int64, uint, uint32, uint64, float32:
		return fmt.Sprint(val)
	default:
		raw, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(raw)
	}
}
