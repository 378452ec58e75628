package template

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/laborcrm-backend/internal/domain"
)

const (
	maxNameLen        = 200
	maxDescriptionLen = 2000
	maxCategoryLen    = 100
	maxContentLen     = 200_000
	maxVariables      = 100
	maxTags           = 20
	maxTagLen         = 50
	defaultListLimit  = 20
	maxListLimit      = 100
)

// CreateInput holds the parameters for creating a template.
type CreateInput struct {
	Name        string
	Description *string
	Type        domain.TemplateType
	Category    string
	Content     string
	Variables   []domain.TemplateVariable
	IsPublic    bool
	Tags        []string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs domain.FieldErrors

	checkName(&errs, "name", i.Name)
	checkDescription(&errs, i.Description)
	if !i.Type.IsValid() {
		errs.Add("type", "must be one of DOCUMENT, PETITION, CONTRACT, LETTER, EMAIL, REPORT, OTHER")
	}
	checkCategory(&errs, i.Category)
	checkContent(&errs, i.Content)
	checkVariables(&errs, i.Variables)
	checkTags(&errs, i.Tags)

	return errs.Err()
}

// UpdateInput holds the fields to change. Nil fields are left unchanged;
// an empty Description clears it.
type UpdateInput struct {
	Name        *string
	Description *string
	Type        *domain.TemplateType
	Category    *string
	Content     *string
	Variables   *[]domain.TemplateVariable
	IsPublic    *bool
	Tags        *[]string
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs domain.FieldErrors

	if i.Name == nil && i.Description == nil && i.Type == nil && i.Category == nil &&
		i.Content == nil && i.Variables == nil && i.IsPublic == nil && i.Tags == nil {
		errs.Add("input", "at least one field must be provided")
	}
	if i.Name != nil {
		checkName(&errs, "name", *i.Name)
	}
	checkDescription(&errs, i.Description)
	if i.Type != nil && !i.Type.IsValid() {
		errs.Add("type", "must be one of DOCUMENT, PETITION, CONTRACT, LETTER, EMAIL, REPORT, OTHER")
	}
	if i.Category != nil {
		checkCategory(&errs, *i.Category)
	}
	if i.Content != nil {
		checkContent(&errs, *i.Content)
	}
	if i.Variables != nil {
		checkVariables(&errs, *i.Variables)
	}
	if i.Tags != nil {
		checkTags(&errs, *i.Tags)
	}

	return errs.Err()
}

func (i UpdateInput) params() domain.TemplateUpdateParams {
	p := domain.TemplateUpdateParams{
		Type:      i.Type,
		Content:   i.Content,
		Variables: i.Variables,
		IsPublic:  i.IsPublic,
	}
	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		p.Name = &name
	}
	if i.Description != nil {
		desc := strings.TrimSpace(*i.Description)
		p.Description = &desc
	}
	if i.Category != nil {
		cat := strings.TrimSpace(*i.Category)
		p.Category = &cat
	}
	if i.Variables != nil {
		vars := normalizeVariables(*i.Variables)
		p.Variables = &vars
	}
	if i.Tags != nil {
		tags := normalizeTags(*i.Tags)
		p.Tags = &tags
	}
	return p
}

// ListInput holds the filters of a template listing.
type ListInput struct {
	Search   *string
	Type     *domain.TemplateType
	Category *string
	Tag      *string
	Page     int
	Limit    int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs domain.FieldErrors
	if i.Page < 0 {
		errs.Add("page", "must be at least 1")
	}
	if i.Limit < 0 || i.Limit > maxListLimit {
		errs.Add("limit", fmt.Sprintf("must be between 1 and %d", maxListLimit))
	}
	if i.Type != nil && !i.Type.IsValid() {
		errs.Add("type", "unknown template type")
	}
	i.page().CheckRange(&errs)
	return errs.Err()
}

func (i ListInput) page() domain.Page {
	p := domain.Page{Number: i.Page, Limit: i.Limit}
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Limit < 1 {
		p.Limit = defaultListLimit
	}
	return p
}

// DuplicateInput names the copy of a template.
type DuplicateInput struct {
	Name string
}

// Validate checks all fields and collects all errors.
func (i DuplicateInput) Validate() error {
	var errs domain.FieldErrors
	checkName(&errs, "name", i.Name)
	return errs.Err()
}

// GenerateInput holds the values substituted into a template. Values are
// stringified; nil becomes an empty string.
type GenerateInput struct {
	Variables    map[string]any
	DocumentName *string
	CaseID       *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i GenerateInput) Validate() error {
	var errs domain.FieldErrors
	if i.DocumentName != nil && utf8.RuneCountInString(strings.TrimSpace(*i.DocumentName)) > maxNameLen {
		errs.Add("documentName", fmt.Sprintf("max %d characters", maxNameLen))
	}
	if i.CaseID != nil && *i.CaseID == uuid.Nil {
		errs.Add("caseId", "must be a valid id")
	}
	return errs.Err()
}

// ---------------------------------------------------------------------------
// Field checks
// ---------------------------------------------------------------------------

func checkName(errs *domain.FieldErrors, field, name string) {
	n := utf8.RuneCountInString(strings.TrimSpace(name))
	if n == 0 {
		errs.Add(field, "required")
	} else if n > maxNameLen {
		errs.Add(field, fmt.Sprintf("max %d characters", maxNameLen))
	}
}

func checkDescription(errs *domain.FieldErrors, desc *string) {
	if desc != nil && utf8.RuneCountInString(*desc) > maxDescriptionLen {
		errs.Add("description", fmt.Sprintf("max %d characters", maxDescriptionLen))
	}
}

func checkCategory(errs *domain.FieldErrors, category string) {
	if utf8.RuneCountInString(strings.TrimSpace(category)) > maxCategoryLen {
		errs.Add("category", fmt.Sprintf("max %d characters", maxCategoryLen))
	}
}

func checkContent(errs *domain.FieldErrors, content string) {
	if strings.TrimSpace(content) == "" {
		errs.Add("content", "required")
	} else if len(content) > maxContentLen {
		errs.Add("content", "too long")
	}
}

func checkVariables(errs *domain.FieldErrors, vars []domain.TemplateVariable) {
	if len(vars) > maxVariables {
		errs.Add("variables", fmt.Sprintf("max %d variables", maxVariables))
		return
	}
	seen := make(map[string]bool, len(vars))
	for idx, v := range vars {
		field := fmt.Sprintf("variables[%d]", idx)
		name := strings.TrimSpace(v.Name)
		switch {
		case name == "":
			errs.Add(field+".name", "required")
		case !validVariableName(name):
			errs.Add(field+".name", "must not contain spaces or braces")
		case seen[name]:
			errs.Add(field+".name", "duplicate variable name")
		}
		seen[name] = true

		if v.Type != "" && !v.Type.IsValid() {
			errs.Add(field+".type", "unknown variable type")
		}
		if v.Type == domain.VariableTypeSelect && len(v.Options) == 0 {
			errs.Add(field+".options", "required for SELECT variables")
		}
	}
}

func validVariableName(name string) bool {
	for _, r := range name {
		if unicode.IsSpace(r) || r == '{' || r == '}' {
			return false
		}
	}
	return true
}

func checkTags(errs *domain.FieldErrors, tags []string) {
	if len(tags) > maxTags {
		errs.Add("tags", fmt.Sprintf("max %d tags", maxTags))
		return
	}
	for idx, tag := range tags {
		if utf8.RuneCountInString(strings.TrimSpace(tag)) > maxTagLen {
			errs.Add(fmt.Sprintf("tags[%d]", idx), fmt.Sprintf("max %d characters", maxTagLen))
		}
	}
}

// normalizeVariables trims names and fills in the default label and type.
func normalizeVariables(vars []domain.TemplateVariable) []domain.TemplateVariable {
	out := make([]domain.TemplateVariable, len(vars))
	for i, v := range vars {
		v.Name = strings.TrimSpace(v.Name)
		v.Label = strings.TrimSpace(v.Label)
		if v.Label == "" {
			v.Label = v.Name
		}
		if v.Type == "" {
			v.Type = domain.VariableTypeText
		}
		out[i] = v
	}
	return out
}

// normalizeTags lowercases, trims and de-duplicates tags, dropping blanks.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		tag = domain.NormalizeText(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}

func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
