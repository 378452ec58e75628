package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/laborcrm-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedUser creates an active user with the given role and a unique email.
// An empty name gets a generated one.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole, name string) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	if name == "" {
		name = "Test User " + suffix
	}
	ts := now()
	user := domain.User{
		ID:        uuid.New(),
		Email:     "user-" + suffix + "@example.com",
		Name:      name,
		Role:      role,
		IsActive:  true,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, name, role, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.Name, string(user.Role), user.IsActive, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return user
}

// DeactivateUser marks the user inactive.
func DeactivateUser(t *testing.T, pool *pgxpool.Pool, id uuid.UUID) {
	t.Helper()
	if _, err := pool.Exec(context.Background(), `UPDATE users SET is_active = false WHERE id = $1`, id); err != nil {
		t.Fatalf("testhelper: DeactivateUser: %v", err)
	}
}

// SeedClient creates a CLIENT user with a profile carrying a unique CPF and
// the given company.
func SeedClient(t *testing.T, pool *pgxpool.Pool, name, company string) domain.User {
	t.Helper()

	user := SeedUser(t, pool, domain.UserRoleClient, name)
	cpf := uuid.New().String()[:11]

	_, err := pool.Exec(context.Background(),
		`INSERT INTO client_profiles (user_id, cpf, phone, company) VALUES ($1, $2, $3, NULLIF($4, ''))`,
		user.ID, cpf, "+55 11 90000-0000", company,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedClient profile: %v", err)
	}
	return user
}

// SeedCase creates a case with the given title for client and lawyer and returns its ID.
func SeedCase(t *testing.T, pool *pgxpool.Pool, title string, clientID, lawyerID uuid.UUID) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO cases (id, number, title, status, priority, client_id, lawyer_id, created_at, updated_at)
		 VALUES ($1, $2, $3, 'OPEN', 'MEDIUM', $4, $5, $6, $6)`,
		id, "PROC-"+uniqueSuffix(), title, clientID, lawyerID, now(),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCase: %v", err)
	}
	return id
}

// SeedDocument creates a document attached to caseID (may be nil) and returns its ID.
func SeedDocument(t *testing.T, pool *pgxpool.Pool, name string, caseID *uuid.UUID, uploaderID uuid.UUID) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO documents (id, name, file_name, mime_type, size, case_id, uploaded_by_id, created_at)
		 VALUES ($1, $2, $3, 'application/pdf', 1024, $4, $5, $6)`,
		id, name, uniqueSuffix()+".pdf", caseID, uploaderID, now(),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDocument: %v", err)
	}
	return id
}

// SeedAppointment creates an appointment one day from now and returns its ID.
func SeedAppointment(t *testing.T, pool *pgxpool.Pool, title string, caseID *uuid.UUID, lawyerID uuid.UUID) uuid.UUID {
	t.Helper()

	id := uuid.New()
	start := now().Add(24 * time.Hour)
	_, err := pool.Exec(context.Background(),
		`INSERT INTO appointments (id, title, type, status, start_date, end_date, location, case_id, lawyer_id, created_at)
		 VALUES ($1, $2, 'HEARING', 'SCHEDULED', $3, $4, 'Fórum Trabalhista', $5, $6, $7)`,
		id, title, start, start.Add(time.Hour), caseID, lawyerID, now(),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAppointment: %v", err)
	}
	return id
}

// SeedTemplate inserts an active template owned by ownerID.
func SeedTemplate(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, name, content string, public bool) domain.Template {
	t.Helper()

	ts := now()
	tpl := domain.Template{
		ID:          uuid.New(),
		Name:        name,
		Type:        domain.TemplateTypeDocument,
		Category:    "geral",
		Content:     content,
		Variables:   []domain.TemplateVariable{},
		IsPublic:    public,
		Tags:        []string{},
		Version:     1,
		CreatedByID: ownerID,
		IsActive:    true,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO templates (id, name, type, category, content, is_public, created_by_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)`,
		tpl.ID, tpl.Name, string(tpl.Type), tpl.Category, tpl.Content, tpl.IsPublic, tpl.CreatedByID, ts,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTemplate: %v", err)
	}
	return tpl
}
