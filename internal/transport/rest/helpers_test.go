package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/laborcrm-backend/internal/domain"
	"github.com/heartmarshall/laborcrm-backend/internal/transport/middleware"
	"github.com/heartmarshall/laborcrm-backend/pkg/ctxutil"
)

//go:generate moq -out search_service_mock_test.go -pkg rest . searchService
//go:generate moq -out template_service_mock_test.go -pkg rest . templateService
//go:generate moq -out audit_service_mock_test.go -pkg rest . auditService
//go:generate moq -out notification_service_mock_test.go -pkg rest . notificationService

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type services struct {
	search        searchService
	templates     templateService
	audit         auditService
	notifications notificationService
}

func newTestRouter(s services) http.Handler {
	if s.search == nil {
		s.search = &searchServiceMock{}
	}
	if s.templates == nil {
		s.templates = &templateServiceMock{}
	}
	if s.audit == nil {
		s.audit = &auditServiceMock{}
	}
	if s.notifications == nil {
		s.notifications = &notificationServiceMock{}
	}
	return NewRouter(Handlers{
		Health:        NewHealthHandler(&dbPingerMock{}, "test"),
		Search:        NewSearchHandler(s.search, testLogger),
		Templates:     NewTemplateHandler(s.templates, testLogger),
		Audit:         NewAuditHandler(s.audit, testLogger),
		Notifications: NewNotificationHandler(s.notifications, testLogger),
	}, middleware.RequireActor)
}

var testActor = domain.Actor{
	ID:    uuid.MustParse("6f1c2a4e-0b7d-4c1a-9e55-3f0a9b2d1c01"),
	Email: "ana@firm.example",
	Name:  "Ana Souza",
	Role:  domain.UserRoleLawyer,
}

// do sends an authenticated request through the router.
func do(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	return doAs(t, h, &testActor, method, target, body)
}

func doAs(t *testing.T, h http.Handler, actor *domain.Actor, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rd = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, rd)
	if actor != nil {
		req = req.WithContext(ctxutil.WithActor(context.Background(), *actor))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v), rec.Body.String())
	return v
}
