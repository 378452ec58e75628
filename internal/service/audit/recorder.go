// Package audit records who did what to which entity and serves the audit
// listing and statistics to administrators.
package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/laborcrm-backend/internal/domain"
	"github.com/heartmarshall/laborcrm-backend/pkg/ctxutil"
)

const defaultWriteTimeout = 5 * time.Second

type recordStore interface {
	Create(ctx context.Context, rec domain.AuditRecord) error
}

// failureCounter is satisfied by prometheus.Counter.
type failureCounter interface {
	Inc()
}

// Entry is one auditable event. The actor and client info are taken from
// the context passed to Record.
type Entry struct {
	Action      domain.AuditAction
	Entity      domain.EntityType
	EntityID    *uuid.UUID
	EntityName  string
	Description string
	OldData     map[string]any
	NewData     map[string]any
	Metadata    map[string]any
}

// Recorder writes audit records in the background. Writes are at most once:
// a failed write is logged and dropped.
type Recorder struct {
	log      *slog.Logger
	store    recordStore
	timeout  time.Duration
	failures failureCounter
	now      func() time.Time
	wg       sync.WaitGroup
}

// NewRecorder creates a Recorder. failures may be nil.
func NewRecorder(logger *slog.Logger, store recordStore, timeout time.Duration, failures failureCounter) *Recorder {
	if timeout <= 0 {
		timeout = defaultWriteTimeout
	}
	return &Recorder{
		log:      logger.With("service", "audit"),
		store:    store,
		timeout:  timeout,
		failures: failures,
		now:      time.Now,
	}
}

// Record schedules the write of e and returns immediately.
// Entries without an authenticated actor in ctx are dropped with a warning.
func (r *Recorder) Record(ctx context.Context, e Entry) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		r.log.WarnContext(ctx, "audit entry without actor dropped",
			slog.String("action", e.Action.String()),
			slog.String("entity", e.Entity.String()),
		)
		r.fail()
		return
	}

	rec := r.build(ctx, actor, e)

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.timeout)
		defer cancel()

		if err := r.store.Create(writeCtx, rec); err != nil {
			r.log.WarnContext(writeCtx, "audit write failed",
				slog.String("action", rec.Action.String()),
				slog.String("entity", rec.Entity.String()),
				slog.String("user_id", rec.UserID.String()),
				slog.String("error", err.Error()),
			)
			r.fail()
		}
	}()
}

// Wait blocks until every scheduled write has finished.
func (r *Recorder) Wait() {
	r.wg.Wait()
}

func (r *Recorder) fail() {
	if r.failures != nil {
		r.failures.Inc()
	}
}

func (r *Recorder) build(ctx context.Context, actor domain.Actor, e Entry) domain.AuditRecord {
	rec := domain.AuditRecord{
		ID:          uuid.New(),
		Action:      e.Action,
		Entity:      e.Entity,
		EntityID:    e.EntityID,
		EntityName:  nonEmpty(e.EntityName),
		UserID:      actor.ID,
		UserEmail:   actor.Email,
		UserName:    actor.Name,
		Description: nonEmpty(e.Description),
		OldData:     e.OldData,
		NewData:     e.NewData,
		Metadata:    e.Metadata,
		CreatedAt:   r.now(),
	}

	info := ctxutil.ClientInfoFromCtx(ctx)
	rec.IPAddress = nonEmpty(info.IPAddress)
	rec.UserAgent = nonEmpty(info.UserAgent)
	return rec
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
