package audit

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/laborcrm-backend/internal/domain"
	"github.com/heartmarshall/laborcrm-backend/pkg/ctxutil"
)

func describe(verb string, entity domain.EntityType, name string) string {
	if name == "" {
		return fmt.Sprintf("%s %s", verb, entity.Label())
	}
	return fmt.Sprintf("%s %s %q", verb, entity.Label(), name)
}

// LogCreate records the creation of an entity with its initial state.
func (r *Recorder) LogCreate(ctx context.Context, entity domain.EntityType, id uuid.UUID, name string, newData map[string]any) {
	r.Record(ctx, Entry{
		Action:      domain.AuditActionCreate,
		Entity:      entity,
		EntityID:    &id,
		EntityName:  name,
		Description: describe("Created", entity, name),
		NewData:     newData,
	})
}

// LogUpdate records a change with the state before and after it.
func (r *Recorder) LogUpdate(ctx context.Context, entity domain.EntityType, id uuid.UUID, name string, oldData, newData map[string]any) {
	r.Record(ctx, Entry{
		Action:      domain.AuditActionUpdate,
		Entity:      entity,
		EntityID:    &id,
		EntityName:  name,
		Description: describe("Updated", entity, name),
		OldData:     oldData,
		NewData:     newData,
	})
}

// LogDelete records the removal of an entity with its last known state.
func (r *Recorder) LogDelete(ctx context.Context, entity domain.EntityType, id uuid.UUID, name string, oldData map[string]any) {
	r.Record(ctx, Entry{
		Action:      domain.AuditActionDelete,
		Entity:      entity,
		EntityID:    &id,
		EntityName:  name,
		Description: describe("Deleted", entity, name),
		OldData:     oldData,
	})
}

// LogLogin records a sign-in of the actor in ctx.
func (r *Recorder) LogLogin(ctx context.Context) {
	r.logSession(ctx, domain.AuditActionLogin, "signed in")
}

// LogLogout records a sign-out of the actor in ctx.
func (r *Recorder) LogLogout(ctx context.Context) {
	r.logSession(ctx, domain.AuditActionLogout, "signed out")
}

func (r *Recorder) logSession(ctx context.Context, action domain.AuditAction, verb string) {
	actor, _ := ctxutil.ActorFromCtx(ctx)
	id := actor.ID
	r.Record(ctx, Entry{
		Action:      action,
		Entity:      domain.EntityTypeUser,
		EntityID:    &id,
		EntityName:  actor.Name,
		Description: fmt.Sprintf("User %q %s", actor.Name, verb),
	})
}

// LogView records that an entity was opened.
func (r *Recorder) LogView(ctx context.Context, entity domain.EntityType, id uuid.UUID, name string) {
	r.Record(ctx, Entry{
		Action:      domain.AuditActionView,
		Entity:      entity,
		EntityID:    &id,
		EntityName:  name,
		Description: describe("Viewed", entity, name),
	})
}

// LogDownload records that a file-backed entity was downloaded.
func (r *Recorder) LogDownload(ctx context.Context, entity domain.EntityType, id uuid.UUID, name string) {
	r.Record(ctx, Entry{
		Action:      domain.AuditActionDownload,
		Entity:      entity,
		EntityID:    &id,
		EntityName:  name,
		Description: describe("Downloaded", entity, name),
	})
}

// LogExport records a bulk export of entities in the given format.
func (r *Recorder) LogExport(ctx context.Context, entity domain.EntityType, format string, metadata map[string]any) {
	meta := make(map[string]any, len(metadata)+1)
	for k, v := range metadata {
		meta[k] = v
	}
	meta["format"] = format
	r.Record(ctx, Entry{
		Action:      domain.AuditActionExport,
		Entity:      entity,
		Description: fmt.Sprintf("Exported %s data as %s", entity.Label(), format),
		Metadata:    meta,
	})
}

// LogDuplicate records that dup was created from original.
func (r *Recorder) LogDuplicate(ctx context.Context, entity domain.EntityType, original, dup domain.Ref) {
	id := dup.ID
	r.Record(ctx, Entry{
		Action:      domain.AuditActionDuplicate,
		Entity:      entity,
		EntityID:    &id,
		EntityName:  dup.Name,
		Description: fmt.Sprintf("Duplicated %s %q as %q", entity.Label(), original.Name, dup.Name),
		Metadata: map[string]any{
			"originalId":   original.ID.String(),
			"originalName": original.Name,
		},
	})
}

// LogGenerate records that generated was produced from source. Extra
// metadata keys are merged next to sourceId and sourceName.
func (r *Recorder) LogGenerate(ctx context.Context, entity domain.EntityType, generated domain.Ref, source domain.Ref, metadata map[string]any) {
	meta := make(map[string]any, len(metadata)+2)
	for k, v := range metadata {
		meta[k] = v
	}
	meta["sourceId"] = source.ID.String()
	meta["sourceName"] = source.Name

	id := generated.ID
	r.Record(ctx, Entry{
		Action:      domain.AuditActionGenerate,
		Entity:      entity,
		EntityID:    &id,
		EntityName:  generated.Name,
		Description: fmt.Sprintf("Generated %s %q from %q", entity.Label(), generated.Name, source.Name),
		Metadata:    meta,
	})
}
