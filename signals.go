package duplo

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for clone events.
var (
	SignalEngineCreated    = capitan.NewSignal("duplo.engine.created", "Engine instantiated")
	SignalCloneStart       = capitan.NewSignal("duplo.clone.start", "Clone operation beginning")
	SignalCloneComplete    = capitan.NewSignal("duplo.clone.complete", "Clone operation finished")
	SignalSnapshotStart    = capitan.NewSignal("duplo.snapshot.start", "Snapshot operation beginning")
	SignalSnapshotComplete = capitan.NewSignal("duplo.snapshot.complete", "Snapshot operation finished")
	SignalRestoreStart     = capitan.NewSignal("duplo.restore.start", "Restore operation beginning")
	SignalRestoreComplete  = capitan.NewSignal("duplo.restore.complete", "Restore operation finished")
	SignalFingerprint      = capitan.NewSignal("duplo.fingerprint", "Fingerprint computed")
)

// Keys for typed event data.
var (
	KeyTypeName     = capitan.NewStringKey("type_name")
	KeyContentType  = capitan.NewStringKey("content_type")
	KeySize         = capitan.NewIntKey("size")
	KeyDuration     = capitan.NewDurationKey("duration")
	KeyError        = capitan.NewErrorKey("error")
	KeyNodesVisited = capitan.NewIntKey("nodes_visited")
	KeyReusedCount  = capitan.NewIntKey("reused_count")
	KeyDigest       = capitan.NewStringKey("digest")
)

// emitEngineCreated emits an event when an engine is created.
func emitEngineCreated(ctx context.Context, typeName string) {
	capitan.Emit(ctx, SignalEngineCreated,
		KeyTypeName.Field(typeName),
	)
}

// emitCloneStart emits an event when a clone begins.
func emitCloneStart(ctx context.Context, typeName string) {
	capitan.Emit(ctx, SignalCloneStart,
		KeyTypeName.Field(typeName),
	)
}

// emitCloneComplete emits an event when a clone finishes.
func emitCloneComplete(ctx context.Context, typeName string, duration time.Duration, nodes, reused int, err error) {
	fields := []capitan.Field{
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
		KeyNodesVisited.Field(nodes),
		KeyReusedCount.Field(reused),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalCloneComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalCloneComplete, fields...)
	}
}

// emitSnapshotStart emits an event when a snapshot begins.
func emitSnapshotStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalSnapshotStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitSnapshotComplete emits an event when a snapshot finishes.
func emitSnapshotComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalSnapshotComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalSnapshotComplete, fields...)
	}
}

// emitRestoreStart emits an event when a restore begins.
func emitRestoreStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalRestoreStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitRestoreComplete emits an event when a restore finishes.
func emitRestoreComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalRestoreComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalRestoreComplete, fields...)
	}
}

// emitFingerprint emits an event when a fingerprint is computed.
func emitFingerprint(ctx context.Context, typeName string, duration time.Duration, digest string) {
	capitan.Emit(ctx, SignalFingerprint,
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
		KeyDigest.Field(digest),
	)
}
