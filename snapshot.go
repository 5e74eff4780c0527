package duplo

import (
	"context"
	"time"
)

// Snapshot marshals v through the codec, producing bytes that Restore can
// turn back into an independent copy. This is the serialize/deserialize
// clone strategy: convenient for persistence and transport, but lossier than
// Clone — wire formats cannot express aliasing, and a cyclic input would
// never terminate, so Snapshot refuses it with ErrCyclic up front.
func (e *Engine[T]) Snapshot(ctx context.Context, v T, c Codec) ([]byte, error) {
	start := time.Now()
	emitSnapshotStart(ctx, c.ContentType(), e.typeName)

	var retErr error
	var retData []byte
	defer func() {
		emitSnapshotComplete(ctx, c.ContentType(), e.typeName,
			len(retData), time.Since(start), retErr)
	}()

	if HasCycle(v) {
		retErr = newCodecError(ErrCyclic, nil)
		return nil, retErr
	}

	retData, retErr = c.Marshal(v)
	if retErr != nil {
		retErr = newCodecError(ErrMarshal, retErr)
		return nil, retErr
	}
	return retData, nil
}

// Restore unmarshals snapshot bytes into a fresh T.
func (e *Engine[T]) Restore(ctx context.Context, data []byte, c Codec) (T, error) {
	start := time.Now()
	emitRestoreStart(ctx, c.ContentType(), e.typeName)

	var retErr error
	var out T
	defer func() {
		emitRestoreComplete(ctx, c.ContentType(), e.typeName,
			len(data), time.Since(start), retErr)
	}()

	if err := c.Unmarshal(data, &out); err != nil {
		retErr = newCodecError(ErrUnmarshal, err)
		var zero T
		return zero, retErr
	}
	return out, nil
}
