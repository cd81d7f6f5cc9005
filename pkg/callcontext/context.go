package callcontext

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type KeyContext string

var (
	keyCallID    KeyContext = "call_id"
	keyOperation KeyContext = "operation"
	keyStartTime KeyContext = "call_start_time"
)

// Begin stamps a fresh call id, the operation name and the start time onto ctx
func Begin(parentCtx context.Context, operation string) context.Context {
	ctx := context.WithValue(parentCtx, keyCallID, uuid.New())
	ctx = context.WithValue(ctx, keyOperation, operation)
	ctx = context.WithValue(ctx, keyStartTime, time.Now())
	return ctx
}

// GetCallID extracts the call id from context
func GetCallID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(keyCallID).(uuid.UUID)
	return id, ok
}

// GetOperation extracts the operation name from context
func GetOperation(ctx context.Context) (string, bool) {
	op, ok := ctx.Value(keyOperation).(string)
	return op, ok
}

// GetStartTime extracts the call start time from context
func GetStartTime(ctx context.Context) (time.Time, bool) {
	t, ok := ctx.Value(keyStartTime).(time.Time)
	return t, ok
}

// Elapsed returns the time since Begin, or zero outside a call
func Elapsed(ctx context.Context) time.Duration {
	start, ok := GetStartTime(ctx)
	if !ok {
		return 0
	}
	return time.Since(start)
}

// Fields returns zap fields for the call carried by ctx. Outside a call it
// returns nil.
func Fields(ctx context.Context) []zap.Field {
	id, ok := GetCallID(ctx)
	if !ok {
		return nil
	}
	op, _ := GetOperation(ctx)
	return []zap.Field{
		zap.String("call_id", id.String()),
		zap.String("operation", op),
	}
}
