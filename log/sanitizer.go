package log

import (
	"context"
	"fmt"

	"github.com/cxmcc/pylitterbot/redact"
)

// Payload creates a field carrying request/response data with sensitive
// values scrubbed through redact.Redact. Use it whenever raw API payloads
// are attached to log events.
func Payload(key string, value any) Field {
	return Field{Key: key, Value: redact.Redact(value)}
}

// SafeError logs errors with explicit production-aware sanitization.
// When production is true, only the error type is logged.
func SafeError(logger Logger, ctx context.Context, msg string, err error, production bool) {
	if logger == nil {
		return
	}

	if err == nil {
		return
	}

	if !logger.Enabled(LevelError) {
		return
	}

	if production {
		logger.Log(ctx, LevelError, msg, String("error_type", fmt.Sprintf("%T", err)))
		return
	}

	logger.Log(ctx, LevelError, msg, Err(err))
}
