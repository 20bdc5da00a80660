package hooks

import (
	"github.com/lerenn/repoconf/pkg/logger"
)

// LoggingHook traces the start and end of every operation it is registered on.
type LoggingHook struct {
	logger logger.Logger
}

// NewLoggingHook creates a new LoggingHook instance.
func NewLoggingHook(logger logger.Logger) *LoggingHook {
	return &LoggingHook{
		logger: logger,
	}
}

// Name returns the hook name.
func (h *LoggingHook) Name() string {
	return "logging"
}

// Priority returns the hook priority (lower numbers execute first).
func (h *LoggingHook) Priority() int {
	return 100
}

// PreExecute logs the start of an operation.
func (h *LoggingHook) PreExecute(ctx *HookContext) error {
	h.logger.Logf("Starting %s with params: %v", ctx.OperationName, ctx.Parameters)
	return nil
}

// PostExecute logs the completion of an operation.
func (h *LoggingHook) PostExecute(ctx *HookContext) error {
	h.logger.Logf("Completed %s", ctx.OperationName)
	return nil
}

// OnError logs when an operation fails.
func (h *LoggingHook) OnError(ctx *HookContext) error {
	h.logger.Logf("%s failed: %v", ctx.OperationName, ctx.Error)
	return nil
}
