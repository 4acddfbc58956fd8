package vuevreact

import "go.uber.org/zap"

// Safe runs fn and returns fallback if it fails. The failure goes to log,
// which is a no-op logger outside development; nothing reaches the visitor.
func Safe[T any](log *zap.Logger, what string, fn func() (T, error), fallback T) T {
	v, err := fn()
	if err != nil {
		if log != nil {
			log.Warn("recovered", zap.String("op", what), zap.Error(err))
		}
		return fallback
	}
	return v
}
