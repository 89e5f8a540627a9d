package session

import (
	"time"

	"go.uber.org/zap"
)

// StartCleanupLoop sweeps expired sessions in the background. Mirrors the
// cookie lifetime: an expired row can only belong to a cookie the browser
// has already dropped.
func (st *Store) StartCleanupLoop(interval time.Duration, log *zap.Logger) {
	if interval <= 0 {
		interval = time.Hour
	}
	if log == nil {
		log = zap.NewNop()
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			n, err := st.DeleteExpired()
			if err != nil {
				log.Warn("session cleanup failed", zap.Error(err))
				continue
			}
			if n > 0 {
				log.Info("expired sessions removed", zap.Int64("count", n))
			}
		}
	}()
}
