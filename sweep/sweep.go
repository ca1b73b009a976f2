// Package sweep evicts terminated goals whose results have aged past the
// configured retention window.
package sweep

import (
	"fmt"
	"time"

	"github.com/goalmesh/goalmesh/core"
	"github.com/goalmesh/goalmesh/logging"
	"github.com/goalmesh/goalmesh/registry"
)

// Sweeper scans a registry and reclaims expired goals. Like the rest of the
// tracking core it performs no internal locking; callers serialize access
// externally.
type Sweeper struct {
	registry  *registry.Registry
	clock     core.Clock
	retention time.Duration
	logger    logging.Logger
}

// New constructs a sweeper over the given registry. retention is the result
// retention window; logger may be nil for silence.
func New(reg *registry.Registry, clock core.Clock, retention time.Duration, logger logging.Logger) *Sweeper {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &Sweeper{registry: reg, clock: clock, retention: retention, logger: logger}
}

// Sweep finalizes and evicts every terminal goal older than the retention
// window. Active goals are never touched, regardless of age. The clock is
// read exactly once per sweep. A terminal goal stamped at or after the
// current reading indicates a non-monotonic clock or a corrupted stamp; such
// goals are skipped, logged and recorded in the aggregated error rather than
// evicted on garbage arithmetic.
//
// The sweep is best-effort: a finalize failure on one goal is recorded but
// does not stop the remaining goals from being examined. Returns the number
// of goals evicted together with any aggregated error.
func (s *Sweeper) Sweep() (int, error) {
	now, err := s.clock.Now()
	if err != nil {
		return 0, fmt.Errorf("expiry sweep: read clock: %w", err)
	}

	expired := 0
	var errs []error
	for i := 0; i < s.registry.Len(); {
		h := s.registry.At(i)
		if h.Active() {
			i++
			continue
		}
		stamp := h.Info().Stamp
		if !now.After(stamp) {
			s.logger.Warn("Terminal goal stamped in the future, skipping",
				"goal_id", h.ID().String(), "stamp", stamp, "now", now)
			errs = append(errs, fmt.Errorf("goal %s: stamp %v not before now %v", h.ID(), stamp, now))
			i++
			continue
		}
		if now.Sub(stamp) <= s.retention {
			i++
			continue
		}
		// Eviction swaps the last entry into slot i; re-examine it.
		if err := s.registry.RemoveCompacted(i); err != nil {
			errs = append(errs, fmt.Errorf("goal %s: %w", h.ID(), err))
		}
		expired++
	}
	return expired, core.NewBatchError(errs)
}
