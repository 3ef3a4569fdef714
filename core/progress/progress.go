package progress

import (
	"go.uber.org/zap"
)

// Reporter emits throttled progress updates for long listings and
// batches. It is purely observational and never influences scheduling
// or result order.
type Reporter struct {
	logger  *zap.Logger
	verbose bool
}

// New creates a Reporter. When verbose is set, every update is emitted.
func New(logger *zap.Logger, verbose bool) *Reporter {
	return &Reporter{logger: logger, verbose: verbose}
}

// Report emits one status update for completion current out of total.
// Non-verbose runs are throttled to the start, the end, and roughly
// every 4% of the batch; batches under 25 units still update on every
// few completions.
func (r *Reporter) Report(current, total int, label string) {
	if !r.verbose && !shouldEmit(current, total) {
		return
	}
	r.logger.Info(label,
		zap.Int("current", current),
		zap.Int("total", total),
	)
}

func shouldEmit(current, total int) bool {
	threshold := total * 25 / 100
	if threshold > 25 {
		threshold = 25
	}
	if threshold < 1 {
		threshold = 1
	}
	return current == 0 || current == total || current%threshold == 0
}
