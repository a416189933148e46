package stream

import (
	"time"

	"github.com/streamingfast/dmetrics"
	"github.com/streamingfast/shutter"
	"go.uber.org/zap"
)

// runStats periodically logs the engine's cursors, state, retry count and
// average line latency. Grounded on the teacher's Stats (shutter.Shutter
// embed, Start(each)/ticker/Terminating() select, LogNow, Close), retargeted
// from block-ingestion rates to line-streaming rates.
type runStats struct {
	*shutter.Shutter

	lineRate *dmetrics.AvgRatePromCounter
	latency  *latencyAverage

	snapshot func() Snapshot
	logger   *zap.Logger
}

func newRunStats(logger *zap.Logger, snapshot func() Snapshot) *runStats {
	return &runStats{
		Shutter:  shutter.New(),
		lineRate: dmetrics.MustNewAvgRateFromPromCounter(LineSuccessCount, 1*time.Second, 30*time.Second, "line"),
		latency:  newLatencyAverage("line_round_trip", 50),
		snapshot: snapshot,
		logger:   logger,
	}
}

func (s *runStats) RecordLatency(d time.Duration) {
	s.latency.Add(d)
}

func (s *runStats) Start(each time.Duration) {
	if s.IsTerminating() || s.IsTerminated() {
		panic("already shutdown, refusing to start again")
	}

	go func() {
		ticker := time.NewTicker(each)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.LogNow()
			case <-s.Terminating():
				return
			}
		}
	}()
}

func (s *runStats) LogNow() {
	snap := s.snapshot()

	s.logger.Info("gcode stream stats",
		zap.Stringer("state", snap.State),
		zap.Stringer("cursors", snap.Cursors),
		zap.Int("retry_attempts", snap.Retry.AttemptsCurrentLine),
		zap.Stringer("line_rate", s.lineRate),
		zap.Stringer("avg_round_trip", s.latency),
	)
}

func (s *runStats) Close() {
	s.lineRate.SyncNow()
	s.LogNow()

	s.Shutdown(nil)
	s.lineRate.Stop()
}
