// Package progress defines the observer-pattern plumbing used to report
// incremental progress from a running computation back to whichever
// presentation layer (CLI spinner, TUI dashboard, quiet/no-op) is active,
// without coupling the computation to any of them.
package progress

import "log"

// ProgressUpdate is a single progress sample emitted by a running
// computation. CalculatorIndex identifies which concurrently running
// operation produced it, for callers racing several algorithms at once.
type ProgressUpdate struct {
	CalculatorIndex int
	Value           float64 // fractional completion, 0.0-1.0
}

// ProgressCallback receives progress updates directly, bypassing a channel.
// Used by computations that want to report progress without requiring the
// caller to manage a channel and goroutine.
type ProgressCallback func(update ProgressUpdate)

// ProgressObserver receives progress updates pushed by a ProgressSubject.
type ProgressObserver interface {
	OnProgress(update ProgressUpdate)
}

// ProgressSubject fans a stream of progress updates out to any number of
// registered observers.
type ProgressSubject struct {
	observers []ProgressObserver
}

// NewProgressSubject creates a subject with no observers attached.
func NewProgressSubject() *ProgressSubject {
	return &ProgressSubject{}
}

// Attach registers an observer to receive future updates.
func (s *ProgressSubject) Attach(o ProgressObserver) {
	s.observers = append(s.observers, o)
}

// Notify pushes update to every attached observer.
func (s *ProgressSubject) Notify(update ProgressUpdate) {
	for _, o := range s.observers {
		o.OnProgress(update)
	}
}

// ChannelObserver forwards every update onto a channel. Sends are
// non-blocking: an update is dropped rather than stalling the computation
// if the channel's buffer is full and nothing is draining it.
type ChannelObserver struct {
	ch chan<- ProgressUpdate
}

// NewChannelObserver creates an observer that forwards onto ch.
func NewChannelObserver(ch chan<- ProgressUpdate) *ChannelObserver {
	return &ChannelObserver{ch: ch}
}

// OnProgress forwards update to the channel, dropping it if the channel is
// unbuffered or full and nothing is ready to receive.
func (c *ChannelObserver) OnProgress(update ProgressUpdate) {
	select {
	case c.ch <- update:
	default:
	}
}

// LoggingObserver logs every logEvery-th update it receives per operation
// index, to avoid flooding logs from a tight loop.
type LoggingObserver struct {
	logger   *log.Logger
	logEvery int
	counts   map[int]int
}

// NewLoggingObserver creates an observer that logs to logger, emitting one
// line every logEvery updates per operation index (logEvery < 1 logs every
// update).
func NewLoggingObserver(logger *log.Logger, logEvery int) *LoggingObserver {
	if logEvery < 1 {
		logEvery = 1
	}
	return &LoggingObserver{logger: logger, logEvery: logEvery, counts: make(map[int]int)}
}

// OnProgress logs update if its operation index has reached the configured
// sampling interval.
func (l *LoggingObserver) OnProgress(update ProgressUpdate) {
	l.counts[update.CalculatorIndex]++
	if l.counts[update.CalculatorIndex]%l.logEvery != 0 {
		return
	}
	l.logger.Printf("progress: op=%d value=%.4f", update.CalculatorIndex, update.Value)
}

// NoOpObserver discards every update. Useful for quiet mode or tests that
// don't care about progress reporting.
type NoOpObserver struct{}

// NewNoOpObserver returns an observer that discards every update.
func NewNoOpObserver() *NoOpObserver { return &NoOpObserver{} }

// OnProgress discards update.
func (NoOpObserver) OnProgress(ProgressUpdate) {}
