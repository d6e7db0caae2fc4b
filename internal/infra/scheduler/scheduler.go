package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
)

// Interval paces the polling loop. Unlike a cron engine it never fires on its
// own: the caller blocks in Wait after each cycle, so cycles never overlap and
// request latency adds to the delay.
type Interval struct {
	schedule cron.Schedule
	now      func() time.Time
	after    func(time.Duration) <-chan time.Time
}

// NewInterval returns an Interval that waits period between cycles.
// cron.Every rounds the period down to whole seconds, with a minimum of one second.
func NewInterval(period time.Duration) *Interval {
	return &Interval{
		schedule: cron.Every(period),
		now:      time.Now,
		after:    time.After,
	}
}

// Period returns the effective delay between cycles. The schedule aligns runs to
// whole seconds, so the delay is measured from the truncated clock; otherwise
// every wait would lose the current sub-second fraction.
func (i *Interval) Period() time.Duration {
	start := i.now().Truncate(time.Second)
	return i.schedule.Next(start).Sub(start)
}

// Wait blocks until the next scheduled run or until ctx is cancelled.
func (i *Interval) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-i.after(i.Period()):
		return nil
	}
}
