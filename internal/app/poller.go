// internal/app/poller.go
package app

import (
	"context"
	"time"

	"homework_status_bot/internal/domain/homework"

	"github.com/sirupsen/logrus"
)

// StatusFetcher is the homework API as seen by the poller.
type StatusFetcher interface {
	FetchStatuses(ctx context.Context, fromDate int64) (any, error)
}

// Waiter blocks between poll cycles.
type Waiter interface {
	Wait(ctx context.Context) error
}

// DateMarker identifies a reported status change by the answer's current_date.
// Present is false when the answer carried no current_date; such answers still
// deduplicate against each other.
type DateMarker struct {
	Value   int64
	Present bool
}

// LoopState is the poller's working memory. It is owned by Run and threaded
// through Cycle explicitly.
type LoopState struct {
	// Timestamp is the from_date of the next poll.
	Timestamp int64
	// LastDate marks the last reported status change; nil until one is reported.
	LastDate *DateMarker
	// LastError is the text of the last error sent to the chat.
	LastError string
}

// Poller runs the fetch, validate, extract, notify, wait loop.
type Poller struct {
	api      StatusFetcher
	notifier *Notifier
	waiter   Waiter
	logger   logrus.FieldLogger
	now      func() time.Time
}

func NewPoller(api StatusFetcher, notifier *Notifier, waiter Waiter, logger logrus.FieldLogger) *Poller {
	return &Poller{
		api:      api,
		notifier: notifier,
		waiter:   waiter,
		logger:   logger,
		now:      time.Now,
	}
}

// Run polls until ctx is cancelled. Errors of individual cycles never stop it.
func (p *Poller) Run(ctx context.Context) error {
	state := LoopState{Timestamp: p.now().Unix()}
	p.logger.WithField("from_date", state.Timestamp).Info("Polling homework statuses")

	for {
		state = p.Cycle(ctx, state)
		if err := p.waiter.Wait(ctx); err != nil {
			p.logger.Info("Polling stopped")
			return err
		}
	}
}

// Cycle performs one poll and returns the updated state.
func (p *Poller) Cycle(ctx context.Context, state LoopState) LoopState {
	next, err := p.poll(ctx, state)
	if err != nil {
		// Shutting down; the request was aborted, not failed.
		if ctx.Err() != nil {
			return next
		}
		return p.reportError(next, err)
	}
	next.LastError = ""
	return next
}

func (p *Poller) poll(ctx context.Context, state LoopState) (LoopState, error) {
	payload, err := p.api.FetchStatuses(ctx, state.Timestamp)
	if err != nil {
		return state, err
	}
	resp, err := homework.CheckResponse(payload)
	if err != nil {
		return state, err
	}

	if len(resp.Homeworks) == 0 {
		p.logger.Debug("No homeworks under review")
		return state, nil
	}

	marker := DateMarker{Value: resp.CurrentDate, Present: resp.HasCurrentDate}
	if marker.Present {
		state.Timestamp = marker.Value
	}
	if state.LastDate != nil && *state.LastDate == marker {
		p.logger.WithField("current_date", resp.CurrentDate).Debug("Status already reported")
		return state, nil
	}

	// Only the first record is reported; the timestamp has already advanced past it.
	message, err := homework.ParseStatus(resp.Homeworks[0])
	if err != nil {
		return state, err
	}
	p.notifier.Send(message)
	state.LastDate = &marker
	p.logger.WithField("homework", resp.Homeworks[0].Name).Info("Status changed")
	return state, nil
}

// reportError logs err and sends it to the chat unless the same text was the
// last error sent.
func (p *Poller) reportError(state LoopState, err error) LoopState {
	message := "Ошибка: " + err.Error()

	p.logger.WithError(err).WithField("kind", homework.KindOf(err).String()).Error(message)

	if message == state.LastError {
		return state
	}
	p.notifier.Send(message)
	state.LastError = message
	return state
}
