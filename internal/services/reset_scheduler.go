package services

import (
	"context"
	"log"
	"time"
)

type intakeResetter interface {
	ResetAll(ctx context.Context) error
}

// ResetScheduler zeroes every profile's daily intake at local midnight. Each
// cycle recomputes the delay from the current clock rather than sleeping a
// fixed 24h, so timer slippage never accumulates.
type ResetScheduler struct {
	ledger intakeResetter
	now    func() time.Time
}

func NewResetScheduler(ledger intakeResetter) *ResetScheduler {
	return &ResetScheduler{
		ledger: ledger,
		now:    time.Now,
	}
}

// Run blocks until ctx is cancelled, firing once per local midnight.
func (s *ResetScheduler) Run(ctx context.Context) {
	for {
		timer := time.NewTimer(delayUntilMidnight(s.now()))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			if err := s.ledger.ResetAll(ctx); err != nil {
				log.Printf("daily intake reset: %v", err)
			} else {
				log.Printf("daily intake reset complete")
			}
		}
	}
}

// delayUntilMidnight is the time remaining until 00:00:00 of the next
// calendar day in now's location.
func delayUntilMidnight(now time.Time) time.Duration {
	next := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	return next.Sub(now)
}
