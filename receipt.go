package vending

import (
	"encoding/json"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
)

type Span struct {
	Start, End time.Time
}

func (s *Span) StartSpan(clock clock.Clock) {
	s.Start = clock.Now()
}
func (s *Span) EndSpan(clock clock.Clock) {
	s.End = clock.Now()
}
func (s Span) Duration() time.Duration {
	if s.End.IsZero() {
		return 0
	}
	return s.End.Sub(s.Start)
}

// Receipt records one session: from the first accepted coin to the Refund or Vend that ended it.
type Receipt struct {
	ID       uuid.UUID
	Coins    []Coin // accepted coins, in insertion order
	Vended   bool
	Returned int // change of the Vend, or the amount refunded
	Span
}

// Inserted is the sum of accepted coins.
func (r Receipt) Inserted() int {
	sum := 0
	for _, c := range r.Coins {
		sum += int(c)
	}
	return sum
}

// MarshalJSON renders a Receipt as:
//
//	{
//		"id": "4c6a...",
//		"coins": [100, 100, 50],
//		"inserted": 250,
//		"vended": true,
//		"returned": 50,
//		"start": "2006-01-02T15:04:05Z",
//		"end": "2006-01-02T15:04:09Z"
//	}
func (r Receipt) MarshalJSON() ([]byte, error) {
	coins := r.Coins
	if coins == nil {
		coins = []Coin{}
	}
	return json.Marshal(struct {
		ID       uuid.UUID `json:"id"`
		Coins    []Coin    `json:"coins"`
		Inserted int       `json:"inserted"`
		Vended   bool      `json:"vended"`
		Returned int       `json:"returned"`
		Start    time.Time `json:"start"`
		End      time.Time `json:"end"`
	}{
		ID:       r.ID,
		Coins:    coins,
		Inserted: r.Inserted(),
		Vended:   r.Vended,
		Returned: r.Returned,
		Start:    r.Start,
		End:      r.End,
	})
}
