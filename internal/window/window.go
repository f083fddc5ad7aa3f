// Package window derives the named time cutoffs a report run aggregates over.
package window

import (
	"fmt"
	"time"

	"github.com/jekabolt/merchant-report/internal/entity"
	gerr "github.com/jekabolt/merchant-report/internal/errors"
)

// Config holds the widths of the windows.
type Config struct {
	// NowOffset is the width of the "now" window, 12h or 24h in practice.
	NowOffset time.Duration `mapstructure:"now_offset"`
	// WeekOffset is the distance of the week cutoff from the reference instant.
	WeekOffset time.Duration `mapstructure:"week_offset"`
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		NowOffset:  24 * time.Hour,
		WeekOffset: 7 * 24 * time.Hour,
	}
}

// Validate checks 0 < NowOffset <= WeekOffset.
func (c Config) Validate() error {
	if c.NowOffset <= 0 {
		return fmt.Errorf("%w: window now_offset must be positive, got %s", gerr.InvalidConfig, c.NowOffset)
	}
	if c.WeekOffset < c.NowOffset {
		return fmt.Errorf("%w: window week_offset %s is shorter than now_offset %s", gerr.InvalidConfig, c.WeekOffset, c.NowOffset)
	}
	return nil
}

// Calculate derives the cutoffs relative to t. The wow window is the "now"
// window shifted back by WeekOffset, so both have the same width.
func Calculate(t time.Time, c Config) (entity.Windows, error) {
	if err := c.Validate(); err != nil {
		return entity.Windows{}, err
	}
	week := t.Add(-c.WeekOffset)
	return entity.Windows{
		At:   t,
		Now:  t.Add(-c.NowOffset),
		Week: week,
		WoW:  week.Add(-c.NowOffset),
	}, nil
}

// Clock returns the reference instant of a run.
type Clock func() time.Time

// SystemClock reads the wall clock in UTC.
func SystemClock() time.Time {
	return time.Now().UTC()
}

// FixedClock always returns t.
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}
