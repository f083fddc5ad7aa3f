package window

import (
	"testing"
	"time"

	"github.com/jekabolt/merchant-report/internal/entity"
	gerr "github.com/jekabolt/merchant-report/internal/errors"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	at := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	ws, err := Calculate(at, Config{NowOffset: 12 * time.Hour, WeekOffset: 7 * 24 * time.Hour})
	require.NoError(t, err)

	assert.Equal(t, at, ws.At)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), ws.Now)
	assert.Equal(t, time.Date(2024, 3, 8, 12, 0, 0, 0, time.UTC), ws.Week)
	assert.Equal(t, time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC), ws.WoW)
}

func TestCalculateInvalidConfig(t *testing.T) {
	at := time.Now()

	_, err := Calculate(at, Config{NowOffset: 0, WeekOffset: time.Hour})
	assert.ErrorIs(t, err, gerr.InvalidConfig)

	_, err = Calculate(at, Config{NowOffset: 48 * time.Hour, WeekOffset: 24 * time.Hour})
	assert.ErrorIs(t, err, gerr.InvalidConfig)
}

func TestContains(t *testing.T) {
	at := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	ws, err := Calculate(at, DefaultConfig())
	require.NoError(t, err)

	// cutoffs are inclusive lower bounds
	assert.True(t, ws.Contains(entity.WindowNow, ws.Now))
	assert.False(t, ws.Contains(entity.WindowNow, ws.Now.Add(-time.Millisecond)))
	assert.True(t, ws.Contains(entity.Window7d, ws.Week))
	assert.True(t, ws.Contains(entity.Window7d, at))

	// wow is bounded on both sides
	assert.True(t, ws.Contains(entity.WindowWoW, ws.WoW))
	assert.True(t, ws.Contains(entity.WindowWoW, ws.Week.Add(-time.Millisecond)))
	assert.False(t, ws.Contains(entity.WindowWoW, ws.Week))
	assert.False(t, ws.Contains(entity.WindowWoW, at))
	assert.False(t, ws.Contains(entity.WindowWoW, ws.WoW.Add(-time.Millisecond)))

	assert.True(t, ws.Contains(entity.WindowGlobal, time.Unix(0, 0)))
}

func TestFixedClock(t *testing.T) {
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := FixedClock(at)
	assert.Equal(t, at, c())
	assert.Equal(t, at, c())
}

func TestWindowOrderingProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("wow < week <= now <= T and wow width equals now width", prop.ForAll(
		func(sec int64, nowHours int, weekHours int) bool {
			at := time.Unix(sec, 0).UTC()
			c := Config{
				NowOffset:  time.Duration(nowHours) * time.Hour,
				WeekOffset: time.Duration(nowHours+weekHours) * time.Hour,
			}
			ws, err := Calculate(at, c)
			if err != nil {
				return false
			}
			ordered := ws.WoW.Before(ws.Week) &&
				!ws.Week.After(ws.Now) &&
				!ws.Now.After(at)
			return ordered && ws.Week.Sub(ws.WoW) == at.Sub(ws.Now)
		},
		gen.Int64Range(0, 4102444800),
		gen.IntRange(1, 48),
		gen.IntRange(0, 24*14),
	))

	properties.TestingRun(t)
}
