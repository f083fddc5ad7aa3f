package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jekabolt/merchant-report/config"
	"github.com/jekabolt/merchant-report/internal/aggregator"
	"github.com/jekabolt/merchant-report/internal/entity"
	"github.com/jekabolt/merchant-report/internal/job"
	"github.com/jekabolt/merchant-report/internal/pdf"
	"github.com/jekabolt/merchant-report/internal/scheduler"
	"github.com/jekabolt/merchant-report/internal/snapshot"
	"github.com/jekabolt/merchant-report/internal/window"
)

func fixturesConfig(t *testing.T) *config.Config {
	t.Helper()
	out := t.TempDir()
	pc := pdf.DefaultConfig()
	pc.OutputDir = out
	return &config.Config{
		Source:       config.SourceFixtures,
		FixturesPath: filepath.Join("..", "internal", "memstore", "testdata", "facts.yaml"),
		Window:       window.DefaultConfig(),
		Aggregator:   aggregator.DefaultConfig(),
		PDF:          pc,
		Snapshot:     snapshot.Config{OutputDir: out},
		Report:       job.DefaultConfig(),
		Scheduler:    scheduler.DefaultConfig(),
	}
}

func TestRunOnceFixtures(t *testing.T) {
	at := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)
	a := New(fixturesConfig(t))
	a.clock = func() time.Time { return at }

	res, err := a.RunOnce(context.Background())
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Equal(t, at, res.RunDate)
	assert.Equal(t, at.Add(-24*time.Hour), res.Windows.Now)
	assert.False(t, res.NoData)
	assert.Positive(t, res.Merchants)
	assert.Empty(t, res.Deliveries)
	require.Len(t, res.Artifacts, 2)
	assert.Equal(t, entity.ContentTypePDF, res.Artifacts[0].ContentType)
	assert.Equal(t, entity.ContentTypeCSV, res.Artifacts[1].ContentType)
	for _, art := range res.Artifacts {
		_, err := os.Stat(art.Path)
		assert.NoError(t, err, art.Path)
	}

	select {
	case <-a.Done():
	default:
		t.Fatal("app is not done after a single run")
	}
}

func TestRunOnceMissingFixtures(t *testing.T) {
	c := fixturesConfig(t)
	c.FixturesPath = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := New(c).RunOnce(context.Background())
	assert.Error(t, err)
}

func TestRunOnceUnknownSource(t *testing.T) {
	c := fixturesConfig(t)
	c.Source = "mysql"

	_, err := New(c).RunOnce(context.Background())
	assert.ErrorContains(t, err, "unknown source")
}

func TestStartStop(t *testing.T) {
	a := New(fixturesConfig(t))
	require.NoError(t, a.Start(context.Background()))
	a.Stop(context.Background())

	select {
	case <-a.Done():
	case <-time.After(time.Second):
		t.Fatal("app did not stop")
	}
}
