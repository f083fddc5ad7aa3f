package dependency

import (
	"context"
	"database/sql"
	"time"

	"github.com/jekabolt/merchant-report/internal/entity"
	"github.com/jmoiron/sqlx"
)

//go:generate mockery --with-expecter --case underscore --all --output=./mocks
type (
	MetricsSource interface {
		// MerchantIDs lists every merchant present in the facts or the directory.
		MerchantIDs(ctx context.Context) ([]int64, error)
		// WindowCounts aggregates raw per-window counts for each merchant of the scope.
		WindowCounts(ctx context.Context, ws entity.Windows, scope entity.Scope, opts entity.AggregateOptions) ([]entity.MerchantCounts, error)
	}

	MerchantDirectory interface {
		// MerchantName returns the display name of a merchant,
		// entity.UnknownMerchant when the merchant is not in the directory.
		MerchantName(ctx context.Context, id int64) (string, error)
	}

	Repository interface {
		MetricsSource
		MerchantDirectory
		Ping(ctx context.Context) error
		Close()
	}

	DB interface {
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)

		// sqlx methods
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		Rebind(query string) string
	}

	Aggregator interface {
		Aggregate(ctx context.Context, ws entity.Windows, scope entity.Scope) ([]entity.MetricRow, error)
	}

	ArtifactWriter interface {
		// Write lays the shaped sections out and returns the produced files.
		Write(ctx context.Context, runDate time.Time, sections []entity.ReportSection) ([]entity.Artifact, error)
	}

	Snapshot interface {
		WriteSnapshot(ctx context.Context, runDate time.Time, rows []entity.MetricRow) (entity.Artifact, error)
	}

	Warehouse interface {
		Save(ctx context.Context, ws entity.Windows, rows []entity.MetricRow) error
	}

	FileStore interface {
		// UploadArtifact uploads a local artifact and returns its public URL.
		UploadArtifact(ctx context.Context, runDate time.Time, a entity.Artifact) (string, error)
	}

	Mailer interface {
		SendReport(ctx context.Context, d *entity.Delivery) error
	}

	Notifier interface {
		Notify(ctx context.Context, text string, recipients []string) error
	}

	DeliveryChannel interface {
		Name() string
		Deliver(ctx context.Context, d *entity.Delivery) error
	}

	Runner interface {
		Run(ctx context.Context) (*entity.RunResult, error)
	}
)
