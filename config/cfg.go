package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/jekabolt/merchant-report/internal/aggregator"
	"github.com/jekabolt/merchant-report/internal/bucket"
	gerr "github.com/jekabolt/merchant-report/internal/errors"
	"github.com/jekabolt/merchant-report/internal/job"
	"github.com/jekabolt/merchant-report/internal/mail"
	"github.com/jekabolt/merchant-report/internal/pdf"
	"github.com/jekabolt/merchant-report/internal/scheduler"
	"github.com/jekabolt/merchant-report/internal/slack"
	"github.com/jekabolt/merchant-report/internal/snapshot"
	"github.com/jekabolt/merchant-report/internal/store"
	"github.com/jekabolt/merchant-report/internal/warehouse"
	"github.com/jekabolt/merchant-report/internal/window"
	"github.com/jekabolt/merchant-report/log"
)

const (
	SourcePostgres = "postgres"
	SourceFixtures = "fixtures"
)

// Config represents the global configuration for the service.
type Config struct {
	// Source selects where facts are read from: postgres or fixtures.
	Source       string            `mapstructure:"source"`
	FixturesPath string            `mapstructure:"fixtures_path"`
	DB           store.Config      `mapstructure:"postgres"`
	Logger       log.Config        `mapstructure:"logger"`
	Window       window.Config     `mapstructure:"window"`
	Aggregator   aggregator.Config `mapstructure:"aggregator"`
	PDF          pdf.Config        `mapstructure:"pdf"`
	Snapshot     snapshot.Config   `mapstructure:"snapshot"`
	Warehouse    warehouse.Config  `mapstructure:"warehouse"`
	Bucket       bucket.Config     `mapstructure:"bucket"`
	Mailer       mail.Config       `mapstructure:"mailer"`
	Slack        slack.Config      `mapstructure:"slack"`
	Report       job.Config        `mapstructure:"report"`
	Scheduler    scheduler.Config  `mapstructure:"scheduler"`
}

// LoadConfig loads the configuration from a file and/or environment variables.
// A .env file in the working directory is loaded first; variables already
// set in the environment win over it. Environment variables take precedence
// over config file values.
// Nested config keys use double underscore, e.g., POSTGRES__DSN for postgres.dsn
func LoadConfig(cfgFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))

	bindEnvVars(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/config/merchant-report")
		v.AddConfigPath("/etc/merchant-report")
		_ = v.ReadInConfig()
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %v", err)
	}

	if config.DB.DSN == "" {
		config.DB.DSN = dsnFromEnv()
	}
	config.Report.Recipients = splitRecipients(config.Report.Recipients)

	return &config, nil
}

// dsnFromEnv assembles a postgres URL from PG_* variables, empty when
// PG_HOST is not set.
func dsnFromEnv() string {
	host := os.Getenv("PG_HOST")
	if host == "" {
		return ""
	}
	port := os.Getenv("PG_PORT")
	if port == "" {
		port = "5432"
	}
	sslMode := os.Getenv("PG_SSLMODE")
	if sslMode == "" {
		sslMode = "disable"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(os.Getenv("PG_USER"), os.Getenv("PG_PASSWORD")),
		Host:     net.JoinHostPort(host, port),
		Path:     "/" + os.Getenv("PG_DATABASE"),
		RawQuery: url.Values{"sslmode": {sslMode}}.Encode(),
	}
	return u.String()
}

// splitRecipients accepts both list values and comma separated strings.
func splitRecipients(in []string) []string {
	var out []string
	for _, r := range in {
		for _, p := range strings.Split(r, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("source", SourcePostgres)
	v.SetDefault("fixtures_path", "fixtures/facts.yaml")

	v.SetDefault("postgres.automigrate", false)
	v.SetDefault("postgres.max_open_connections", 4)
	v.SetDefault("postgres.max_idle_connections", 2)
	v.SetDefault("postgres.query_timeout", "5m")

	wc := window.DefaultConfig()
	v.SetDefault("window.now_offset", wc.NowOffset.String())
	v.SetDefault("window.week_offset", wc.WeekOffset.String())

	ac := aggregator.DefaultConfig()
	v.SetDefault("aggregator.strategy", ac.Strategy)
	v.SetDefault("aggregator.concurrency", ac.Concurrency)
	v.SetDefault("aggregator.vip_min_orders", ac.VIPMinOrders)

	pc := pdf.DefaultConfig()
	v.SetDefault("pdf.layout", pc.Layout)
	v.SetDefault("pdf.output_dir", "reports")
	v.SetDefault("pdf.title", pc.Title)
	v.SetDefault("snapshot.output_dir", "reports")

	jc := job.DefaultConfig()
	v.SetDefault("report.subject", jc.Subject)
	v.SetDefault("report.body", jc.Body)

	sc := scheduler.DefaultConfig()
	v.SetDefault("scheduler.mode", sc.Mode)
	v.SetDefault("scheduler.interval", sc.Interval.String())
	v.SetDefault("scheduler.cron", sc.Cron)
	v.SetDefault("scheduler.run_on_start", sc.RunOnStart)
}

// bindEnvVars binds environment variables to config keys
// This allows using both nested keys (POSTGRES__DSN) and flat keys (PG_DSN)
func bindEnvVars(v *viper.Viper) {
	v.BindEnv("source", "REPORT_SOURCE")
	v.BindEnv("fixtures_path", "FIXTURES_PATH")

	// Postgres
	v.BindEnv("postgres.dsn", "PG_DSN")
	v.BindEnv("postgres.automigrate", "PG_AUTOMIGRATE")
	v.BindEnv("postgres.max_open_connections", "PG_MAX_OPEN_CONNECTIONS")
	v.BindEnv("postgres.max_idle_connections", "PG_MAX_IDLE_CONNECTIONS")
	v.BindEnv("postgres.query_timeout", "PG_QUERY_TIMEOUT")

	// Logger
	v.BindEnv("logger.level", "LOG_LEVEL")
	v.BindEnv("logger.add_source", "LOG_ADD_SOURCE")

	// Windows and aggregation
	v.BindEnv("window.now_offset", "WINDOW_NOW_OFFSET")
	v.BindEnv("window.week_offset", "WINDOW_WEEK_OFFSET")
	v.BindEnv("aggregator.strategy", "AGGREGATOR_STRATEGY")
	v.BindEnv("aggregator.concurrency", "AGGREGATOR_CONCURRENCY")
	v.BindEnv("aggregator.families", "AGGREGATOR_FAMILIES")
	v.BindEnv("aggregator.vip_min_orders", "AGGREGATOR_VIP_MIN_ORDERS")

	// Artifacts
	v.BindEnv("pdf.layout", "PDF_LAYOUT")
	v.BindEnv("pdf.output_dir", "REPORT_OUTPUT_DIR")
	v.BindEnv("snapshot.output_dir", "REPORT_OUTPUT_DIR")

	// Warehouse
	v.BindEnv("warehouse.project_id", "BIGQUERY_PROJECT_ID")
	v.BindEnv("warehouse.dataset", "BIGQUERY_DATASET")
	v.BindEnv("warehouse.table", "BIGQUERY_TABLE")
	v.BindEnv("warehouse.credentials_file", "GOOGLE_APPLICATION_CREDENTIALS")

	// Bucket
	v.BindEnv("bucket.s3_access_key", "BUCKET_S3_ACCESS_KEY")
	v.BindEnv("bucket.s3_secret_access_key", "BUCKET_S3_SECRET_ACCESS_KEY")
	v.BindEnv("bucket.s3_endpoint", "BUCKET_S3_ENDPOINT")
	v.BindEnv("bucket.s3_bucket_name", "BUCKET_S3_BUCKET_NAME")
	v.BindEnv("bucket.s3_bucket_location", "BUCKET_S3_BUCKET_LOCATION")
	v.BindEnv("bucket.base_folder", "BUCKET_BASE_FOLDER")
	v.BindEnv("bucket.subdomain_endpoint", "BUCKET_SUBDOMAIN_ENDPOINT")

	// Mailer
	v.BindEnv("mailer.sendgrid_api_key", "SENDGRID_API_KEY")
	v.BindEnv("mailer.from_email", "EMAIL_FROM")
	v.BindEnv("mailer.from_email_name", "EMAIL_FROM_NAME")
	v.BindEnv("mailer.reply_to", "EMAIL_REPLY_TO")

	// Slack
	v.BindEnv("slack.token", "SLACK_TOKEN")

	// Report
	v.BindEnv("report.recipients", "EMAIL_RECIPIENTS")
	v.BindEnv("report.subject", "EMAIL_SUBJECT")

	// Scheduler
	v.BindEnv("scheduler.mode", "SCHEDULER_MODE")
	v.BindEnv("scheduler.interval", "SCHEDULER_INTERVAL")
	v.BindEnv("scheduler.cron", "SCHEDULER_CRON")
	v.BindEnv("scheduler.run_on_start", "SCHEDULER_RUN_ON_START")
}

// Validate checks everything a run needs before anything is started.
func (c *Config) Validate() error {
	var errs []error
	switch c.Source {
	case SourcePostgres:
		if c.DB.DSN == "" {
			errs = append(errs, fmt.Errorf("%w: postgres connection parameters are missing", gerr.InvalidConfig))
		}
	case SourceFixtures:
		if c.FixturesPath == "" {
			errs = append(errs, fmt.Errorf("%w: fixtures_path is required", gerr.InvalidConfig))
		}
	default:
		errs = append(errs, fmt.Errorf("%w: unknown source %q", gerr.InvalidConfig, c.Source))
	}

	errs = append(errs, c.Window.Validate(), c.Aggregator.Validate(), c.PDF.Validate())
	if _, err := c.Scheduler.Schedule(); err != nil {
		errs = append(errs, err)
	}

	if c.Mailer.Enabled() && c.Mailer.FromEmail == "" {
		errs = append(errs, fmt.Errorf("%w: mailer from_email is required", gerr.InvalidConfig))
	}
	if (c.Mailer.Enabled() || c.Slack.Enabled()) && len(c.Report.Recipients) == 0 {
		errs = append(errs, fmt.Errorf("%w: report recipients are empty", gerr.InvalidConfig))
	}
	return errors.Join(errs...)
}
