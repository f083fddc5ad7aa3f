package mail

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/jekabolt/merchant-report/internal/entity"
	gerr "github.com/jekabolt/merchant-report/internal/errors"
)

//go:embed templates/*.gohtml
var templatesFS embed.FS

const reportTemplate = "report.gohtml"

type Config struct {
	APIKey    string `mapstructure:"sendgrid_api_key"`
	FromEmail string `mapstructure:"from_email"`
	FromName  string `mapstructure:"from_email_name"`
	ReplyTo   string `mapstructure:"reply_to"`
}

// Enabled reports whether mail delivery is configured.
func (c *Config) Enabled() bool {
	return c.APIKey != ""
}

// Sender is the part of the SendGrid client the mailer uses.
type Sender interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

type Mailer struct {
	cli       Sender
	from      *mail.Email
	c         *Config
	templates map[string]*template.Template
}

func New(c *Config) (*Mailer, error) {
	return new(c, sendgrid.NewSendClient(c.APIKey))
}

func new(c *Config, cli Sender) (*Mailer, error) {
	if c.APIKey == "" || c.FromEmail == "" {
		return nil, fmt.Errorf("%w: incomplete mail config", gerr.InvalidConfig)
	}

	m := &Mailer{
		cli:       cli,
		from:      mail.NewEmail(c.FromName, c.FromEmail),
		c:         c,
		templates: make(map[string]*template.Template),
	}

	if err := m.parseTemplates(); err != nil {
		return nil, fmt.Errorf("error parsing templates: %w", err)
	}

	return m, nil
}

func (m *Mailer) parseTemplates() error {
	templateDir := "templates"

	dirEntries, err := templatesFS.ReadDir(templateDir)
	if err != nil {
		return fmt.Errorf("error reading template directory: %w", err)
	}

	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}
		tmpl, err := template.ParseFS(templatesFS, filepath.Join(templateDir, entry.Name()))
		if err != nil {
			return fmt.Errorf("error parsing template '%s': %w", entry.Name(), err)
		}
		m.templates[entry.Name()] = tmpl
	}

	return nil
}

type reportData struct {
	Body      string
	RunDate   string
	Artifacts []entity.Artifact
}

func (m *Mailer) renderHTML(d *entity.Delivery) (string, error) {
	tmpl, ok := m.templates[reportTemplate]
	if !ok {
		return "", fmt.Errorf("template not found: %v", reportTemplate)
	}
	body := &strings.Builder{}
	err := tmpl.Execute(body, reportData{
		Body:      d.Body,
		RunDate:   d.RunDate.UTC().Format("2006-01-02"),
		Artifacts: d.Artifacts,
	})
	if err != nil {
		return "", fmt.Errorf("error executing template: %w", err)
	}
	return body.String(), nil
}

// attachments reads the PDF artifacts of a delivery.
func attachments(d *entity.Delivery) ([]*mail.Attachment, error) {
	var out []*mail.Attachment
	for _, a := range d.Artifacts {
		if a.ContentType != entity.ContentTypePDF {
			continue
		}
		b, err := os.ReadFile(a.Path)
		if err != nil {
			return nil, fmt.Errorf("can't read attachment %s: %w", a.Path, err)
		}
		out = append(out, mail.NewAttachment().
			SetContent(encode(b)).
			SetType(a.ContentType).
			SetFilename(a.Name()).
			SetDisposition("attachment"))
	}
	return out, nil
}

func (m *Mailer) buildMessage(to, html string, d *entity.Delivery, atts []*mail.Attachment) *mail.SGMailV3 {
	msg := mail.NewV3Mail()
	msg.SetFrom(m.from)
	msg.Subject = d.Subject
	if m.c.ReplyTo != "" {
		msg.SetReplyTo(mail.NewEmail("", m.c.ReplyTo))
	}

	p := mail.NewPersonalization()
	p.AddTos(mail.NewEmail("", to))
	msg.AddPersonalizations(p)

	msg.AddContent(
		mail.NewContent("text/plain", d.Body),
		mail.NewContent("text/html", html),
	)
	msg.AddAttachment(atts...)
	return msg
}
