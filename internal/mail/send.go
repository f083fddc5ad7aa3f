package mail

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"log/slog"

	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/jekabolt/merchant-report/internal/entity"
	gerr "github.com/jekabolt/merchant-report/internal/errors"
)

func encode(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// SendReport emails the report to every recipient, one message each. A failed
// recipient does not stop the others unless the API limit is reached.
func (m *Mailer) SendReport(ctx context.Context, d *entity.Delivery) error {
	if d == nil || len(d.Recipients) == 0 {
		return gerr.BadMailRequest
	}

	html, err := m.renderHTML(d)
	if err != nil {
		return err
	}
	atts, err := attachments(d)
	if err != nil {
		return err
	}

	var errs []error
	for _, to := range d.Recipients {
		if err := ctx.Err(); err != nil {
			return err
		}
		to = strings.TrimSpace(to)
		if to == "" {
			continue
		}

		err := m.send(ctx, m.buildMessage(to, html, d, atts))
		if err != nil {
			slog.Default().ErrorContext(ctx, "can't send report mail",
				slog.String("to", to),
				slog.String("err", err.Error()),
			)
			errs = append(errs, fmt.Errorf("%s: %w", to, err))
			if errors.Is(err, gerr.MailApiLimitReached) {
				break
			}
			continue
		}
		slog.Default().InfoContext(ctx, "report mail sent",
			slog.String("to", to),
		)
	}
	return errors.Join(errs...)
}

func (m *Mailer) send(ctx context.Context, msg *mail.SGMailV3) error {
	resp, err := m.cli.SendWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("error sending email: %w", err)
	}
	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return gerr.MailApiLimitReached
	case resp.StatusCode == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", gerr.BadMailRequest, resp.Body)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("error sending email bad status code: %s, status code: %d", resp.Body, resp.StatusCode)
	}
	return nil
}
