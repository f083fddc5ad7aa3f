// Package delivery fans a finished report out to the configured channels.
package delivery

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jekabolt/merchant-report/internal/dependency"
	"github.com/jekabolt/merchant-report/internal/entity"
)

const (
	ChannelEmail = "email"
	ChannelSlack = "slack"
)

type Dispatcher struct {
	channels []dependency.DeliveryChannel
}

func New(channels ...dependency.DeliveryChannel) *Dispatcher {
	return &Dispatcher{channels: channels}
}

// Channels returns the names of the configured channels.
func (ds *Dispatcher) Channels() []string {
	out := make([]string, 0, len(ds.channels))
	for _, ch := range ds.channels {
		out = append(out, ch.Name())
	}
	return out
}

// Dispatch runs every channel in order. A failing channel is logged and
// recorded in its result, the remaining channels still run.
func (ds *Dispatcher) Dispatch(ctx context.Context, d *entity.Delivery) []entity.DeliveryResult {
	results := make([]entity.DeliveryResult, 0, len(ds.channels))
	for _, ch := range ds.channels {
		res := entity.DeliveryResult{Channel: ch.Name()}
		res.Err = deliver(ctx, ch, d)
		if res.Err != nil {
			slog.Default().ErrorContext(ctx, "delivery failed",
				slog.String("channel", res.Channel),
				slog.String("err", res.Err.Error()),
			)
		} else {
			slog.Default().InfoContext(ctx, "report delivered",
				slog.String("channel", res.Channel),
				slog.Int("recipients", len(d.Recipients)),
			)
		}
		results = append(results, res)
	}
	return results
}

func deliver(ctx context.Context, ch dependency.DeliveryChannel, d *entity.Delivery) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("channel %s panicked: %v", ch.Name(), r)
		}
	}()
	return ch.Deliver(ctx, d)
}

type mailChannel struct {
	m dependency.Mailer
}

// MailChannel delivers the report by email with the PDFs attached.
func MailChannel(m dependency.Mailer) dependency.DeliveryChannel {
	return &mailChannel{m: m}
}

func (mc *mailChannel) Name() string { return ChannelEmail }

func (mc *mailChannel) Deliver(ctx context.Context, d *entity.Delivery) error {
	return mc.m.SendReport(ctx, d)
}

type slackChannel struct {
	n dependency.Notifier
}

// SlackChannel delivers a short direct message listing the artifacts.
func SlackChannel(n dependency.Notifier) dependency.DeliveryChannel {
	return &slackChannel{n: n}
}

func (sc *slackChannel) Name() string { return ChannelSlack }

func (sc *slackChannel) Deliver(ctx context.Context, d *entity.Delivery) error {
	return sc.n.Notify(ctx, SlackText(d), d.Recipients)
}

// SlackText is the message text sent to Slack recipients.
func SlackText(d *entity.Delivery) string {
	var sb strings.Builder
	sb.WriteString(d.Subject)
	if d.Body != "" {
		sb.WriteString("\n")
		sb.WriteString(d.Body)
	}
	for _, a := range d.Artifacts {
		fmt.Fprintf(&sb, "\n• %s: %s", a.Name(), a.Location())
	}
	return sb.String()
}
