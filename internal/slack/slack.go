// Package slack sends direct messages to recipients looked up by email.
package slack

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/slack-go/slack"

	gerr "github.com/jekabolt/merchant-report/internal/errors"
)

type Config struct {
	Token string `mapstructure:"token"`
}

// Enabled reports whether a bot token is configured.
func (c *Config) Enabled() bool {
	return c.Token != ""
}

type client interface {
	GetUserByEmailContext(ctx context.Context, email string) (*slack.User, error)
	OpenConversationContext(ctx context.Context, params *slack.OpenConversationParameters) (*slack.Channel, bool, bool, error)
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

type Notifier struct {
	cli client
}

func New(c *Config) (*Notifier, error) {
	if !c.Enabled() {
		return nil, gerr.SlackNotConfigured
	}
	return &Notifier{cli: slack.New(c.Token)}, nil
}

// Notify sends text as a direct message to every recipient. Recipients are
// handled independently and their errors are joined.
func (n *Notifier) Notify(ctx context.Context, text string, recipients []string) error {
	var errs []error
	for _, email := range recipients {
		if err := ctx.Err(); err != nil {
			return err
		}
		email = strings.TrimSpace(email)
		if email == "" {
			continue
		}
		if err := n.dm(ctx, email, text); err != nil {
			slog.Default().ErrorContext(ctx, "can't send slack message",
				slog.String("to", email),
				slog.String("err", err.Error()),
			)
			errs = append(errs, fmt.Errorf("%s: %w", email, err))
			continue
		}
		slog.Default().InfoContext(ctx, "slack message sent",
			slog.String("to", email),
		)
	}
	return errors.Join(errs...)
}

func (n *Notifier) dm(ctx context.Context, email, text string) error {
	user, err := n.cli.GetUserByEmailContext(ctx, email)
	if err != nil {
		return fmt.Errorf("can't look up user: %w", err)
	}
	ch, _, _, err := n.cli.OpenConversationContext(ctx, &slack.OpenConversationParameters{
		Users: []string{user.ID},
	})
	if err != nil {
		return fmt.Errorf("can't open conversation: %w", err)
	}
	if _, _, err := n.cli.PostMessageContext(ctx, ch.ID, slack.MsgOptionText(text, false)); err != nil {
		return fmt.Errorf("can't post message: %w", err)
	}
	return nil
}
