package slack

import (
	"context"
	"errors"
	"testing"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gerr "github.com/jekabolt/merchant-report/internal/errors"
)

type fakeClient struct {
	users    map[string]string
	postFail map[string]bool
	posted   []string
}

func (f *fakeClient) GetUserByEmailContext(ctx context.Context, email string) (*slack.User, error) {
	id, ok := f.users[email]
	if !ok {
		return nil, errors.New("users_not_found")
	}
	return &slack.User{ID: id}, nil
}

func (f *fakeClient) OpenConversationContext(ctx context.Context, params *slack.OpenConversationParameters) (*slack.Channel, bool, bool, error) {
	ch := &slack.Channel{}
	ch.ID = "D-" + params.Users[0]
	return ch, false, false, nil
}

func (f *fakeClient) PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
	if f.postFail[channelID] {
		return "", "", errors.New("channel_not_found")
	}
	f.posted = append(f.posted, channelID)
	return channelID, "1710504000.000100", nil
}

func TestNotify(t *testing.T) {
	fc := &fakeClient{users: map[string]string{"a@example.com": "U1", "b@example.com": "U2"}}
	n := &Notifier{cli: fc}

	err := n.Notify(context.Background(), "report ready", []string{"a@example.com", "", "b@example.com"})
	require.NoError(t, err)
	assert.Equal(t, []string{"D-U1", "D-U2"}, fc.posted)
}

func TestNotifyIsolatesRecipients(t *testing.T) {
	fc := &fakeClient{
		users:    map[string]string{"a@example.com": "U1", "c@example.com": "U3"},
		postFail: map[string]bool{"D-U3": true},
	}
	n := &Notifier{cli: fc}

	err := n.Notify(context.Background(), "report ready", []string{"missing@example.com", "a@example.com", "c@example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing@example.com")
	assert.Contains(t, err.Error(), "c@example.com")
	assert.Equal(t, []string{"D-U1"}, fc.posted)
}

func TestNewRequiresToken(t *testing.T) {
	_, err := New(&Config{})
	assert.ErrorIs(t, err, gerr.SlackNotConfigured)

	n, err := New(&Config{Token: "xoxb-test"})
	require.NoError(t, err)
	assert.NotNil(t, n)
}
