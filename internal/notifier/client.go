package notifier

import (
	"context"

	"github.com/dutyrota/dutyrota/internal/domain/contract"
	"github.com/slack-go/slack"
	"golang.org/x/time/rate"
)

// Client wraps the Slack API client behind contract.SlackClient and rate
// limits outbound calls so a large cycle cannot trip Slack's limits.
type Client struct {
	api     *slack.Client
	limiter *rate.Limiter
}

func NewClient(api *slack.Client, ratePerSec int) *Client {
	if ratePerSec <= 0 {
		ratePerSec = 1
	}
	return &Client{
		api:     api,
		limiter: rate.NewLimiter(rate.Limit(ratePerSec), ratePerSec),
	}
}

var _ contract.SlackClient = (*Client)(nil)

func (c *Client) GetUserInfo(userID string) (*slack.User, error) {
	return c.api.GetUserInfo(userID)
}

func (c *Client) PostMessage(channelID string, options ...slack.MsgOption) (string, string, error) {
	if err := c.limiter.Wait(context.Background()); err != nil {
		return "", "", err
	}
	return c.api.PostMessage(channelID, options...)
}

func (c *Client) UpdateMessage(channelID, timestamp string, options ...slack.MsgOption) (string, string, string, error) {
	if err := c.limiter.Wait(context.Background()); err != nil {
		return "", "", "", err
	}
	return c.api.UpdateMessage(channelID, timestamp, options...)
}
