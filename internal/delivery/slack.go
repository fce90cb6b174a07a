package delivery

import (
	"bytes"
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/slack-go/slack"

	"coverage-report/internal/reporting"
)

// slackAPI is the slice of slack.Client used here, split out so tests can
// stub it.
type slackAPI interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
	UploadFileV2Context(ctx context.Context, params slack.UploadFileV2Parameters) (*slack.FileSummary, error)
}

// SlackDestination posts the chat layout to a channel and attaches the
// coverage chart when one was rendered.
type SlackDestination struct {
	api     slackAPI
	channel string
	logger  zerolog.Logger
}

// NewSlackDestination creates a destination for the given bot token and
// channel.
func NewSlackDestination(token, channel string, logger zerolog.Logger) *SlackDestination {
	return &SlackDestination{
		api:     slack.New(token),
		channel: channel,
		logger:  logger,
	}
}

// Compile-time interface check.
var _ Destination = (*SlackDestination)(nil)

// Name implements Destination.
func (d *SlackDestination) Name() string {
	return "slack"
}

// Deliver posts the message, then uploads the chart. A chart upload
// failure is logged but does not fail the delivery: the metrics already
// reached the channel.
func (d *SlackDestination) Deliver(ctx context.Context, rendered *reporting.RenderedReport) (string, error) {
	_, ts, err := d.api.PostMessageContext(ctx, d.channel,
		slack.MsgOptionText(rendered.Chat, false))
	if err != nil {
		return "", fmt.Errorf("post slack message: %w", err)
	}

	if len(rendered.Chart) > 0 {
		_, err := d.api.UploadFileV2Context(ctx, slack.UploadFileV2Parameters{
			Reader:          bytes.NewReader(rendered.Chart),
			Filename:        rendered.ChartName,
			FileSize:        len(rendered.Chart),
			Channel:         d.channel,
			ThreadTimestamp: ts,
		})
		if err != nil {
			d.logger.Warn().Err(err).Msg("chart upload failed, message already delivered")
		}
	}

	return ts, nil
}
