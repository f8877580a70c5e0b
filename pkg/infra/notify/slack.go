// Package notify delivers run reports to Slack via an incoming webhook.
package notify

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mason-build/mason/pkg/domain/interfaces"
	"github.com/mason-build/mason/pkg/domain/model"
	"github.com/slack-go/slack"
)

type slackNotifier struct {
	webhookURL string
}

// NewSlack creates a Notifier that posts run summaries to a Slack
// incoming webhook.
func NewSlack(webhookURL string) (interfaces.Notifier, error) {
	if webhookURL == "" {
		return nil, goerr.New("slack webhook URL must not be empty")
	}
	return &slackNotifier{webhookURL: webhookURL}, nil
}

// NotifyRun posts a one-line summary of the run.
func (n *slackNotifier) NotifyRun(ctx context.Context, report *model.RunReport) error {
	text := fmt.Sprintf("mason run %s: materialized %d artifacts (style=%s) in %s",
		report.RunID, len(report.Artifacts), report.Style, report.BaseDir)

	switch {
	case report.PublishError != "":
		text += fmt.Sprintf("\npublish failed: %s", report.PublishError)
	case report.Published:
		text += "\npublished to remote"
	}

	msg := &slack.WebhookMessage{Text: text}
	if err := slack.PostWebhookContext(ctx, n.webhookURL, msg); err != nil {
		return goerr.Wrap(err, "failed to post slack webhook")
	}
	return nil
}

type noopNotifier struct{}

// NewNoop creates a Notifier that drops every report. Used when no
// webhook URL is configured.
func NewNoop() interfaces.Notifier {
	return &noopNotifier{}
}

func (n *noopNotifier) NotifyRun(ctx context.Context, report *model.RunReport) error {
	return nil
}
