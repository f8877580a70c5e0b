package config

import (
	"github.com/mason-build/mason/pkg/domain/interfaces"
	"github.com/mason-build/mason/pkg/infra/notify"
	"github.com/urfave/cli/v3"
)

// Notify holds notification configuration
type Notify struct {
	SlackWebhookURL string
}

// Flags returns CLI flags for notification configuration
func (c *Notify) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-webhook-url",
			Usage:       "Slack incoming webhook for run notifications",
			Destination: &c.SlackWebhookURL,
			Sources:     cli.EnvVars("MASON_SLACK_WEBHOOK_URL"),
		},
	}
}

// Configure returns the notifier for the configuration. Without a
// webhook URL notifications are dropped.
func (c *Notify) Configure() (interfaces.Notifier, error) {
	if c.SlackWebhookURL == "" {
		return notify.NewNoop(), nil
	}
	return notify.NewSlack(c.SlackWebhookURL)
}
