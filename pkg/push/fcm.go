package push

import (
	"context"
	"errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// Client sends push notifications through Firebase Cloud Messaging. It is
// safe for concurrent use and should be constructed once per process.
type Client struct {
	messaging *messaging.Client
	cfg       Config
}

// New initializes the FCM client. With an empty CredentialsFile the firebase
// SDK falls back to application default credentials, which is how the service
// authenticates when running inside GCP.
func New(ctx context.Context, cfg Config) (*Client, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	var fbCfg *firebase.Config
	if cfg.ProjectID != "" {
		fbCfg = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, fbCfg, opts...)
	if err != nil {
		return nil, errors.Join(ErrInit, err)
	}

	mc, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Join(ErrInit, err)
	}

	return &Client{messaging: mc, cfg: cfg}, nil
}

// Send delivers one notification and returns FCM's message id.
func (c *Client) Send(ctx context.Context, token, title, body string, data map[string]string) (string, error) {
	id, err := c.messaging.Send(ctx, newMessage(token, title, body, data, c.cfg))
	if err != nil {
		return "", errors.Join(ErrSend, err)
	}
	return id, nil
}

// newMessage assembles the wire payload. The caller's data map is copied, not
// mutated, when the click action is merged in.
func newMessage(token, title, body string, data map[string]string, cfg Config) *messaging.Message {
	payload := make(map[string]string, len(data)+1)
	for k, v := range data {
		payload[k] = v
	}
	if cfg.ClickAction != "" {
		payload["clickAction"] = cfg.ClickAction
	}

	badge := cfg.Badge

	return &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: payload,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: cfg.AndroidChannelID,
				Sound:     cfg.Sound,
				Priority:  messaging.PriorityHigh,
			},
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Sound: cfg.Sound,
					Badge: &badge,
				},
			},
		},
	}
}
