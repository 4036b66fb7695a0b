package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"laborlink/internal/pkg/config"
	"laborlink/internal/pkg/errs"
)

// HTTPPushGateway submits notifications to an FCM-style HTTP endpoint.
// 4xx responses are permanent rejections; 5xx and transport errors are
// transient and left to the caller's retry policy.
type HTTPPushGateway struct {
	cfg    config.PushConfig
	client *http.Client
}

func NewHTTPPushGateway(cfg config.PushConfig) *HTTPPushGateway {
	return &HTTPPushGateway{
		cfg:    cfg,
		client: &http.Client{},
	}
}

type pushPayload struct {
	To           string            `json:"to"`
	Notification pushNotification  `json:"notification"`
	Data         map[string]string `json:"data,omitempty"`
}

type pushNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (g *HTTPPushGateway) Send(ctx context.Context, deviceToken, title, body string, data map[string]string) error {
	if g.cfg.ServerKey == "" {
		return Permanent(errs.New("push server key not configured"))
	}

	payload := pushPayload{
		To:           deviceToken,
		Notification: pushNotification{Title: title, Body: body},
		Data:         data,
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return Permanent(errs.Wrap(err, "failed to encode push payload"))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.GatewayURL, bytes.NewReader(encoded))
	if err != nil {
		return Permanent(errs.Wrap(err, "failed to build push request"))
	}
	req.Header.Set("Authorization", "key="+g.cfg.ServerKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return errs.Wrap(err, "push gateway request failed")
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return Permanent(errs.New(fmt.Sprintf("push gateway rejected request: %s", resp.Status)))
	default:
		return errs.New(fmt.Sprintf("push gateway error: %s", resp.Status))
	}
}
