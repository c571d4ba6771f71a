// Package webhook forwards updated requests to an external automation hook.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/saase/requesthub/internal/application/request/dto"
	"github.com/saase/requesthub/internal/shared/config"
	"github.com/saase/requesthub/internal/shared/errors"
	"github.com/saase/requesthub/internal/shared/logger"
)

const defaultTimeout = 5 * time.Second

// Notifier posts the full request record as JSON. It performs a single
// attempt per call.
type Notifier struct {
	url        string
	httpClient *http.Client
	logger     logger.Interface
}

func NewNotifier(cfg config.NotificationConfig, log logger.Interface) *Notifier {
	timeout := defaultTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	return &Notifier{
		url: cfg.WebhookURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: log,
	}
}

// Enabled reports whether a webhook URL is configured.
func (n *Notifier) Enabled() bool {
	return n.url != ""
}

func (n *Notifier) NotifyRequestUpdated(ctx context.Context, req *dto.RequestDTO) error {
	if !n.Enabled() {
		n.logger.Debugw("webhook disabled, skipping notification", "request_id", req.RequestID)
		return nil
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return errors.NewNotificationError("failed to encode webhook payload", err.Error()).WithCause(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(payload))
	if err != nil {
		return errors.NewNotificationError("failed to build webhook request", err.Error()).WithCause(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(httpReq)
	if err != nil {
		return errors.NewNotificationError("webhook request failed", err.Error()).WithCause(err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.NewNotificationError("webhook rejected notification",
			fmt.Sprintf("status %d", resp.StatusCode))
	}

	n.logger.Infow("webhook notification sent",
		"request_id", req.RequestID,
		"status_code", resp.StatusCode)
	return nil
}
