package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/agrofount/agrofount-credit/internal/config"
	"github.com/agrofount/agrofount-credit/pkg/clients"
	"go.uber.org/zap"
)

// Sender posts notification events to the configured webhook endpoint.
// Delivery is fire-and-forget: failures are logged and never retried,
// and a slow endpoint cannot block the calling transaction.
type Sender struct {
	url    string
	client clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Sender {
	return &Sender{
		url:    cfg.NotifyAddress + "/api/notifications",
		client: client,
	}
}

type event struct {
	UserID    int               `json:"user_id"`
	Event     string            `json:"event"`
	Params    map[string]string `json:"params,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

func (s *Sender) Notify(ctx context.Context, userID int, kind string, params map[string]string) {
	body, err := json.Marshal(event{
		UserID:    userID,
		Event:     kind,
		Params:    params,
		CreatedAt: time.Now(),
	})
	if err != nil {
		zap.L().Error("failed to marshal notification", zap.Error(err))
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		zap.L().Error("failed to build notification request", zap.Error(err))
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		zap.L().Warn("notification delivery failed", zap.String("event", kind), zap.Error(err))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		zap.L().Warn("notification endpoint rejected event",
			zap.String("event", kind), zap.Int("status", resp.StatusCode))
		return
	}
	zap.L().Info("notification sent", zap.Int("userID", userID), zap.String("event", kind))
}
