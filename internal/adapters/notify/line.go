package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"tour-planner-service/internal/ports"
)

// LineNotifier pushes itinerary text to a LINE user via the Messaging
// API push endpoint. Delivery failures surface as errors; the caller
// decides whether a failed push fails the request.
type LineNotifier struct {
	session     *http.Client
	baseURL     string
	accessToken string
}

func NewLineNotifier(accessToken string) (*LineNotifier, error) {
	if strings.TrimSpace(accessToken) == "" {
		return nil, errors.New("line notifier: access token is empty")
	}
	return &LineNotifier{
		session:     &http.Client{Timeout: 10 * time.Second},
		baseURL:     "https://api.line.me",
		accessToken: accessToken,
	}, nil
}

type pushMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type pushRequest struct {
	To       string        `json:"to"`
	Messages []pushMessage `json:"messages"`
}

// Push sends one text message to the recipient user ID.
func (n *LineNotifier) Push(ctx context.Context, recipient, message string) error {
	if strings.TrimSpace(recipient) == "" {
		return errors.New("line push: recipient must be non-empty")
	}

	payload, err := json.Marshal(pushRequest{
		To:       recipient,
		Messages: []pushMessage{{Type: "text", Text: message}},
	})
	if err != nil {
		return fmt.Errorf("line push: marshal payload: %w", err)
	}

	endpoint := n.baseURL + "/v2/bot/message/push"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("line push: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+n.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.session.Do(req)
	if err != nil {
		return fmt.Errorf("line push: execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("line push: status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	return nil
}

var _ ports.Notifier = (*LineNotifier)(nil)
