package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ExpoClient delivers push messages through the Expo push gateway.
type ExpoClient struct {
	url        string
	httpClient *http.Client
}

func NewExpoClient(url string) *ExpoClient {
	return &ExpoClient{
		url: url,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type expoMessage struct {
	To    string         `json:"to"`
	Sound string         `json:"sound"`
	Title string         `json:"title"`
	Body  string         `json:"body"`
	Data  map[string]any `json:"data,omitempty"`
}

// IsExpoPushToken reports whether token looks like a token issued by the
// Expo SDK. Anything else is silently skipped.
func IsExpoPushToken(token string) bool {
	if strings.HasPrefix(token, "ExponentPushToken[") && strings.HasSuffix(token, "]") {
		return true
	}
	return strings.HasPrefix(token, "ExpoPushToken[") && strings.HasSuffix(token, "]")
}

func (c *ExpoClient) Send(ctx context.Context, token, title, body string, data map[string]any) error {
	payload, err := json.Marshal(expoMessage{
		To:    token,
		Sound: "default",
		Title: title,
		Body:  body,
		Data:  data,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("expo push returned status %d", resp.StatusCode)
	}
	return nil
}
