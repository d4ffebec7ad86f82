package rotate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/ESChernov/steamrent/pkg/clients"
)

var ErrEmptyPassword = errors.New("rotation service returned an empty password")

// Client calls the password rotation sidecar. The sidecar drives the actual
// Steam password change using the account's secret bundle and returns the
// new password.
type Client struct {
	url    string
	client clients.HTTPClientI
}

func New(url string, client clients.HTTPClientI) *Client {
	return &Client{
		url:    url,
		client: client,
	}
}

type rotateRequest struct {
	BundlePath      string `json:"bundle_path"`
	CurrentPassword string `json:"current_password"`
}

type rotateResponse struct {
	NewPassword string `json:"new_password"`
}

func (c *Client) Rotate(ctx context.Context, bundlePath string, currentPassword string) (string, error) {
	body, err := json.Marshal(rotateRequest{
		BundlePath:      bundlePath,
		CurrentPassword: currentPassword,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+"/api/rotate", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("rotation request failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			zap.L().Warn("can't close rotation response body", zap.Error(err))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("rotation service returned status %d", resp.StatusCode)
	}

	var rotated rotateResponse
	if err := json.NewDecoder(resp.Body).Decode(&rotated); err != nil {
		return "", fmt.Errorf("can't decode rotation response: %w", err)
	}
	if rotated.NewPassword == "" {
		return "", ErrEmptyPassword
	}
	return rotated.NewPassword, nil
}
