package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/reinzjustinedagang/osca-backend/internal/models"
)

// BroadcastRequest is the gateway's wire format. Field names are the
// provider's, not ours.
type BroadcastRequest struct {
	Email      string   `json:"Email"`
	Password   string   `json:"Password"`
	ApiCode    string   `json:"ApiCode"`
	Recipients []string `json:"Recipients"`
	Message    string   `json:"Message"`
}

// BroadcastResponse is what a structurally successful call returns.
// Error=false with Accepted>0 is the only fully successful outcome.
type BroadcastResponse struct {
	Error           bool    `json:"Error"`
	Accepted        int     `json:"Accepted"`
	Failed          int     `json:"Failed"`
	ReferenceID     string  `json:"ReferenceId"`
	TotalCreditUsed float64 `json:"TotalCreditUsed"`
	Message         string  `json:"Message"`
}

// GatewayHTTPError marks a transport-level failure where the gateway
// answered with a non-2xx status.
type GatewayHTTPError struct {
	StatusCode int
	Body       string
}

func (e *GatewayHTTPError) Error() string {
	return fmt.Sprintf("sms gateway returned HTTP %d", e.StatusCode)
}

type SmsGateway interface {
	Broadcast(ctx context.Context, creds *models.SmsCredentials, recipients []string, message string) (*BroadcastResponse, error)
}

type httpSmsGateway struct {
	url    string
	client *http.Client
}

// NewHTTPSmsGateway builds the gateway client. The provider exposes a
// plain JSON POST endpoint; there is no SDK to wrap.
func NewHTTPSmsGateway(url string) SmsGateway {
	return &httpSmsGateway{
		url:    url,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (g *httpSmsGateway) Broadcast(ctx context.Context, creds *models.SmsCredentials, recipients []string, message string) (*BroadcastResponse, error) {
	payload := BroadcastRequest{
		Email:      creds.Email,
		Password:   creds.Password,
		ApiCode:    creds.APICode,
		Recipients: recipients,
		Message:    message,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &GatewayHTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var out BroadcastResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("sms gateway response decode: %w", err)
	}
	return &out, nil
}
