package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

const defaultAuthGatewayURL = "https://demobackend.emergentagent.com"

// SessionGateway looks up OAuth session data on the external identity
// provider. The provider returns the user's profile together with a
// session token that is reused verbatim as our own session token.
type SessionGateway struct {
	baseURL string
	client  *http.Client
}

func NewSessionGateway() *SessionGateway {
	baseURL := os.Getenv("AUTH_GATEWAY_URL")
	if baseURL == "" {
		baseURL = defaultAuthGatewayURL
	}
	return &SessionGateway{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type ExternalSession struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Picture      string `json:"picture"`
	SessionToken string `json:"session_token"`
}

func (g *SessionGateway) FetchSession(sessionID string) (*ExternalSession, error) {
	req, err := http.NewRequest(http.MethodGet, g.baseURL+"/auth/v1/env/oauth/session-data", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create session-data request: %w", err)
	}
	req.Header.Set("X-Session-ID", sessionID)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call auth gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrInvalidExternalSession
	}

	var session ExternalSession
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("failed to parse auth gateway response: %w", err)
	}
	return &session, nil
}
