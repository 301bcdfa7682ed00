package cusp

import (
	"context"
	"encoding/json"
	"net/http"
)

// validTokenMarker is the exact success marker /verify-token answers with.
const validTokenMarker = "Token is valid"

type LoginResult struct {
	Token string          `json:"token"`
	User  json.RawMessage `json:"user"`
	Msg   string          `json:"msg"`
}

// Login exchanges credentials for a bearer token and the signed-in user
// record. A 2xx response without a token is still a failed login.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var result LoginResult
	payload := map[string]string{"email": email, "password": password}
	if err := c.sendJSON(ctx, http.MethodPost, "/login", payload, &result); err != nil {
		if apiErr, ok := err.(APIError); ok {
			return nil, APIError{Kind: KindAuth, Status: apiErr.Status, Message: apiErr.Message}
		}
		return nil, err
	}
	if result.Token == "" {
		msg := result.Msg
		if msg == "" {
			msg = "Invalid credentials"
		}
		return nil, ErrAuth(msg)
	}
	return &result, nil
}

// Verify asks the backend whether token is still good. Anything other than a
// 2xx response carrying the exact validity marker counts as invalid; transport
// failures are equivalent to an expired token.
func (c *Client) Verify(ctx context.Context, token string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/verify-token", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := c.http.Do(req)
	if err != nil {
		return ErrAuth(err.Error())
	}
	defer resp.Body.Close()
	parsed := struct {
		Msg string `json:"msg"`
	}{}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return ErrAuth("token verification failed")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 || parsed.Msg != validTokenMarker {
		msg := parsed.Msg
		if msg == "" {
			msg = "token is invalid"
		}
		return ErrAuth(msg)
	}
	return nil
}
