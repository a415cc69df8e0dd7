// Package identity talks to the managed identity provider: token
// introspection, password changes and the privileged email lookup.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/saulo-duarte/vicinato-api/internal/config"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidToken = errors.New("invalid or expired token")
)

type User struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

type Provider interface {
	GetUser(ctx context.Context, token string) (*User, error)
	LookupUserIDByEmail(ctx context.Context, email string) (uuid.UUID, error)
	UpdatePassword(ctx context.Context, token, password string) error
}

type Client struct {
	baseURL    string
	anonKey    string
	serviceKey string
}

func NewClient(baseURL, anonKey, serviceKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		anonKey:    anonKey,
		serviceKey: serviceKey,
	}
}

func (c *Client) bearerClient(ctx context.Context, token string) *http.Client {
	return oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: token,
		TokenType:   "Bearer",
	}))
}

func (c *Client) do(ctx context.Context, token, apiKey, method, path string, payload, out interface{}) (int, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return 0, err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, err
	}
	req.Header.Set("apikey", apiKey)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.bearerClient(ctx, token).Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return resp.StatusCode, fmt.Errorf("identity provider %s %s: %d %s", method, path, resp.StatusCode, bytes.TrimSpace(msg))
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("decode identity response: %w", err)
		}
	}
	return resp.StatusCode, nil
}

func (c *Client) GetUser(ctx context.Context, token string) (*User, error) {
	var u User
	status, err := c.do(ctx, token, c.anonKey, http.MethodGet, "/auth/v1/user", nil, &u)
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return nil, ErrInvalidToken
	}
	if err != nil {
		return nil, err
	}
	if u.ID == uuid.Nil {
		return nil, ErrInvalidToken
	}
	return &u, nil
}

// LookupUserIDByEmail runs with the service key because the caller may
// not see the other account.
func (c *Client) LookupUserIDByEmail(ctx context.Context, email string) (uuid.UUID, error) {
	log := config.WithContext(ctx)

	var id *uuid.UUID
	_, err := c.do(ctx, c.serviceKey, c.serviceKey, http.MethodPost, "/rest/v1/rpc/get_user_id_by_email",
		map[string]string{"user_email": email}, &id)
	if err != nil {
		log.WithError(err).Error("Failed to look up user by email")
		return uuid.Nil, err
	}
	if id == nil || *id == uuid.Nil {
		return uuid.Nil, ErrUserNotFound
	}
	return *id, nil
}

func (c *Client) UpdatePassword(ctx context.Context, token, password string) error {
	_, err := c.do(ctx, token, c.anonKey, http.MethodPut, "/auth/v1/user",
		map[string]string{"password": password}, nil)
	return err
}
