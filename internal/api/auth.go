package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mathangi54/travel-booking-client/internal/models"
)

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the account registration request body.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authData matches the auth endpoints' success payload.
type authData struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// Login authenticates and returns the account plus its bearer token.
func (c *Client) Login(ctx context.Context, creds Credentials) (*models.User, string, error) {
	return c.authRequest(ctx, "/auth/login", creds)
}

// Register creates an account and returns it plus its bearer token.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*models.User, string, error) {
	return c.authRequest(ctx, "/auth/register", req)
}

func (c *Client) authRequest(ctx context.Context, path string, payload interface{}) (*models.User, string, error) {
	env, err := c.doJSON(ctx, http.MethodPost, path, payload, "", c.requestTimeout)
	if err != nil {
		return nil, "", err
	}

	var data authData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, "", fmt.Errorf("failed to decode auth response: %w", err)
	}
	if data.Token == "" {
		return nil, "", fmt.Errorf("auth response missing token")
	}

	return &data.User, data.Token, nil
}
