package chatsdk

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// API endpoints used by this client.
const (
	loginPath    = "/api/v1/login"
	registerPath = "/api/v1/users.register"
	logoutPath   = "/api/v1/logout"
	mePath       = "/api/v1/me"
)

// Auth headers attached to authenticated requests.
const (
	authTokenHeader = "X-Auth-Token"
	userIDHeader    = "X-User-Id"
)

// ErrNotAuthenticated is returned by authenticated operations when no
// session token has been stored by a prior login.
var ErrNotAuthenticated = errors.New("chatsdk: not authenticated")

// ============================================================================
// Login
// ============================================================================

// Login authenticates with a username and password. On success the
// returned token has already been saved to the token store; on any failure
// the store is untouched and the error is either a transport failure or
// one of AuthError, InvalidResponseError, APIError.
func (c *Client) Login(ctx context.Context, username, password string) (Token, error) {
	return c.login(ctx, usernameCredentials(username, password))
}

// LoginWithEmail authenticates with an email address and password. It
// behaves identically to Login apart from which identity field is sent.
func (c *Client) LoginWithEmail(ctx context.Context, email, password string) (Token, error) {
	return c.login(ctx, emailCredentials(email, password))
}

func (c *Client) login(ctx context.Context, creds loginRequest) (Token, error) {
	var token Token
	if err := c.exchange(ctx, http.MethodPost, loginPath, creds, &token); err != nil {
		return Token{}, err
	}

	if err := c.tokens.Save(ctx, token); err != nil {
		return Token{}, fmt.Errorf("failed to save token: %w", err)
	}

	c.log.DebugContext(ctx, "login succeeded", "user_id", token.UserID)
	return token, nil
}

// ============================================================================
// Registration
// ============================================================================

// Signup registers a new user account. No token is issued and the token
// store is never touched; callers log in separately after registering.
// Registration failures carry the server's errorType when one was supplied
// (e.g. "error-field-unavailable" for a taken username).
func (c *Client) Signup(ctx context.Context, req RegistrationRequest) (User, error) {
	var user User
	if err := c.exchange(ctx, http.MethodPost, registerPath, req, &user); err != nil {
		return User{}, err
	}

	c.log.DebugContext(ctx, "signup succeeded", "user_id", user.ID)
	return user, nil
}

// ============================================================================
// Session
// ============================================================================

// CurrentToken returns the session token persisted by the most recent
// successful login, or ErrNoToken when none has been saved.
func (c *Client) CurrentToken(ctx context.Context) (Token, error) {
	return c.tokens.Get(ctx)
}

// Me fetches the profile of the authenticated user. Requires a prior
// successful login; returns ErrNotAuthenticated otherwise.
func (c *Client) Me(ctx context.Context) (User, error) {
	header, err := c.authHeader(ctx)
	if err != nil {
		return User{}, err
	}

	resp, err := c.transport.Send(ctx, Request{
		Method: http.MethodGet,
		Path:   mePath,
		Header: header,
	})
	if err != nil {
		return User{}, err
	}

	var user User
	if env := parseEnvelope(resp.Status, resp.Body, &user); !env.ok {
		return User{}, classify(env)
	}
	return user, nil
}

// Logout invalidates the current session on the server. The stored token
// is left in place; persistence is the token store's concern.
func (c *Client) Logout(ctx context.Context) error {
	header, err := c.authHeader(ctx)
	if err != nil {
		return err
	}

	resp, err := c.transport.Send(ctx, Request{
		Method: http.MethodPost,
		Path:   logoutPath,
		Header: header,
	})
	if err != nil {
		return err
	}

	var out logoutResponse
	if env := parseEnvelope(resp.Status, resp.Body, &out); !env.ok {
		return classify(env)
	}
	return nil
}

// ============================================================================
// Exchange Skeleton
// ============================================================================

// exchange runs the shared request skeleton: marshal payload, send,
// parse the envelope, and either decode the success payload into out or
// classify the failure. Transport-level failures short-circuit before
// envelope parsing and are returned as-is.
func (c *Client) exchange(ctx context.Context, method, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := c.transport.Send(ctx, Request{
		Method: method,
		Path:   path,
		Body:   body,
	})
	if err != nil {
		return err
	}

	if env := parseEnvelope(resp.Status, resp.Body, out); !env.ok {
		return classify(env)
	}
	return nil
}

// authHeader builds the auth headers from the stored session token.
func (c *Client) authHeader(ctx context.Context) (http.Header, error) {
	token, err := c.tokens.Get(ctx)
	if err != nil {
		if errors.Is(err, ErrNoToken) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("failed to load token: %w", err)
	}

	header := make(http.Header, 2)
	header.Set(authTokenHeader, token.AuthToken)
	header.Set(userIDHeader, token.UserID)
	return header, nil
}
