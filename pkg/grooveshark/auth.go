package grooveshark

import (
	"context"
	"encoding/json"
	"fmt"
)

// AuthService provides session and authentication operations.
type AuthService struct {
	client *Client
}

// StartSession asks the service for a new session and makes it the
// client's current session.
//
// Example:
//
//	session, err := client.Auth().StartSession(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("session:", session.SessionID)
func (a *AuthService) StartSession(ctx context.Context) (*Session, error) {
	raw, err := a.client.Invoke(ctx, "startSession", nil)
	if err != nil {
		return nil, err
	}

	var session Session
	if err := DecodeResult(raw, &session); err != nil {
		return nil, err
	}
	if !session.Success || session.SessionID == "" {
		return nil, fmt.Errorf("grooveshark: startSession returned no session")
	}

	a.client.SetSessionID(session.SessionID)
	return &session, nil
}

// Authenticate logs a user in. The password is sent as its MD5 hex
// digest, never in plaintext. When the service returns a session token it
// replaces the client's current one; every later call carries it.
//
// MD5 is weak and is used only because the service requires it.
//
// Example:
//
//	user, err := client.Auth().Authenticate(ctx, "login", "password")
//	if errors.Is(err, grooveshark.ErrAuthenticationFailed) {
//	    log.Fatal("bad credentials")
//	}
func (a *AuthService) Authenticate(ctx context.Context, login, password string) (*User, error) {
	params := Params{
		"login":    login,
		"password": HashPassword(password),
	}

	raw, err := a.client.Invoke(ctx, "authenticate", params)
	if err != nil {
		return nil, err
	}

	var user User
	if err := DecodeResult(raw, &user); err != nil {
		return nil, err
	}
	if user.UserID == 0 {
		return nil, ErrAuthenticationFailed
	}

	if user.SessionID != "" {
		a.client.SetSessionID(user.SessionID)
	}
	return &user, nil
}

// AuthenticateUser authenticates with a precomputed token; see UserToken.
func (a *AuthService) AuthenticateUser(ctx context.Context, username, token string) (json.RawMessage, error) {
	return a.client.Invoke(ctx, "authenticateUser", Params{
		"username": username,
		"token":    token,
	})
}

// Logout ends the session. The local token is cleared whether or not the
// call succeeds, so later calls go out without a session.
func (a *AuthService) Logout(ctx context.Context) (json.RawMessage, error) {
	defer a.client.SetSessionID("")
	return a.client.Invoke(ctx, "logout", nil)
}

// UserIDFromUsername resolves a username to its numeric user ID.
// It returns 0 when the service knows no such user.
func (a *AuthService) UserIDFromUsername(ctx context.Context, username string) (int64, error) {
	raw, err := a.client.Invoke(ctx, "getUserIDFromUsername", Params{"username": username})
	if err != nil {
		return 0, err
	}

	var result struct {
		UserID int64 `json:"UserID"`
	}
	if err := DecodeResult(raw, &result); err != nil {
		return 0, err
	}
	return result.UserID, nil
}
