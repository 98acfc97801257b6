package grooveshark

import (
	"context"
	"errors"
	"net/http"
	"testing"
)

// TestAuthService_Authenticate tests the Authenticate method.
func TestAuthService_Authenticate(t *testing.T) {
	tests := []struct {
		name        string
		response    string
		wantUserID  int64
		wantSession string
		wantErr     error
	}{
		{
			name:        "success with session",
			response:    `{"header":{},"result":{"UserID":42,"Email":"a@example.com","sessionID":"sess-42"}}`,
			wantUserID:  42,
			wantSession: "sess-42",
		},
		{
			name:        "success keeps existing session",
			response:    `{"result":{"UserID":7}}`,
			wantUserID:  7,
			wantSession: "started",
		},
		{
			name:        "unknown user",
			response:    `{"result":{"UserID":0}}`,
			wantErr:     ErrAuthenticationFailed,
			wantSession: "started",
		},
		{
			name:        "service fault",
			response:    `{"errors":[{"code":300,"message":"Invalid signature"}]}`,
			wantErr:     &Error{Code: 300},
			wantSession: "started",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(t, http.StatusOK, tt.response)
			client := newTestClient(t, server.URL)
			client.SetSessionID("started")

			user, err := client.Auth().Authenticate(context.Background(), "alice", "password")

			req := server.last(t)
			env := req.Envelope(t)
			if env.Method != "authenticate" {
				t.Errorf("expected method authenticate, got %s", env.Method)
			}
			if got := env.Parameters["login"]; got != "alice" {
				t.Errorf("expected login alice, got %v", got)
			}
			if got := env.Parameters["password"]; got != "5f4dcc3b5aa765d61d8327deb882cf99" {
				t.Errorf("expected md5 password digest, got %v", got)
			}

			if client.SessionID() != tt.wantSession {
				t.Errorf("expected session %q, got %q", tt.wantSession, client.SessionID())
			}

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if user.UserID != tt.wantUserID {
				t.Errorf("expected user %d, got %d", tt.wantUserID, user.UserID)
			}
		})
	}
}

func TestAuthService_SessionLifecycle(t *testing.T) {
	server := newTestServer(t, http.StatusOK, `{"result":{"success":true,"sessionID":"s-1"}}`)
	client := newTestClient(t, server.URL)
	ctx := context.Background()

	if client.SessionID() != "" {
		t.Fatalf("expected no session on a new client, got %q", client.SessionID())
	}

	session, err := client.Auth().StartSession(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.SessionID != "s-1" {
		t.Errorf("expected session s-1, got %s", session.SessionID)
	}
	if env := server.last(t).Envelope(t); env.Header.SessionID != nil {
		t.Errorf("expected startSession to be sent without a session, got %q", *env.Header.SessionID)
	}

	server.reply(http.StatusOK, `{"result":{"UserID":9,"sessionID":"s-2"}}`)
	if _, err := client.Auth().Authenticate(ctx, "bob", "hunter2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := server.last(t).Envelope(t).Header.SessionID; got == nil || *got != "s-1" {
		t.Errorf("expected authenticate to carry s-1, got %v", got)
	}

	server.reply(http.StatusOK, `{"result":{}}`)
	for _, call := range []func() error{
		func() error { _, err := client.Library().UserInfo(ctx); return err },
		func() error { _, err := client.Playlists().Info(ctx, 5); return err },
		func() error { _, err := client.Catalog().SongsInfo(ctx, []int64{1}); return err },
	} {
		if err := call(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := server.last(t).Envelope(t).Header.SessionID
		if got == nil || *got != "s-2" {
			t.Errorf("expected session s-2 in header, got %v", got)
		}
	}

	if _, err := client.Auth().Logout(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := server.last(t).Envelope(t).Header.SessionID; got == nil || *got != "s-2" {
		t.Errorf("expected logout to carry s-2, got %v", got)
	}
	if client.SessionID() != "" {
		t.Errorf("expected session cleared after logout, got %q", client.SessionID())
	}

	if _, err := client.Ping(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := server.last(t).Envelope(t).Header.SessionID; got != nil {
		t.Errorf("expected null session after logout, got %q", *got)
	}
}

func TestAuthService_LogoutClearsOnFailure(t *testing.T) {
	server := newTestServer(t, http.StatusServiceUnavailable, "")
	client := newTestClient(t, server.URL)
	client.SetSessionID("s-1")

	if _, err := client.Auth().Logout(context.Background()); err == nil {
		t.Fatal("expected error, got nil")
	}
	if client.SessionID() != "" {
		t.Errorf("expected session cleared, got %q", client.SessionID())
	}
}

func TestAuthService_StartSessionFailure(t *testing.T) {
	server := newTestServer(t, http.StatusOK, `{"result":{"success":false}}`)
	client := newTestClient(t, server.URL)

	if _, err := client.Auth().StartSession(context.Background()); err == nil {
		t.Fatal("expected error, got nil")
	}
	if client.SessionID() != "" {
		t.Errorf("expected no session, got %q", client.SessionID())
	}
}

func TestAuthService_AuthenticateUser(t *testing.T) {
	server := newTestServer(t, http.StatusOK, `{"result":{"UserID":3}}`)
	client := newTestClient(t, server.URL)

	token := UserToken("carol", "secret")
	if _, err := client.Auth().AuthenticateUser(context.Background(), "carol", token); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	env := server.last(t).Envelope(t)
	if env.Method != "authenticateUser" {
		t.Errorf("expected method authenticateUser, got %s", env.Method)
	}
	if env.Parameters["username"] != "carol" || env.Parameters["token"] != token {
		t.Errorf("unexpected parameters: %v", env.Parameters)
	}
}

func TestAuthService_UserIDFromUsername(t *testing.T) {
	server := newTestServer(t, http.StatusOK, `{"result":{"UserID":1234}}`)
	client := newTestClient(t, server.URL)

	id, err := client.Auth().UserIDFromUsername(context.Background(), "dave")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 1234 {
		t.Errorf("expected 1234, got %d", id)
	}

	env := server.last(t).Envelope(t)
	if env.Method != "getUserIDFromUsername" || env.Parameters["username"] != "dave" {
		t.Errorf("unexpected request: %s %v", env.Method, env.Parameters)
	}
}
