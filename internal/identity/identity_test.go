package identity_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"newsdesk/internal/identity"

	"github.com/stretchr/testify/require"
)

func TestUserFromToken(t *testing.T) {
	testCases := []struct {
		name     string
		token    string
		status   int
		body     string
		wantUser bool
		wantErr  bool
	}{
		{
			name:     "valid token",
			token:    "good-token",
			status:   http.StatusOK,
			body:     `{"id":"11111111-1111-1111-1111-111111111111","email":"admin@example.com"}`,
			wantUser: true,
		},
		{
			name:   "rejected token is not an error",
			token:  "stale-token",
			status: http.StatusUnauthorized,
			body:   `{"error":"invalid token"}`,
		},
		{
			name:    "provider failure",
			token:   "any-token",
			status:  http.StatusInternalServerError,
			body:    `{"error":"boom"}`,
			wantErr: true,
		},
		{
			name:    "empty user id",
			token:   "odd-token",
			status:  http.StatusOK,
			body:    `{"email":"admin@example.com"}`,
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/auth/v1/user", r.URL.Path)
				require.Equal(t, "Bearer "+tc.token, r.Header.Get("Authorization"))
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client := identity.NewClient(server.URL)
			user, err := client.UserFromToken(context.Background(), tc.token)

			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tc.wantUser {
				require.NotNil(t, user)
				require.Equal(t, "admin@example.com", user.Email)
			} else {
				require.Nil(t, user)
			}
		})
	}
}

func TestUserFromTokenEmptyTokenSkipsProvider(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	client := identity.NewClient(server.URL)
	user, err := client.UserFromToken(context.Background(), "")

	require.NoError(t, err)
	require.Nil(t, user)
	require.False(t, called)
}

func TestRevoke(t *testing.T) {
	var gotPath, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := identity.NewClient(server.URL)
	require.NoError(t, client.Revoke(context.Background(), "some-token"))
	require.Equal(t, "/auth/v1/logout", gotPath)
	require.Equal(t, "Bearer some-token", gotAuth)
}

func TestRevokeProviderFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := identity.NewClient(server.URL)
	require.Error(t, client.Revoke(context.Background(), "some-token"))
}
