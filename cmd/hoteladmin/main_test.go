package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-hotel-admin/hotel"
	"github.com/jrsteele09/go-hotel-admin/internal/fakeapi"
)

func setupCLI(t *testing.T) *fakeapi.Server {
	t.Helper()
	srv := fakeapi.New(t)
	srv.Public(http.MethodPost, hotel.PathLogin, func(w http.ResponseWriter, r *http.Request) {
		access, refresh := srv.IssueTokens()
		fakeapi.WriteJSON(w, http.StatusOK, hotel.LoginResponse{AccessToken: access, RefreshToken: refresh})
	})
	srv.Protected(http.MethodGet, hotel.PathProfile, fakeapi.JSON(http.StatusOK, hotel.User{ID: "u1", Email: "admin@example.com"}))
	srv.Protected(http.MethodGet, hotel.PathBranches, fakeapi.JSON(http.StatusOK, hotel.Page[hotel.Branch]{
		Data: []hotel.Branch{{ID: "b1", Name: "Riverside"}},
	}))

	t.Setenv("APP_API_URL", srv.URL)
	t.Setenv("SESSION_DB", filepath.Join(t.TempDir(), "session.db"))
	t.Setenv("ENV", "TEST")
	t.Setenv("HOTELADMIN_CONFIG", "")
	return srv
}

func TestRun(t *testing.T) {
	srv := setupCLI(t)

	var out bytes.Buffer
	require.NoError(t, run([]string{"-q", "login", "admin@example.com", "secret"}, &out, &bytes.Buffer{}))

	out.Reset()
	require.NoError(t, run([]string{"-q", "profile"}, &out, &bytes.Buffer{}))
	var user hotel.User
	require.NoError(t, json.Unmarshal(out.Bytes(), &user))
	require.Equal(t, "admin@example.com", user.Email)

	out.Reset()
	require.NoError(t, run([]string{"-q", "branches", "2"}, &out, &bytes.Buffer{}))
	require.Contains(t, out.String(), "Riverside")
	require.Equal(t, "page=2&pageSize=20", srv.RequestsTo(hotel.PathBranches)[0].Query)

	require.NoError(t, run([]string{"-q", "refresh"}, &out, &bytes.Buffer{}))
	require.Equal(t, 1, srv.RefreshCalls())
}

func TestRun_Errors(t *testing.T) {
	setupCLI(t)

	t.Run("no command", func(t *testing.T) {
		require.Error(t, run([]string{"-q"}, &bytes.Buffer{}, &bytes.Buffer{}))
	})

	t.Run("unknown command", func(t *testing.T) {
		err := run([]string{"-q", "dance"}, &bytes.Buffer{}, &bytes.Buffer{})
		require.ErrorContains(t, err, `unknown command "dance"`)
	})

	t.Run("invalid page", func(t *testing.T) {
		err := run([]string{"-q", "branches", "zero"}, &bytes.Buffer{}, &bytes.Buffer{})
		require.ErrorContains(t, err, "invalid page")
	})

	t.Run("login arity", func(t *testing.T) {
		require.Error(t, run([]string{"-q", "login", "only-user"}, &bytes.Buffer{}, &bytes.Buffer{}))
	})
}

func TestRun_SessionLossPrintsLoginHint(t *testing.T) {
	srv := setupCLI(t)
	t.Setenv("REDIRECT_DELAY", "20ms")

	var stderr bytes.Buffer
	err := run([]string{"-q", "profile"}, &bytes.Buffer{}, &stderr)
	require.Error(t, err)
	require.Equal(t, 0, srv.RefreshCalls())
	require.Contains(t, stderr.String(), "hoteladmin login")
}
