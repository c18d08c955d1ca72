package tokenctl

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aussiebroadwan/tokend/pkg/authsdk"
	"github.com/aussiebroadwan/tokend/pkg/jwtx"
	"github.com/aussiebroadwan/tokend/pkg/oauthtoken"
	"github.com/aussiebroadwan/tokend/pkg/tokenx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const legacyToken = "G47cFiMRD5SXRoqQsVqY3RyxvoB9fYePSmX614rjgaZfLJ8TxatxdBTDB4qTBeeXzyaaSC6WJPPYm2GxoLysinHmFa5khBbC6LGZ37LNaP"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, key := range []string{"TOKEN_SALT", "TOKEN_SALT_FILE", "OPERATOR_SECRET", "OPERATOR_ISSUER", "TOKEND_URL", "TOKEND_OPERATOR_TOKEN"} {
		t.Setenv(key, "")
	}

	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func createPair(t *testing.T, args ...string) oauthtoken.TokenPair {
	t.Helper()
	out, err := run(t, append([]string{"create"}, args...)...)
	require.NoError(t, err)

	var pair oauthtoken.TokenPair
	require.NoError(t, json.Unmarshal([]byte(out), &pair))
	return pair
}

func TestCreateDecode(t *testing.T) {
	pair := createPair(t, "--salt", "s3cr3t", "--user-id", "42", "--app-id", "web", "--session=", "--ttl", "60")
	require.Equal(t, int64(60), pair.ExpiresIn)

	out, err := run(t, "decode", "--salt", "s3cr3t", pair.AccessToken)
	require.NoError(t, err)

	var view map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	require.Equal(t, "42", view["user_id"])
	require.Equal(t, "web", view["app_id"])
	require.Equal(t, "", view["session"], "an explicitly empty session is present")
	require.Nil(t, view["user_secret"])
	require.NotNil(t, view["expires_at"])
}

func TestDecode_Errors(t *testing.T) {
	pair := createPair(t, "--salt", "s3cr3t", "--user-id", "42")

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"wrong salt", []string{"decode", "--salt", "other", pair.AccessToken}, tokenx.ErrInvalidSignature},
		{"refresh token", []string{"decode", "--salt", "s3cr3t", pair.RefreshToken}, oauthtoken.ErrInvalidTokenType},
		{"expired legacy token", []string{"decode", legacyToken}, oauthtoken.ErrExpiredToken},
		{"access token as refresh", []string{"refresh", "--salt", "s3cr3t", pair.AccessToken}, oauthtoken.ErrInvalidTokenType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRefresh(t *testing.T) {
	pair := createPair(t, "--salt", "s3cr3t", "--user-id", "42", "--ttl", "0")

	out, err := run(t, "refresh", "--salt", "s3cr3t", pair.RefreshToken)
	require.NoError(t, err)

	var next oauthtoken.TokenPair
	require.NoError(t, json.Unmarshal([]byte(out), &next))
	require.Equal(t, int64(0), next.ExpiresIn)
	require.NotEmpty(t, next.AccessToken)
}

func TestInspect(t *testing.T) {
	out, err := run(t, "inspect", legacyToken)
	require.NoError(t, err)

	var view map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	require.Equal(t, "access_token", view["type"])
	require.Equal(t, "app_secret", view["app_secret"])
	require.Equal(t, true, view["expired"])

	pair := createPair(t, "--user-id", "42")
	out, err = run(t, "inspect", pair.RefreshToken)
	require.NoError(t, err)
	require.Contains(t, out, `"type": "refresh_token"`)
	require.NotContains(t, out, `"expired"`)
}

func TestSaltFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokend.salt")
	require.NoError(t, os.WriteFile(path, []byte("c29tZV9yYW5kb21fc3RyaW5n"), 0600))

	pair := createPair(t, "--salt-file", path, "--user-id", "42")
	_, err := run(t, "decode", "--salt", "some_random_string", pair.AccessToken)
	require.NoError(t, err)

	_, err = run(t, "decode", "--salt-file", filepath.Join(t.TempDir(), "missing"), pair.AccessToken)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestCreate_RequiresUserID(t *testing.T) {
	_, err := run(t, "create", "--app-id", "web")
	require.ErrorContains(t, err, "user-id")
}

func TestOperatorToken(t *testing.T) {
	secret := "an-operator-secret-of-32-bytes!!"
	out, err := run(t, "operator-token", "--secret", secret, "--issuer", "ops", "--scope", "tokens:write")
	require.NoError(t, err)

	v, err := jwtx.NewVerifierHS256([]byte(secret), "ops")
	require.NoError(t, err)
	claims, err := v.Verify(strings.TrimSpace(out))
	require.NoError(t, err)
	require.Equal(t, "tokenctl", claims.Subject)
	require.Equal(t, []string{"tokens:write"}, claims.Scopes)

	_, err = run(t, "operator-token", "--secret", "short")
	require.Error(t, err)
}

func TestRemoteIntrospect(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/oauth2/introspect", r.URL.Path)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "tok", r.PostForm.Get("token"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(authsdk.IntrospectionResponse{Active: true, Sub: "42"})
	}))
	t.Cleanup(srv.Close)

	out, err := run(t, "remote", "--url", srv.URL, "introspect", "tok")
	require.NoError(t, err)
	require.Contains(t, out, `"active": true`)
	require.Contains(t, out, `"sub": "42"`)
}

func TestRemoteCloseSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/v1/sessions/s-1", r.URL.Path)
		assert.Equal(t, "Bearer op", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(srv.Close)

	_, err := run(t, "remote", "--url", srv.URL, "--operator-token", "op", "close-session", "s-1")
	require.NoError(t, err)
}
