package cli

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubToken(t *testing.T, token []byte, err error) {
	t.Helper()
	orig := getSecret
	getSecret = func(prompt string, w io.Writer) ([]byte, error) { return token, err }
	t.Cleanup(func() { getSecret = orig })
}

func signedToken(t *testing.T, claims jwt.MapClaims) []byte {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return []byte(s)
}

func TestApp_Login_InstallsTokenAndSubject(t *testing.T) {
	client := &fakeClient{}
	a, out := newTestApp(t, client, "")

	token := signedToken(t, jwt.MapClaims{
		"sub": "alice",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	stubToken(t, token, nil)

	require.NoError(t, a.Login(context.Background()))
	assert.Equal(t, string(token), client.token)
	assert.Contains(t, out.String(), "logged in as alice")
	assert.Contains(t, a.getStatus(), "alice")
}

func TestApp_Login_EmptyTokenStaysOnBasicAuth(t *testing.T) {
	client := &fakeClient{}
	a, out := newTestApp(t, client, "")
	stubToken(t, nil, nil)

	require.NoError(t, a.Login(context.Background()))
	assert.Empty(t, client.token)
	assert.Contains(t, out.String(), "staying on basic auth")
}

func TestApp_Login_ExpiredTokenWarnsButInstalls(t *testing.T) {
	client := &fakeClient{}
	a, out := newTestApp(t, client, "")

	token := signedToken(t, jwt.MapClaims{
		"sub": "bob",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	stubToken(t, token, nil)

	require.NoError(t, a.Login(context.Background()))
	assert.Equal(t, string(token), client.token)
	assert.Contains(t, out.String(), "expired")
}

func TestApp_Login_GarbageTokenRejected(t *testing.T) {
	client := &fakeClient{}
	a, out := newTestApp(t, client, "")
	stubToken(t, []byte("not-a-jwt"), nil)

	err := a.Login(context.Background())
	require.Error(t, err)
	assert.Empty(t, client.token)
	assert.Contains(t, out.String(), "token rejected")
}

func TestApp_Login_PromptError(t *testing.T) {
	a, _ := newTestApp(t, &fakeClient{}, "")
	stubToken(t, nil, errors.New("tty gone"))

	require.Error(t, a.Login(context.Background()))
}

func TestApp_Logout_ClearsTokenAndSubject(t *testing.T) {
	client := &fakeClient{}
	a, out := newTestApp(t, client, "")

	token := signedToken(t, jwt.MapClaims{"sub": "alice"})
	stubToken(t, token, nil)
	require.NoError(t, a.Login(context.Background()))

	require.NoError(t, a.Logout(context.Background()))
	assert.Empty(t, client.token)
	assert.Contains(t, out.String(), "logged out")
	assert.NotContains(t, a.getStatus(), "alice")
}
