package chatsdk

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseEnvelopeSuccess(t *testing.T) {
	t.Parallel()

	var token Token
	env := parseEnvelope(http.StatusOK, []byte(`{"userId":"u1","authToken":"t1"}`), &token)

	require.True(t, env.ok)
	require.NoError(t, env.decodeErr)
	require.Nil(t, env.apiErr)
	require.Equal(t, Token{UserID: "u1", AuthToken: "t1"}, token)
}

func TestParseEnvelopeDecodeFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"userId": "u1",`},
		{"plain text", `<html>Bad Gateway</html>`},
		{"empty body", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var token Token
			env := parseEnvelope(http.StatusOK, []byte(tt.body), &token)

			require.False(t, env.ok)
			require.Error(t, env.decodeErr)
			require.Nil(t, env.apiErr)
		})
	}
}

func TestParseEnvelopeAPIError(t *testing.T) {
	t.Parallel()

	t.Run("with errorType", func(t *testing.T) {
		t.Parallel()

		env := parseEnvelope(
			http.StatusForbidden,
			[]byte(`{"error":"Email already exists.","errorType":"403"}`),
			&struct{}{},
		)

		require.False(t, env.ok)
		require.NoError(t, env.decodeErr)
		require.NotNil(t, env.apiErr)
		require.Equal(t, "Email already exists.", env.apiErr.Error)
		require.Equal(t, "403", env.apiErr.ErrorType)
	})

	t.Run("without errorType", func(t *testing.T) {
		t.Parallel()

		env := parseEnvelope(http.StatusBadRequest, []byte(`{"error":"Bad request"}`), &struct{}{})

		require.NotNil(t, env.apiErr)
		require.Equal(t, "Bad request", env.apiErr.Error)
		require.Empty(t, env.apiErr.ErrorType)
	})
}

// A failure status with an unparseable or absent body is an expected
// generic failure, never a decode failure.
func TestParseEnvelopeGenericFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"empty body", http.StatusInternalServerError, ``},
		{"non-json body", http.StatusBadGateway, `upstream unavailable`},
		{"json without error field", http.StatusInternalServerError, `{"ok":false}`},
		{"malformed json", http.StatusNotFound, `{"error":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := parseEnvelope(tt.status, []byte(tt.body), &struct{}{})

			require.False(t, env.ok)
			require.NoError(t, env.decodeErr)
			require.Nil(t, env.apiErr)
			require.Equal(t, tt.status, env.status)
		})
	}
}
