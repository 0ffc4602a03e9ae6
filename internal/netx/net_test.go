package netx

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutPart(t *testing.T) {
	part := []byte("part bytes")

	t.Run("success returns unquoted etag", func(t *testing.T) {
		var gotBody []byte
		var gotCT, gotMethod string

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotCT = r.Header.Get("Content-Type")
			gotBody, _ = io.ReadAll(r.Body)
			w.Header().Set("ETag", `"abc123"`)
			w.WriteHeader(http.StatusOK)
		}))
		defer ts.Close()

		etag, err := PutPart(context.Background(), ts.Client(), ts.URL+"/bucket/key?partNumber=1&X-Amz-Signature=abc", part)
		require.NoError(t, err)
		assert.Equal(t, "abc123", etag)
		assert.Equal(t, http.MethodPut, gotMethod)
		assert.Equal(t, "application/octet-stream", gotCT)
		assert.True(t, bytes.Equal(part, gotBody))
	})

	t.Run("missing etag is an error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer ts.Close()

		_, err := PutPart(context.Background(), nil, ts.URL, part)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ETag")
	})

	t.Run("non-200 -> StatusError", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte("SignatureDoesNotMatch"))
		}))
		defer ts.Close()

		_, err := PutPart(context.Background(), nil, ts.URL, part)
		require.Error(t, err)

		var se *StatusError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, http.StatusForbidden, se.Code)
		assert.False(t, se.Temporary())
		assert.True(t, strings.Contains(err.Error(), "upload failed: 403"))
		assert.Contains(t, err.Error(), "SignatureDoesNotMatch")
	})

	t.Run("5xx is temporary", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer ts.Close()

		_, err := PutPart(context.Background(), nil, ts.URL, part)
		var se *StatusError
		require.True(t, errors.As(err, &se))
		assert.True(t, se.Temporary())
	})

	t.Run("network error", func(t *testing.T) {
		ts := httptest.NewServer(http.NotFoundHandler())
		ts.Close()

		_, err := PutPart(context.Background(), nil, ts.URL, part)
		require.Error(t, err)
		var se *StatusError
		assert.False(t, errors.As(err, &se))
	})

	t.Run("cancelled context", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("ETag", "x")
		}))
		defer ts.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := PutPart(ctx, nil, ts.URL, part)
		require.ErrorIs(t, err, context.Canceled)
	})
}
