package services_test

import (
	"bytes"
	"context"
	"io"
	nethttp "net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/firelovers/storefront/app/services"
	"github.com/firelovers/storefront/internal/store"
	httpclient "github.com/firelovers/storefront/pkg/http"
)

type stubTransport func(*nethttp.Request) (*nethttp.Response, error)

func (f stubTransport) RoundTrip(r *nethttp.Request) (*nethttp.Response, error) { return f(r) }

func stubUpstream(t *testing.T, status int, body string) {
	t.Helper()
	httpclient.DefaultClient.Transport = stubTransport(func(r *nethttp.Request) (*nethttp.Response, error) {
		return &nethttp.Response{
			StatusCode: status,
			Body:       io.NopCloser(bytes.NewReader([]byte(body))),
			Header:     make(nethttp.Header),
		}, nil
	})
	t.Cleanup(httpclient.ResetTransport)
}

func TestGamesService(t *testing.T) {
	ctx := context.Background()

	t.Run("relays the upstream body untouched", func(t *testing.T) {
		const upstream = `[{"id":1,"title":"Overwatch 2"}]`
		stubUpstream(t, 200, upstream)

		body, err := services.NewGamesService().All(ctx)
		require.NoError(t, err)
		require.JSONEq(t, upstream, string(body))
	})

	t.Run("single game by id", func(t *testing.T) {
		const upstream = `{"id":452,"title":"Call of Duty: Warzone"}`
		stubUpstream(t, 200, upstream)

		body, err := services.NewGamesService().Find(ctx, "452")
		require.NoError(t, err)
		require.JSONEq(t, upstream, string(body))
	})

	t.Run("upstream failure maps to ErrUpstream", func(t *testing.T) {
		stubUpstream(t, 500, `{"status":"error"}`)

		_, err := services.NewGamesService().All(ctx)
		require.ErrorIs(t, err, services.ErrUpstream)
	})

	t.Run("unknown game id maps to not found", func(t *testing.T) {
		stubUpstream(t, 404, `{"status":404}`)

		_, err := services.NewGamesService().Find(ctx, "999999")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}
