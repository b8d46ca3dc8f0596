package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"modelscout/catalog-api/internal/utils/httpclients"
	"modelscout/catalog-api/internal/utils/platformerrors"
)

func catalogServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func newTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()
	resty := httpclients.NewClient("catalog-upstream-test", 5*time.Second)
	t.Cleanup(func() { _ = resty.Close() })
	return NewClient(resty, server.URL)
}

func TestListModelsBareArray(t *testing.T) {
	server := catalogServer(t, http.StatusOK, `[
		{"id": "openai/gpt-4o", "name": "GPT-4o", "context_length": 128000},
		{"id": "meta-llama/llama-3-8b", "context_length": 8192}
	]`)
	client := newTestClient(t, server)

	models, err := client.ListModels(context.Background())
	require.NoError(t, err)
	require.Len(t, models, 2)
	require.Equal(t, "openai/gpt-4o", models[0].ID)
	// A missing display name falls back to the ID.
	require.Equal(t, "meta-llama/llama-3-8b", models[1].Name)
}

func TestListModelsDataEnvelope(t *testing.T) {
	server := catalogServer(t, http.StatusOK, `{"data": [{"id": "anthropic/claude-sonnet", "name": "Claude Sonnet"}]}`)
	client := newTestClient(t, server)

	models, err := client.ListModels(context.Background())
	require.NoError(t, err)
	require.Len(t, models, 1)
	require.Equal(t, "anthropic/claude-sonnet", models[0].ID)
}

func TestListModelsQuarantinesMalformedRecords(t *testing.T) {
	server := catalogServer(t, http.StatusOK, `{"data": [
		{"id": "openai/gpt-4o", "name": "GPT-4o"},
		{"name": "no id at all"},
		{"id": "mistralai/mistral-small", "context_length": "not-a-number"}
	]}`)
	client := newTestClient(t, server)

	models, err := client.ListModels(context.Background())
	require.NoError(t, err)
	require.Len(t, models, 1, "records without an ID or with malformed fields are dropped")
	require.Equal(t, "openai/gpt-4o", models[0].ID)
}

func TestListModelsEnvelopeWithoutData(t *testing.T) {
	server := catalogServer(t, http.StatusOK, `{"models": []}`)
	client := newTestClient(t, server)

	_, err := client.ListModels(context.Background())
	require.Error(t, err)
}

func TestListModelsUpstreamFailureIsExternal(t *testing.T) {
	server := catalogServer(t, http.StatusServiceUnavailable, `upstream exploded`)
	client := newTestClient(t, server)

	_, err := client.ListModels(context.Background())
	require.Error(t, err)
	require.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeExternal))
}

func TestSourceReportsCatalogURL(t *testing.T) {
	server := catalogServer(t, http.StatusOK, `[]`)
	client := newTestClient(t, server)
	require.Equal(t, server.URL, client.Source())
}
