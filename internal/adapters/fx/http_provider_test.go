package fx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simpshopy/simpshopy_backend/internal/apperrors"
)

func newTestServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFetchRates_Success(t *testing.T) {
	var gotQuery, gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		gotKey = r.Header.Get("apikey")
		_, _ = w.Write([]byte(`{"success":true,"base":"EUR","date":"2024-05-01","rates":{"XOF":655.957,"USD":1.0712,"GBP":0.8561}}`))
	}))
	defer server.Close()

	provider := NewHTTPRateProvider(server.URL, "secret", time.Second)
	quote, err := provider.FetchRates(context.Background(), "EUR", []string{"XOF", "USD", "GBP"})

	require.NoError(t, err)
	assert.Equal(t, "base=EUR&symbols=XOF%2CUSD%2CGBP", gotQuery)
	assert.Equal(t, "secret", gotKey)
	assert.Equal(t, "EUR", quote.Base)
	assert.Equal(t, "2024-05-01", quote.Date)
	assert.Equal(t, "655.957", quote.Rates["XOF"].String())
	assert.Equal(t, "1.0712", quote.Rates["USD"].String())
	assert.Len(t, quote.Rates, 3)
}

func TestFetchRates_NoAPIKeyHeaderWhenUnset(t *testing.T) {
	var hasKey bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasKey = r.Header["Apikey"]
		_, _ = w.Write([]byte(`{"base":"EUR","rates":{"USD":1.1}}`))
	}))
	defer server.Close()

	provider := NewHTTPRateProvider(server.URL, "", time.Second)
	quote, err := provider.FetchRates(context.Background(), "EUR", []string{"USD"})

	require.NoError(t, err)
	assert.False(t, hasKey)
	assert.Equal(t, "1.1", quote.Rates["USD"].String())
}

func TestFetchRates_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, `{"error":"boom"}`},
		{"unauthorized", http.StatusUnauthorized, `{}`},
		{"malformed json", http.StatusOK, `{"rates":`},
		{"success false", http.StatusOK, `{"success":false,"error":{"info":"invalid access key"}}`},
		{"missing symbol", http.StatusOK, `{"success":true,"base":"EUR","rates":{"XOF":655.957}}`},
		{"zero rate", http.StatusOK, `{"success":true,"base":"EUR","rates":{"XOF":655.957,"USD":0}}`},
		{"negative rate", http.StatusOK, `{"success":true,"base":"EUR","rates":{"XOF":655.957,"USD":-1.1}}`},
		{"wrong base", http.StatusOK, `{"success":true,"base":"USD","rates":{"XOF":600,"USD":1}}`},
		{"rate as text", http.StatusOK, `{"success":true,"base":"EUR","rates":{"XOF":"abc","USD":1.1}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(t, tt.status, tt.body)
			provider := NewHTTPRateProvider(server.URL, "", time.Second)

			quote, err := provider.FetchRates(context.Background(), "EUR", []string{"XOF", "USD"})

			assert.Nil(t, quote)
			assert.ErrorIs(t, err, apperrors.ErrProviderUnavailable)
		})
	}
}

func TestFetchRates_Unreachable(t *testing.T) {
	server := newTestServer(t, http.StatusOK, `{}`)
	url := server.URL
	server.Close()

	provider := NewHTTPRateProvider(url, "", time.Second)
	_, err := provider.FetchRates(context.Background(), "EUR", []string{"USD"})

	assert.ErrorIs(t, err, apperrors.ErrProviderUnavailable)
}

func TestFetchRates_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	provider := NewHTTPRateProvider(server.URL, "", 5*time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := provider.FetchRates(ctx, "EUR", []string{"USD"})

	assert.ErrorIs(t, err, apperrors.ErrTimeout)
}
