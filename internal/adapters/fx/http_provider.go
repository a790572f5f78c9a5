package fx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/simpshopy/simpshopy_backend/internal/apperrors"
	"github.com/simpshopy/simpshopy_backend/internal/core/ports/providers"
)

const maxResponseBytes = 1 << 20

// ratesResponse is the provider payload, e.g.
// {"success":true,"base":"EUR","date":"2024-05-01","rates":{"XOF":655.957}}.
type ratesResponse struct {
	Success *bool                      `json:"success"`
	Base    string                     `json:"base"`
	Date    string                     `json:"date"`
	Rates   map[string]decimal.Decimal `json:"rates"`
	Error   json.RawMessage            `json:"error"`
}

// HTTPRateProvider implements providers.RateProvider against a JSON "latest rates" endpoint.
type HTTPRateProvider struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewHTTPRateProvider creates a provider. timeout bounds every request on top of the caller's context.
func NewHTTPRateProvider(baseURL, apiKey string, timeout time.Duration) *HTTPRateProvider {
	return &HTTPRateProvider{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

var _ providers.RateProvider = (*HTTPRateProvider)(nil)

// FetchRates calls GET {baseURL}?base=...&symbols=... and validates the answer.
func (p *HTTPRateProvider) FetchRates(ctx context.Context, base string, symbols []string) (*providers.RateQuote, error) {
	requestURL, err := p.buildURL(base, symbols)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid provider url: %w", apperrors.ErrProviderUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %w", apperrors.ErrProviderUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")
	if p.apiKey != "" {
		req.Header.Set("apikey", p.apiKey)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: fx provider request: %w", apperrors.ErrTimeout, err)
		}
		return nil, fmt.Errorf("%w: failed to make request: %w", apperrors.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: provider returned status %d", apperrors.ErrProviderUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: reading fx provider response: %w", apperrors.ErrTimeout, err)
		}
		return nil, fmt.Errorf("%w: failed to read response body: %w", apperrors.ErrProviderUnavailable, err)
	}

	return parseResponse(body, base, symbols)
}

func (p *HTTPRateProvider) buildURL(base string, symbols []string) (string, error) {
	u, err := url.Parse(p.baseURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("base", base)
	if len(symbols) > 0 {
		q.Set("symbols", strings.Join(symbols, ","))
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func parseResponse(body []byte, base string, symbols []string) (*providers.RateQuote, error) {
	var data ratesResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("%w: failed to parse response: %w", apperrors.ErrProviderUnavailable, err)
	}

	if data.Success != nil && !*data.Success {
		return nil, fmt.Errorf("%w: provider reported failure: %s", apperrors.ErrProviderUnavailable, errorMessage(data.Error))
	}
	if data.Base != "" && !strings.EqualFold(data.Base, base) {
		return nil, fmt.Errorf("%w: provider answered for base %s, requested %s", apperrors.ErrProviderUnavailable, data.Base, base)
	}

	rates := make(map[string]decimal.Decimal, len(symbols))
	for _, symbol := range symbols {
		rate, ok := data.Rates[symbol]
		if !ok {
			return nil, fmt.Errorf("%w: rate for %s missing from response", apperrors.ErrProviderUnavailable, symbol)
		}
		if !rate.IsPositive() {
			return nil, fmt.Errorf("%w: non-positive rate %s for %s", apperrors.ErrProviderUnavailable, rate.String(), symbol)
		}
		rates[symbol] = rate
	}

	return &providers.RateQuote{Base: base, Date: data.Date, Rates: rates}, nil
}

// errorMessage accepts both "error":"msg" and "error":{"info":"msg"} shapes.
func errorMessage(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "no details"
	}
	var msg string
	if err := json.Unmarshal(raw, &msg); err == nil {
		return msg
	}
	var obj struct {
		Info    string `json:"info"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		if obj.Info != "" {
			return obj.Info
		}
		if obj.Message != "" {
			return obj.Message
		}
	}
	return string(raw)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
