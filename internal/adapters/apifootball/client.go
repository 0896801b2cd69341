// Package apifootball implementa ports.FixtureProvider contra
// v3.football.api-sports.io.
package apifootball

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/alejandrodnm/betcheck/internal/domain"
)

const (
	defaultBaseURL = "https://v3.football.api-sports.io"

	// El plan estándar permite 300 req/min (5/s); se usa el 60%.
	requestsPerSec = 3

	maxRetries    = 3
	baseRetryWait = 500 * time.Millisecond
)

// Client es el HTTP client de API-Football con rate limiting y retries.
type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
	limiter *rate.Limiter
}

// NewClient crea un Client con el base URL dado.
// Si baseURL está vacío, usa el URL de producción.
func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		http:    &http.Client{Timeout: 15 * time.Second},
		baseURL: baseURL,
		apiKey:  apiKey,
		limiter: rate.NewLimiter(requestsPerSec, 1),
	}
}

// FixturesByDate devuelve todos los fixtures de la fecha ISO dada.
func (c *Client) FixturesByDate(ctx context.Context, date string) ([]domain.Fixture, error) {
	endpoint := fmt.Sprintf("%s/fixtures?date=%s", c.baseURL, url.QueryEscape(date))

	var env apiEnvelope
	if err := c.get(ctx, endpoint, &env); err != nil {
		return nil, fmt.Errorf("apifootball.FixturesByDate: %w", err)
	}

	// El API devuelve 200 con el detalle del fallo dentro de `errors`.
	if msg, failed := apiErrors(env.Errors); failed {
		return nil, fmt.Errorf("apifootball.FixturesByDate: api errors: %s", msg)
	}

	fixtures := make([]domain.Fixture, 0, len(env.Response))
	for _, dto := range env.Response {
		fixtures = append(fixtures, mapFixture(dto))
	}
	return fixtures, nil
}

// get hace un GET autenticado con rate limiting y retries.
func (c *Client) get(ctx context.Context, url string, out any) error {
	return c.doWithRetry(ctx, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("x-apisports-key", c.apiKey)
		return c.http.Do(req)
	}, out)
}

// doWithRetry ejecuta la función con backoff exponencial y jitter.
func (c *Client) doWithRetry(ctx context.Context, fn func() (*http.Response, error), out any) error {
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}

		resp, err := fn()
		if err != nil {
			if attempt == maxRetries {
				return fmt.Errorf("request failed after %d retries: %w", maxRetries, err)
			}
			c.sleep(ctx, attempt)
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			resp.Body.Close()
			slog.Warn("rate limited by API", "attempt", attempt+1)
			c.sleep(ctx, attempt)
			continue
		}

		if resp.StatusCode >= 500 {
			resp.Body.Close()
			if attempt == maxRetries {
				return fmt.Errorf("server error %d after %d retries", resp.StatusCode, maxRetries)
			}
			c.sleep(ctx, attempt)
			continue
		}

		if resp.StatusCode >= 400 {
			body, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			return fmt.Errorf("client error %d: %s", resp.StatusCode, string(body))
		}

		defer resp.Body.Close()
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}
	return fmt.Errorf("exhausted %d retries", maxRetries)
}

// sleep espera con backoff exponencial, respetando el contexto.
func (c *Client) sleep(ctx context.Context, attempt int) {
	wait := time.Duration(math.Pow(2, float64(attempt))) * baseRetryWait
	select {
	case <-time.After(wait):
	case <-ctx.Done():
	}
}
