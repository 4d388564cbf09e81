package httpclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/jsamuelsen11/registration-flow/internal/platform/config"
	"github.com/jsamuelsen11/registration-flow/internal/platform/httpclient"
)

const (
	testService = "analytics-collector"
	eventsPath  = "/v1/events"
)

type testEvent struct {
	Event          string `json:"event"`
	RegistrationID string `json:"registration_id"`
}

var accountSubmitted = testEvent{Event: "account_submitted", RegistrationID: "flow-1"}

func testConfig(baseURL string) *config.ClientConfig {
	return &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     100 * time.Millisecond,
			Multiplier:      2.0,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   3,
			Timeout:       1 * time.Second,
			HalfOpenLimit: 1,
		},
	}
}

// newCollector starts a test collector and a client pointed at it. mutate,
// when non-nil, adjusts the client config before construction.
func newCollector(t *testing.T, handler http.HandlerFunc, mutate func(*config.ClientConfig)) (*httpclient.Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := testConfig(srv.URL)
	if mutate != nil {
		mutate(cfg)
	}
	return httpclient.New(cfg, testService, nil, slog.New(slog.DiscardHandler)), srv
}

// post sends accountSubmitted and closes any response body, returning the
// status (zero without a response) and the error.
func post(ctx context.Context, client *httpclient.Client) (int, error) {
	resp, err := client.PostJSON(ctx, eventsPath, accountSubmitted)
	if resp == nil {
		return 0, err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	return resp.StatusCode, err
}

// failOnce configures a single-attempt client whose breaker opens after one
// failure.
func failOnce(cfg *config.ClientConfig) {
	cfg.CircuitBreaker.MaxFailures = 1
	cfg.CircuitBreaker.Timeout = 100 * time.Millisecond
	cfg.Retry.MaxAttempts = 1
}

func TestPostJSON_SendsEvent(t *testing.T) {
	t.Parallel()

	var (
		gotPath, gotMethod, gotType, gotAgent string
		gotEvent                              testEvent
	)
	client, _ := newCollector(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotMethod = r.URL.Path, r.Method
		gotType, gotAgent = r.Header.Get("Content-Type"), r.Header.Get("User-Agent")
		_ = json.NewDecoder(r.Body).Decode(&gotEvent)
		w.WriteHeader(http.StatusAccepted)
	}, nil)

	status, err := post(context.Background(), client)
	if err != nil {
		t.Fatalf("PostJSON() error = %v", err)
	}

	if status != http.StatusAccepted {
		t.Errorf("status = %d, want %d", status, http.StatusAccepted)
	}
	if gotMethod != http.MethodPost || gotPath != eventsPath {
		t.Errorf("request = %s %s, want POST %s", gotMethod, gotPath, eventsPath)
	}
	if gotType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", gotType)
	}
	if !strings.HasPrefix(gotAgent, "registration-flow/") {
		t.Errorf("User-Agent = %q, want registration-flow/ prefix", gotAgent)
	}
	if gotEvent != accountSubmitted {
		t.Errorf("event = %+v, want %+v", gotEvent, accountSubmitted)
	}
}

func TestPostJSON_UnmarshalablePayload(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client, _ := newCollector(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusAccepted)
	}, nil)

	resp, err := client.PostJSON(context.Background(), eventsPath, map[string]any{"bad": make(chan int)})
	if resp != nil {
		_ = resp.Body.Close()
	}
	if err == nil {
		t.Fatal("PostJSON() error = nil, want marshal error")
	}
	if calls.Load() != 0 {
		t.Errorf("collector calls = %d, want 0", calls.Load())
	}
}

func TestDo_KeepsCallerUserAgent(t *testing.T) {
	t.Parallel()

	var gotAgent string
	client, srv := newCollector(t, func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
	}, nil)

	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, srv.URL+"/healthz", http.NoBody)
	req.Header.Set("User-Agent", "probe/1.0")
	resp, err := client.Do(context.Background(), req)
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	_ = resp.Body.Close()

	if gotAgent != "probe/1.0" {
		t.Errorf("User-Agent = %q, want %q", gotAgent, "probe/1.0")
	}
}

func TestPostJSON_Retries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		failStatus   int
		failCount    int32
		wantStatus   int
		wantErr      bool
		wantAttempts int32
	}{
		{name: "5xx until success", failStatus: http.StatusInternalServerError, failCount: 2, wantStatus: http.StatusAccepted, wantAttempts: 3},
		{name: "429 until success", failStatus: http.StatusTooManyRequests, failCount: 1, wantStatus: http.StatusAccepted, wantAttempts: 2},
		{name: "4xx is final", failStatus: http.StatusBadRequest, failCount: 5, wantStatus: http.StatusBadRequest, wantAttempts: 1},
		{name: "attempts exhausted", failStatus: http.StatusServiceUnavailable, failCount: 5, wantStatus: http.StatusServiceUnavailable, wantErr: true, wantAttempts: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var count atomic.Int32
			client, _ := newCollector(t, func(w http.ResponseWriter, _ *http.Request) {
				if count.Add(1) <= tt.failCount {
					w.WriteHeader(tt.failStatus)
					return
				}
				w.WriteHeader(http.StatusAccepted)
			}, nil)

			status, err := post(context.Background(), client)

			if (err != nil) != tt.wantErr {
				t.Fatalf("PostJSON() error = %v, wantErr %v", err, tt.wantErr)
			}
			if status != tt.wantStatus {
				t.Errorf("status = %d, want %d", status, tt.wantStatus)
			}
			if got := count.Load(); got != tt.wantAttempts {
				t.Errorf("attempts = %d, want %d", got, tt.wantAttempts)
			}
		})
	}
}

func TestPostJSON_ExhaustedRetriesKeepLastBody(t *testing.T) {
	t.Parallel()

	client, _ := newCollector(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("collector draining"))
	}, nil)

	resp, err := client.PostJSON(context.Background(), eventsPath, accountSubmitted)
	if err == nil {
		t.Fatal("PostJSON() error = nil, want error after max attempts")
	}
	if resp == nil {
		t.Fatal("resp is nil, want the last response with its body")
	}
	defer func() { _ = resp.Body.Close() }()

	if body, _ := io.ReadAll(resp.Body); string(body) != "collector draining" {
		t.Errorf("body = %q, want %q", body, "collector draining")
	}
}

func TestPostJSON_BodyReplayedOnRetry(t *testing.T) {
	t.Parallel()

	var (
		count  atomic.Int32
		bodies [2]string
	)
	client, _ := newCollector(t, func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		n := count.Add(1)
		if n <= 2 {
			bodies[n-1] = string(b)
		}
		if n == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	}, nil)

	if _, err := post(context.Background(), client); err != nil {
		t.Fatalf("PostJSON() error = %v", err)
	}

	if bodies[0] == "" || bodies[0] != bodies[1] {
		t.Errorf("attempt bodies = %q, want two identical non-empty bodies", bodies)
	}
}

func TestPostJSON_RetryAfterStretchesBackoff(t *testing.T) {
	t.Parallel()

	var count atomic.Int32
	client, _ := newCollector(t, func(w http.ResponseWriter, _ *http.Request) {
		if count.Add(1) == 1 {
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	}, func(cfg *config.ClientConfig) {
		cfg.Retry.InitialInterval = time.Millisecond
		cfg.Retry.MaxInterval = 60 * time.Millisecond
	})

	start := time.Now()
	status, err := post(context.Background(), client)
	elapsed := time.Since(start)

	if err != nil || status != http.StatusAccepted {
		t.Fatalf("PostJSON() = %d, %v; want 202, nil", status, err)
	}
	// One second requested, capped at the 60ms max interval.
	if elapsed < 50*time.Millisecond || elapsed > 900*time.Millisecond {
		t.Errorf("elapsed = %v, want roughly the capped Retry-After", elapsed)
	}
}

func TestDo_PropagatesRequestMetadata(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		ctx        func() context.Context
		wantReqID  string
		wantCorrID string
	}{
		{
			name: "ids from context",
			ctx: func() context.Context {
				ctx := httpclient.WithRequestID(context.Background(), "req-123")
				return httpclient.WithCorrelationID(ctx, "corr-456")
			},
			wantReqID:  "req-123",
			wantCorrID: "corr-456",
		},
		{
			name: "no ids",
			ctx:  context.Background,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotReqID, gotCorrID string
			client, _ := newCollector(t, func(w http.ResponseWriter, r *http.Request) {
				gotReqID = r.Header.Get("X-Request-ID")
				gotCorrID = r.Header.Get("X-Correlation-ID")
				w.WriteHeader(http.StatusAccepted)
			}, nil)

			if _, err := post(tt.ctx(), client); err != nil {
				t.Fatalf("PostJSON() error = %v", err)
			}

			if gotReqID != tt.wantReqID {
				t.Errorf("X-Request-ID = %q, want %q", gotReqID, tt.wantReqID)
			}
			if gotCorrID != tt.wantCorrID {
				t.Errorf("X-Correlation-ID = %q, want %q", gotCorrID, tt.wantCorrID)
			}
		})
	}
}

func TestCircuitBreaker_OpensAndRecovers(t *testing.T) {
	t.Parallel()

	var (
		calls   atomic.Int32
		healthy atomic.Bool
	)
	client, _ := newCollector(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		if !healthy.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	}, failOnce)

	_, _ = post(context.Background(), client)

	before := calls.Load()
	if _, err := post(context.Background(), client); !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("error = %v, want gobreaker.ErrOpenState", err)
	}
	if calls.Load() != before {
		t.Error("collector was called while the breaker was open")
	}
	if err := client.HealthCheck(context.Background()); err == nil || !strings.Contains(err.Error(), "failing") {
		t.Errorf("HealthCheck() = %v, want open-breaker failure", err)
	}

	time.Sleep(150 * time.Millisecond)
	healthy.Store(true)

	status, err := post(context.Background(), client)
	if err != nil || status != http.StatusAccepted {
		t.Fatalf("half-open probe = %d, %v; want 202, nil", status, err)
	}
	if err := client.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil once the breaker closes", err)
	}
}

func TestCircuitBreaker_IgnoresCallerCancellation(t *testing.T) {
	t.Parallel()

	client, _ := newCollector(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}, failOnce)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := post(ctx, client); err == nil {
		t.Fatal("PostJSON() error = nil, want context error")
	}
	if err := client.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil after a cancelled call", err)
	}
}

func TestClient_HealthCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		trip    bool
		wait    time.Duration
		wantErr string
	}{
		{name: "closed", wantErr: ""},
		{name: "open", trip: true, wantErr: "failing"},
		{name: "half-open", trip: true, wait: 150 * time.Millisecond, wantErr: "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client, _ := newCollector(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			}, failOnce)

			if tt.trip {
				_, _ = post(context.Background(), client)
			}
			time.Sleep(tt.wait)

			err := client.HealthCheck(context.Background())
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("HealthCheck() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("HealthCheck() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestClient_Identity(t *testing.T) {
	t.Parallel()

	client := httpclient.New(testConfig("http://collector.test"), testService, nil, slog.New(slog.DiscardHandler))

	if got := client.Name(); got != testService {
		t.Errorf("Name() = %q, want %q", got, testService)
	}
}

func TestRateLimit(t *testing.T) {
	t.Parallel()

	t.Run("paces requests", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		client, _ := newCollector(t, func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusAccepted)
		}, func(cfg *config.ClientConfig) {
			cfg.RateLimit = config.RateLimitConfig{RequestsPerSecond: 20, BurstSize: 1}
		})

		start := time.Now()
		for range 3 {
			if _, err := post(context.Background(), client); err != nil {
				t.Fatalf("PostJSON() error = %v", err)
			}
		}

		// Burst of one at 20 rps: the second and third calls each wait ~50ms.
		if elapsed := time.Since(start); elapsed < 80*time.Millisecond {
			t.Errorf("3 requests took %v, want the limiter to pace them", elapsed)
		}
		if calls.Load() != 3 {
			t.Errorf("collector calls = %d, want 3", calls.Load())
		}
	})

	t.Run("honours context", func(t *testing.T) {
		t.Parallel()

		client, _ := newCollector(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusAccepted)
		}, func(cfg *config.ClientConfig) {
			cfg.RateLimit = config.RateLimitConfig{RequestsPerSecond: 0.001, BurstSize: 1}
		})

		if _, err := post(context.Background(), client); err != nil {
			t.Fatalf("PostJSON() error = %v", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		if _, err := post(ctx, client); err == nil {
			t.Fatal("PostJSON() error = nil, want rate limiter wait error")
		}
	})
}
