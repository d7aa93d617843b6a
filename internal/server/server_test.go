package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"leaguehub/internal/config"
	"leaguehub/internal/metrics"
)

type fakeHTTPServer struct {
	mu       sync.Mutex
	started  bool
	shutdown bool
	handler  http.Handler
	serveErr error
}

func (f *fakeHTTPServer) ListenAndServe() error {
	f.mu.Lock()
	f.started = true
	err := f.serveErr
	f.mu.Unlock()
	if err != nil {
		return err
	}
	return http.ErrServerClosed
}

func (f *fakeHTTPServer) Shutdown(ctx context.Context) error {
	f.mu.Lock()
	f.shutdown = true
	f.mu.Unlock()
	return nil
}

func (f *fakeHTTPServer) Addr() string          { return ":0" }
func (f *fakeHTTPServer) Handler() http.Handler { return f.handler }

func (f *fakeHTTPServer) state() (bool, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.started, f.shutdown
}

func testConfig() config.Config {
	return config.Config{
		OpsPort:   "0",
		LogLevel:  "error",
		LogFormat: "text",
		Storage:   config.StorageConfig{Driver: config.DriverMemory},
		Metrics:   config.MetricsConfig{Enabled: false},
	}
}

func TestNewRejectsUnknownDriver(t *testing.T) {
	cfg := testConfig()
	cfg.Storage.Driver = "redis"
	if _, err := New(cfg, nil); err == nil {
		t.Fatal("expected error for unknown storage driver")
	}
}

func TestRunBootstrapsAndShutsDown(t *testing.T) {
	s, err := New(testConfig(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	fake := &fakeHTTPServer{handler: s.opsServer.Handler()}
	s.opsServer = fake

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, cancel) }()

	deadline := time.After(2 * time.Second)
	for {
		if started, _ := fake.state(); started && s.ready.Load() {
			break
		}
		select {
		case <-deadline:
			t.Fatal("server did not start in time")
		case <-time.After(10 * time.Millisecond):
		}
	}
	if got := len(s.App().Registry.List()); got != 4 {
		t.Fatalf("bootstrap loaded %d games, want 4", got)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
	if _, shutdown := fake.state(); !shutdown {
		t.Fatal("ops server was not shut down")
	}
}

func TestReadyEndpointFollowsBootstrap(t *testing.T) {
	s, err := New(testConfig(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status before bootstrap = %d, want 503", rec.Code)
	}

	if err := s.app.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	s.ready.Store(true)

	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status after bootstrap = %d, want 200", rec.Code)
	}
}

func TestBuildMetricsDisabled(t *testing.T) {
	rec, srv, stop := buildMetrics(testConfig(), nil)
	if rec == nil {
		t.Fatal("expected a recorder even with metrics disabled")
	}
	if srv != nil {
		t.Fatal("disabled metrics should not create a listener")
	}
	if stop == nil {
		t.Fatal("expected a shutdown func")
	}
}

func TestBuildMetricsSetupFailure(t *testing.T) {
	orig := metricsSetup
	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return nil, nil, nil, context.DeadlineExceeded
	}
	defer func() { metricsSetup = orig }()

	rec, srv, stop := buildMetrics(testConfig(), nil)
	if rec == nil {
		t.Fatal("setup failure should fall back to a plain recorder")
	}
	if srv != nil || stop != nil {
		t.Fatal("setup failure should not create a listener or shutdown func")
	}
}
