package analytics_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/registration-flow/internal/adapters/analytics"
	"github.com/jsamuelsen11/registration-flow/internal/platform/logging"
	"github.com/jsamuelsen11/registration-flow/internal/platform/telemetry"
)

func TestLogSink_Record(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sink := analytics.NewLogSink(slog.New(slog.NewJSONHandler(&buf, nil)))

	if sink.Name() != "log" {
		t.Errorf("Name() = %q, want log", sink.Name())
	}
	if err := sink.Record(context.Background(), testEvent()); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decoding log line %q: %v", buf.String(), err)
	}
	if entry["event"] != "register_submit" || entry["registration_id"] != "reg-1" {
		t.Errorf("log entry = %v, want event and registration_id", entry)
	}
}

func TestLogSink_PrefersContextLogger(t *testing.T) {
	t.Parallel()

	var fallback, scoped bytes.Buffer
	sink := analytics.NewLogSink(slog.New(slog.NewJSONHandler(&fallback, nil)))

	ctx := logging.WithLogger(context.Background(), slog.New(slog.NewJSONHandler(&scoped, nil)))
	if err := sink.Record(ctx, testEvent()); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	if fallback.Len() != 0 {
		t.Errorf("fallback logger written to: %q", fallback.String())
	}
	if scoped.Len() == 0 {
		t.Error("context logger not used")
	}
}

func TestMetricsSink_CountsEvents(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(ctx) })

	metrics, err := telemetry.NewMetrics(mp, "test-service")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}
	sink := analytics.NewMetricsSink(metrics)

	for range 2 {
		if err := sink.Record(ctx, testEvent()); err != nil {
			t.Fatalf("Record() error = %v", err)
		}
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "registration.events.total" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("Data = %T, want metricdata.Sum[int64]", m.Data)
			}
			for _, dp := range sum.DataPoints {
				if v, _ := dp.Attributes.Value(telemetry.AttrEvent); v.AsString() != "register_submit" {
					t.Errorf("event attribute = %q, want register_submit", v.AsString())
				}
				total += dp.Value
			}
		}
	}
	if total != 2 {
		t.Errorf("registration.events.total = %d, want 2", total)
	}
}

func TestMetricsSink_NilMetrics(t *testing.T) {
	t.Parallel()

	sink := analytics.NewMetricsSink(nil)
	if err := sink.Record(context.Background(), testEvent()); err == nil {
		t.Error("Record() error = nil, want error for nil instruments")
	}
}
