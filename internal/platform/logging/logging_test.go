package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/jsamuelsen11/registration-flow/internal/platform/logging"
)

// --- New tests ---

func TestNew_FormatAndLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		level    string
		format   string
		log      func(*slog.Logger)
		contains []string
		excludes []string
		empty    bool
	}{
		{
			name: "json", level: "info", format: "json",
			log:      func(l *slog.Logger) { l.Info("flow started") },
			contains: []string{`"level":"INFO"`, `"msg":"flow started"`},
			excludes: []string{`"source"`},
		},
		{
			name: "text", level: "info", format: "text",
			log:      func(l *slog.Logger) { l.Info("flow started") },
			contains: []string{"level=INFO", "flow started"},
		},
		{
			name: "unknown format falls back to json", level: "info", format: "xml",
			log:      func(l *slog.Logger) { l.Info("flow started") },
			contains: []string{`"level":"INFO"`},
		},
		{
			name: "debug includes source", level: "debug", format: "json",
			log:      func(l *slog.Logger) { l.Debug("screen changed") },
			contains: []string{`"source"`, `"msg":"screen changed"`},
		},
		{
			name: "level is case insensitive", level: "DEBUG", format: "json",
			log:      func(l *slog.Logger) { l.Debug("screen changed") },
			contains: []string{`"level":"DEBUG"`},
		},
		{
			name: "info filters debug", level: "info", format: "json",
			log:   func(l *slog.Logger) { l.Debug("hidden") },
			empty: true,
		},
		{
			name: "error filters warn", level: "error", format: "json",
			log:   func(l *slog.Logger) { l.Warn("hidden") },
			empty: true,
		},
		{
			name: "unknown level filters debug", level: "verbose", format: "json",
			log:   func(l *slog.Logger) { l.Debug("hidden") },
			empty: true,
		},
		{
			name: "unknown level keeps info", level: "verbose", format: "json",
			log:      func(l *slog.Logger) { l.Info("shown") },
			contains: []string{`"msg":"shown"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			tt.log(logging.New(tt.level, tt.format, &buf))
			out := buf.String()

			if tt.empty {
				if out != "" {
					t.Errorf("output = %q, want nothing", out)
				}
				return
			}
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("output = %q, want it to contain %q", out, want)
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(out, unwanted) {
					t.Errorf("output = %q, want no %q", out, unwanted)
				}
			}
		})
	}
}

func TestIsSensitiveHeader(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"Authorization":       true,
		"proxy-authorization": true,
		"X-API-Key":           true,
		"Cookie":              true,
		"Set-Cookie":          true,
		"X-Auth-Token":        true,
		"X-Client-Secret":     true,
		"Content-Type":        false,
		"X-Request-ID":        false,
		"Accept":              false,
	}

	for name, want := range tests {
		if got := logging.IsSensitiveHeader(name); got != want {
			t.Errorf("IsSensitiveHeader(%q) = %v, want %v", name, got, want)
		}
	}
}

// --- Context tests ---

func TestFromContext_WithLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New("info", "json", &buf)

	ctx := logging.WithLogger(context.Background(), logger)
	got := logging.FromContext(ctx)

	if got != logger {
		t.Error("FromContext returned different logger than the one stored with WithLogger")
	}
}

func TestFromContext_NoLogger(t *testing.T) {
	t.Parallel()

	got := logging.FromContext(context.Background())

	if got != slog.Default() {
		t.Error("FromContext on bare context returned something other than slog.Default()")
	}
}

func TestFromContextOr(t *testing.T) {
	t.Parallel()

	fallback := slog.New(slog.DiscardHandler)
	stored := slog.New(slog.DiscardHandler)

	if got := logging.FromContextOr(context.Background(), fallback); got != fallback {
		t.Error("FromContextOr on bare context did not return the fallback")
	}
	if got := logging.FromContextOr(context.Background(), nil); got != slog.Default() {
		t.Error("FromContextOr with nil fallback did not return slog.Default()")
	}

	ctx := logging.WithLogger(context.Background(), stored)
	if got := logging.FromContextOr(ctx, fallback); got != stored {
		t.Error("FromContextOr did not prefer the context logger")
	}
}

func TestWithLogger_OverwritesPrevious(t *testing.T) {
	t.Parallel()

	var buf1, buf2 bytes.Buffer
	logger1 := logging.New("info", "json", &buf1)
	logger2 := logging.New("debug", "json", &buf2)

	ctx := logging.WithLogger(context.Background(), logger1)
	ctx = logging.WithLogger(ctx, logger2)

	got := logging.FromContext(ctx)
	if got != logger2 {
		t.Error("FromContext returned first logger, want second (overwritten) logger")
	}
}

// --- Redaction tests ---

func TestNew_RedactsAuthorizationFieldName(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New("info", "json", &buf)

	logger.Info("request", slog.String("authorization", "Bearer supersecret-token"))

	out := buf.String()
	if strings.Contains(out, "supersecret-token") {
		t.Error("log output contains raw token, want it redacted")
	}
	if !strings.Contains(out, "[REDACTED]") {
		t.Error("log output missing [REDACTED] marker")
	}
}

func TestNew_RedactsPasswordFieldName(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New("info", "json", &buf)

	logger.Info("login", slog.String("password", "hunter2"))

	out := buf.String()
	if strings.Contains(out, "hunter2") {
		t.Error("log output contains raw password, want it redacted")
	}
	if !strings.Contains(out, "[REDACTED]") {
		t.Error("log output missing [REDACTED] marker")
	}
}

func TestNew_RedactsRegistrationSecrets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		attr  slog.Attr
		value string
	}{
		{name: "confirm password", attr: slog.String("confirm_password", "Passw0rd!"), value: "Passw0rd!"},
		{name: "password hash", attr: slog.String("password_hash", "irrelevant-hash"), value: "irrelevant-hash"},
		{name: "data url field", attr: slog.String("data_url", "data:image/png;base64,AAAA"), value: "AAAA"},
		{
			name:  "bcrypt value in free text",
			attr:  slog.String("note", "$2a$10$abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0"),
			value: "abcdefghijklmnopqrstuvwxyz",
		},
		{
			name:  "data url in free text",
			attr:  slog.String("detail", "data:image/jpeg;base64,QUJDREVGR0hJSktMTU5PUFFSU1RVVldY"),
			value: "QUJDREVGR0hJSktMTU5PUFFSU1RVVldY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := logging.New("info", "json", &buf)

			logger.Info("registration", tt.attr)

			if strings.Contains(buf.String(), tt.value) {
				t.Errorf("log output = %q, want %q redacted", buf.String(), tt.value)
			}
		})
	}
}

func TestNew_DefenseInDepthBearerRegex(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New("info", "json", &buf)

	logger.Info("debug trace", slog.String("raw_header", "Bearer eyJhbGciOiJSUzI1NiJ9"))

	out := buf.String()
	if strings.Contains(out, "eyJhbGciOiJSUzI1NiJ9") {
		t.Error("log output contains raw Bearer token, want it redacted by regex")
	}
	if !strings.Contains(out, "[REDACTED]") {
		t.Error("log output missing [REDACTED] marker")
	}
}

func TestNew_DoesNotRedactNonSensitiveFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New("info", "json", &buf)

	logger.Info("event",
		slog.String("user_id", "usr-123"),
		slog.String("path", "/api/v1/registrations"),
	)

	out := buf.String()
	if !strings.Contains(out, "usr-123") {
		t.Error("log output missing user_id, non-sensitive field should not be redacted")
	}
	if !strings.Contains(out, "/api/v1/registrations") {
		t.Error("log output missing path, non-sensitive field should not be redacted")
	}
}
