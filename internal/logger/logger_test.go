package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestNewRunID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id := NewRunID()
		if len(id) != 8 {
			t.Fatalf("NewRunID() = %q, want 8 characters", id)
		}
		seen[id] = true
	}
	if len(seen) < 45 {
		t.Errorf("expected mostly unique IDs, got %d distinct of 50", len(seen))
	}
}

func TestRunIDContext(t *testing.T) {
	ctx := context.Background()
	if got := runIDFromContext(ctx); got != "" {
		t.Errorf("runIDFromContext(empty) = %q", got)
	}
	ctx = WithRunID(ctx, "abc12345")
	if got := runIDFromContext(ctx); got != "abc12345" {
		t.Errorf("runIDFromContext = %q, want abc12345", got)
	}
}

func TestForRunAddsField(t *testing.T) {
	var buf bytes.Buffer
	orig := log.Logger
	defer func() { log.Logger = orig }()
	log.Logger = zerolog.New(&buf)

	l := ForRun(WithRunID(context.Background(), "run-1"))
	l.Info().Msg("hello")
	if !strings.Contains(buf.String(), `"runId":"run-1"`) {
		t.Errorf("log line missing runId: %s", buf.String())
	}
}

func TestInitLevel(t *testing.T) {
	orig := log.Logger
	defer func() {
		log.Logger = orig
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}()

	Init("warn", false)
	if got := zerolog.GlobalLevel(); got != zerolog.WarnLevel {
		t.Errorf("GlobalLevel = %v, want warn", got)
	}
	Init("nonsense", false)
	if got := zerolog.GlobalLevel(); got != zerolog.InfoLevel {
		t.Errorf("GlobalLevel = %v, want info fallback", got)
	}
}
