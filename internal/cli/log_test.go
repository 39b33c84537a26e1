package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		level   log.Level
		debug   bool
		wantOut bool
	}{
		{log.InfoLevel, false, true},
		{log.InfoLevel, true, false},
		{log.DebugLevel, true, true},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		l := newLogger(&buf, tt.level)
		if tt.debug {
			l.Debug("placing", "count", 10)
		} else {
			l.Info("placing", "count", 10)
		}
		if got := buf.Len() > 0; got != tt.wantOut {
			t.Errorf("level %s, debug %v: wrote output = %v, want %v", tt.level, tt.debug, got, tt.wantOut)
		}
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))
	prog.start = prog.start.Add(-1500 * time.Millisecond)
	prog.done("Rendered tree.svg")

	out := buf.String()
	if !strings.Contains(out, "Rendered tree.svg (1.5") {
		t.Errorf("progress line = %q, want message with elapsed time", out)
	}
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	h := newLogHooks(newLogger(&buf, log.DebugLevel))
	ctx := context.Background()

	h.OnLayoutStart(ctx, 10)
	h.OnLayoutComplete(ctx, 10, 2, time.Millisecond)
	h.OnRenderComplete(ctx, "svg", 2048, time.Millisecond, nil)
	h.OnCacheHit(ctx, "artifact")
	h.OnResponse(ctx, "GET", "/tree.svg", 200, time.Millisecond)

	out := buf.String()
	for _, want := range []string{"layout done", "fallbacks=2", "render done", "cache hit", "GET /tree.svg", "status=200"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output lacks %q:\n%s", want, out)
		}
	}
}

func TestLogHooksQuietAtInfo(t *testing.T) {
	var buf bytes.Buffer
	h := newLogHooks(newLogger(&buf, log.InfoLevel))
	h.OnLayoutStart(context.Background(), 3)
	h.OnCacheMiss(context.Background(), "layout")
	if buf.Len() != 0 {
		t.Errorf("debug events leaked at info level: %s", buf.String())
	}
}
