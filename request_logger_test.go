package mailapi

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestStdLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := &StdLogger{Logger: log.New(&buf, "", 0)}

	logger.Errorf("status %d", 400)
	logger.Warnf("slow")
	logger.Debugf("hidden")

	out := buf.String()

	if !strings.Contains(out, "mailapi ERROR: status 400") {
		t.Errorf("expected error line, got %q", out)
	}

	if !strings.Contains(out, "mailapi WARN: slow") {
		t.Errorf("expected warn line, got %q", out)
	}

	if strings.Contains(out, "hidden") {
		t.Errorf("expected debug output to be suppressed, got %q", out)
	}
}

func TestStdLogger_Verbose(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := &StdLogger{Logger: log.New(&buf, "", 0), Verbose: true}

	logger.Debugf("POST %s", "/email")

	if !strings.Contains(buf.String(), "mailapi DEBUG: POST /email") {
		t.Errorf("expected debug line, got %q", buf.String())
	}
}

func TestNoopLogger(t *testing.T) {
	t.Parallel()

	var logger RequestLogger = &NoopLogger{}

	logger.Errorf("ignored %d", 1)
	logger.Warnf("ignored")
	logger.Debugf("ignored")
}
