package logging

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	saved := baseLogger
	baseLogger = log.New(&buf, "", 0)
	t.Cleanup(func() { baseLogger = saved })
	return &buf
}

func TestLevelFiltering(t *testing.T) {
	buf := captureOutput(t)

	SetLevel("warn")
	defer SetLevel("info")

	Debugf("hidden debug")
	Infof("hidden info")
	Warnf("visible warn")
	Errorf("visible error")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("messages below warn leaked through: %s", out)
	}
	if !strings.Contains(out, "[WARN] visible warn") || !strings.Contains(out, "[ERROR] visible error") {
		t.Fatalf("expected warn and error lines, got: %s", out)
	}
}

func TestInfof_NoDoubleFormattingWithPercent(t *testing.T) {
	buf := captureOutput(t)

	SetLevel("info")

	// Messages already containing percent signs must pass through untouched
	// when no args are supplied.
	Infof("forward done (100.0% of 240 samples)")

	out := buf.String()
	if !strings.Contains(out, "(100.0% of 240 samples)") {
		t.Fatalf("log output missing expected percent segment: %s", out)
	}
	if strings.Contains(out, "(MISSING)") {
		t.Fatalf("log output shows fmt artifact: %s", out)
	}
}

func TestSetLevel_UnknownIgnored(t *testing.T) {
	SetLevel("info")
	SetLevel("chatty")
	if getLevel() != LevelInfo {
		t.Fatalf("unknown level changed state: %v", getLevel())
	}
}
