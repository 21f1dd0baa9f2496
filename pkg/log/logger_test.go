package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func captureLogs(t *testing.T, level Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetSink(&buf)
	SetLevel(level)
	t.Cleanup(func() {
		SetSink(os.Stdout)
		SetLevel(Notice)
	})
	return &buf
}

func TestSetLevel_FiltersBelowLevel(t *testing.T) {
	buf := captureLogs(t, Notice)
	logger := New("test")

	logger.Infof("hidden %d", 1)
	logger.Noticef("shown %d", 2)
	logger.Errorf("shown %d", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Expected info to be filtered, got %q", out)
	}
	for _, want := range []string{"shown 2", "shown 3", "[test]"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output, got %q", want, out)
		}
	}
}

func TestPrinter(t *testing.T) {
	tests := []struct {
		name    string
		sink    Level
		printer Level
		visible bool
	}{
		{"notice at notice", Notice, Notice, true},
		{"debug at notice", Notice, Debug, false},
		{"debug at debug", Debug, Debug, true},
		{"warning at info", Info, Warning, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t, tt.sink)
			Printer(New("printer"), tt.printer).Printf("kd-tree: %d nodes", 7)

			if got := strings.Contains(buf.String(), "kd-tree: 7 nodes"); got != tt.visible {
				t.Errorf("Expected visible=%v, got output %q", tt.visible, buf.String())
			}
		})
	}
}
