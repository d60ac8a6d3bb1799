package logging

import (
	"bytes"
	"strings"
	"testing"
)

func reset(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		Configure("")
		ForceDebug(false)
	})
}

func TestConfigurePatterns(t *testing.T) {
	reset(t)

	Configure("config,domain.*")

	tests := []struct {
		module string
		want   bool
	}{
		{"config", true},
		{"domain.keys", true},
		{"transport", false},
		{"config.watch", true},
	}
	for _, tt := range tests {
		if got := DebugEnabled(tt.module); got != tt.want {
			t.Errorf("DebugEnabled(%q) = %v, want %v", tt.module, got, tt.want)
		}
	}
}

func TestConfigureBoolean(t *testing.T) {
	reset(t)

	Configure("1")
	if !DebugEnabled("anything") {
		t.Error("DEBUG=1 should enable every module")
	}
	Configure("false")
	if DebugEnabled("anything") {
		t.Error("DEBUG=false should disable every module")
	}
}

func TestExistingLoggerFollowsConfigure(t *testing.T) {
	reset(t)

	var buf bytes.Buffer
	SetOutput(&buf)

	l := For("test.follow")
	l.Debug("hidden")
	Configure("test.*")
	l.Debug("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line written before enabling: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("debug line missing after enabling: %q", out)
	}
}

func TestMaskSecret(t *testing.T) {
	if got := MaskSecret("abcdef123456"); got != "********3456" {
		t.Errorf("MaskSecret() = %q", got)
	}
	if got := MaskSecret("abc"); got != "***" {
		t.Errorf("MaskSecret(short) = %q", got)
	}
	if got := MaskSecret(""); got != "" {
		t.Errorf("MaskSecret(empty) = %q", got)
	}
}
