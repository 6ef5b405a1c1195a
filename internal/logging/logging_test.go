package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestPreInitLoggerUsesConfiguredHandler(t *testing.T) {
	logger := L("collector")

	var buf bytes.Buffer
	Init("text", "info", &buf)

	logger.Info("enumeration complete", "bundles", 12)

	out := buf.String()
	if !strings.Contains(out, "msg=\"enumeration complete\"") {
		t.Fatalf("expected message in output, got: %s", out)
	}
	if !strings.Contains(out, "component=collector") {
		t.Fatalf("expected component field, got: %s", out)
	}
	if !strings.Contains(out, "bundles=12") {
		t.Fatalf("expected bundles field, got: %s", out)
	}
}

func TestPreInitLoggerRespectsConfiguredLevel(t *testing.T) {
	logger := L("collector")

	var buf bytes.Buffer
	Init("text", "warn", &buf)

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info log should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, "shown") {
		t.Fatalf("warn log should be emitted: %s", out)
	}
}

func TestInitJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	Init("json", "info", &buf)

	L("engine").Info("bundle uninstalled", KeyBundle, "sdk|8.0.100|x64")

	out := buf.String()
	if !strings.Contains(out, `"component":"engine"`) {
		t.Fatalf("expected JSON component field, got: %s", out)
	}
	if !strings.Contains(out, `"bundle":"sdk|8.0.100|x64"`) {
		t.Fatalf("expected JSON bundle field, got: %s", out)
	}
}
