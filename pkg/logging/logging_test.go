package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/JaimeStill/country-app/pkg/logging"
)

func TestNew_Formats(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&logging.Config{Level: logging.LevelInfo, Format: logging.FormatJSON}, &buf)

	logger.Info("route resolved", "route", "firstview")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v: %s", err, buf.String())
	}
	if record["route"] != "firstview" {
		t.Errorf("route = %v, want firstview", record["route"])
	}

	buf.Reset()
	logger = logging.New(&logging.Config{Level: logging.LevelInfo, Format: logging.FormatText}, &buf)
	logger.Info("route resolved", "route", "home")

	if !strings.Contains(buf.String(), "route=home") {
		t.Errorf("text output = %q, want route=home", buf.String())
	}
}

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&logging.Config{Level: logging.LevelWarn, Format: logging.FormatText}, &buf)

	logger.Info("hidden")
	logger.Warn("shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Error("info record written at warn level")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Error("warn record missing")
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		level   logging.Level
		want    slog.Level
		wantErr bool
	}{
		{logging.LevelDebug, slog.LevelDebug, false},
		{logging.LevelInfo, slog.LevelInfo, false},
		{logging.LevelWarn, slog.LevelWarn, false},
		{logging.LevelError, slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			if got := tt.level.ToSlogLevel(); got != tt.want {
				t.Errorf("ToSlogLevel() = %v, want %v", got, tt.want)
			}
			if err := tt.level.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Finalize(t *testing.T) {
	env := &logging.Env{Level: "TEST_LOGGING_LEVEL", Format: "TEST_LOGGING_FORMAT"}
	t.Setenv("TEST_LOGGING_FORMAT", "json")

	var cfg logging.Config
	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	if cfg.Level != logging.LevelInfo {
		t.Errorf("Level = %q, want info", cfg.Level)
	}
	if cfg.Format != logging.FormatJSON {
		t.Errorf("Format = %q, want json", cfg.Format)
	}

	t.Setenv("TEST_LOGGING_LEVEL", "loud")
	cfg = logging.Config{}
	if err := cfg.Finalize(env); err == nil {
		t.Error("Finalize() error = nil for invalid level")
	}
}

func TestNew_AddSource(t *testing.T) {
	env := &logging.Env{AddSource: "TEST_LOGGING_ADD_SOURCE"}
	t.Setenv("TEST_LOGGING_ADD_SOURCE", "true")

	cfg := logging.Config{Format: logging.FormatJSON}
	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	if !cfg.AddSource {
		t.Fatal("AddSource = false, want true from env")
	}

	var buf bytes.Buffer
	logging.New(&cfg, &buf).Info("route resolved")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v: %s", err, buf.String())
	}
	if _, ok := record[slog.SourceKey]; !ok {
		t.Errorf("record has no %q attribute: %s", slog.SourceKey, buf.String())
	}
}

func TestFormat_Validate(t *testing.T) {
	if err := logging.FormatJSON.Validate(); err != nil {
		t.Errorf("Validate(json) error = %v", err)
	}

	err := logging.Format("xml").Validate()
	if err == nil {
		t.Fatal("Validate(xml) error = nil")
	}
	if !strings.Contains(err.Error(), "json, text") {
		t.Errorf("error = %q, want it to list json, text", err)
	}
}

func TestConfig_Merge(t *testing.T) {
	cfg := logging.Config{Level: logging.LevelInfo, Format: logging.FormatText}
	cfg.Merge(&logging.Config{Level: logging.LevelDebug})

	if cfg.Level != logging.LevelDebug {
		t.Errorf("Level = %q, want debug", cfg.Level)
	}
	if cfg.Format != logging.FormatText {
		t.Errorf("Format = %q, want text", cfg.Format)
	}
}
