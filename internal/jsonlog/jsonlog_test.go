package jsonlog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"
)

func TestJSONLogger(t *testing.T) {
	t.Run("below minimum level", func(t *testing.T) {
		var logBuffer bytes.Buffer
		l := New(&logBuffer, LevelError)
		l.PrintInfo("should be discarded", nil)
		if logBuffer.Len() != 0 {
			t.Errorf("expected no output below minimum level; got %q", logBuffer.String())
		}
	})

	t.Run("INFO level", func(t *testing.T) {
		var logBuffer bytes.Buffer
		l := New(&logBuffer, LevelInfo)
		l.PrintInfo("starting server", map[string]string{
			"addr": ":4000",
			"env":  "development",
		})
		var entry struct {
			Level      string            `json:"level"`
			Message    string            `json:"message"`
			Properties map[string]string `json:"properties"`
			Trace      string            `json:"trace"`
		}
		if err := json.Unmarshal(logBuffer.Bytes(), &entry); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if entry.Level != "INFO" {
			t.Errorf("expected level INFO; got %s", entry.Level)
		}
		if entry.Message != "starting server" {
			t.Errorf("expected message %q; got %q", "starting server", entry.Message)
		}
		if entry.Properties["addr"] != ":4000" {
			t.Errorf("expected addr property %q; got %q", ":4000", entry.Properties["addr"])
		}
		if entry.Trace != "" {
			t.Errorf("expected no trace at INFO level; got one")
		}
	})

	t.Run("ERROR level includes trace", func(t *testing.T) {
		var logBuffer bytes.Buffer
		l := New(&logBuffer, LevelInfo)
		l.PrintError(fmt.Errorf("database connection lost"), nil)
		var entry struct {
			Level string `json:"level"`
			Trace string `json:"trace"`
		}
		if err := json.Unmarshal(logBuffer.Bytes(), &entry); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if entry.Level != "ERROR" {
			t.Errorf("expected level ERROR; got %s", entry.Level)
		}
		if entry.Trace == "" {
			t.Errorf("expected a stack trace at ERROR level")
		}
	})

	t.Run("one line per entry", func(t *testing.T) {
		var logBuffer bytes.Buffer
		l := New(&logBuffer, LevelInfo)
		l.PrintInfo("first", nil)
		l.PrintInfo("second", nil)
		lines := bytes.Count(logBuffer.Bytes(), []byte("\n"))
		if lines != 2 {
			t.Errorf("expected 2 log lines; got %d", lines)
		}
	})
}
