package zap

import (
	"errors"
	"testing"

	"github.com/unkn0wn-root/utf8codec"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLevelsAndFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := New(zap.New(core))

	l.Debug("d", nil)
	l.Info("i", utf8codec.Fields{"key": "parse:ns:1"})
	l.Warn("w", utf8codec.Fields{"err": errors.New("down"), "b": 2})
	l.Error("e", utf8codec.Fields{})

	entries := logs.AllUntimed()
	if len(entries) != 4 {
		t.Fatalf("got %d entries", len(entries))
	}
	wantLevels := []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}
	for i, e := range entries {
		if e.Level != wantLevels[i] {
			t.Fatalf("entry %d level %v, want %v", i, e.Level, wantLevels[i])
		}
		if e.LoggerName != "utf8codec" {
			t.Fatalf("entry %d logger name %q", i, e.LoggerName)
		}
	}
	if got := entries[1].ContextMap()["key"]; got != "parse:ns:1" {
		t.Fatalf("key field = %v", got)
	}
	warn := entries[2].ContextMap()
	if warn["err"] != "down" {
		t.Fatalf("err field = %v", warn["err"])
	}
	// sorted order: b before err
	if entries[2].Context[0].Key != "b" {
		t.Fatalf("fields not sorted: %v", entries[2].Context)
	}
}
