package logging

import (
	"errors"
	"testing"
)

func TestInitLogger_Levels(t *testing.T) {
	levels := []Level{LevelDebug, LevelInfo, LevelWarn, LevelError, Level(99)}
	for _, level := range levels {
		InitLogger(level, FormatText)
		if GetLogger() == nil {
			t.Fatalf("logger not initialized for level %d", level)
		}
	}
}

func TestInitLogger_Formats(t *testing.T) {
	InitLogger(LevelInfo, FormatJSON)
	if GetLogger() == nil {
		t.Fatal("JSON logger not initialized")
	}
	InitLogger(LevelInfo, FormatText)
	if GetLogger() == nil {
		t.Fatal("text logger not initialized")
	}
}

func TestHelpersDoNotPanic(t *testing.T) {
	InitLogger(LevelDebug, FormatText)
	Debug("debug", "k", "v")
	Info("info", "k", "v")
	Warn("warn", "k", "v")
	Error("error", "k", "v")
	LoadEvent("style", "score.cnsx", "bytes", 42)
	LoadError("excerpt", "Flute", errors.New("bad part"), "index", 0)
}
