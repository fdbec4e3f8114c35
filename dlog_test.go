package dlog

import (
	"testing"

	"github.com/willibrandon/dlog/core"
	"github.com/willibrandon/dlog/sinks"
)

func TestPackageLevelLogging(t *testing.T) {
	memory := sinks.NewMemorySink()
	old := Default()
	SetDefault(New(WithMemory(memory), WithLevels(core.LevelsAll)))
	defer SetDefault(old)

	Dump("d")
	Info("i")
	Warn("w")
	Error("e")
	Fatal("f")

	entries := memory.Entries()
	if len(entries) != 5 {
		t.Fatalf("Expected 5 entries, got %d", len(entries))
	}
	for _, entry := range entries {
		if entry.Domain != DefaultDomain {
			t.Errorf("Expected domain %q, got %q", DefaultDomain, entry.Domain)
		}
	}
	if entries[0].Level != core.DumpLevel || entries[4].Level != core.FatalLevel {
		t.Error("Expected entries in dump..fatal order")
	}
}

func TestPackageLevelIndent(t *testing.T) {
	memory := sinks.NewMemorySink()
	old := Default()
	SetDefault(New(WithMemory(memory), WithLevels(core.LevelsAll)))
	defer SetDefault(old)

	Indent()
	Info("indented")
	Unindent()

	if memory.Last().Indent != 1 {
		t.Errorf("Expected indent 1, got %d", memory.Last().Indent)
	}
}

func TestPackageLevelEnabled(t *testing.T) {
	old := Default()
	SetDefault(New(WithMemory(sinks.NewMemorySink()), WithLevels(core.LevelsDefault)))
	defer SetDefault(old)

	if Enabled(core.DumpLevel) {
		t.Error("Expected dump disabled by default")
	}
	if !Enabled(core.ErrorLevel) {
		t.Error("Expected error enabled by default")
	}
}

func TestSetDefaultNilIgnored(t *testing.T) {
	old := Default()
	SetDefault(nil)
	if Default() != old {
		t.Error("Expected SetDefault(nil) to keep the current registry")
	}
}
