package dlog

import (
	"testing"

	"github.com/willibrandon/dlog/core"
	"github.com/willibrandon/dlog/sinks"
)

func newTestRegistry() (*Registry, *sinks.MemorySink) {
	memory := sinks.NewMemorySink()
	reg := New(WithMemory(memory), WithLevels(core.LevelsAll))
	return reg, memory
}

func TestDomainLevelMethods(t *testing.T) {
	tests := []struct {
		name  string
		log   func(d *Domain)
		level core.Level
	}{
		{"dump", func(d *Domain) { d.Dump("message") }, core.DumpLevel},
		{"info", func(d *Domain) { d.Info("message") }, core.InfoLevel},
		{"warn", func(d *Domain) { d.Warn("message") }, core.WarnLevel},
		{"error", func(d *Domain) { d.Error("message") }, core.ErrorLevel},
		{"fatal", func(d *Domain) { d.Fatal("message") }, core.FatalLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, memory := newTestRegistry()
			tt.log(reg.Domain("hw"))

			if memory.Count() != 1 {
				t.Fatalf("Expected 1 entry, got %d", memory.Count())
			}
			entry := memory.Last()
			if entry.Level != tt.level {
				t.Errorf("Expected level %v, got %v", tt.level, entry.Level)
			}
			if entry.Domain != "hw" {
				t.Errorf("Expected domain hw, got %s", entry.Domain)
			}
			if entry.Message != "message" {
				t.Errorf("Expected message %q, got %q", "message", entry.Message)
			}
		})
	}
}

func TestDomainWriteFormatsArgs(t *testing.T) {
	reg, memory := newTestRegistry()

	reg.Domain("scsi").Error("command %s failed after %d retries", "READ(16)", 3)

	entry := memory.Last()
	if entry == nil {
		t.Fatal("Expected an entry")
	}
	if entry.Message != "command READ(16) failed after 3 retries" {
		t.Errorf("Unexpected message: %q", entry.Message)
	}
}

func TestDomainDisabledChannelDropsEntries(t *testing.T) {
	memory := sinks.NewMemorySink()
	reg := New(WithMemory(memory), WithLevels(core.LevelsDefault))

	d := reg.Domain("hw")
	d.Dump("not emitted")
	d.Info("not emitted")

	if memory.Count() != 0 {
		t.Errorf("Expected no entries from disabled channels, got %d", memory.Count())
	}

	d.Warn("emitted")
	if memory.Count() != 1 {
		t.Errorf("Expected exactly the warn entry, got %d", memory.Count())
	}
}

func TestDomainEnabled(t *testing.T) {
	reg, _ := newTestRegistry()
	reg.Apply(Config{Levels: core.LevelSetOf("error", "fatal"), Color: false})

	d := reg.Domain("hw")
	if d.Enabled(core.DumpLevel) || d.Enabled(core.InfoLevel) || d.Enabled(core.WarnLevel) {
		t.Error("Expected lower levels to be disabled")
	}
	if !d.Enabled(core.ErrorLevel) || !d.Enabled(core.FatalLevel) {
		t.Error("Expected error and fatal to be enabled")
	}
}

func TestDomainWriteUnknownLevel(t *testing.T) {
	reg, memory := newTestRegistry()

	// A combined bit pattern is not a level; the write must be dropped.
	reg.Domain("hw").Write(core.DumpLevel|core.InfoLevel, "ignored")

	if memory.Count() != 0 {
		t.Errorf("Expected no entries for unknown level, got %d", memory.Count())
	}
	if reg.Domain("hw").Channel(core.DumpLevel|core.InfoLevel) != nil {
		t.Error("Expected nil channel for unknown level")
	}
	if reg.Domain("hw").Enabled(core.DumpLevel | core.InfoLevel) {
		t.Error("Expected unknown level to report disabled")
	}
}

func TestDomainEntryCarriesIndent(t *testing.T) {
	reg, memory := newTestRegistry()

	d := reg.Domain("hw")
	reg.Indent()
	reg.Indent()
	d.Info("nested")
	reg.Unindent()
	reg.Unindent()
	d.Info("flat")

	entries := memory.Entries()
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].Indent != 2 {
		t.Errorf("Expected indent 2, got %d", entries[0].Indent)
	}
	if entries[1].Indent != 0 {
		t.Errorf("Expected indent 0, got %d", entries[1].Indent)
	}
}

func TestDomainEntryCarriesFormat(t *testing.T) {
	memory := sinks.NewMemorySink()
	reg := New(
		WithMemory(memory),
		WithLevels(core.LevelsAll),
		WithFormat(core.FormatLevel|core.FormatDomain),
	)

	reg.Domain("hw").Info("check format")

	entry := memory.Last()
	if entry == nil {
		t.Fatal("Expected an entry")
	}
	if entry.Format != core.FormatLevel|core.FormatDomain {
		t.Errorf("Expected format %v, got %v", core.FormatLevel|core.FormatDomain, entry.Format)
	}
}

func TestDomainChannelSinkOverride(t *testing.T) {
	shared := sinks.NewMemorySink()
	override := sinks.NewMemorySink()
	reg := New(WithMemory(shared), WithLevels(core.LevelsAll))

	d := reg.Domain("hw")
	d.Channel(core.ErrorLevel).SetSinks(override)

	d.Info("to shared")
	d.Error("to override")

	if shared.Count() != 1 || shared.Last().Message != "to shared" {
		t.Errorf("Expected only the info entry in the shared sink, got %d", shared.Count())
	}
	if override.Count() != 1 || override.Last().Message != "to override" {
		t.Errorf("Expected only the error entry in the override sink, got %d", override.Count())
	}
}

func TestFatalDoesNotTerminate(t *testing.T) {
	reg, memory := newTestRegistry()

	reg.Domain("hw").Fatal("disk unrecoverable")

	// Reaching this point is the assertion.
	if memory.Count() != 1 {
		t.Errorf("Expected fatal entry to be recorded, got %d", memory.Count())
	}
}
