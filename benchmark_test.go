package dlog

import (
	"io"
	"testing"

	"github.com/willibrandon/dlog/core"
	"github.com/willibrandon/dlog/sinks"
)

// discardSink is a sink that discards all entries (for benchmarking)
type discardSink struct{}

func (discardSink) Emit(*core.Entry) {}
func (discardSink) Close() error     { return nil }

// Benchmark a plain message on an enabled channel
func BenchmarkWrite(b *testing.B) {
	reg := New(WithSink(discardSink{}), WithLevels(core.LevelsAll))
	d := reg.Domain("bench")

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		d.Info("steady state reached")
	}
}

// Benchmark a message with printf arguments
func BenchmarkWriteFormatted(b *testing.B) {
	reg := New(WithSink(discardSink{}), WithLevels(core.LevelsAll))
	d := reg.Domain("bench")

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		d.Error("command %s failed after %d retries", "READ(16)", 3)
	}
}

// Benchmark a write on a disabled channel (should be nearly free)
func BenchmarkWriteDisabled(b *testing.B) {
	reg := New(WithSink(discardSink{}), WithLevels(core.LevelsDefault))
	d := reg.Domain("bench")

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		d.Dump("page %d contents: %x", i, i)
	}
}

// Benchmark the enabled check alone
func BenchmarkEnabled(b *testing.B) {
	reg := New(WithSink(discardSink{}), WithLevels(core.LevelsDefault))
	d := reg.Domain("bench")

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if d.Enabled(core.DumpLevel) {
			b.Fatal("dump unexpectedly enabled")
		}
	}
}

// Benchmark concurrent writes through one domain
func BenchmarkWriteParallel(b *testing.B) {
	reg := New(WithSink(discardSink{}), WithLevels(core.LevelsAll))
	d := reg.Domain("bench")

	b.ResetTimer()
	b.ReportAllocs()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			d.Info("parallel message")
		}
	})
}

// Benchmark console rendering without terminal I/O
func BenchmarkConsoleSink(b *testing.B) {
	reg := New(
		WithSink(sinks.NewConsoleSinkWithWriter(io.Discard)),
		WithLevels(core.LevelsAll),
	)
	d := reg.Domain("bench")

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		d.Info("user %d logged in", 123)
	}
}

// Benchmark the configuration propagation pass over a populated registry
func BenchmarkApply(b *testing.B) {
	reg := New(WithSink(discardSink{}))
	for _, name := range []string{"app", "hdd", "ata", "scsi", "nvme", "smartctl", "gui", "scan"} {
		reg.Domain(name)
	}
	cfg := Config{Levels: core.LevelsAll, Color: true}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		reg.Apply(cfg)
	}
}

// Benchmark repeated domain lookup of an existing domain
func BenchmarkDomainLookup(b *testing.B) {
	reg := New(WithSink(discardSink{}))
	reg.Domain("hw")

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = reg.Domain("hw")
	}
}
