package sinks

import (
	"io"

	"github.com/willibrandon/dlog/core"
)

// formatBuffer is a reusable buffer for formatting without allocations.
type formatBuffer struct {
	buf [256]byte
}

// appendPlain formats an entry into the buffer without color codes.
// Which parts appear is gated by the entry's format flags, mirroring
// console output.
func (fb *formatBuffer) appendPlain(entry *core.Entry) []byte {
	b := fb.buf[:0]

	// Format: [YYYY-MM-DD HH:MM:SS.mmm] [LVL] (domain) message
	if entry.Format.Has(core.FormatTimestamp) {
		b = append(b, '[')
		b = entry.Timestamp.AppendFormat(b, "2006-01-02 15:04:05.000")
		b = append(b, ']', ' ')
	}
	if entry.Format.Has(core.FormatLevel) {
		b = append(b, '[')
		b = append(b, formatLevel(entry.Level)...)
		b = append(b, ']', ' ')
	}
	if entry.Format.Has(core.FormatDomain) && entry.Domain != "" {
		b = append(b, '(')
		b = append(b, entry.Domain...)
		b = append(b, ')', ' ')
	}
	if entry.Format.Has(core.FormatIndent) {
		for i := 0; i < entry.Indent; i++ {
			b = append(b, ' ', ' ')
		}
	}
	b = append(b, entry.Message...)
	b = append(b, '\n')

	return b
}

// writePlain writes a plain-formatted entry to a writer without allocations.
func writePlain(w io.Writer, entry *core.Entry) error {
	var fb formatBuffer
	formatted := fb.appendPlain(entry)
	_, err := w.Write(formatted)
	return err
}
