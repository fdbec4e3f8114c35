package dlog

import (
	"log/slog"

	"github.com/willibrandon/dlog/internal/handler"
)

// NewSlogLogger creates a new slog.Logger backed by a registry domain
func NewSlogLogger(r *Registry, domain string) *slog.Logger {
	return slog.New(handler.NewSlogHandler(r.Domain(domain)))
}

// AsSlogHandler returns the domain as an slog.Handler
func (d *Domain) AsSlogHandler() slog.Handler {
	return handler.NewSlogHandler(d)
}
