package dlog

import (
	"github.com/go-logr/logr"

	"github.com/willibrandon/dlog/core"
	"github.com/willibrandon/dlog/internal/handler"
)

// NewLogrLogger creates a new logr.Logger backed by a registry domain.
// WithName on the returned logger switches to dotted subdomains of the
// given domain, so their channels are individually configurable.
func NewLogrLogger(r *Registry, domain string) logr.Logger {
	return logr.New(handler.NewLogrSink(r.Domain(domain), subdomainLookup(r, domain)))
}

// AsLogrSink returns the domain as a logr.LogSink
func (d *Domain) AsLogrSink() logr.LogSink {
	return handler.NewLogrSink(d, subdomainLookup(d.registry, d.name))
}

func subdomainLookup(r *Registry, base string) func(name string) core.DomainLogger {
	return func(name string) core.DomainLogger {
		return r.Domain(base + "." + name)
	}
}
