package database

import (
	"context"
	"time"
)

// pingTimeout bounds every connection check, at startup and in /health.
const pingTimeout = 5 * time.Second

// Probe is a named connectivity check reported by the health endpoint.
type Probe struct {
	Name string
	Ping func(ctx context.Context) error
}

// Check runs the probe within pingTimeout.
func (p Probe) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return p.Ping(ctx)
}
