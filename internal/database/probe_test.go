package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProbeCheckAppliesDeadline(t *testing.T) {
	var deadline time.Time
	p := Probe{Name: "fake", Ping: func(ctx context.Context) error {
		deadline, _ = ctx.Deadline()
		return nil
	}}

	assert.NoError(t, p.Check(context.Background()))
	assert.WithinDuration(t, time.Now().Add(pingTimeout), deadline, time.Second)
}

func TestProbeCheckReturnsPingError(t *testing.T) {
	down := errors.New("connection refused")
	p := Probe{Name: "fake", Ping: func(context.Context) error { return down }}
	assert.ErrorIs(t, p.Check(context.Background()), down)
}
