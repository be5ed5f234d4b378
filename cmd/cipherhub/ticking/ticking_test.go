package ticking_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/fx/fxtest"

	"github.com/sergeii/cipherhub/cmd/cipherhub/ticking"
)

func TestBind(t *testing.T) {
	ctx := context.TODO()
	clock := clockwork.NewFakeClock()
	logger := zerolog.Nop()
	lc := fxtest.NewLifecycle(t)

	var ticks atomic.Int32
	ticking.Bind(lc, clock, time.Minute, "tester", &logger, func(context.Context) {
		ticks.Add(1)
	})

	lc.RequireStart()
	assert.NoError(t, clock.BlockUntilContext(ctx, 1))

	clock.Advance(time.Second * 59)
	assert.Equal(t, int32(0), ticks.Load())

	clock.Advance(time.Second)
	assert.Eventually(t, func() bool {
		return ticks.Load() == 1
	}, time.Second, time.Millisecond*10)

	clock.Advance(time.Minute)
	assert.Eventually(t, func() bool {
		return ticks.Load() == 2
	}, time.Second, time.Millisecond*10)

	lc.RequireStop()

	clock.Advance(time.Minute * 10)
	<-time.After(time.Millisecond * 50)
	assert.Equal(t, int32(2), ticks.Load())
}
