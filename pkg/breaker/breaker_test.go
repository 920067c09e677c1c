package breaker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Egor213/LogiWatch/pkg/breaker"
	"github.com/stretchr/testify/assert"
)

func TestBreaker_OpensAfterThreshold(t *testing.T) {
	b := breaker.New("store", breaker.WithFailureThreshold(2), breaker.WithTimeout(time.Hour))
	boom := errors.New("db down")
	calls := 0
	fail := func() error {
		calls++
		return boom
	}

	assert.ErrorIs(t, b.Do(fail), boom)
	assert.ErrorIs(t, b.Do(fail), boom)

	err := b.Do(fail)
	assert.True(t, breaker.IsOpen(err))
	assert.Equal(t, 2, calls)
	assert.Equal(t, "open", b.State())
}

func TestBreaker_PassesThroughSuccess(t *testing.T) {
	b := breaker.New("store")

	assert.NoError(t, b.Do(func() error { return nil }))
	assert.Equal(t, "closed", b.State())
}

func TestBreaker_NilCallsThrough(t *testing.T) {
	var b *breaker.Breaker
	called := false

	assert.NoError(t, b.Do(func() error {
		called = true
		return nil
	}))
	assert.True(t, called)
}
