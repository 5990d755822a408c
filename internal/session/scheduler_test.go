package session

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArm_FiresAfterDuration(t *testing.T) {
	var fired atomic.Int32
	s := &ExpiryScheduler{}

	s.Arm(10*time.Millisecond, func() { fired.Add(1) })

	require.Eventually(t, func() bool { return fired.Load() == 1 },
		time.Second, time.Millisecond)
}

func TestArm_NonPositiveDurationFiresImmediately(t *testing.T) {
	for _, d := range []time.Duration{0, -time.Hour} {
		var fired atomic.Int32
		s := &ExpiryScheduler{}

		s.Arm(d, func() { fired.Add(1) })

		require.Eventuallyf(t, func() bool { return fired.Load() == 1 },
			time.Second, time.Millisecond, "duration %v must expire now", d)
	}
}

func TestArm_ReplacesPendingCallback(t *testing.T) {
	var first, second atomic.Int32
	s := &ExpiryScheduler{}

	s.Arm(time.Hour, func() { first.Add(1) })
	s.Arm(10*time.Millisecond, func() { second.Add(1) })

	require.Eventually(t, func() bool { return second.Load() == 1 },
		time.Second, time.Millisecond)
	assert.Equal(t, int32(0), first.Load())
}

func TestCancel_DisarmsAndIsIdempotent(t *testing.T) {
	var fired atomic.Int32
	s := &ExpiryScheduler{}

	s.Arm(20*time.Millisecond, func() { fired.Add(1) })
	s.Cancel()
	s.Cancel() // second cancel is a no-op

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
	assert.False(t, s.Armed())
}

func TestCancel_WithoutArmIsNoop(t *testing.T) {
	s := &ExpiryScheduler{}
	s.Cancel()
	assert.False(t, s.Armed())
}
