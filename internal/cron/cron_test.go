package cron

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Run("should accept standard and descriptor schedules", func(t *testing.T) {
		assert.NoError(t, Validate(string(EveryMinute)))
		assert.NoError(t, Validate(string(EveryHour)))
		assert.NoError(t, Validate(string(Every5Seconds)))
	})

	t.Run("should reject a malformed schedule", func(t *testing.T) {
		err := Validate("every now and then")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), `invalid schedule "every now and then"`)
	})
}

func TestScheduler(t *testing.T) {
	t.Run("should run a scheduled task", func(t *testing.T) {
		var runs atomic.Int32
		scheduler := New(nil)

		_, err := scheduler.Add("@every 10ms", func() { runs.Add(1) })
		require.NoError(t, err)

		scheduler.Start()
		assert.Eventually(t, func() bool { return runs.Load() > 0 }, 3*time.Second, 10*time.Millisecond)
		scheduler.Stop()
	})

	t.Run("should not run a removed task", func(t *testing.T) {
		var runs atomic.Int32
		scheduler := New(time.UTC)

		id, err := scheduler.Add("@every 10ms", func() { runs.Add(1) })
		require.NoError(t, err)
		scheduler.Remove(id)

		scheduler.Start()
		time.Sleep(50 * time.Millisecond)
		scheduler.Stop()

		assert.Equal(t, int32(0), runs.Load())
	})

	t.Run("should return an error for an invalid schedule", func(t *testing.T) {
		scheduler := New(time.UTC)

		_, err := scheduler.Add("not a schedule", func() {})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to schedule task")
	})
}
