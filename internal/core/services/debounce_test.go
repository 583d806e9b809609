package services_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/easyboard/easyboard-go/internal/core/services"
)

func TestDebouncer_Schedule_RunsAfterDelay(t *testing.T) {
	d := services.NewDebouncer(20 * time.Millisecond)
	defer d.Stop()

	var calls atomic.Int32
	d.Schedule(func() { calls.Add(1) })

	assert.Eventually(t, func() bool {
		return calls.Load() == 1
	}, time.Second, 5*time.Millisecond)
}

func TestDebouncer_Schedule_ReplacesPending(t *testing.T) {
	d := services.NewDebouncer(50 * time.Millisecond)
	defer d.Stop()

	var calls atomic.Int32
	for i := 0; i < 5; i++ {
		d.Schedule(func() { calls.Add(1) })
		time.Sleep(5 * time.Millisecond)
	}

	assert.Eventually(t, func() bool {
		return calls.Load() == 1
	}, time.Second, 5*time.Millisecond)

	// Give a replaced timer a chance to misfire before checking the total.
	time.Sleep(100 * time.Millisecond)
	assert.EqualValues(t, 1, calls.Load())
}

func TestDebouncer_Flush_RunsImmediatelyAndCancelsPending(t *testing.T) {
	d := services.NewDebouncer(time.Hour)
	defer d.Stop()

	var pending, flushed atomic.Int32
	d.Schedule(func() { pending.Add(1) })
	d.Flush(func() { flushed.Add(1) })

	assert.EqualValues(t, 1, flushed.Load())

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, pending.Load())
}

func TestDebouncer_Stop_CancelsPending(t *testing.T) {
	d := services.NewDebouncer(20 * time.Millisecond)

	var calls atomic.Int32
	d.Schedule(func() { calls.Add(1) })
	d.Stop()

	time.Sleep(100 * time.Millisecond)
	assert.Zero(t, calls.Load())
}

func TestDebouncer_Stop_WithoutSchedule(t *testing.T) {
	d := services.NewDebouncer(20 * time.Millisecond)
	d.Stop()
	d.Stop()
}
