package services_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easyboard/easyboard-go/internal/core/domain"
	"github.com/easyboard/easyboard-go/internal/core/services"
	"github.com/easyboard/easyboard-go/test/helpers"
)

func TestFilterState_SetField_DebouncesSearches(t *testing.T) {
	var searches atomic.Int32
	state := services.NewFilterState(50*time.Millisecond, func() {
		searches.Add(1)
	}, helpers.TestLogger())
	defer state.Stop()

	// A burst of edits within the window fires exactly one search.
	require.NoError(t, state.SetField(domain.FieldQuery, "b"))
	require.NoError(t, state.SetField(domain.FieldQuery, "bi"))
	require.NoError(t, state.SetField(domain.FieldQuery, "bik"))
	require.NoError(t, state.SetField(domain.FieldQuery, "bike"))

	assert.Zero(t, searches.Load())

	assert.Eventually(t, func() bool {
		return searches.Load() == 1
	}, time.Second, 5*time.Millisecond)

	time.Sleep(100 * time.Millisecond)
	assert.EqualValues(t, 1, searches.Load())

	// The search sees the final value, not an intermediate one.
	assert.Equal(t, "bike", state.Filters().Query)
}

func TestFilterState_SetField_InvalidFieldDoesNotSchedule(t *testing.T) {
	var searches atomic.Int32
	state := services.NewFilterState(10*time.Millisecond, func() {
		searches.Add(1)
	}, helpers.TestLogger())
	defer state.Stop()

	err := state.SetField("bogus", "value")
	require.Error(t, err)

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, searches.Load())
}

func TestFilterState_Apply_FiresImmediatelyAndCancelsPending(t *testing.T) {
	var searches atomic.Int32
	state := services.NewFilterState(time.Hour, func() {
		searches.Add(1)
	}, helpers.TestLogger())
	defer state.Stop()

	require.NoError(t, state.SetField(domain.FieldCategory, "sports"))
	state.Apply()

	assert.EqualValues(t, 1, searches.Load())

	time.Sleep(50 * time.Millisecond)
	assert.EqualValues(t, 1, searches.Load())
}

func TestFilterState_Reset_RestoresDefaultsAndSearches(t *testing.T) {
	var searches atomic.Int32
	state := services.NewFilterState(time.Hour, func() {
		searches.Add(1)
	}, helpers.TestLogger())
	defer state.Stop()

	require.NoError(t, state.SetField(domain.FieldCategory, "sports"))
	require.NoError(t, state.SetField(domain.FieldQuery, "bike"))
	require.NoError(t, state.SetField(domain.FieldOrdering, domain.OrderingOldestFirst))

	state.Reset()

	assert.Equal(t, domain.DefaultFilters(), state.Filters())
	assert.EqualValues(t, 1, searches.Load())
}

func TestFilterState_Params_OmitsEmptyFields(t *testing.T) {
	state := services.NewFilterState(time.Hour, func() {}, helpers.TestLogger())
	defer state.Stop()

	require.NoError(t, state.SetField(domain.FieldQuery, "bike"))
	require.NoError(t, state.SetField(domain.FieldMinPrice, "100"))

	assert.Equal(t, map[string]string{
		"q":         "bike",
		"min_price": "100",
		"ordering":  domain.OrderingNewestFirst,
	}, state.Params())
}
