package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkoutLogAddAndList(t *testing.T) {
	db := newTestDB(t)
	svc := NewWorkoutLogService(db)

	entry, err := svc.Add("user-1", "Koşu", 30, 300)
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "Koşu", entry.ExerciseName)
	assert.Equal(t, 30, entry.DurationMinutes)

	logs, err := svc.List("user-1", nil)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.InDelta(t, 300, logs[0].CaloriesBurned, 0.01)

	logs, err = svc.List("user-2", nil)
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestWorkoutLogListByDay(t *testing.T) {
	db := newTestDB(t)
	svc := NewWorkoutLogService(db)

	today := time.Now().UTC()
	yesterday := today.AddDate(0, 0, -1)

	seedWorkoutLog(t, db, "user-1", yesterday, 400, false)
	seedWorkoutLog(t, db, "user-1", today, 300, false)

	logs, err := svc.List("user-1", &today)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.InDelta(t, 300, logs[0].CaloriesBurned, 0.01)

	logs, err = svc.List("user-1", nil)
	require.NoError(t, err)
	assert.Len(t, logs, 2)
}

func TestWorkoutLogList_WindowOpensAtFilterInstant(t *testing.T) {
	db := newTestDB(t)
	svc := NewWorkoutLogService(db)

	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	seedWorkoutLog(t, db, "user-1", day.Add(8*time.Hour), 200, false)
	seedWorkoutLog(t, db, "user-1", day.Add(20*time.Hour), 300, false)

	noon := day.Add(12 * time.Hour)
	logs, err := svc.List("user-1", &noon)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.InDelta(t, 300, logs[0].CaloriesBurned, 0.01)
}

func TestWorkoutLogSoftDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewWorkoutLogService(db)

	entry, err := svc.Add("user-1", "Bisiklet", 45, 350)
	require.NoError(t, err)

	// wrong owner is a no-op
	require.NoError(t, svc.SoftDelete("user-2", entry.ID))
	logs, err := svc.List("user-1", nil)
	require.NoError(t, err)
	assert.Len(t, logs, 1)

	require.NoError(t, svc.SoftDelete("user-1", entry.ID))
	logs, err = svc.List("user-1", nil)
	require.NoError(t, err)
	assert.Empty(t, logs)

	// repeating the delete stays quiet
	require.NoError(t, svc.SoftDelete("user-1", entry.ID))
}
