package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExerciseListScanValue(t *testing.T) {
	list := ExerciseList{
		{Name: "Plank", Sets: 3, Duration: "2 min"},
		{Name: "Russian Twists", Sets: 3, Reps: 30},
		{Name: "Freestyle", Sets: 10, Distance: "100m"},
	}

	value, err := list.Value()
	require.NoError(t, err)

	var decoded ExerciseList
	require.NoError(t, decoded.Scan(value))
	assert.Equal(t, list, decoded)
}

func TestExerciseListScanNil(t *testing.T) {
	var list ExerciseList
	require.NoError(t, list.Scan(nil))
	assert.Empty(t, list)
}

func TestExerciseListScanString(t *testing.T) {
	var list ExerciseList
	require.NoError(t, list.Scan(`[{"name":"Burpees","sets":3,"reps":20}]`))
	require.Len(t, list, 1)
	assert.Equal(t, "Burpees", list[0].Name)
	assert.Equal(t, 20, list[0].Reps)
}

func TestExerciseListScanUnsupportedType(t *testing.T) {
	var list ExerciseList
	assert.Error(t, list.Scan(42))
}
