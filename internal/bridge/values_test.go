package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/coursescheduler/internal/app/models"
)

func keysOf(fields []Field) []string {
	keys := make([]string, 0, len(fields))
	for _, f := range fields {
		keys = append(keys, f.Key)
	}
	return keys
}

func TestCourseFields(t *testing.T) {
	got := CourseFields(models.Course{ID: 7, Subject: "CS101", SubjectTitle: "Intro", CreditedUnits: 2.5})

	assert.Equal(t, []Field{
		{Key: "id", Value: 7},
		{Key: "subject", Value: "CS101"},
		{Key: "subject_title", Value: "Intro"},
		{Key: "credited_units", Value: 2.5},
	}, got)
}

func TestCourseRecords_KeepsOrder(t *testing.T) {
	got := CourseRecords(models.InitialCourses())

	require.Len(t, got, 2)
	assert.Equal(t, []Field{
		{Key: "id", Value: 1},
		{Key: "subject", Value: "TEST101"},
		{Key: "subject_title", Value: "Introduction to Testing"},
		{Key: "credited_units", Value: 3.0},
	}, got[0])
	assert.Equal(t, []Field{
		{Key: "id", Value: 2},
		{Key: "subject", Value: "PYD200"},
		{Key: "subject_title", Value: "Pyodide Basics"},
		{Key: "credited_units", Value: 1.0},
	}, got[1])
}

func TestCourseRecords_StableKeyOrder(t *testing.T) {
	for i := 0; i < 50; i++ {
		for _, record := range CourseRecords(models.InitialCourses()) {
			require.Equal(t, CourseKeys, keysOf(record))
		}
	}
}

func TestCourseRecords_Empty(t *testing.T) {
	got := CourseRecords(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
