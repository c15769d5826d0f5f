// Package bridge converts course service results into values a JavaScript
// host can consume and, under js/wasm, registers the service functions on
// the host's global object.
package bridge

import "github.com/yigit/coursescheduler/internal/app/models"

// Names under which the functions are published to the host
const (
	GreetFuncName          = "greet"
	InitialCoursesFuncName = "getInitialCourses"
)

// CourseKeys lists the record keys in the order they are set on host objects
var CourseKeys = []string{"id", "subject", "subject_title", "credited_units"}

// Field is one key/value pair of a host record
type Field struct {
	Key   string
	Value any
}

// CourseFields converts a course into its host record fields, ordered as
// CourseKeys. Go maps have no stable order, so records are built from this
// slice to keep host-side key order identical across calls.
// ID becomes an int because syscall/js does not accept int64.
func CourseFields(c models.Course) []Field {
	return []Field{
		{Key: CourseKeys[0], Value: int(c.ID)},
		{Key: CourseKeys[1], Value: c.Subject},
		{Key: CourseKeys[2], Value: c.SubjectTitle},
		{Key: CourseKeys[3], Value: c.CreditedUnits},
	}
}

// CourseRecords converts courses into ordered field lists, keeping list order
func CourseRecords(courses []models.Course) [][]Field {
	out := make([][]Field, 0, len(courses))
	for _, c := range courses {
		out = append(out, CourseFields(c))
	}
	return out
}
