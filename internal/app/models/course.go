package models

// Course represents a single course offering shown to the scheduler host.
// JSON keys follow the names the browser host already consumes.
type Course struct {
	ID            int64   `json:"id"`
	Subject       string  `json:"subject"`        // Short code, e.g. TEST101
	SubjectTitle  string  `json:"subject_title"`  // Display title
	CreditedUnits float64 `json:"credited_units"` // Decimal credit value
}

// InitialCourses returns the placeholder course list the scheduler starts with.
// A new slice is built on every call so callers may modify the result freely.
func InitialCourses() []Course {
	return []Course{
		{ID: 1, Subject: "TEST101", SubjectTitle: "Introduction to Testing", CreditedUnits: 3.0},
		{ID: 2, Subject: "PYD200", SubjectTitle: "Pyodide Basics", CreditedUnits: 1.0},
	}
}
