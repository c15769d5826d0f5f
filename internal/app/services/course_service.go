package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yigit/coursescheduler/internal/app/models"
)

// DefaultRuntimeName is the runtime named in greetings when none is configured
const DefaultRuntimeName = "Go"

// CourseService defines the operations the scheduler exposes to its host
type CourseService interface {
	Greet(name string) string
	GetInitialCourses(ctx context.Context) []models.Course
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	runtimeName string
	logger      zerolog.Logger
}

// NewCourseService creates a new course service instance
func NewCourseService(runtimeName string, logger zerolog.Logger) CourseService {
	if runtimeName == "" {
		runtimeName = DefaultRuntimeName
	}
	return &courseServiceImpl{
		runtimeName: runtimeName,
		logger:      logger.With().Str("component", "course_service").Logger(),
	}
}

// Greet formats a greeting that embeds name verbatim. Any string is accepted.
func (s *courseServiceImpl) Greet(name string) string {
	return fmt.Sprintf("Hello, %s, from %s!", name, s.runtimeName)
}

// GetInitialCourses returns the fixed initial course list and records the call
func (s *courseServiceImpl) GetInitialCourses(ctx context.Context) []models.Course {
	courses := models.InitialCourses()
	s.logger.Info().Int("count", len(courses)).Msg("get_initial_courses called")
	return courses
}
