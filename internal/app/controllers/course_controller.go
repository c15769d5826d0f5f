package controllers

import (
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/yigit/coursescheduler/internal/app/models/dto"
	"github.com/yigit/coursescheduler/internal/app/services"
	"github.com/yigit/coursescheduler/internal/middleware"
	"github.com/yigit/coursescheduler/internal/pkg/apperrors"
)

// CourseController exposes the course service over HTTP
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// Greet returns a greeting for the name query parameter
// @Summary Greet a user
// @Description Formats a greeting that embeds the given name verbatim. An empty name is accepted.
// @Tags courses
// @Produce json
// @Param name query string false "Name to greet"
// @Success 200 {object} dto.APIResponse{data=dto.GreetingResponse} "Greeting formatted"
// @Failure 400 {object} dto.APIResponse "Name is not valid UTF-8"
// @Router /greet [get]
func (c *CourseController) Greet(ctx *gin.Context) {
	name := ctx.Query("name")
	// JSON cannot carry invalid UTF-8 verbatim
	if !utf8.ValidString(name) {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Name must be valid UTF-8"))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(
		dto.GreetingResponse{Greeting: c.courseService.Greet(name)},
		"Greeting formatted",
	))
}

// GreetJSON returns a greeting for the name in the JSON body
// @Summary Greet a user (JSON body)
// @Description Same as GET /greet but reads the name from a JSON body
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.GreetRequest true "Name to greet"
// @Success 200 {object} dto.APIResponse{data=dto.GreetingResponse} "Greeting formatted"
// @Failure 400 {object} dto.APIResponse "Malformed request body"
// @Router /greet [post]
func (c *CourseController) GreetJSON(ctx *gin.Context) {
	var req dto.GreetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, (&apperrors.CustomError{
			Err:     apperrors.ErrBadRequest,
			Message: "Invalid greet request",
		}).WithDetails(map[string]interface{}{"reason": err.Error()}))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(
		dto.GreetingResponse{Greeting: c.courseService.Greet(req.Name)},
		"Greeting formatted",
	))
}

// GetInitialCourses returns the initial course list
// @Summary Get initial courses
// @Description Returns the fixed list of courses the scheduler starts with
// @Tags courses
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Course} "Courses retrieved successfully"
// @Router /courses/initial [get]
func (c *CourseController) GetInitialCourses(ctx *gin.Context) {
	courses := c.courseService.GetInitialCourses(ctx.Request.Context())
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(courses, "Courses retrieved successfully"))
}
