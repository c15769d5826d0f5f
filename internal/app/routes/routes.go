package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/coursescheduler/internal/app/controllers"
	"github.com/yigit/coursescheduler/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, courseController *controllers.CourseController) {
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	v1 := router.Group("/api/v1")

	v1.GET("/greet", courseController.Greet)
	v1.POST("/greet", courseController.GreetJSON)

	courses := v1.Group("/courses")
	{
		courses.GET("/initial", courseController.GetInitialCourses)
	}

	router.NoRoute(middleware.NotFoundHandler())
}
