package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/learnify/internal/app/models"
	"github.com/yigit/learnify/internal/app/models/dto"
	"github.com/yigit/learnify/internal/app/services"
	"github.com/yigit/learnify/internal/middleware"
)

// CourseController handles the course catalog
type CourseController struct {
	courseService     services.CourseService
	enrollmentService services.EnrollmentService
	logger            zerolog.Logger
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService, enrollmentService services.EnrollmentService, logger zerolog.Logger) *CourseController {
	return &CourseController{
		courseService:     courseService,
		enrollmentService: enrollmentService,
		logger:            logger,
	}
}

func newCourseDetail(c *models.Course) dto.CourseDetailResponse {
	return dto.CourseDetailResponse{CourseResponse: dto.NewCourseResponse(c), CreatedAt: c.CreatedAt}
}

// CreateCourse handles course creation
// @Summary Create a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.CreateCourseResponse
// @Failure 400 {object} dto.ErrorResponse "Title and description required"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}

	var req dto.CreateCourseRequest
	if !middleware.BindJSON(ctx, &req, "Title and description required") {
		return
	}

	course, err := c.courseService.CreateCourse(ctx.Request.Context(), p, req.Title, req.Description)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("courseID", course.ID).Int64("mentorID", p.UserID).Msg("Course created")
	ctx.JSON(http.StatusCreated, dto.CreateCourseResponse{
		Message: "Course created successfully",
		Course:  newCourseDetail(course),
	})
}

// ListCourses returns the public catalog
// @Summary List courses
// @Tags courses
// @Produce json
// @Success 200 {array} dto.CourseResponse
// @Failure 500 {object} dto.ErrorResponse "Server error"
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	courses, err := c.courseService.ListCourses(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewCourseListResponse(courses))
}

// GetCourse returns one course
// @Summary Get a course
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.CourseDetailResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid course ID")
	if !ok {
		return
	}

	course, err := c.courseService.GetCourse(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newCourseDetail(course))
}

// MyCourses returns the courses the calling mentor owns
// @Summary List my courses
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.CourseResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /my-courses [get]
func (c *CourseController) MyCourses(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}

	courses, err := c.courseService.MyCourses(ctx.Request.Context(), p)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewCourseListResponse(courses))
}

// DeleteCourse removes a course together with its chapters, enrollments, progress and certificates
// @Summary Delete a course
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.MessageResponse "Course deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 403 {object} dto.ErrorResponse "You are not allowed to delete this course"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id", "Invalid course ID")
	if !ok {
		return
	}

	if err := c.courseService.DeleteCourse(ctx.Request.Context(), p, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("courseID", id).Int64("mentorID", p.UserID).Msg("Course deleted")
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Course deleted successfully"})
}

// Enroll enrolls the calling student in a course
// @Summary Enroll in a course
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 201 {object} dto.MessageResponse "Enrolled successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 409 {object} dto.ErrorResponse "Already enrolled"
// @Router /courses/{id}/enroll [post]
func (c *CourseController) Enroll(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id", "Invalid course ID")
	if !ok {
		return
	}

	if err := c.enrollmentService.Enroll(ctx.Request.Context(), p, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.MessageResponse{Message: "Enrolled successfully"})
}

// EnrolledCourses lists the calling student's courses with live progress
// @Summary List my enrolled courses
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.EnrolledCourseResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /courses/enrolled [get]
func (c *CourseController) EnrolledCourses(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}

	items, err := c.enrollmentService.EnrolledCourses(ctx.Request.Context(), p)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewEnrolledCourseListResponse(items))
}
