package dto

import (
	"time"

	"github.com/yigit/learnify/internal/app/models"
)

// CreateCourseRequest is the body of POST /courses
type CreateCourseRequest struct {
	Title       string `json:"title" binding:"required,notblank" example:"Go Basics"`
	Description string `json:"description" binding:"required,notblank" example:"Learn Go from scratch"`
}

// CourseResponse is the public view of a course
type CourseResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	MentorID    int64  `json:"mentorId"`
}

// NewCourseResponse maps a course to its public view
func NewCourseResponse(c *models.Course) CourseResponse {
	return CourseResponse{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		MentorID:    c.MentorID,
	}
}

// NewCourseListResponse maps courses, never returning nil
func NewCourseListResponse(courses []*models.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, NewCourseResponse(c))
	}
	return out
}

// CourseDetailResponse is a course including its creation time
type CourseDetailResponse struct {
	CourseResponse
	CreatedAt time.Time `json:"createdAt"`
}

// CreateCourseResponse is returned by POST /courses
type CreateCourseResponse struct {
	Message string               `json:"message" example:"Course created successfully"`
	Course  CourseDetailResponse `json:"course"`
}

// EnrolledCourseResponse is a course with the caller's live progress
type EnrolledCourseResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Progress    int    `json:"progress" example:"50"`
	Completed   bool   `json:"completed"`
}

// NewEnrolledCourseListResponse maps enrolled courses, never returning nil
func NewEnrolledCourseListResponse(items []models.EnrolledCourse) []EnrolledCourseResponse {
	out := make([]EnrolledCourseResponse, 0, len(items))
	for _, ec := range items {
		out = append(out, EnrolledCourseResponse{
			ID:          ec.Course.ID,
			Title:       ec.Course.Title,
			Description: ec.Course.Description,
			Progress:    ec.Progress,
			Completed:   ec.Completed,
		})
	}
	return out
}
