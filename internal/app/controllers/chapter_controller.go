package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/learnify/internal/app/models/dto"
	"github.com/yigit/learnify/internal/app/services"
	"github.com/yigit/learnify/internal/middleware"
)

// ChapterController handles chapters and chapter progress
type ChapterController struct {
	chapterService  services.ChapterService
	progressService services.ProgressService
	logger          zerolog.Logger
}

// NewChapterController creates a new ChapterController
func NewChapterController(chapterService services.ChapterService, progressService services.ProgressService, logger zerolog.Logger) *ChapterController {
	return &ChapterController{
		chapterService:  chapterService,
		progressService: progressService,
		logger:          logger,
	}
}

// AddChapter appends a chapter to a course owned by the calling mentor
// @Summary Add a chapter
// @Tags chapters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param request body dto.CreateChapterRequest true "Chapter information"
// @Success 201 {object} dto.CreateChapterResponse
// @Failure 400 {object} dto.ErrorResponse "Title and content are required"
// @Failure 403 {object} dto.ErrorResponse "Not your course, or mentor not approved"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id}/chapters [post]
func (c *ChapterController) AddChapter(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	courseID, ok := parseIDParam(ctx, "id", "Invalid course ID")
	if !ok {
		return
	}

	var req dto.CreateChapterRequest
	if !middleware.BindJSON(ctx, &req, "Title and content are required") {
		return
	}

	chapter, err := c.chapterService.AddChapter(ctx.Request.Context(), p, courseID, req.Title, req.Content)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateChapterResponse{
		Message: "Chapter added successfully",
		Chapter: dto.NewChapterResponse(chapter),
	})
}

// ListChapters returns a course's chapters in creation order
// @Summary List chapters of a course
// @Tags chapters
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {array} dto.ChapterResponse
// @Failure 403 {object} dto.ErrorResponse "Enroll in course to view chapters"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id}/chapters [get]
func (c *ChapterController) ListChapters(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	courseID, ok := parseIDParam(ctx, "id", "Invalid course ID")
	if !ok {
		return
	}

	chapters, err := c.chapterService.ListChapters(ctx.Request.Context(), p, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewChapterListResponse(chapters))
}

// DeleteChapter removes a chapter and the progress recorded against it
// @Summary Delete a chapter
// @Tags chapters
// @Produce json
// @Security BearerAuth
// @Param chapterId path int true "Chapter ID"
// @Success 200 {object} dto.MessageResponse "Chapter deleted successfully"
// @Failure 403 {object} dto.ErrorResponse "Not allowed to delete this chapter"
// @Failure 404 {object} dto.ErrorResponse "Chapter not found"
// @Router /chapters/{chapterId} [delete]
func (c *ChapterController) DeleteChapter(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	chapterID, ok := parseIDParam(ctx, "chapterId", "Invalid chapter ID")
	if !ok {
		return
	}

	if err := c.chapterService.DeleteChapter(ctx.Request.Context(), p, chapterID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("chapterID", chapterID).Int64("mentorID", p.UserID).Msg("Chapter deleted")
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Chapter deleted successfully"})
}

// CompleteChapter records that the calling student finished a chapter.
// Finishing the last chapter of a course issues its certificate.
// @Summary Complete a chapter
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Param chapterId path int true "Chapter ID"
// @Success 200 {object} dto.CompleteChapterResponse
// @Failure 403 {object} dto.ErrorResponse "Not enrolled in course"
// @Failure 404 {object} dto.ErrorResponse "Chapter not found"
// @Failure 409 {object} dto.ErrorResponse "Already completed"
// @Router /chapters/{chapterId}/complete [post]
func (c *ChapterController) CompleteChapter(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	chapterID, ok := parseIDParam(ctx, "chapterId", "Invalid chapter ID")
	if !ok {
		return
	}

	if err := c.progressService.CompleteChapter(ctx.Request.Context(), p, chapterID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CompleteChapterResponse{Success: true, Message: "Chapter completed successfully"})
}

// CourseProgress returns the calling student's completion percentage for a course
// @Summary Get course progress
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.CourseProgressResponse
// @Failure 403 {object} dto.ErrorResponse "Only students allowed"
// @Router /courses/{id}/progress [get]
func (c *ChapterController) CourseProgress(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	courseID, ok := parseIDParam(ctx, "id", "Invalid course ID")
	if !ok {
		return
	}

	progress, err := c.progressService.CourseProgress(ctx.Request.Context(), p, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewCourseProgressResponse(progress))
}
