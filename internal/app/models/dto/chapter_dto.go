package dto

import (
	"time"

	"github.com/yigit/learnify/internal/app/models"
)

// CreateChapterRequest is the body of POST /courses/{id}/chapters
type CreateChapterRequest struct {
	Title   string `json:"title" binding:"required,notblank" example:"Variables"`
	Content string `json:"content" binding:"required,notblank" example:"var x int"`
}

// ChapterResponse represents a chapter
type ChapterResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CourseID  int64     `json:"courseId"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewChapterResponse maps a chapter
func NewChapterResponse(ch *models.Chapter) ChapterResponse {
	return ChapterResponse{
		ID:        ch.ID,
		Title:     ch.Title,
		Content:   ch.Content,
		CourseID:  ch.CourseID,
		CreatedAt: ch.CreatedAt,
	}
}

// NewChapterListResponse maps chapters, never returning nil
func NewChapterListResponse(chapters []*models.Chapter) []ChapterResponse {
	out := make([]ChapterResponse, 0, len(chapters))
	for _, ch := range chapters {
		out = append(out, NewChapterResponse(ch))
	}
	return out
}

// CreateChapterResponse is returned after a chapter is added
type CreateChapterResponse struct {
	Message string          `json:"message" example:"Chapter added successfully"`
	Chapter ChapterResponse `json:"chapter"`
}
