package dto

import (
	"time"

	"github.com/yigit/learnify/internal/app/models"
)

// CompleteChapterResponse acknowledges a chapter completion
type CompleteChapterResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Chapter completed successfully"`
}

// CourseProgressResponse is a student's progress through a course
type CourseProgressResponse struct {
	Progress            int     `json:"progress" example:"67"`
	CompletedChapterIDs []int64 `json:"completedChapterIds"`
}

// NewCourseProgressResponse maps progress, rendering no completions as []
func NewCourseProgressResponse(p *models.CourseProgress) CourseProgressResponse {
	ids := p.CompletedChapterIDs
	if ids == nil {
		ids = []int64{}
	}
	return CourseProgressResponse{Progress: p.Percent, CompletedChapterIDs: ids}
}

// CertificateResponse represents a certificate record
type CertificateResponse struct {
	ID            int64     `json:"id"`
	StudentID     int64     `json:"studentId"`
	CourseID      int64     `json:"courseId"`
	CertificateNo string    `json:"certificateNo" example:"5c7f1d2e-8a55-4c1f-9b3a-0e2d7e6f4a11"`
	IssuedAt      time.Time `json:"issuedAt"`
}

// NewCertificateResponse maps a certificate
func NewCertificateResponse(c *models.Certificate) CertificateResponse {
	return CertificateResponse{
		ID:            c.ID,
		StudentID:     c.StudentID,
		CourseID:      c.CourseID,
		CertificateNo: c.CertificateNo,
		IssuedAt:      c.IssuedAt,
	}
}

// GenerateCertificateResponse is returned by manual certificate generation
type GenerateCertificateResponse struct {
	Message     string              `json:"message" example:"Certificate generated successfully"`
	Certificate CertificateResponse `json:"certificate"`
}

// CertificateCourse is the course reference inside MyCertificateResponse
type CertificateCourse struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// MyCertificateResponse is one entry of GET /certificates/my
type MyCertificateResponse struct {
	CertificateResponse
	Course CertificateCourse `json:"course"`
}

// NewMyCertificateListResponse maps certificate details, never returning nil
func NewMyCertificateListResponse(items []*models.CertificateDetails) []MyCertificateResponse {
	out := make([]MyCertificateResponse, 0, len(items))
	for _, d := range items {
		out = append(out, MyCertificateResponse{
			CertificateResponse: NewCertificateResponse(&d.Certificate),
			Course:              CertificateCourse{ID: d.CourseID, Title: d.CourseTitle},
		})
	}
	return out
}
