package models

import (
	"time"
)

// ChapterProgress records that a student completed a chapter
type ChapterProgress struct {
	ID          int64     `db:"id"`
	StudentID   int64     `db:"student_id"`
	ChapterID   int64     `db:"chapter_id"`
	CompletedAt time.Time `db:"completed_at"`
}

// CourseProgress is a student's progress through one course
type CourseProgress struct {
	Percent             int
	CompletedChapterIDs []int64
	TotalChapters       int
}

// Complete reports whether every chapter is done. Percent rounds half up and can read 100 before that.
func (p *CourseProgress) Complete() bool {
	return p.TotalChapters > 0 && len(p.CompletedChapterIDs) >= p.TotalChapters
}

// Certificate defines the certificate model based on the 'certificates' table
type Certificate struct {
	ID            int64     `db:"id"`
	StudentID     int64     `db:"student_id"`
	CourseID      int64     `db:"course_id"`
	CertificateNo string    `db:"certificate_no"`
	IssuedAt      time.Time `db:"issued_at"`
}

// CertificateDetails is a certificate joined with its student and course
type CertificateDetails struct {
	Certificate
	StudentName string
	CourseTitle string
}
