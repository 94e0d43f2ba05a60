package models

import (
	"time"
)

// Course defines the course model based on the 'courses' table
type Course struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	MentorID    int64     `json:"mentorId" db:"mentor_id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// Chapter defines the chapter model based on the 'chapters' table
type Chapter struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	CourseID  int64     `json:"courseId" db:"course_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Enrollment links a student to a course
type Enrollment struct {
	ID        int64     `json:"id" db:"id"`
	StudentID int64     `json:"studentId" db:"student_id"`
	CourseID  int64     `json:"courseId" db:"course_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// EnrolledCourse is a course as seen by one enrolled student
type EnrolledCourse struct {
	Course    Course
	Progress  int
	Completed bool
}
