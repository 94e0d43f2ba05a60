package inmemdb

import (
	"context"
	"sort"

	"github.com/yigit/learnify/internal/app/models"
	"github.com/yigit/learnify/internal/app/repositories"
	"github.com/yigit/learnify/internal/pkg/apperrors"
)

type progressRepository struct {
	db *DB
}

// NewProgressRepository creates an in-memory chapter progress repository
func NewProgressRepository(db *DB) repositories.IProgressRepository {
	return &progressRepository{db: db}
}

func (repo *progressRepository) Create(_ context.Context, progress *models.ChapterProgress) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.chapters[progress.ChapterID]; !ok {
		return apperrors.ErrChapterNotFound
	}
	for _, p := range repo.db.progress {
		if p.StudentID == progress.StudentID && p.ChapterID == progress.ChapterID {
			return apperrors.ErrAlreadyCompleted
		}
	}

	progress.ID = repo.db.nextID()
	progress.CompletedAt = repo.db.now()
	stored := *progress
	repo.db.progress[progress.ID] = &stored
	return nil
}

func (repo *progressRepository) Exists(_ context.Context, studentID, chapterID int64) (bool, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, p := range repo.db.progress {
		if p.StudentID == studentID && p.ChapterID == chapterID {
			return true, nil
		}
	}
	return false, nil
}

// completedLocked returns the student's progress rows in a course, in completion order
func (db *DB) completedLocked(studentID, courseID int64) []*models.ChapterProgress {
	rows := []*models.ChapterProgress{}
	for _, p := range db.progress {
		if p.StudentID != studentID {
			continue
		}
		if ch, ok := db.chapters[p.ChapterID]; ok && ch.CourseID == courseID {
			rows = append(rows, p)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
	return rows
}

func (repo *progressRepository) CountCompletedInCourse(_ context.Context, studentID, courseID int64) (int, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return len(repo.db.completedLocked(studentID, courseID)), nil
}

func (repo *progressRepository) ListCompletedChapterIDs(_ context.Context, studentID, courseID int64) ([]int64, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	rows := repo.db.completedLocked(studentID, courseID)
	ids := make([]int64, 0, len(rows))
	for _, p := range rows {
		ids = append(ids, p.ChapterID)
	}
	return ids, nil
}
