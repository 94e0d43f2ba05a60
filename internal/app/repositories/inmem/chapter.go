package inmemdb

import (
	"context"
	"sort"

	"github.com/yigit/learnify/internal/app/models"
	"github.com/yigit/learnify/internal/app/repositories"
	"github.com/yigit/learnify/internal/pkg/apperrors"
)

type chapterRepository struct {
	db *DB
}

// NewChapterRepository creates an in-memory chapter repository
func NewChapterRepository(db *DB) repositories.IChapterRepository {
	return &chapterRepository{db: db}
}

func (repo *chapterRepository) Create(_ context.Context, chapter *models.Chapter) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.courses[chapter.CourseID]; !ok {
		return apperrors.ErrCourseNotFound
	}

	chapter.ID = repo.db.nextID()
	chapter.CreatedAt = repo.db.now()
	stored := *chapter
	repo.db.chapters[chapter.ID] = &stored
	return nil
}

func (repo *chapterRepository) GetByID(_ context.Context, id int64) (*models.Chapter, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if ch, ok := repo.db.chapters[id]; ok {
		cp := *ch
		return &cp, nil
	}
	return nil, apperrors.ErrChapterNotFound
}

func (repo *chapterRepository) ListByCourse(_ context.Context, courseID int64) ([]*models.Chapter, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	chapters := []*models.Chapter{}
	for _, ch := range repo.db.chapters {
		if ch.CourseID == courseID {
			cp := *ch
			chapters = append(chapters, &cp)
		}
	}
	sort.Slice(chapters, func(i, j int) bool {
		if !chapters[i].CreatedAt.Equal(chapters[j].CreatedAt) {
			return chapters[i].CreatedAt.Before(chapters[j].CreatedAt)
		}
		return chapters[i].ID < chapters[j].ID
	})
	return chapters, nil
}

func (repo *chapterRepository) CountByCourse(_ context.Context, courseID int64) (int, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	n := 0
	for _, ch := range repo.db.chapters {
		if ch.CourseID == courseID {
			n++
		}
	}
	return n, nil
}

func (repo *chapterRepository) Delete(_ context.Context, id int64) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.chapters[id]; !ok {
		return apperrors.ErrChapterNotFound
	}
	repo.db.deleteChapterLocked(id)
	return nil
}

// deleteChapterLocked removes a chapter and its progress rows; caller holds the write lock
func (db *DB) deleteChapterLocked(id int64) {
	for pid, p := range db.progress {
		if p.ChapterID == id {
			delete(db.progress, pid)
		}
	}
	delete(db.chapters, id)
}
