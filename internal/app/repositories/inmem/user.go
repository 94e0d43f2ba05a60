package inmemdb

import (
	"context"
	"sort"

	"github.com/yigit/learnify/internal/app/models"
	"github.com/yigit/learnify/internal/app/repositories"
	"github.com/yigit/learnify/internal/pkg/apperrors"
)

type userRepository struct {
	db *DB
}

// NewUserRepository creates an in-memory user repository
func NewUserRepository(db *DB) repositories.IUserRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) Create(_ context.Context, user *models.User) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for _, u := range repo.db.users {
		if u.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}

	user.ID = repo.db.nextID()
	user.CreatedAt = repo.db.now()
	stored := *user
	repo.db.users[user.ID] = &stored
	return nil
}

func (repo *userRepository) GetByID(_ context.Context, id int64) (*models.User, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if u, ok := repo.db.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (repo *userRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, u := range repo.db.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (repo *userRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := repo.GetByEmail(ctx, email)
	return err == nil, nil
}

func (repo *userRepository) List(_ context.Context) ([]*models.User, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	users := make([]*models.User, 0, len(repo.db.users))
	for _, u := range repo.db.users {
		cp := *u
		users = append(users, &cp)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (repo *userRepository) SetApproved(_ context.Context, id int64, approved bool) (*models.User, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	u, ok := repo.db.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	u.Approved = approved
	cp := *u
	return &cp, nil
}
