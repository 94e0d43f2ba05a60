package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/learnify/internal/app/models"
	"github.com/yigit/learnify/internal/pkg/apperrors"
	"github.com/yigit/learnify/internal/pkg/dberrors"
	"github.com/yigit/learnify/internal/pkg/logger"
)

// IUserRepository defines the interface for user-related database operations
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]*models.User, error)
	SetApproved(ctx context.Context, id int64, approved bool) (*models.User, error)
}

var userColumns = []string{"id", "name", "email", "password", "role", "approved", "created_at"}

// UserRepository handles user database operations
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanUser(row pgx.Row) (*models.User, error) {
	var (
		u    models.User
		role string
	)
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &role, &u.Approved, &u.CreatedAt); err != nil {
		return nil, err
	}
	u.Role = models.Role(role)
	return &u, nil
}

// Create inserts a user and fills its ID and CreatedAt
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	sql, args, err := r.sb.Insert("users").
		Columns("name", "email", "password", "role", "approved").
		Values(user.Name, user.Email, user.Password, string(user.Role), user.Approved).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create user SQL")
		return fmt.Errorf("failed to build create user query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&user.ID, &user.CreatedAt); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Str("email", user.Email).Msg("Error executing create user query")
		return fmt.Errorf("error creating user: %w", err)
	}
	return nil
}

func (r *UserRepository) getOne(ctx context.Context, where squirrel.Eq) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns...).
		From("users").
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get user SQL")
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Interface("where", where).Msg("Error scanning user row")
		return nil, fmt.Errorf("error getting user: %w", err)
	}
	return user, nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email})
}

// EmailExists checks if an email is already registered
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		logger.Error().Err(err).Msg("Error checking email existence")
		return false, fmt.Errorf("error checking email existence: %w", err)
	}
	return exists, nil
}

// List returns all users ordered by ID
func (r *UserRepository) List(ctx context.Context) ([]*models.User, error) {
	sql, args, err := r.sb.Select(userColumns...).
		From("users").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list users SQL")
		return nil, fmt.Errorf("failed to build list users query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list users query")
		return nil, fmt.Errorf("error querying users: %w", err)
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning user row")
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating user rows")
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}
	return users, nil
}

// SetApproved sets the approval flag of a user and returns the updated row
func (r *UserRepository) SetApproved(ctx context.Context, id int64, approved bool) (*models.User, error) {
	sql, args, err := r.sb.Update("users").
		Set("approved", approved).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(userColumns)).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building approve user SQL")
		return nil, fmt.Errorf("failed to build approve user query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("userID", id).Msg("Error updating user approval")
		return nil, fmt.Errorf("error updating user approval: %w", err)
	}
	return user, nil
}
