package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "enrollments_student_id_course_id_key"}
	fk := &pgconn.PgError{Code: "23503"}

	assert.True(t, IsUniqueViolation(dup))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert enrollment: %w", dup)))
	assert.False(t, IsUniqueViolation(fk))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestIsDuplicateConstraintError(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}

	assert.True(t, IsDuplicateConstraintError(dup, "users_email_key"))
	assert.False(t, IsDuplicateConstraintError(dup, "certificates_certificate_no_key"))
}
