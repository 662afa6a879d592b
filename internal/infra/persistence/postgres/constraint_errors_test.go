package postgres

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(gorm.ErrDuplicatedKey, "create user")))
	assert.False(t, isUniqueConstraintViolation(gorm.ErrRecordNotFound))
	assert.False(t, isUniqueConstraintViolation(errors.New("some other failure")))
}

func TestIsNotNullConstraintViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, isNotNullConstraintViolation(errors.New(`null value in column "email" violates not-null constraint`)))
	assert.True(t, isNotNullConstraintViolation(errors.New("ERROR: 23502")))
	assert.False(t, isNotNullConstraintViolation(errors.New("duplicate key value")))
}
