package repository

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrPostNotFound  = errors.New("post not found")
	ErrAdminNotFound = errors.New("admin user not found")
	ErrDuplicate     = errors.New("duplicate record")
)

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
