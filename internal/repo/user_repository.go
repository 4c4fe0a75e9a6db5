package repo

import (
	"errors"

	"github.com/wingscafe/inventory/internal/models"
)

type UserRepository interface {
	GetAll() ([]models.User, error)
	GetByUsername(username string) (models.User, error)
	CreateUser(u models.User) (models.User, error)
	// UpdateUsername renames an account, re-checking uniqueness.
	UpdateUsername(id int, username string) (models.User, error)
	DeleteUser(id int) error
}

var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateUsername is returned when an insert or rename collides with an
// existing username.
var ErrDuplicateUsername = errors.New("username already exists")
