package repo

import (
	"github.com/wingscafe/inventory/internal/models"
)

type InMemoryUserRepository struct {
	users  []models.User
	nextID int
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users:  []models.User{},
		nextID: 1,
	}
}

func (r *InMemoryUserRepository) GetAll() ([]models.User, error) {
	out := make([]models.User, len(r.users))
	for i, u := range r.users {
		out[i] = models.User{ID: u.ID, Username: u.Username}
	}
	return out, nil
}

func (r *InMemoryUserRepository) GetByUsername(username string) (models.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (r *InMemoryUserRepository) CreateUser(u models.User) (models.User, error) {
	for _, user := range r.users {
		if user.Username == u.Username {
			return models.User{}, ErrDuplicateUsername
		}
	}

	u.ID = r.nextID
	r.nextID++
	r.users = append(r.users, u)
	return u, nil
}

func (r *InMemoryUserRepository) UpdateUsername(id int, username string) (models.User, error) {
	for _, user := range r.users {
		if user.Username == username && user.ID != id {
			return models.User{}, ErrDuplicateUsername
		}
	}
	for i, user := range r.users {
		if user.ID == id {
			r.users[i].Username = username
			return models.User{ID: id, Username: username}, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (r *InMemoryUserRepository) DeleteUser(id int) error {
	for i, user := range r.users {
		if user.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return ErrUserNotFound
}
