package repository

import "github.com/memberhub/memberhub/internal/domain/entity"

// UserRepository defines the interface for user storage operations.
type UserRepository interface {
	FindAll() ([]*entity.User, error)
	GetByID(id string) (*entity.User, error)
	// FindSubscribersOf returns every user whose subscription list
	// contains the given id.
	FindSubscribersOf(id string) ([]*entity.User, error)
	Create(u *entity.User) error
	Update(u *entity.User) error
	Delete(id string) (*entity.User, error)
}
