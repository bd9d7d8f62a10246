package repository

import "github.com/memberhub/memberhub/internal/domain/entity"

// PostRepository defines the interface for post storage operations.
type PostRepository interface {
	FindAll() ([]*entity.Post, error)
	GetByID(id string) (*entity.Post, error)
	FindByUserID(userID string) ([]*entity.Post, error)
	Create(p *entity.Post) error
	Update(p *entity.Post) error
	Delete(id string) (*entity.Post, error)
}
