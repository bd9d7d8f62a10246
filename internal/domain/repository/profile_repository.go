package repository

import "github.com/memberhub/memberhub/internal/domain/entity"

// ProfileRepository defines the interface for profile storage operations.
type ProfileRepository interface {
	FindAll() ([]*entity.Profile, error)
	GetByID(id string) (*entity.Profile, error)
	GetByUserID(userID string) (*entity.Profile, error)
	Create(p *entity.Profile) error
	Update(p *entity.Profile) error
	Delete(id string) (*entity.Profile, error)
}
