package repository

import "github.com/memberhub/memberhub/internal/domain/entity"

// MemberTypeRepository defines the interface for member-type storage
// operations. Member types are a fixed set; there is no create or delete.
type MemberTypeRepository interface {
	FindAll() ([]*entity.MemberType, error)
	GetByID(id string) (*entity.MemberType, error)
	Update(mt *entity.MemberType) error
}
