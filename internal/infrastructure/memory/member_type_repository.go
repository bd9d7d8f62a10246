package memory

import (
	"github.com/memberhub/memberhub/internal/domain/entity"
	"github.com/memberhub/memberhub/internal/domain/repository"
)

// MemberTypeRepository implements repository.MemberTypeRepository over the
// shared store. The collection is seeded at construction and never grows.
type MemberTypeRepository struct {
	store *Store
}

func (r *MemberTypeRepository) FindAll() ([]*entity.MemberType, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*entity.MemberType, 0, len(r.store.memberTypes))
	for _, id := range sortedIDs(r.store.memberTypes) {
		mt := r.store.memberTypes[id]
		out = append(out, &mt)
	}
	return out, nil
}

func (r *MemberTypeRepository) GetByID(id string) (*entity.MemberType, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	mt, ok := r.store.memberTypes[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &mt, nil
}

func (r *MemberTypeRepository) Update(mt *entity.MemberType) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.memberTypes[mt.ID]; !ok {
		return repository.ErrNotFound
	}
	r.store.memberTypes[mt.ID] = *mt
	return nil
}

var _ repository.MemberTypeRepository = (*MemberTypeRepository)(nil)
