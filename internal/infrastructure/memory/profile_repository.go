package memory

import (
	"github.com/memberhub/memberhub/internal/domain/entity"
	"github.com/memberhub/memberhub/internal/domain/repository"
)

// ProfileRepository implements repository.ProfileRepository over the shared store.
type ProfileRepository struct {
	store *Store
}

func (r *ProfileRepository) FindAll() ([]*entity.Profile, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*entity.Profile, 0, len(r.store.profiles))
	for _, id := range sortedIDs(r.store.profiles) {
		p := r.store.profiles[id]
		out = append(out, &p)
	}
	return out, nil
}

func (r *ProfileRepository) GetByID(id string) (*entity.Profile, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.profiles[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r *ProfileRepository) GetByUserID(userID string) (*entity.Profile, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, id := range sortedIDs(r.store.profiles) {
		p := r.store.profiles[id]
		if p.UserID == userID {
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *ProfileRepository) Create(p *entity.Profile) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if p.ID == "" {
		p.ID = newID()
	}
	r.store.profiles[p.ID] = *p
	return nil
}

func (r *ProfileRepository) Update(p *entity.Profile) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.profiles[p.ID]; !ok {
		return repository.ErrNotFound
	}
	r.store.profiles[p.ID] = *p
	return nil
}

func (r *ProfileRepository) Delete(id string) (*entity.Profile, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p, ok := r.store.profiles[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(r.store.profiles, id)
	return &p, nil
}

var _ repository.ProfileRepository = (*ProfileRepository)(nil)
