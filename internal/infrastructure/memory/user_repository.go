package memory

import (
	"github.com/memberhub/memberhub/internal/domain/entity"
	"github.com/memberhub/memberhub/internal/domain/repository"
)

// UserRepository implements repository.UserRepository over the shared store.
// Records are copied on the way in and out so callers never alias store state.
type UserRepository struct {
	store *Store
}

func (r *UserRepository) FindAll() ([]*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*entity.User, 0, len(r.store.users))
	for _, id := range sortedIDs(r.store.users) {
		out = append(out, cloneUser(r.store.users[id]))
	}
	return out, nil
}

func (r *UserRepository) GetByID(id string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	u, ok := r.store.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneUser(u), nil
}

func (r *UserRepository) FindSubscribersOf(id string) ([]*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []*entity.User
	for _, uid := range sortedIDs(r.store.users) {
		u := r.store.users[uid]
		if (&u).IsSubscribedTo(id) {
			out = append(out, cloneUser(u))
		}
	}
	return out, nil
}

func (r *UserRepository) Create(u *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if u.ID == "" {
		u.ID = newID()
	}
	if u.SubscribedToUserIDs == nil {
		u.SubscribedToUserIDs = []string{}
	}
	r.store.users[u.ID] = *cloneUser(*u)
	return nil
}

func (r *UserRepository) Update(u *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	r.store.users[u.ID] = *cloneUser(*u)
	return nil
}

func (r *UserRepository) Delete(id string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	u, ok := r.store.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(r.store.users, id)
	return cloneUser(u), nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
