package memory

import (
	"github.com/memberhub/memberhub/internal/domain/entity"
	"github.com/memberhub/memberhub/internal/domain/repository"
)

// PostRepository implements repository.PostRepository over the shared store.
type PostRepository struct {
	store *Store
}

func (r *PostRepository) FindAll() ([]*entity.Post, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*entity.Post, 0, len(r.store.posts))
	for _, id := range sortedIDs(r.store.posts) {
		p := r.store.posts[id]
		out = append(out, &p)
	}
	return out, nil
}

func (r *PostRepository) GetByID(id string) (*entity.Post, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r *PostRepository) FindByUserID(userID string) ([]*entity.Post, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []*entity.Post
	for _, id := range sortedIDs(r.store.posts) {
		p := r.store.posts[id]
		if p.UserID == userID {
			out = append(out, &p)
		}
	}
	return out, nil
}

func (r *PostRepository) Create(p *entity.Post) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if p.ID == "" {
		p.ID = newID()
	}
	r.store.posts[p.ID] = *p
	return nil
}

func (r *PostRepository) Update(p *entity.Post) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.posts[p.ID]; !ok {
		return repository.ErrNotFound
	}
	r.store.posts[p.ID] = *p
	return nil
}

func (r *PostRepository) Delete(id string) (*entity.Post, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p, ok := r.store.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(r.store.posts, id)
	return &p, nil
}

var _ repository.PostRepository = (*PostRepository)(nil)
