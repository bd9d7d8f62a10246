// Package memory provides the in-memory entity store backing all
// repositories. State is per-process and lost on shutdown; durability is
// out of scope for this service.
package memory

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/memberhub/memberhub/internal/domain/entity"
)

// Store holds every entity collection behind a single RWMutex. Individual
// repository calls are atomic and serialized; multi-call sequences (such as
// the user delete cascade) are not.
type Store struct {
	mu sync.RWMutex

	users       map[string]entity.User
	profiles    map[string]entity.Profile
	memberTypes map[string]entity.MemberType
	posts       map[string]entity.Post
}

// NewStore returns an empty store pre-seeded with the fixed member types.
func NewStore() *Store {
	s := &Store{
		users:       map[string]entity.User{},
		profiles:    map[string]entity.Profile{},
		memberTypes: map[string]entity.MemberType{},
		posts:       map[string]entity.Post{},
	}
	for _, mt := range seedMemberTypes() {
		s.memberTypes[mt.ID] = mt
	}
	return s
}

// Member types are not user-creatable; this is the full set.
func seedMemberTypes() []entity.MemberType {
	return []entity.MemberType{
		{ID: "basic", Discount: 0, MonthPostsLimit: 20},
		{ID: "business", Discount: 5, MonthPostsLimit: 100},
	}
}

// Users returns the user repository view of the store.
func (s *Store) Users() *UserRepository { return &UserRepository{store: s} }

// Profiles returns the profile repository view of the store.
func (s *Store) Profiles() *ProfileRepository { return &ProfileRepository{store: s} }

// MemberTypes returns the member-type repository view of the store.
func (s *Store) MemberTypes() *MemberTypeRepository { return &MemberTypeRepository{store: s} }

// Posts returns the post repository view of the store.
func (s *Store) Posts() *PostRepository { return &PostRepository{store: s} }

func newID() string {
	return uuid.NewString()
}

func sortedIDs[T any](m map[string]T) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func cloneUser(u entity.User) *entity.User {
	out := u
	out.SubscribedToUserIDs = append([]string(nil), u.SubscribedToUserIDs...)
	return &out
}
