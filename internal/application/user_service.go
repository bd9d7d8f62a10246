package application

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/memberhub/memberhub/internal/domain/entity"
	repo "github.com/memberhub/memberhub/internal/domain/repository"
)

// UserService owns user CRUD plus the referential-integrity operations that
// span collections: the delete cascade and subscription list maintenance.
type UserService struct {
	Users    repo.UserRepository
	Profiles repo.ProfileRepository
	Posts    repo.PostRepository
	Logger   *logrus.Logger
}

func NewUserService(users repo.UserRepository, profiles repo.ProfileRepository, posts repo.PostRepository, logger *logrus.Logger) *UserService {
	return &UserService{Users: users, Profiles: profiles, Posts: posts, Logger: logger}
}

type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
}

type UpdateUserInput struct {
	FirstName           *string
	LastName            *string
	Email               *string
	SubscribedToUserIDs *[]string
}

func (s *UserService) List() ([]*entity.User, error) {
	return s.Users.FindAll()
}

func (s *UserService) Get(id string) (*entity.User, error) {
	u, err := s.Users.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *UserService) Create(in CreateUserInput) (*entity.User, error) {
	u := &entity.User{
		FirstName:           in.FirstName,
		LastName:            in.LastName,
		Email:               in.Email,
		SubscribedToUserIDs: []string{},
	}
	if err := s.Users.Create(u); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPrecondition, err)
	}
	return u, nil
}

func (s *UserService) Update(id string, in UpdateUserInput) (*entity.User, error) {
	u, err := s.Users.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if in.FirstName != nil {
		u.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		u.LastName = *in.LastName
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.SubscribedToUserIDs != nil {
		u.SubscribedToUserIDs = *in.SubscribedToUserIDs
	}
	if err := s.Users.Update(u); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

// Delete removes the user and every record that depends on it, in a fixed
// order: subscription back-references are pruned first, then the profile,
// then posts, then the user itself. The cascade is best-effort; steps
// already applied are not rolled back when a later step fails.
func (s *UserService) Delete(id string) (*entity.User, error) {
	profile, err := s.Profiles.GetByUserID(id)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	posts, err := s.Posts.FindByUserID(id)
	if err != nil {
		return nil, err
	}

	subscribers, err := s.Users.FindSubscribersOf(id)
	if err != nil {
		return nil, err
	}
	for _, sub := range subscribers {
		sub.SubscribedToUserIDs = removeAll(sub.SubscribedToUserIDs, id)
		if err := s.Users.Update(sub); err != nil {
			return nil, err
		}
	}

	if profile != nil {
		if _, err := s.Profiles.Delete(profile.ID); err != nil {
			return nil, err
		}
	}

	for _, p := range posts {
		if _, err := s.Posts.Delete(p.ID); err != nil {
			return nil, err
		}
	}

	u, err := s.Users.Delete(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	s.Logger.WithFields(logrus.Fields{
		"user_id":     id,
		"subscribers": len(subscribers),
		"posts":       len(posts),
		"had_profile": profile != nil,
	}).Info("user deleted with cascade")
	return u, nil
}

// Subscribe appends actingID to the target's subscription list. Duplicate
// entries are allowed; repeated subscriptions accumulate.
func (s *UserService) Subscribe(actingID, targetID string) (*entity.User, error) {
	target, err := s.Users.GetByID(targetID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if actingID == targetID {
		return nil, fmt.Errorf("%w: user cannot subscribe to itself", ErrPrecondition)
	}
	target.SubscribedToUserIDs = append(target.SubscribedToUserIDs, actingID)
	if err := s.Users.Update(target); err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"user_id": actingID, "target_id": targetID}).Debug("subscription added")
	return target, nil
}

// Unsubscribe removes every occurrence of actingID from the target's
// subscription list.
func (s *UserService) Unsubscribe(actingID, targetID string) (*entity.User, error) {
	target, err := s.Users.GetByID(targetID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !target.IsSubscribedTo(actingID) {
		return nil, fmt.Errorf("%w: not subscribed", ErrPrecondition)
	}
	target.SubscribedToUserIDs = removeAll(target.SubscribedToUserIDs, actingID)
	if err := s.Users.Update(target); err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"user_id": actingID, "target_id": targetID}).Debug("subscription removed")
	return target, nil
}

func removeAll(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
