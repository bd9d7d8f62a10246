package application

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/memberhub/memberhub/internal/domain/entity"
	repo "github.com/memberhub/memberhub/internal/domain/repository"
)

// ProfileService owns profile CRUD and the creation precondition check.
type ProfileService struct {
	Profiles    repo.ProfileRepository
	Users       repo.UserRepository
	MemberTypes repo.MemberTypeRepository
	Logger      *logrus.Logger
}

func NewProfileService(profiles repo.ProfileRepository, users repo.UserRepository, memberTypes repo.MemberTypeRepository, logger *logrus.Logger) *ProfileService {
	return &ProfileService{Profiles: profiles, Users: users, MemberTypes: memberTypes, Logger: logger}
}

type CreateProfileInput struct {
	Avatar       string
	Sex          string
	Birthday     int64
	Country      string
	Street       string
	City         string
	MemberTypeID string
	UserID       string
}

type UpdateProfileInput struct {
	Avatar       *string
	Sex          *string
	Birthday     *int64
	Country      *string
	Street       *string
	City         *string
	MemberTypeID *string
}

func (s *ProfileService) List() ([]*entity.Profile, error) {
	return s.Profiles.FindAll()
}

func (s *ProfileService) Get(id string) (*entity.Profile, error) {
	p, err := s.Profiles.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// Create checks the profile preconditions before delegating to the store:
// the user must exist, the member type must exist, and the user must not
// already have a profile. Every violation reports the same precondition
// class; callers cannot distinguish which check failed.
func (s *ProfileService) Create(in CreateProfileInput) (*entity.Profile, error) {
	if _, err := s.Users.GetByID(in.UserID); err != nil {
		return nil, fmt.Errorf("%w: user %q does not exist", ErrPrecondition, in.UserID)
	}
	if _, err := s.MemberTypes.GetByID(in.MemberTypeID); err != nil {
		return nil, fmt.Errorf("%w: member type %q does not exist", ErrPrecondition, in.MemberTypeID)
	}
	if existing, err := s.Profiles.GetByUserID(in.UserID); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: user %q already has a profile", ErrPrecondition, in.UserID)
	}

	p := &entity.Profile{
		Avatar:       in.Avatar,
		Sex:          in.Sex,
		Birthday:     in.Birthday,
		Country:      in.Country,
		Street:       in.Street,
		City:         in.City,
		MemberTypeID: in.MemberTypeID,
		UserID:       in.UserID,
	}
	if err := s.Profiles.Create(p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPrecondition, err)
	}
	s.Logger.WithFields(logrus.Fields{"profile_id": p.ID, "user_id": p.UserID}).Debug("profile created")
	return p, nil
}

func (s *ProfileService) Update(id string, in UpdateProfileInput) (*entity.Profile, error) {
	p, err := s.Profiles.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if in.Avatar != nil {
		p.Avatar = *in.Avatar
	}
	if in.Sex != nil {
		p.Sex = *in.Sex
	}
	if in.Birthday != nil {
		p.Birthday = *in.Birthday
	}
	if in.Country != nil {
		p.Country = *in.Country
	}
	if in.Street != nil {
		p.Street = *in.Street
	}
	if in.City != nil {
		p.City = *in.City
	}
	if in.MemberTypeID != nil {
		if _, err := s.MemberTypes.GetByID(*in.MemberTypeID); err != nil {
			return nil, fmt.Errorf("%w: member type %q does not exist", ErrPrecondition, *in.MemberTypeID)
		}
		p.MemberTypeID = *in.MemberTypeID
	}
	if err := s.Profiles.Update(p); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *ProfileService) Delete(id string) (*entity.Profile, error) {
	p, err := s.Profiles.Delete(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}
