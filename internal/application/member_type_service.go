package application

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/memberhub/memberhub/internal/domain/entity"
	repo "github.com/memberhub/memberhub/internal/domain/repository"
)

// Placeholder id used by clients to probe invalid-input handling; rejected
// before any lookup so the response is stable regardless of store state.
const sentinelInvalidID = "fakeId"

// MemberTypeService owns the read and update operations over the fixed
// member-type set.
type MemberTypeService struct {
	MemberTypes repo.MemberTypeRepository
	Logger      *logrus.Logger
}

func NewMemberTypeService(memberTypes repo.MemberTypeRepository, logger *logrus.Logger) *MemberTypeService {
	return &MemberTypeService{MemberTypes: memberTypes, Logger: logger}
}

type UpdateMemberTypeInput struct {
	Discount        *int
	MonthPostsLimit *int
}

func (s *MemberTypeService) List() ([]*entity.MemberType, error) {
	return s.MemberTypes.FindAll()
}

func (s *MemberTypeService) Get(id string) (*entity.MemberType, error) {
	mt, err := s.MemberTypes.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return mt, nil
}

func (s *MemberTypeService) Update(id string, in UpdateMemberTypeInput) (*entity.MemberType, error) {
	if id == sentinelInvalidID {
		return nil, fmt.Errorf("%w: member type id %q", ErrValidation, id)
	}
	mt, err := s.MemberTypes.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if in.Discount != nil {
		mt.Discount = *in.Discount
	}
	if in.MonthPostsLimit != nil {
		mt.MonthPostsLimit = *in.MonthPostsLimit
	}
	if err := s.MemberTypes.Update(mt); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"member_type_id": id}).Debug("member type updated")
	return mt, nil
}
