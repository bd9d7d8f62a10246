package application

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/memberhub/memberhub/internal/domain/entity"
	repo "github.com/memberhub/memberhub/internal/domain/repository"
)

// PostService owns post CRUD. Posts require an existing author; they are
// also removed by the user delete cascade.
type PostService struct {
	Posts  repo.PostRepository
	Users  repo.UserRepository
	Logger *logrus.Logger
}

func NewPostService(posts repo.PostRepository, users repo.UserRepository, logger *logrus.Logger) *PostService {
	return &PostService{Posts: posts, Users: users, Logger: logger}
}

type CreatePostInput struct {
	Title   string
	Content string
	UserID  string
}

type UpdatePostInput struct {
	Title   *string
	Content *string
}

func (s *PostService) List() ([]*entity.Post, error) {
	return s.Posts.FindAll()
}

func (s *PostService) Get(id string) (*entity.Post, error) {
	p, err := s.Posts.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *PostService) Create(in CreatePostInput) (*entity.Post, error) {
	if _, err := s.Users.GetByID(in.UserID); err != nil {
		return nil, fmt.Errorf("%w: user %q does not exist", ErrPrecondition, in.UserID)
	}
	p := &entity.Post{Title: in.Title, Content: in.Content, UserID: in.UserID}
	if err := s.Posts.Create(p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPrecondition, err)
	}
	s.Logger.WithFields(logrus.Fields{"post_id": p.ID, "user_id": p.UserID}).Debug("post created")
	return p, nil
}

func (s *PostService) Update(id string, in UpdatePostInput) (*entity.Post, error) {
	p, err := s.Posts.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Content != nil {
		p.Content = *in.Content
	}
	if err := s.Posts.Update(p); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *PostService) Delete(id string) (*entity.Post, error) {
	p, err := s.Posts.Delete(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}
