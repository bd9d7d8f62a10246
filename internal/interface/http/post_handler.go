package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/memberhub/memberhub/internal/application"
	"github.com/memberhub/memberhub/pkg/response"
	"github.com/memberhub/memberhub/pkg/validation"
)

type PostHandler struct {
	Svc    *application.PostService
	Logger *logrus.Logger
}

func NewPostHandler(svc *application.PostService, logger *logrus.Logger) *PostHandler {
	return &PostHandler{Svc: svc, Logger: logger}
}

type createPostRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
	UserID  string `json:"userId" binding:"required"`
}

type updatePostRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.Svc.List()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "failed to list posts", nil)
		return
	}
	response.Success(c, http.StatusOK, posts, "posts")
}

func (h *PostHandler) Get(c *gin.Context) {
	p, err := h.Svc.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "post not found", nil)
			return
		}
		response.Error[any](c, http.StatusBadRequest, "failed to get post", nil)
		return
	}
	response.Success(c, http.StatusOK, p, "post")
}

func (h *PostHandler) Create(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.Create(application.CreatePostInput{
		Title:   req.Title,
		Content: req.Content,
		UserID:  req.UserID,
	})
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "failed to create post", nil)
		return
	}
	response.Success(c, http.StatusCreated, p, "post created")
}

func (h *PostHandler) Delete(c *gin.Context) {
	p, err := h.Svc.Delete(c.Param("id"))
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "failed to delete post", nil)
		return
	}
	response.Success(c, http.StatusOK, p, "post deleted")
}

func (h *PostHandler) Update(c *gin.Context) {
	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.Update(c.Param("id"), application.UpdatePostInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "failed to update post", nil)
		return
	}
	response.Success(c, http.StatusOK, p, "post updated")
}
