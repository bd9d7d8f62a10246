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

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type createUserRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
}

type updateUserRequest struct {
	FirstName           *string   `json:"firstName"`
	LastName            *string   `json:"lastName"`
	Email               *string   `json:"email" binding:"omitempty,email"`
	SubscribedToUserIDs *[]string `json:"subscribedToUserIds"`
}

type subscriptionRequest struct {
	UserID string `json:"userId" binding:"required"`
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Svc.List()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "failed to list users", nil)
		return
	}
	response.Success(c, http.StatusOK, users, "users")
}

func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.Svc.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "user not found", nil)
			return
		}
		response.Error[any](c, http.StatusBadRequest, "failed to get user", nil)
		return
	}
	response.Success(c, http.StatusOK, u, "user")
}

func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Create(application.CreateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "failed to create user", nil)
		return
	}
	response.Success(c, http.StatusCreated, u, "user created")
}

// Delete runs the cascade. Any failure, including an unknown id, reports
// 400; the service keeps the finer-grained classification for logs.
func (h *UserHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	u, err := h.Svc.Delete(id)
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", id).Warn("user delete failed")
		response.Error[any](c, http.StatusBadRequest, "failed to delete user", nil)
		return
	}
	response.Success(c, http.StatusOK, u, "user deleted")
}

func (h *UserHandler) Update(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Update(c.Param("id"), application.UpdateUserInput{
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		Email:               req.Email,
		SubscribedToUserIDs: req.SubscribedToUserIDs,
	})
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "failed to update user", nil)
		return
	}
	response.Success(c, http.StatusOK, u, "user updated")
}

// Subscribe adds the path user to the body user's subscription list.
func (h *UserHandler) Subscribe(c *gin.Context) {
	var req subscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Subscribe(c.Param("id"), req.UserID)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "user not found", nil)
			return
		}
		response.Error[any](c, http.StatusBadRequest, "failed to subscribe", nil)
		return
	}
	response.Success(c, http.StatusOK, u, "subscribed")
}

// Unsubscribe removes the path user from the body user's subscription list.
func (h *UserHandler) Unsubscribe(c *gin.Context) {
	var req subscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Unsubscribe(c.Param("id"), req.UserID)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "user not found", nil)
			return
		}
		response.Error[any](c, http.StatusBadRequest, "failed to unsubscribe", nil)
		return
	}
	response.Success(c, http.StatusOK, u, "unsubscribed")
}
