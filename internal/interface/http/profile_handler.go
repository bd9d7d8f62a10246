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

type ProfileHandler struct {
	Svc    *application.ProfileService
	Logger *logrus.Logger
}

func NewProfileHandler(svc *application.ProfileService, logger *logrus.Logger) *ProfileHandler {
	return &ProfileHandler{Svc: svc, Logger: logger}
}

type createProfileRequest struct {
	Avatar       string `json:"avatar"`
	Sex          string `json:"sex"`
	Birthday     int64  `json:"birthday"`
	Country      string `json:"country"`
	Street       string `json:"street"`
	City         string `json:"city"`
	MemberTypeID string `json:"memberTypeId" binding:"required"`
	UserID       string `json:"userId" binding:"required"`
}

type updateProfileRequest struct {
	Avatar       *string `json:"avatar"`
	Sex          *string `json:"sex"`
	Birthday     *int64  `json:"birthday"`
	Country      *string `json:"country"`
	Street       *string `json:"street"`
	City         *string `json:"city"`
	MemberTypeID *string `json:"memberTypeId"`
}

func (h *ProfileHandler) List(c *gin.Context) {
	profiles, err := h.Svc.List()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "failed to list profiles", nil)
		return
	}
	response.Success(c, http.StatusOK, profiles, "profiles")
}

func (h *ProfileHandler) Get(c *gin.Context) {
	p, err := h.Svc.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "profile not found", nil)
			return
		}
		response.Error[any](c, http.StatusBadRequest, "failed to get profile", nil)
		return
	}
	response.Success(c, http.StatusOK, p, "profile")
}

// Create enforces the profile preconditions: existing user, existing member
// type, no prior profile for the user. All violations report 400.
func (h *ProfileHandler) Create(c *gin.Context) {
	var req createProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.Create(application.CreateProfileInput{
		Avatar:       req.Avatar,
		Sex:          req.Sex,
		Birthday:     req.Birthday,
		Country:      req.Country,
		Street:       req.Street,
		City:         req.City,
		MemberTypeID: req.MemberTypeID,
		UserID:       req.UserID,
	})
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", req.UserID).Debug("profile create rejected")
		response.Error[any](c, http.StatusBadRequest, "failed to create profile", nil)
		return
	}
	response.Success(c, http.StatusCreated, p, "profile created")
}

func (h *ProfileHandler) Delete(c *gin.Context) {
	p, err := h.Svc.Delete(c.Param("id"))
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "failed to delete profile", nil)
		return
	}
	response.Success(c, http.StatusOK, p, "profile deleted")
}

func (h *ProfileHandler) Update(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.Update(c.Param("id"), application.UpdateProfileInput{
		Avatar:       req.Avatar,
		Sex:          req.Sex,
		Birthday:     req.Birthday,
		Country:      req.Country,
		Street:       req.Street,
		City:         req.City,
		MemberTypeID: req.MemberTypeID,
	})
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "failed to update profile", nil)
		return
	}
	response.Success(c, http.StatusOK, p, "profile updated")
}
