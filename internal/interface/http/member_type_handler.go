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

type MemberTypeHandler struct {
	Svc    *application.MemberTypeService
	Logger *logrus.Logger
}

func NewMemberTypeHandler(svc *application.MemberTypeService, logger *logrus.Logger) *MemberTypeHandler {
	return &MemberTypeHandler{Svc: svc, Logger: logger}
}

type updateMemberTypeRequest struct {
	Discount        *int `json:"discount" binding:"omitempty,gte=0"`
	MonthPostsLimit *int `json:"monthPostsLimit" binding:"omitempty,gte=0"`
}

func (h *MemberTypeHandler) List(c *gin.Context) {
	memberTypes, err := h.Svc.List()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "failed to list member types", nil)
		return
	}
	response.Success(c, http.StatusOK, memberTypes, "member types")
}

func (h *MemberTypeHandler) Get(c *gin.Context) {
	mt, err := h.Svc.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "member type not found", nil)
			return
		}
		response.Error[any](c, http.StatusBadRequest, "failed to get member type", nil)
		return
	}
	response.Success(c, http.StatusOK, mt, "member type")
}

// Update rejects the sentinel-invalid id with 400 before any lookup, then
// 404 for unknown ids.
func (h *MemberTypeHandler) Update(c *gin.Context) {
	var req updateMemberTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	mt, err := h.Svc.Update(c.Param("id"), application.UpdateMemberTypeInput{
		Discount:        req.Discount,
		MonthPostsLimit: req.MonthPostsLimit,
	})
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "member type not found", nil)
			return
		}
		response.Error[any](c, http.StatusBadRequest, "failed to update member type", nil)
		return
	}
	response.Success(c, http.StatusOK, mt, "member type updated")
}
