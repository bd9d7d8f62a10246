package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/memberhub/memberhub/internal/interface/http"
)

// ProfileModule wires profile HTTP handlers into routes under /api/profiles.
type ProfileModule struct {
	Handler *handlers.ProfileHandler
}

func NewProfileModule(h *handlers.ProfileHandler) *ProfileModule {
	return &ProfileModule{Handler: h}
}

func (m *ProfileModule) Register(rg *gin.RouterGroup) {
	profiles := rg.Group("/profiles")
	{
		profiles.GET("", m.Handler.List)
		profiles.POST("", m.Handler.Create)
		profiles.GET("/:id", m.Handler.Get)
		profiles.DELETE("/:id", m.Handler.Delete)
		profiles.PATCH("/:id", m.Handler.Update)
	}
}
