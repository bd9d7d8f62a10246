package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/memberhub/memberhub/internal/interface/http"
)

// UserModule wires user HTTP handlers into routes:
// GET/POST /api/users, GET/DELETE/PATCH /api/users/:id,
// POST /api/users/:id/subscribeTo, POST /api/users/:id/unsubscribeFrom
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.GET("", m.Handler.List)
		users.POST("", m.Handler.Create)
		users.GET("/:id", m.Handler.Get)
		users.DELETE("/:id", m.Handler.Delete)
		users.PATCH("/:id", m.Handler.Update)
		users.POST("/:id/subscribeTo", m.Handler.Subscribe)
		users.POST("/:id/unsubscribeFrom", m.Handler.Unsubscribe)
	}
}
