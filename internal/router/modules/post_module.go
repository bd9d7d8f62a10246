package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/memberhub/memberhub/internal/interface/http"
)

// PostModule wires post HTTP handlers into routes under /api/posts.
type PostModule struct {
	Handler *handlers.PostHandler
}

func NewPostModule(h *handlers.PostHandler) *PostModule {
	return &PostModule{Handler: h}
}

func (m *PostModule) Register(rg *gin.RouterGroup) {
	posts := rg.Group("/posts")
	{
		posts.GET("", m.Handler.List)
		posts.POST("", m.Handler.Create)
		posts.GET("/:id", m.Handler.Get)
		posts.DELETE("/:id", m.Handler.Delete)
		posts.PATCH("/:id", m.Handler.Update)
	}
}
