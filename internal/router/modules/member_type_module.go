package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/memberhub/memberhub/internal/interface/http"
)

// MemberTypeModule wires member-type HTTP handlers into routes under
// /api/member-types. Member types cannot be created or deleted.
type MemberTypeModule struct {
	Handler *handlers.MemberTypeHandler
}

func NewMemberTypeModule(h *handlers.MemberTypeHandler) *MemberTypeModule {
	return &MemberTypeModule{Handler: h}
}

func (m *MemberTypeModule) Register(rg *gin.RouterGroup) {
	memberTypes := rg.Group("/member-types")
	{
		memberTypes.GET("", m.Handler.List)
		memberTypes.GET("/:id", m.Handler.Get)
		memberTypes.PATCH("/:id", m.Handler.Update)
	}
}
