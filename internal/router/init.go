package router

import (
	"github.com/memberhub/memberhub/internal/application"
	"github.com/memberhub/memberhub/internal/container"
	"github.com/memberhub/memberhub/internal/infrastructure/memory"
	handlers "github.com/memberhub/memberhub/internal/interface/http"
	"github.com/memberhub/memberhub/internal/router/modules"
)

// InitModules builds every feature module against the given store and
// registers them with the router registry. The store is passed explicitly
// so request handling stays testable with an isolated instance; only the
// logger comes from the container.
func InitModules(r *Registry, store *memory.Store) {
	logger := container.GetLogger()

	users := store.Users()
	profiles := store.Profiles()
	memberTypes := store.MemberTypes()
	posts := store.Posts()

	userSvc := application.NewUserService(users, profiles, posts, logger)
	profileSvc := application.NewProfileService(profiles, users, memberTypes, logger)
	memberTypeSvc := application.NewMemberTypeService(memberTypes, logger)
	postSvc := application.NewPostService(posts, users, logger)

	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger)))
	r.Add(modules.NewProfileModule(handlers.NewProfileHandler(profileSvc, logger)))
	r.Add(modules.NewMemberTypeModule(handlers.NewMemberTypeHandler(memberTypeSvc, logger)))
	r.Add(modules.NewPostModule(handlers.NewPostHandler(postSvc, logger)))
}
