package handlers

import "github.com/gin-gonic/gin"

// Set bundles the handlers for route registration.
type Set struct {
	Pages          *PageHandler
	Auth           *AuthHandler
	Users          *UserHandler
	Groups         *GroupHandler
	Availabilities *AvailabilityHandler
}

// Register wires the full route surface. requireAuth is the identity gate
// applied to protected routes.
func Register(r *gin.Engine, s Set, requireAuth gin.HandlerFunc) {
	r.GET("/", s.Pages.Landing)

	r.GET("/users/new", s.Users.NewForm)
	r.POST("/users/new", s.Users.Create)
	r.GET("/users/profile", requireAuth, s.Users.Profile)
	r.PUT("/users/:id/edit", requireAuth, s.Users.Update)

	r.GET("/auth/login", s.Auth.ShowLogin)
	r.POST("/auth/login", s.Auth.Login)
	r.GET("/auth/logout", s.Auth.Logout)
	r.POST("/auth/unauthenticated", s.Auth.Unauthenticated)

	r.GET("/protected", requireAuth, s.Auth.Protected)

	r.GET("/groups", s.Groups.Index)
	r.GET("/groups/new", requireAuth, s.Groups.NewForm)
	r.POST("/groups", requireAuth, s.Groups.Create)
	r.GET("/groups/profile", requireAuth, s.Groups.Profile)
	r.GET("/groups/:group_id/users", requireAuth, s.Groups.Users)
	r.GET("/groups/:group_id/assignments", requireAuth, s.Groups.Assignments)

	r.POST("/availabilities", requireAuth, s.Availabilities.Create)
}
