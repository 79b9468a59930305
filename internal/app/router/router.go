// Package router assembles the HTTP routes.
package router

import (
	"github.com/gin-gonic/gin"

	authhandler "petcare_backend/internal/feature/auth/transport/handler"
	pethandler "petcare_backend/internal/feature/pets/transport/handler"
	jwtmw "petcare_backend/internal/platform/jwt"
	"petcare_backend/internal/platform/http/handler"
)

// NewRouter wires the public and session-carrying routes.
func NewRouter(authHandler *authhandler.AuthHandler, pets *pethandler.PetHandler) *gin.Engine {
	r := gin.Default()

	// No session required
	r.GET("/healthz", handler.Health)
	// Account registration
	r.POST("/signup", authHandler.Signup)
	// Login (issues the session token)
	r.POST("/login", authHandler.Login)

	// Routes carrying a session token. The middleware only extracts the
	// bearer token; each action re-derives the session itself and redirects
	// to /login when it is absent.
	app := r.Group("/")
	app.Use(jwtmw.SessionToken())
	{
		app.POST("/logout", authHandler.Logout)
		app.GET("/pets", pets.List)
		app.POST("/pets", pets.Create)
		app.PUT("/pets/:id", pets.Update)
		app.DELETE("/pets/:id", pets.Delete)
	}

	return r
}
