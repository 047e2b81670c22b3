// Package handlers wires the HTTP/JSON boundary. Each handler binds
// input, delegates to the service layer and maps the returned error
// kind to a status code; the mapping is uniform across resources.
package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shravani101006/serene-write/auth"
	"github.com/shravani101006/serene-write/service"
)

type Handler struct {
	svc    *service.Service
	tokens *auth.TokenService
}

func New(svc *service.Service, tokens *auth.TokenService) *Handler {
	return &Handler{svc: svc, tokens: tokens}
}

// Routes mounts every API route on the engine.
func (h *Handler) Routes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	api := r.Group("/api")

	api.POST("/auth/register", h.RegisterUser)
	api.POST("/auth/login", h.Login)

	api.GET("/user/me", h.requireAuth(), h.Me)
	api.PUT("/user/me", h.requireAuth(), h.UpdateMe)
	api.GET("/user/:id", h.UserByID)

	api.GET("/post", h.Feed)
	api.GET("/post/search", h.SearchPosts)
	api.GET("/post/user/:id", h.PostsByUser)
	api.GET("/post/:id", h.PostByID)
	api.POST("/post", h.requireAuth(), h.CreatePost)
	api.PUT("/post/:id", h.requireAuth(), h.UpdatePost)
	api.DELETE("/post/:id", h.requireAuth(), h.DeletePost)

	api.GET("/comment/post/:postId", h.CommentsForPost)
	api.POST("/comment/:postId", h.requireAuth(), h.CreateComment)
	api.DELETE("/comment/:id", h.requireAuth(), h.DeleteComment)

	api.POST("/like/:postId", h.requireAuth(), h.ToggleLike)
	api.GET("/like/:postId", h.Likers)

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"message": "API route not found"})
			return
		}
		c.Status(http.StatusNotFound)
	})
}

// writeError maps an error to its status. Anything outside the known
// kinds is a 500 with a generic body; the detail stays in the server
// log only.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthenticated) || errors.Is(err, auth.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, service.ErrInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	default:
		log.Printf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
	}
}
