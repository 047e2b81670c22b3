package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shravani101006/serene-write/service"
)

func (h *Handler) CreatePost(c *gin.Context) {
	var in service.CreatePostInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input"})
		return
	}

	p, err := h.svc.CreatePost(c.Request.Context(), currentUser(c), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) UpdatePost(c *gin.Context) {
	var in service.UpdatePostInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input"})
		return
	}

	p, err := h.svc.UpdatePost(c.Request.Context(), currentUser(c), c.Param("id"), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) DeletePost(c *gin.Context) {
	if err := h.svc.DeletePost(c.Request.Context(), currentUser(c), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) Feed(c *gin.Context) {
	posts, err := h.svc.Feed(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *Handler) SearchPosts(c *gin.Context) {
	posts, err := h.svc.Search(c.Request.Context(), c.Query("q"), c.Query("author"), c.Query("mood"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *Handler) PostsByUser(c *gin.Context) {
	posts, err := h.svc.PostsByAuthor(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *Handler) PostByID(c *gin.Context) {
	p, err := h.svc.PostByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
