package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ToggleLike(c *gin.Context) {
	likes, err := h.svc.ToggleLike(c.Request.Context(), currentUser(c), c.Param("postId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"likes": likes})
}

func (h *Handler) Likers(c *gin.Context) {
	likers, err := h.svc.Likers(c.Request.Context(), c.Param("postId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"likers": likers})
}
