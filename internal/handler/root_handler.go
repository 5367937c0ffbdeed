package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Root godoc
// @Summary      Hello
// @Tags         meta
// @Produce      json
// @Success      200  {object}  map[string]string "{"hello": "world"}"
// @Router       / [get]
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"hello": "world"})
}

// Ping godoc
// @Summary      Health check
// @Tags         meta
// @Produce      json
// @Success      200  {object}  map[string]string "{"message": "pong"}"
// @Router       /ping [get]
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
