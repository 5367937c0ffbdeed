package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

// StreamEvents godoc
// @Summary      Stream catalog events
// @Description  Server-Sent Events stream of game.created, game.updated and game.deleted.
// @Tags         events
// @Produce      text/event-stream
// @Success      200  {object}  hub.Event
// @Router       /events [get]
func (h *GameHandler) StreamEvents(c *gin.Context) {
	client := h.hub.Subscribe()
	defer h.hub.Unsubscribe(client)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	done := c.Request.Context().Done()
	for {
		select {
		case msg, ok := <-client:
			if !ok {
				return
			}
			writeEvent(c, msg)
		case <-done:
			// Flush whatever was already queued before the client left.
			for {
				select {
				case msg, ok := <-client:
					if !ok {
						return
					}
					writeEvent(c, msg)
				default:
					return
				}
			}
		}
	}
}

func writeEvent(c *gin.Context, msg []byte) {
	var head struct {
		Type string `json:"type"`
	}
	name := "message"
	if err := json.Unmarshal(msg, &head); err == nil && head.Type != "" {
		name = head.Type
	}
	c.SSEvent(name, string(msg))
	c.Writer.Flush()
}
