package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/natenaltsega2225/AbeGarage-Backend/realtime"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Dashboards are served from a separate origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WSHandler upgrades authenticated employees to a websocket subscribed to
// order events.
type WSHandler struct {
	hub *realtime.Hub
}

func NewWSHandler(hub *realtime.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

// EmployeeSocket upgrades the request and keeps the connection registered
// until the client goes away.
func (h *WSHandler) EmployeeSocket() gin.HandlerFunc {
	return func(c *gin.Context) {
		employeeID := c.GetString("employee_id")
		if employeeID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "websocket upgrade failed"})
			return
		}

		h.hub.RegisterEmployee(employeeID, conn)

		// The dashboard never sends meaningful frames; the read loop exists
		// to detect disconnects and service control frames.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.hub.UnregisterEmployee(employeeID)
				return
			}
		}
	}
}
