package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/junyi0906/immortal-cultivation-game/engine"
	"github.com/junyi0906/immortal-cultivation-game/game/complete"
	"github.com/junyi0906/immortal-cultivation-game/game/world"
)

// WorldHandler handles map travel and game completion endpoints.
type WorldHandler struct {
	engine *engine.Engine
}

// NewWorldHandler creates a WorldHandler.
func NewWorldHandler(e *engine.Engine) *WorldHandler {
	return &WorldHandler{engine: e}
}

// Maps handles GET /api/maps.
func (h *WorldHandler) Maps(c *gin.Context) {
	maps := make([]*world.Map, 0, len(world.MapList))
	for _, id := range world.MapList {
		m := world.Maps[id]
		maps = append(maps, &m)
	}
	c.JSON(http.StatusOK, gin.H{"maps": maps})
}

type switchMapRequest struct {
	MapID string `json:"map_id" binding:"required"`
}

// Switch handles POST /api/map/switch.
func (h *WorldHandler) Switch(c *gin.Context) {
	var req switchMapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	m, err := h.engine.SwitchMap(req.MapID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"map": m})
}

// Unlock handles POST /api/map/unlock.
func (h *WorldHandler) Unlock(c *gin.Context) {
	var req switchMapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	msg, changed, err := h.engine.UnlockMap(req.MapID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg, "unlocked": changed})
}

type positionRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Position handles POST /api/map/position.
func (h *WorldHandler) Position(c *gin.Context) {
	var req positionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.engine.UpdatePosition(req.X, req.Y); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"x": req.X, "y": req.Y})
}

// Portal handles POST /api/map/portal: a click that may travel through a portal.
func (h *WorldHandler) Portal(c *gin.Context) {
	var req positionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	m, err := h.engine.PortalClick(req.X, req.Y)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"map": m, "traveled": m != nil})
}

// CheckComplete handles GET /api/complete/check.
func (h *WorldHandler) CheckComplete(c *gin.Context) {
	check, err := h.engine.CheckComplete()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, check)
}

// Complete handles POST /api/complete.
func (h *WorldHandler) Complete(c *gin.Context) {
	res, err := h.engine.CompleteGame()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Ending handles GET /api/complete/ending.
func (h *WorldHandler) Ending(c *gin.Context) {
	stats, scenes, err := h.engine.Ending()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats, "scenes": scenes, "rewards": complete.CompletionRewards})
}
