package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/junyi0906/immortal-cultivation-game/engine"
	"github.com/junyi0906/immortal-cultivation-game/game/npc"
)

// NPCHandler handles NPC dialog, task, and shop endpoints.
type NPCHandler struct {
	engine *engine.Engine
}

// NewNPCHandler creates an NPCHandler.
func NewNPCHandler(e *engine.Engine) *NPCHandler {
	return &NPCHandler{engine: e}
}

// Dialog handles GET /api/npc/:id/dialog.
func (h *NPCHandler) Dialog(c *gin.Context) {
	dialog, err := h.engine.TalkToNPC(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dialog": dialog})
}

// Shop handles GET /api/npc/:id/shop.
func (h *NPCHandler) Shop(c *gin.Context) {
	items, err := npc.ShopItems(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

type buyRequest struct {
	ItemID string `json:"item_id" binding:"required"`
}

// Buy handles POST /api/npc/:id/buy.
func (h *NPCHandler) Buy(c *gin.Context) {
	var req buyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	purchase, err := h.engine.BuyItem(c.Param("id"), req.ItemID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, purchase)
}

type acceptTaskRequest struct {
	TaskID string `json:"task_id" binding:"required"`
}

// AcceptTask handles POST /api/tasks/accept.
func (h *NPCHandler) AcceptTask(c *gin.Context) {
	var req acceptTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	task, msg, err := h.engine.AcceptTask(req.TaskID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": task, "message": msg})
}

// TaskProgress handles GET /api/tasks/:id/progress.
func (h *NPCHandler) TaskProgress(c *gin.Context) {
	v, err := h.engine.TaskProgress(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// CompleteTask handles POST /api/tasks/:id/complete.
func (h *NPCHandler) CompleteTask(c *gin.Context) {
	res, err := h.engine.CompleteTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": res.Message, "state": res.State})
}
