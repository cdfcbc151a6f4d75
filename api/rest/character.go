package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/junyi0906/immortal-cultivation-game/engine"
	"github.com/junyi0906/immortal-cultivation-game/game/character"
	"github.com/junyi0906/immortal-cultivation-game/game/skill"
)

// CharacterHandler handles progression, item, and skill endpoints.
type CharacterHandler struct {
	engine *engine.Engine
}

// NewCharacterHandler creates a CharacterHandler.
func NewCharacterHandler(e *engine.Engine) *CharacterHandler {
	return &CharacterHandler{engine: e}
}

// LevelUp handles POST /api/character/levelup.
func (h *CharacterHandler) LevelUp(c *gin.Context) {
	msg, err := h.engine.LevelUp()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// DistributeStats handles POST /api/character/stats.
func (h *CharacterHandler) DistributeStats(c *gin.Context) {
	var alloc character.StatAllocation
	if err := c.ShouldBindJSON(&alloc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	msg, err := h.engine.DistributeStats(alloc)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

type useItemRequest struct {
	ItemID string `json:"item_id" binding:"required"`
}

// UseItem handles POST /api/items/use.
func (h *CharacterHandler) UseItem(c *gin.Context) {
	var req useItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	msg, err := h.engine.UseItem(req.ItemID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

type equipRequest struct {
	Slot   string `json:"slot" binding:"required"`
	ItemID string `json:"item_id" binding:"required"`
}

// Equip handles POST /api/items/equip.
func (h *CharacterHandler) Equip(c *gin.Context) {
	var req equipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	msg, err := h.engine.EquipItem(req.Slot, req.ItemID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// Skills handles GET /api/skills: the learnable list for the player's class.
func (h *CharacterHandler) Skills(c *gin.Context) {
	state := h.engine.GameState()
	if state == nil || state.Player == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "角色尚未创建"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"skills":    skill.ForClass(state.Player.Class),
		"learned":   state.Player.Skills,
		"cooldowns": h.engine.Cooldowns(),
	})
}

type learnSkillRequest struct {
	SkillID string `json:"skill_id" binding:"required"`
}

// LearnSkill handles POST /api/skills/learn.
func (h *CharacterHandler) LearnSkill(c *gin.Context) {
	var req learnSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	msg, err := h.engine.LearnSkill(req.SkillID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}
