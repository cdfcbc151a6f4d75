package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/junyi0906/immortal-cultivation-game/engine"
)

// BattleHandler handles battle endpoints.
type BattleHandler struct {
	engine *engine.Engine
}

// NewBattleHandler creates a BattleHandler.
func NewBattleHandler(e *engine.Engine) *BattleHandler {
	return &BattleHandler{engine: e}
}

type startBattleRequest struct {
	MonsterType string `json:"monster_type" binding:"required"`
}

// Start handles POST /api/battle/start.
func (h *BattleHandler) Start(c *gin.Context) {
	var req startBattleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.engine.StartBattle(req.MonsterType); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"state":   h.engine.BattleState(),
		"monster": h.engine.BattleMonster(),
		"log":     h.engine.BattleLog(),
	})
}

// Attack handles POST /api/battle/attack.
func (h *BattleHandler) Attack(c *gin.Context) {
	res, notices, err := h.engine.PlayerAttack()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": res, "notices": notices})
}

// MonsterTurn handles POST /api/battle/monster-turn.
func (h *BattleHandler) MonsterTurn(c *gin.Context) {
	res, err := h.engine.MonsterAttack()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": res})
}

type castSkillRequest struct {
	SkillID string `json:"skill_id" binding:"required"`
}

// CastSkill handles POST /api/battle/skill.
func (h *BattleHandler) CastSkill(c *gin.Context) {
	var req castSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cast, res, notices, err := h.engine.CastSkill(req.SkillID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cast": cast, "result": res, "notices": notices})
}

// AutoSkill handles GET /api/battle/auto-skill.
func (h *BattleHandler) AutoSkill(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"skill_id": h.engine.AutoSkill()})
}

// State handles GET /api/battle.
func (h *BattleHandler) State(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"state":     h.engine.BattleState(),
		"turn":      h.engine.BattleTurn(),
		"monster":   h.engine.BattleMonster(),
		"minions":   h.engine.Minions(),
		"log":       h.engine.BattleLog(),
		"cooldowns": h.engine.Cooldowns(),
	})
}
