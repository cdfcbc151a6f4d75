package rest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/junyi0906/immortal-cultivation-game/audit"
	"github.com/junyi0906/immortal-cultivation-game/coordinator"
	"github.com/junyi0906/immortal-cultivation-game/engine"
	mw "github.com/junyi0906/immortal-cultivation-game/middleware"
)

// GameHandler handles lifecycle and state endpoints.
type GameHandler struct {
	engine *engine.Engine
	audit  *audit.Service // optional
}

// NewGameHandler creates a GameHandler.
func NewGameHandler(e *engine.Engine, auditSvc *audit.Service) *GameHandler {
	return &GameHandler{engine: e, audit: auditSvc}
}

type initRequest struct {
	LoadSave bool `json:"load_save"`
}

// Init handles POST /api/game/init.
func (h *GameHandler) Init(c *gin.Context) {
	var req initRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	loaded := h.engine.Init(c.Request.Context(), req.LoadSave)
	c.JSON(http.StatusOK, gin.H{"loaded": loaded, "state": h.engine.GameState()})
}

// Reset handles POST /api/game/reset.
func (h *GameHandler) Reset(c *gin.Context) {
	if err := h.engine.Reset(c.Request.Context()); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": h.engine.GameState()})
}

type createCharacterRequest struct {
	Name  string `json:"name"`
	Class string `json:"class" binding:"required"`
}

// CreateCharacter handles POST /api/game/character.
func (h *GameHandler) CreateCharacter(c *gin.Context) {
	var req createCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := h.engine.CreateCharacter(req.Name, req.Class)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"player": p})
}

// State handles GET /api/game/state.
func (h *GameHandler) State(c *gin.Context) {
	state := h.engine.GameState()
	if state == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "游戏未初始化"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": state})
}

// Save handles POST /api/game/save.
func (h *GameHandler) Save(c *gin.Context) {
	if err := h.engine.Save(c.Request.Context()); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": true})
}

// HasSave handles GET /api/game/save.
func (h *GameHandler) HasSave(c *gin.Context) {
	has, err := h.engine.HasSave(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": has})
}

// Event handles POST /api/game/event: the body is a raw coordinator message.
func (h *GameHandler) Event(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ev, _, err := coordinator.ParseMessage(raw)
	if err != nil {
		fail(c, err)
		return
	}

	start := time.Now()
	res, err := h.engine.HandleEvent(c.Request.Context(), ev)
	h.logEvent(c, ev, res, err, time.Since(start))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// logEvent records the event in the audit trail when one is configured.
func (h *GameHandler) logEvent(c *gin.Context, ev coordinator.Event, res *coordinator.Result, err error, d time.Duration) {
	if h.audit == nil {
		return
	}
	entry := audit.Entry{
		TraceID:    mw.GetTraceID(c),
		EventType:  string(ev.Type()),
		Payload:    ev,
		DurationMs: int(d.Milliseconds()),
	}
	if err != nil {
		entry.Error = err.Error()
	} else if res != nil {
		entry.Message = res.Message
	}
	h.audit.Log(entry)
}
