package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/junyi0906/immortal-cultivation-game/audit"
	"github.com/junyi0906/immortal-cultivation-game/config"
	"github.com/junyi0906/immortal-cultivation-game/engine"
	mw "github.com/junyi0906/immortal-cultivation-game/middleware"
)

// NewRouter builds the gin engine with the full middleware chain and every
// game route mounted under /api. auditSvc may be nil.
func NewRouter(e *engine.Engine, cfg *config.Config, logger *zap.Logger, auditSvc *audit.Service) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if !cfg.Server.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(mw.TraceID(), mw.Logger(logger), mw.Recovery(logger))
	r.Use(mw.RateLimit(rate.Limit(cfg.Security.RateLimitRPS), cfg.Security.RateLimitBurst))

	if cfg.Server.StaticDir != "" {
		r.Static("/game", cfg.Server.StaticDir)
	}
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	gameH := NewGameHandler(e, auditSvc)
	battleH := NewBattleHandler(e)
	npcH := NewNPCHandler(e)
	charH := NewCharacterHandler(e)
	worldH := NewWorldHandler(e)

	api := r.Group("/api")
	{
		gameG := api.Group("/game")
		{
			gameG.POST("/init", gameH.Init)
			gameG.POST("/reset", gameH.Reset)
			gameG.POST("/character", gameH.CreateCharacter)
			gameG.GET("/state", gameH.State)
			gameG.POST("/save", gameH.Save)
			gameG.GET("/save", gameH.HasSave)
			gameG.POST("/event", gameH.Event)
		}

		battleG := api.Group("/battle")
		{
			battleG.GET("", battleH.State)
			battleG.POST("/start", battleH.Start)
			battleG.POST("/attack", battleH.Attack)
			battleG.POST("/monster-turn", battleH.MonsterTurn)
			battleG.POST("/skill", battleH.CastSkill)
			battleG.GET("/auto-skill", battleH.AutoSkill)
		}

		npcG := api.Group("/npc")
		{
			npcG.GET("/:id/dialog", npcH.Dialog)
			npcG.GET("/:id/shop", npcH.Shop)
			npcG.POST("/:id/buy", npcH.Buy)
		}

		taskG := api.Group("/tasks")
		{
			taskG.POST("/accept", npcH.AcceptTask)
			taskG.GET("/:id/progress", npcH.TaskProgress)
			taskG.POST("/:id/complete", npcH.CompleteTask)
		}

		charG := api.Group("/character")
		{
			charG.POST("/levelup", charH.LevelUp)
			charG.POST("/stats", charH.DistributeStats)
		}

		itemG := api.Group("/items")
		{
			itemG.POST("/use", charH.UseItem)
			itemG.POST("/equip", charH.Equip)
		}

		skillG := api.Group("/skills")
		{
			skillG.GET("", charH.Skills)
			skillG.POST("/learn", charH.LearnSkill)
		}

		api.GET("/maps", worldH.Maps)
		mapG := api.Group("/map")
		{
			mapG.POST("/switch", worldH.Switch)
			mapG.POST("/unlock", worldH.Unlock)
			mapG.POST("/position", worldH.Position)
			mapG.POST("/portal", worldH.Portal)
		}

		completeG := api.Group("/complete")
		{
			completeG.GET("/check", worldH.CheckComplete)
			completeG.POST("", worldH.Complete)
			completeG.GET("/ending", worldH.Ending)
		}
	}

	return r
}
