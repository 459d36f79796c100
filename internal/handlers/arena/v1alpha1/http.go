package v1alpha1

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/orchestrators/battle"
)

// HTTP routes
const (
	RouteCatalog        = "/catalog"
	RouteBattles        = "/battles"
	RouteBattleHit      = "/battles/:id/hit"
	RouteBattleUseSkill = "/battles/:id/use-skill"
	RouteBattlePassTurn = "/battles/:id/pass-turn"
	RouteBattleResult   = "/battles/:id/result"
	RouteBattleByID     = "/battles/:id"
	RouteRecords        = "/records"
	RouteRecordByID     = "/records/:id"

	jsonKeyError = "error"
	jsonKeyCode  = "code"
)

// NewRouter builds the gin engine serving the arena under /api/v1alpha1
func NewRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1alpha1")
	{
		api.GET(RouteCatalog, h.httpListCatalog)
		api.POST(RouteBattles, h.httpStartBattle)
		api.POST(RouteBattleHit, h.httpAction(h.battleService.PlayerHit))
		api.POST(RouteBattleUseSkill, h.httpAction(h.battleService.PlayerUseSkill))
		api.POST(RouteBattlePassTurn, h.httpAction(h.battleService.PassTurn))
		api.GET(RouteBattleResult, h.httpBattleResult)
		api.DELETE(RouteBattleByID, h.httpEndBattle)
		api.GET(RouteRecords, h.httpListRecords)
		api.GET(RouteRecordByID, h.httpGetRecord)
	}

	return router
}

func (h *Handler) httpListCatalog(c *gin.Context) {
	out, err := h.battleService.ListCatalog(c.Request.Context(), &battle.ListCatalogInput{})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCatalogResponse(out))
}

func (h *Handler) httpStartBattle(c *gin.Context) {
	var req StartBattleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request body"))
		return
	}

	out, err := h.battleService.StartBattle(c.Request.Context(), req.toInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toStartBattleResponse(out))
}

func (h *Handler) httpAction(fn actionFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := fn(c.Request.Context(), &battle.ActionInput{BattleID: c.Param("id")})
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, toTurnResponse(out))
	}
}

func (h *Handler) httpBattleResult(c *gin.Context) {
	out, err := h.battleService.GetBattleResult(c.Request.Context(), &battle.GetBattleResultInput{BattleID: c.Param("id")})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBattleResultResponse(out))
}

func (h *Handler) httpEndBattle(c *gin.Context) {
	id := c.Param("id")
	out, err := h.battleService.EndBattle(c.Request.Context(), &battle.EndBattleInput{BattleID: id})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, &EndBattleResponse{BattleID: id, WasRunning: out.WasRunning})
}

func (h *Handler) httpGetRecord(c *gin.Context) {
	out, err := h.battleService.GetRecord(c.Request.Context(), &battle.GetRecordInput{BattleID: c.Param("id")})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRecord(out.Record))
}

func (h *Handler) httpListRecords(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(c, errors.InvalidArgumentf("limit must be a number, got %q", raw))
			return
		}
		limit = n
	}

	out, err := h.battleService.ListRecords(c.Request.Context(), &battle.ListRecordsInput{Limit: limit})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRecordsResponse(out.Records))
}

func writeError(c *gin.Context, err error) {
	code := errors.GetCode(err)
	if code == errors.CodeInternal {
		slog.ErrorContext(c.Request.Context(), "Request failed",
			"path", c.FullPath(),
			"error", err,
		)
	}
	c.JSON(code.HTTPStatus(), gin.H{
		jsonKeyError: errors.Describe(err),
		jsonKeyCode:  code.String(),
	})
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		slog.Debug("HTTP request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
		)
	}
}
