package statshttp

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hoopstats/internal/chart"
	"hoopstats/internal/stats"
)

// StatsService 由 app.Service 实现。
type StatsService interface {
	Players() []string
	PlayerStats(player string) []stats.StatRow
	PlayerSeasonStats(player string, seasonType stats.SeasonType) []stats.StatRow
	SeasonStats(seasonType stats.SeasonType) []stats.StatRow
	PlotPlayerStat(ctx context.Context, player string, stat stats.Stat, seasonType stats.SeasonType) (chart.Artifact, error)
	CompareAllPlayers(ctx context.Context, stat stats.Stat, seasonType stats.SeasonType) (chart.Artifact, error)
}

// Router 暴露统计查询与图表接口。
type Router struct {
	svc StatsService
}

func NewRouter(svc StatsService) *Router {
	return &Router{svc: svc}
}

// Register 挂载 /api 与 /charts 路由。
func (r *Router) Register(router gin.IRouter) {
	if router == nil {
		return
	}
	api := router.Group("/api")
	api.GET("/players", r.handlePlayers)
	api.GET("/players/:player/stats", r.handlePlayerStats)
	api.GET("/seasons/:season_type/stats", r.handleSeasonStats)

	charts := router.Group("/charts")
	charts.GET("/players/:player", r.handlePlayerChart)
	charts.GET("/seasons/:season_type", r.handleSeasonChart)
}

func (r *Router) handlePlayers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"players": r.svc.Players()})
}

// handlePlayerStats 不校验球员或赛季类型，未知值返回空列表。
func (r *Router) handlePlayerStats(c *gin.Context) {
	player := c.Param("player")
	var rows []stats.StatRow
	if st, ok := c.GetQuery("season_type"); ok {
		rows = r.svc.PlayerSeasonStats(player, stats.SeasonType(st))
	} else {
		rows = r.svc.PlayerStats(player)
	}
	writeRows(c, rows)
}

func (r *Router) handleSeasonStats(c *gin.Context) {
	writeRows(c, r.svc.SeasonStats(stats.SeasonType(c.Param("season_type"))))
}

func (r *Router) handlePlayerChart(c *gin.Context) {
	stat, ok := statParam(c)
	if !ok {
		return
	}
	seasonType := stats.SeasonType(c.DefaultQuery("season_type", string(stats.RegularSeason)))
	art, err := r.svc.PlotPlayerStat(c.Request.Context(), c.Param("player"), stat, seasonType)
	writeArtifact(c, art, err)
}

func (r *Router) handleSeasonChart(c *gin.Context) {
	stat, ok := statParam(c)
	if !ok {
		return
	}
	art, err := r.svc.CompareAllPlayers(c.Request.Context(), stat, stats.SeasonType(c.Param("season_type")))
	writeArtifact(c, art, err)
}

func statParam(c *gin.Context) (stats.Stat, bool) {
	raw := strings.TrimSpace(c.DefaultQuery("stat", string(stats.StatPoints)))
	stat, err := stats.ParseStat(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", false
	}
	return stat, true
}

func writeRows(c *gin.Context, rows []stats.StatRow) {
	if rows == nil {
		rows = []stats.StatRow{}
	}
	c.JSON(http.StatusOK, gin.H{"rows": rows, "count": len(rows)})
}

func writeArtifact(c *gin.Context, art chart.Artifact, err error) {
	if errors.Is(err, chart.ErrNoRows) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", `inline; filename="`+art.Filename+`"`)
	c.Data(http.StatusOK, art.ContentType, art.Bytes)
}
