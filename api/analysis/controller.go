package analysisapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/beka-birhanu/vinom-mazestats/api/i"
	"github.com/beka-birhanu/vinom-mazestats/domain"
	"github.com/beka-birhanu/vinom-mazestats/report"
	"github.com/beka-birhanu/vinom-mazestats/service"
	svci "github.com/beka-birhanu/vinom-mazestats/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Controller manages analysis and maze inspection requests.
type Controller struct {
	queue          svci.AnalysisQueue
	analyzer       svci.Analyzer
	inspector      svci.MazeInspector
	defaults       domain.AnalysisConfig
	maxSyncSamples int
}

var _ i.Controller = &Controller{}

// Config holds the dependencies of a Controller.
type Config struct {
	Queue          svci.AnalysisQueue
	Analyzer       svci.Analyzer
	Inspector      svci.MazeInspector
	Defaults       domain.AnalysisConfig // Values for fields a request omits
	MaxSyncSamples int                   // Largest sample count run inline
}

// NewController initializes a Controller.
func NewController(c Config) (*Controller, error) {
	if c.Queue == nil || c.Analyzer == nil || c.Inspector == nil {
		return nil, errors.New("analysis controller requires a queue, an analyzer and an inspector")
	}
	return &Controller{
		queue:          c.Queue,
		analyzer:       c.Analyzer,
		inspector:      c.Inspector,
		defaults:       c.Defaults,
		maxSyncSamples: c.MaxSyncSamples,
	}, nil
}

// RegisterPublic registers public routes.
func (ac *Controller) RegisterPublic(route *gin.RouterGroup) {
	analyses := route.Group("/analyses")
	{
		analyses.GET("/:ID", ac.report)
	}
}

// RegisterProtected registers protected routes.
func (ac *Controller) RegisterProtected(route *gin.RouterGroup) {
	analyses := route.Group("/analyses")
	{
		analyses.POST("", ac.queueAnalysis)
		analyses.POST("/run", ac.runAnalysis)
	}

	mazes := route.Group("/mazes")
	{
		mazes.POST("/complexity", ac.complexity)
	}
}

// queueAnalysis queues an analysis and answers with its ID.
func (ac *Controller) queueAnalysis(ctx *gin.Context) {
	cfg, ok := ac.bindConfig(ctx)
	if !ok {
		return
	}

	id, err := ac.queue.Push(ctx, cfg)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while queueing analysis"})
		return
	}

	ctx.JSON(http.StatusAccepted, &AnalysisAcceptedResponse{ID: id, Status: domain.StatusQueued})
}

// runAnalysis runs a small analysis within the request.
func (ac *Controller) runAnalysis(ctx *gin.Context) {
	cfg, ok := ac.bindConfig(ctx)
	if !ok {
		return
	}

	if ac.maxSyncSamples > 0 && cfg.Samples > ac.maxSyncSamples {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("at most %d samples run inline, queue larger analyses", ac.maxSyncSamples),
		})
		return
	}

	result, err := ac.analyzer.Run(ctx, cfg)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ac.render(ctx, result)
}

// report retrieves the report of a queued analysis.
func (ac *Controller) report(ctx *gin.Context) {
	ID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	result, err := ac.queue.Report(ctx, ID)
	if errors.Is(err, service.ErrJobNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "analysis not found"})
		return
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while loading analysis"})
		return
	}

	ac.render(ctx, result)
}

// complexity classifies the critical path of a maze supplied in the request.
func (ac *Controller) complexity(ctx *gin.Context) {
	var request ComplexityRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c, err := ac.inspector.Inspect(request.toMaze(), request.Start.toMaze(), request.End.toMaze())
	if errors.Is(err, service.ErrInvalidMaze) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while inspecting maze"})
		return
	}

	ctx.JSON(http.StatusOK, newComplexityResponse(c))
}

// bindConfig reads and validates the request body, answering 400 on failure.
func (ac *Controller) bindConfig(ctx *gin.Context) (domain.AnalysisConfig, bool) {
	var request AnalysisRequest
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&request); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return domain.AnalysisConfig{}, false
		}
	}

	cfg := request.toConfig(ac.defaults)
	if err := cfg.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return domain.AnalysisConfig{}, false
	}
	return cfg, true
}

// render writes r as JSON, or as the percentile table when ?format=text.
func (ac *Controller) render(ctx *gin.Context, r *domain.Report) {
	if !strings.EqualFold(ctx.Query("format"), "text") || r.Status != domain.StatusDone {
		ctx.JSON(http.StatusOK, r)
		return
	}

	var b strings.Builder
	if err := report.WriteText(&b, r); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.String(http.StatusOK, b.String())
}
