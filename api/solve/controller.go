package solveapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/beka-birhanu/vinom-solver/api/identity"
	dmn "github.com/beka-birhanu/vinom-solver/domain"
	"github.com/beka-birhanu/vinom-solver/service"
	"github.com/beka-birhanu/vinom-solver/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	solveTimeout  = 10 * time.Second
	lookupTimeout = 2 * time.Second
)

// SolveController manages solve operations.
type SolveController struct {
	solveService i.Solver
}

// NewSolveController initializes a SolveController.
func NewSolveController(s i.Solver) (*SolveController, error) {
	if s == nil {
		return nil, errors.New("solve service is required")
	}
	return &SolveController{solveService: s}, nil
}

// RegisterPublic registers public routes.
func (sc *SolveController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/solvers", sc.solvers)
	route.GET("/solves/:ID/animation", sc.animation)
}

// RegisterProtected registers protected routes.
func (sc *SolveController) RegisterProtected(route *gin.RouterGroup) {
	solves := route.Group("/solves")
	{
		solves.POST("", sc.solve)
		solves.GET("", sc.list)
		solves.GET("/:ID", sc.byID)
	}
}

// solve generates and solves a maze for the caller.
func (sc *SolveController) solve(ctx *gin.Context) {
	ownerID, err := identity.UserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var request SolveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, solveTimeout)
	defer cancel()

	solve, err := sc.solveService.Solve(timeoutCtx, ownerID, i.SolveRequest{
		Width:  request.Width,
		Height: request.Height,
		Start:  request.Start,
		Target: request.Target,
		Seed:   request.Seed,
		Solver: request.Solver,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidSolveRequest) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while solving maze"})
		return
	}

	ctx.JSON(http.StatusCreated, newSolveResponse(solve, animationURL(ctx, solve.ID)))
}

// list returns the caller's recent solves.
func (sc *SolveController) list(ctx *gin.Context) {
	ownerID, err := identity.UserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	limit, err := strconv.ParseInt(ctx.DefaultQuery("limit", "0"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	solves, err := sc.solveService.ByOwner(timeoutCtx, ownerID, limit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while listing solves"})
		return
	}

	response := make([]*SolveResponse, 0, len(solves))
	for _, s := range solves {
		response = append(response, newSolveResponse(s, animationURL(ctx, s.ID)))
	}
	ctx.JSON(http.StatusOK, gin.H{"solves": response})
}

// byID returns one of the caller's solves.
func (sc *SolveController) byID(ctx *gin.Context) {
	ownerID, err := identity.UserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	ID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	solve, err := sc.solveService.ByID(timeoutCtx, ID)
	if err != nil || solve.OwnerID != ownerID {
		if err == nil || errors.Is(err, dmn.ErrSolveNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": dmn.ErrSolveNotFound.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while loading solve"})
		return
	}

	ctx.JSON(http.StatusOK, newSolveResponse(solve, animationURL(ctx, solve.ID)))
}

// animation serves the viewer document of a solve.
func (sc *SolveController) animation(ctx *gin.Context) {
	ID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	data, err := sc.solveService.Animation(timeoutCtx, ID)
	if err != nil {
		if errors.Is(err, dmn.ErrSolveNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while loading animation"})
		return
	}

	ctx.Data(http.StatusOK, "application/json", data)
}

// solvers lists the available solver names.
func (sc *SolveController) solvers(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"solvers": sc.solveService.SolverNames()})
}

// animationURL builds the public animation link for a solve under the current route group.
func animationURL(ctx *gin.Context, id uuid.UUID) string {
	base := ctx.FullPath()
	if idx := strings.Index(base, "/solves"); idx >= 0 {
		base = base[:idx]
	}
	return base + "/solves/" + id.String() + "/animation"
}
