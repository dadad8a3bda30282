package mazeapi

import (
	"errors"
	"net/http"

	"github.com/amazeing-labs/amazeing-api/api/identity"
	"github.com/amazeing-labs/amazeing-api/infrastruture/repo"
	"github.com/amazeing-labs/amazeing-api/mazegen"
	"github.com/amazeing-labs/amazeing-api/service"
	"github.com/amazeing-labs/amazeing-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MazeController handles HTTP requests for carving and reading mazes.
type MazeController struct {
	carver i.MazeCarver
}

// NewMazeController creates a new MazeController.
func NewMazeController(carver i.MazeCarver) (*MazeController, error) {
	if carver == nil {
		return nil, errors.New("maze controller requires a carver service")
	}
	return &MazeController{carver: carver}, nil
}

// RegisterPublic registers public routes.
func (c *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.GET("/recent", c.recent)
		mazes.GET("/:id", c.byID)
		mazes.GET("/:id/solution", c.solution)
	}
}

// RegisterProtected registers privileged routes.
func (c *MazeController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", c.carve)
	}
}

// carve handles maze generation requests.
func (c *MazeController) carve(ctx *gin.Context) {
	var request CarveRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ownerID, ok := userIDFromClaims(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	record, err := c.carver.Carve(ctx.Request.Context(), ownerID, i.MazeCarverRequest{
		Width:     request.Width,
		Height:    request.Height,
		EntryX:    request.Entry.X,
		EntryY:    request.Entry.Y,
		ExitX:     request.Exit.X,
		ExitY:     request.Exit.Y,
		IsPerfect: request.IsPerfect,
		Heart:     request.Heart,
		FortyTwo:  request.FortyTwo,
		Seed:      request.Seed,
	})
	if err != nil {
		ctx.JSON(carveStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, newMazeResponse(record))
}

// byID returns a stored maze.
func (c *MazeController) byID(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return
	}

	record, err := c.carver.ByID(ctx.Request.Context(), id)
	if err != nil {
		ctx.JSON(lookupStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, newMazeResponse(record))
}

// solution returns the shortest path of a stored maze.
func (c *MazeController) solution(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return
	}

	path, directions, err := c.carver.Solution(ctx.Request.Context(), id)
	if err != nil {
		ctx.JSON(lookupStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, &SolutionResponse{Path: path, Directions: directions})
}

// recent returns the most recently carved mazes.
func (c *MazeController) recent(ctx *gin.Context) {
	records, err := c.carver.Recent(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	responses := make([]*MazeResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, newMazeResponse(record))
	}
	ctx.JSON(http.StatusOK, responses)
}

// carveStatus maps generation errors to HTTP status codes. Configuration
// mistakes are client errors; an unsolvable generated maze is ours.
func carveStatus(err error) int {
	switch {
	case errors.Is(err, mazegen.ErrInvalidDimension),
		errors.Is(err, mazegen.ErrOutOfBounds),
		errors.Is(err, service.ErrDimensionTooLarge):
		return http.StatusBadRequest
	case errors.Is(err, mazegen.ErrDisconnectedMask),
		errors.Is(err, mazegen.ErrGridTooSmall):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func lookupStatus(err error) int {
	if errors.Is(err, repo.ErrMazeNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// userIDFromClaims extracts the authenticated user's ID attached by the
// authorization middleware.
func userIDFromClaims(ctx *gin.Context) (uuid.UUID, bool) {
	raw, exists := ctx.Get(identity.ContextUserClaims)
	if !exists {
		return uuid.Nil, false
	}
	claims, ok := raw.(map[string]interface{})
	if !ok {
		return uuid.Nil, false
	}
	idStr, ok := claims["userID"].(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
