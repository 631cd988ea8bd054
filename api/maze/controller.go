package mazeapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/beka-birhanu/vinom-carver/api/identity"
	dmn "github.com/beka-birhanu/vinom-carver/domain"
	"github.com/beka-birhanu/vinom-carver/service"
	"github.com/beka-birhanu/vinom-carver/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// MazeController manages maze generation requests.
type MazeController struct {
	mazes    i.MazeGenerator
	logger   i.Logger
	upgrader *websocket.Upgrader
}

// NewMazeController initializes a MazeController.
func NewMazeController(mazes i.MazeGenerator, logger i.Logger) (*MazeController, error) {
	if mazes == nil || logger == nil {
		return nil, service.ErrMissingDependency
	}
	return &MazeController{
		mazes:  mazes,
		logger: logger,
		upgrader: &websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/mazes/stream", mc.stream)
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.generate)
		mazes.GET("", mc.recent)
		mazes.GET("/:ID", mc.byID)
	}
}

// generate carves and stores a maze for the signed in user.
func (mc *MazeController) generate(ctx *gin.Context) {
	owner, err := identity.UserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var request GenerateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := mc.mazes.Generate(ctx.Request.Context(), owner, request.params())
	if err != nil {
		mc.fail(ctx, err)
		return
	}

	mc.respond(ctx, http.StatusCreated, m)
}

// byID returns a stored maze.
func (mc *MazeController) byID(ctx *gin.Context) {
	ID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	m, err := mc.mazes.ByID(ctx.Request.Context(), ID)
	if err != nil {
		mc.fail(ctx, err)
		return
	}

	mc.respond(ctx, http.StatusOK, m)
}

// recent lists the signed in user's latest mazes.
func (mc *MazeController) recent(ctx *gin.Context) {
	owner, err := identity.UserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	mazes, err := mc.mazes.Recent(ctx.Request.Context(), owner)
	if err != nil {
		mc.fail(ctx, err)
		return
	}

	response := make([]*MazeResponse, 0, len(mazes))
	for _, m := range mazes {
		r, err := newMazeResponse(m)
		if err != nil {
			mc.logger.Warn(fmt.Sprintf("Skipping corrupt maze %s: %v", m.ID, err))
			continue
		}
		response = append(response, r)
	}
	ctx.JSON(http.StatusOK, response)
}

func (mc *MazeController) respond(ctx *gin.Context, status int, m *dmn.Maze) {
	response, err := newMazeResponse(m)
	if err != nil {
		mc.fail(ctx, err)
		return
	}
	ctx.JSON(status, response)
}

// fail maps service errors to HTTP statuses.
func (mc *MazeController) fail(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, dmn.ErrInvalidParams):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, dmn.ErrMazeNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		mc.logger.Error(fmt.Sprintf("%s %s: %v", ctx.Request.Method, ctx.FullPath(), err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while handling maze request"})
	}
}
