package api

import (
	"github.com/beka-birhanu/vinom-carver/api/i"
	"github.com/gin-gonic/gin"
)

const apiVersion = "/v1"

// Router serves the carver's REST and WebSocket endpoints.
type Router struct {
	addr        string
	baseURL     string
	controllers []i.Controller
	authorize   gin.HandlerFunc
}

// Config wires a Router. AuthorizationMiddleware guards every protected route.
type Config struct {
	Addr                    string // host:port to listen on
	BaseURL                 string // prefix for every versioned group, e.g. "/api"
	Controllers             []i.Controller
	AuthorizationMiddleware gin.HandlerFunc
}

func NewRouter(config Config) *Router {
	return &Router{
		addr:        config.Addr,
		baseURL:     config.BaseURL,
		controllers: config.Controllers,
		authorize:   config.AuthorizationMiddleware,
	}
}

// Handler builds the engine. Each controller gets two groups under
// {BaseURL}/v1: one open to anonymous callers (sign-in, maze streaming) and
// one behind the authorization middleware (stored mazes).
func (r *Router) Handler() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())

	versioned := engine.Group(r.baseURL)

	public := versioned.Group(apiVersion)
	for _, c := range r.controllers {
		c.RegisterPublic(public)
	}

	protected := versioned.Group(apiVersion)
	if r.authorize != nil {
		protected.Use(r.authorize)
	}
	for _, c := range r.controllers {
		c.RegisterProtected(protected)
	}

	return engine
}

// Run blocks serving on the configured address.
func (r *Router) Run() error {
	gin.ForceConsoleColor()
	return r.Handler().Run(r.addr)
}
