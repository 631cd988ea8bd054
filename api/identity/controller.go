package identity

import (
	"errors"
	"net/http"

	dmn "github.com/beka-birhanu/vinom-carver/domain"
	"github.com/beka-birhanu/vinom-carver/service"
	"github.com/beka-birhanu/vinom-carver/service/i"
	"github.com/gin-gonic/gin"
)

// IdentityServer exposes account creation and sign-in. Tokens it hands out
// are what the maze routes expect in the Authorization header.
type IdentityServer struct {
	authService i.Authenticator
}

func NewIdentityServer(a i.Authenticator) *IdentityServer {
	return &IdentityServer{
		authService: a,
	}
}

// RegisterPublic mounts POST /auth/register and POST /auth/login.
func (c *IdentityServer) RegisterPublic(route *gin.RouterGroup) {
	auth := route.Group("/auth")
	auth.POST("/register", c.registerUser)
	auth.POST("/login", c.login)
}

// RegisterProtected is a no-op: every identity route is anonymous.
func (c *IdentityServer) RegisterProtected(*gin.RouterGroup) {}

// bindCredentials decodes the body into an AuthRequest, answering 400 when
// it is malformed.
func bindCredentials(ctx *gin.Context) (AuthRequest, bool) {
	var request AuthRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return request, false
	}
	return request, true
}

// registerStatus maps a registration failure to its HTTP status. Validation
// errors from the domain are the caller's fault.
func registerStatus(err error) int {
	if errors.Is(err, dmn.ErrUsernameConflict) {
		return http.StatusConflict
	}
	return http.StatusBadRequest
}

func (c *IdentityServer) registerUser(ctx *gin.Context) {
	request, ok := bindCredentials(ctx)
	if !ok {
		return
	}

	if err := c.authService.Register(request.Username, request.Password); err != nil {
		ctx.JSON(registerStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"message": "account created for " + request.Username})
}

func (c *IdentityServer) login(ctx *gin.Context) {
	request, ok := bindCredentials(ctx)
	if !ok {
		return
	}

	user, token, err := c.authService.SignIn(request.Username, request.Password)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	case err != nil:
		// Storage and signing failures stay out of the response.
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "sign-in unavailable"})
		return
	}

	ctx.JSON(http.StatusOK, &AuthResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Token:    token,
	})
}
