package api

import (
	"io"

	"github.com/beka-birhanu/vinom-solver/api/i"
	"github.com/gin-gonic/gin"
)

// Router manages the HTTP server and its dependencies,
// including controllers and JWT authentication.
type Router struct {
	addr                    string
	baseURL                 string
	controllers             []i.Controller
	authorizationMiddleware gin.HandlerFunc
	accessLog               io.Writer
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr                    string // Address to listen on
	BaseURL                 string // Base URL for API routes
	Controllers             []i.Controller
	AuthorizationMiddleware gin.HandlerFunc
	AccessLog               io.Writer // Destination of request logs; gin's default when nil
}

// NewRouter creates a new Router instance with the given configuration.
func NewRouter(config Config) *Router {
	return &Router{
		addr:                    config.Addr,
		baseURL:                 config.BaseURL,
		controllers:             config.Controllers,
		authorizationMiddleware: config.AuthorizationMiddleware,
		accessLog:               config.AccessLog,
	}
}

// Handler builds the gin engine with every controller registered.
//
// Routes are grouped and managed under the base URL, with the following access levels:
// - Public routes: No authentication required.
// - Protected routes: Authentication required.
func (r *Router) Handler() *gin.Engine {
	router := gin.New()
	if r.accessLog != nil {
		router.Use(gin.LoggerWithWriter(r.accessLog))
	} else {
		router.Use(gin.Logger())
	}
	router.Use(gin.Recovery())

	// Setting up routes under baseURL
	api := router.Group(r.baseURL)

	{
		// Public routes (accessible without authentication)
		publicRoutes := api.Group("/v1")
		{
			for _, c := range r.controllers {
				c.RegisterPublic(publicRoutes)
			}
		}

		// Protected routes (authentication required)
		protectedRoutes := api.Group("/v1")
		protectedRoutes.Use(r.authorizationMiddleware)
		{
			for _, c := range r.controllers {
				c.RegisterProtected(protectedRoutes)
			}
		}
	}

	return router
}

// Run starts the HTTP server.
func (r *Router) Run() error {
	return r.Handler().Run(r.addr)
}
