package router

import (
	"github.com/gin-gonic/gin"
)

// RouteRegistrar defines the interface for registering routes
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Router manages HTTP route registration. Routes are split into a
// user-facing group and an admin group, each carrying its own
// authentication middleware.
type Router struct {
	engine          *gin.Engine
	apiVersion      string
	apiMiddleware   []gin.HandlerFunc
	adminMiddleware []gin.HandlerFunc
	registrars      []RouteRegistrar
	adminRegistrars []RouteRegistrar
}

// RouterOption is a functional option for Router configuration
type RouterOption func(*Router)

// WithAPIVersion sets the API version prefix (e.g., "v1", "v2")
func WithAPIVersion(version string) RouterOption {
	return func(r *Router) {
		r.apiVersion = version
	}
}

// WithAPIMiddleware sets middleware applied to all user-facing routes
func WithAPIMiddleware(middleware ...gin.HandlerFunc) RouterOption {
	return func(r *Router) {
		r.apiMiddleware = middleware
	}
}

// WithAdminMiddleware sets middleware applied to all admin routes
func WithAdminMiddleware(middleware ...gin.HandlerFunc) RouterOption {
	return func(r *Router) {
		r.adminMiddleware = middleware
	}
}

// NewRouter creates a new Router instance
func NewRouter(engine *gin.Engine, opts ...RouterOption) *Router {
	r := &Router{
		engine:          engine,
		apiVersion:      "v1",
		registrars:      make([]RouteRegistrar, 0),
		adminRegistrars: make([]RouteRegistrar, 0),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register adds a RouteRegistrar to the user-facing API group
func (r *Router) Register(registrar RouteRegistrar) *Router {
	r.registrars = append(r.registrars, registrar)
	return r
}

// RegisterAdmin adds a RouteRegistrar to the admin group
func (r *Router) RegisterAdmin(registrar RouteRegistrar) *Router {
	r.adminRegistrars = append(r.adminRegistrars, registrar)
	return r
}

// Setup registers all routes with the engine
func (r *Router) Setup() {
	api := r.engine.Group("/api/" + r.apiVersion)
	if len(r.apiMiddleware) > 0 {
		api.Use(r.apiMiddleware...)
	}

	for _, registrar := range r.registrars {
		registrar.RegisterRoutes(api)
	}

	// Admin routes use their own group so that the user-facing auth
	// middleware never runs for them
	admin := r.engine.Group("/api/" + r.apiVersion + "/admin")
	if len(r.adminMiddleware) > 0 {
		admin.Use(r.adminMiddleware...)
	}

	for _, registrar := range r.adminRegistrars {
		registrar.RegisterRoutes(admin)
	}
}
