package router

import (
	"net"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/dtroode/carlisting-server/internal/api/http/handler"
	"github.com/dtroode/carlisting-server/internal/api/http/middleware"
	"github.com/dtroode/carlisting-server/internal/logger"
	"github.com/dtroode/carlisting-server/internal/model"
)

// Options tune the middleware chain.
type Options struct {
	AllowOrigins   []string
	RequestTimeout time.Duration
	// BodyLimit caps request bodies in bytes. Zero disables the cap.
	BodyLimit int64
	// TrustedProxies are the networks whose X-Forwarded-For header names the
	// client. Without them the connection peer is the client.
	TrustedProxies []*net.IPNet
}

// Router wires handlers and middleware into an echo instance.
type Router struct {
	authService    handler.AuthService
	carService     handler.CarService
	tokenService   middleware.TokenService
	db             handler.Pinger
	contextManager model.ContextManager
	opts           Options
	logger         *logger.Logger
}

// New creates new Router instance.
func New(
	authService handler.AuthService,
	carService handler.CarService,
	tokenService middleware.TokenService,
	db handler.Pinger,
	contextManager model.ContextManager,
	opts Options,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		carService:     carService,
		tokenService:   tokenService,
		db:             db,
		contextManager: contextManager,
		opts:           opts,
		logger:         logger,
	}
}

// Register builds the echo instance with every route and middleware.
// Car routes sit behind the bearer token gate; user, image and health
// routes are public.
func (r *Router) Register() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = handler.NewErrorHandler(r.logger)
	e.IPExtractor = ipExtractor(r.opts.TrustedProxies)

	logging := middleware.NewLogging(r.logger)
	e.Use(
		logging.Handle,
		echomw.Recover(),
		echomw.CORSWithConfig(echomw.CORSConfig{AllowOrigins: r.opts.AllowOrigins}),
		middleware.Timeout(r.opts.RequestTimeout),
	)
	if r.opts.BodyLimit > 0 {
		e.Use(echomw.BodyLimit(strconv.FormatInt(r.opts.BodyLimit, 10)))
	}

	r.registerUserRoutes(e)
	r.registerCarRoutes(e)
	r.registerPublicRoutes(e)

	return e
}

func (r *Router) registerUserRoutes(e *echo.Echo) {
	authHandler := handler.NewAuth(r.authService, r.logger)

	user := e.Group("/user")
	user.POST("/signup", authHandler.Signup)
	user.POST("/login", authHandler.Login)
}

func (r *Router) registerCarRoutes(e *echo.Echo) {
	authenticate := middleware.NewAuthenticate(r.tokenService, r.contextManager, r.logger)
	carHandler := handler.NewCar(r.carService, r.contextManager, r.logger)

	e.POST("/car/create", carHandler.Create, authenticate.Handle)
	e.GET("/cars", carHandler.List, authenticate.Handle)
	e.GET("/car/:id", carHandler.Get, authenticate.Handle)
	e.PATCH("/car/:id", carHandler.Update, authenticate.Handle)
	e.DELETE("/car/:id", carHandler.Delete, authenticate.Handle)
}

func (r *Router) registerPublicRoutes(e *echo.Echo) {
	imageHandler := handler.NewImage(r.carService, r.logger)
	healthHandler := handler.NewHealth(r.db, r.logger)

	e.GET("/uploads/:key", imageHandler.Get)
	e.GET("/health", healthHandler.Get)
}

// ipExtractor ignores forwarding headers unless the request comes through
// one of the trusted proxies.
func ipExtractor(trusted []*net.IPNet) echo.IPExtractor {
	if len(trusted) == 0 {
		return echo.ExtractIPDirect()
	}

	opts := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, ipNet := range trusted {
		opts = append(opts, echo.TrustIPRange(ipNet))
	}
	return echo.ExtractIPFromXFFHeader(opts...)
}
