package server

import (
	"context"
	"net/http"
	"time"

	"gymflow/internal/booking"
	"gymflow/internal/config"
	"gymflow/internal/history"
	"gymflow/internal/identity"
	"gymflow/internal/notify"

	"github.com/gin-gonic/gin"
)

type Deps struct {
	Config   *config.Config
	Bookings booking.Service
	Journal  *history.Journal
	Notifier *notify.Service
}

type Server struct {
	router  *gin.Engine
	http    *http.Server
	limiter *RateLimiter
}

// New builds the router. Journal and Notifier are optional.
func New(deps Deps) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(corsMiddleware())

	router.GET("/health", Health(deps.Bookings))
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	bookingHandler := booking.NewHandler(deps.Bookings)
	limiter := NewRateLimiter(deps.Config.RateLimitRPS, deps.Config.RateLimitBurst, 3*time.Minute)

	member := router.Group("/")
	member.Use(rateLimit(limiter))
	member.Use(identity.Middleware(deps.Config.DefaultUserID))
	{
		member.GET("/classes", bookingHandler.ListClasses)
		member.GET("/classes/:classID", bookingHandler.GetClass)
		member.POST("/classes/:classID/book", bookingHandler.BookClass)
		member.POST("/classes/:classID/cancel", bookingHandler.CancelBooking)
		member.GET("/bookings", bookingHandler.ListMyBookings)
	}

	if deps.Journal != nil {
		historyHandler := history.NewHandler(deps.Journal)
		member.GET("/bookings/events", historyHandler.ListMyEvents)
		member.GET("/events", historyHandler.ListEvents)
	}

	if deps.Notifier != nil {
		router.GET("/notifications/queue", NotificationQueue(deps.Notifier))
	}

	return &Server{
		router: router,
		http: &http.Server{
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		limiter: limiter,
	}
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start(port string) error {
	s.http.Addr = ":" + port
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.limiter.Stop()
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Accept, Origin, Cache-Control, X-Requested-With, X-User-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
