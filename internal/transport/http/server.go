// Package http is the REST surface of the service. Handlers are thin:
// bind, call the service, map domain errors to status codes.
package http

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/service"
	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/token"
)

type Server struct {
	echo   *echo.Echo
	log    *zap.Logger
	tokens *token.HSProvider

	auth     *service.AuthService
	products service.ProductService
	orders   service.OrderService
	quotes   service.QuoteService
}

func NewServer(
	log *zap.Logger,
	tokens *token.HSProvider,
	auth *service.AuthService,
	products service.ProductService,
	orders service.OrderService,
	quotes service.QuoteService,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	s := &Server{
		echo:     e,
		log:      log,
		tokens:   tokens,
		auth:     auth,
		products: products,
		orders:   orders,
		quotes:   quotes,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	e := s.echo

	e.GET("/health", s.health)

	e.POST("/auth/register", s.register)
	e.POST("/auth/login", s.login)

	e.GET("/products", s.listProducts)
	e.GET("/products/:slug", s.getProduct)

	jwt := jwtMiddleware(s.tokens)

	orders := e.Group("/orders", jwt)
	orders.POST("", s.createSale)
	orders.GET("", s.listOrders)
	orders.GET("/:id", s.getOrder)

	admin := e.Group("/admin", jwt, requireAdmin)
	admin.POST("/products", s.createProduct)
	admin.PATCH("/products/:id", s.updateProduct)
	admin.POST("/products/:id/option-groups", s.addOptionGroup)
	admin.POST("/option-groups/:id/options", s.addOption)
	admin.PUT("/products/:id/stock", s.updateStock)

	admin.POST("/quotes", s.createQuote)
	admin.GET("/quotes", s.listQuotes)
	admin.POST("/quotes/:id/convert", s.convertQuote)
}

func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(200, map[string]string{"status": "ok"})
}
