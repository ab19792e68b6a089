package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"pharmacy/config"
	"pharmacy/internal/delivery"
	"pharmacy/internal/delivery/middleware"
	"pharmacy/internal/delivery/worker/handler"
	"pharmacy/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// PushPath receives store events pushed by Pub/Sub or the local publisher.
	PushPath = "/push"

	// Pub/Sub caps push payloads at 10MB; store events are far smaller.
	maxPushBodySize   = "1M"
	readHeaderTimeout = 5 * time.Second
)

type workerServer struct {
	port   int
	logger *slog.Logger
	server *echo.Echo
}

type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer builds the notification worker's HTTP endpoint.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadHeaderTimeout = readHeaderTimeout

	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestScope(params.Logger).Process,
		middleware.NewAccessLog(params.Logger, params.Cfg).Handle,
	)

	provider := "none"
	if params.Cfg.PubSub != nil && params.Cfg.PubSub.Provider != "" {
		provider = params.Cfg.PubSub.Provider
	}
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "events": provider})
	})
	e.POST(PushPath, params.PushHandler.HandlePush, echomiddleware.BodyLimit(maxPushBodySize))

	srv := &workerServer{
		port:   params.Cfg.Worker.Port,
		logger: params.Logger,
		server: e,
	}
	params.Lc.Append(fx.Hook{OnStop: srv.stop})

	return srv, nil
}

func (s *workerServer) Serve(context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.port))
	s.logger.Info("Starting worker HTTP server", slog.String("host_port", hostPort))

	err := s.server.Start(hostPort)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return errors.WithStack(err)
}

func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down worker HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
