package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// PortInUseError is returned when the listen port is taken
type PortInUseError struct {
	Port int
}

func (e *PortInUseError) Error() string {
	return fmt.Sprintf("port %d is already in use. Please try a different port or stop the other process", e.Port)
}

// Server wraps an http.Server with startup checks and graceful shutdown
type Server struct {
	logger *logrus.Logger
	port   int
	http   *http.Server
}

func New(logger *logrus.Logger, port int, handler http.Handler) *Server {
	return &Server{
		logger: logger,
		port:   port,
		http: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		if errors.Is(err, syscall.EADDRINUSE) {
			return &PortInUseError{Port: s.port}
		}
		return errors.Wrap(err, "failed to listen")
	}

	s.logger.WithField("port", s.port).Info("Server running")
	s.logger.Info("Endpoints: POST /api/upload, GET /healthz, GET /metrics")

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.http.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}
