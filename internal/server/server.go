package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/atomic"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/net/netutil"
	"golang.org/x/sync/errgroup"

	"github.com/zestagio/pallet-town/internal/middlewares"
	_ "github.com/zestagio/pallet-town/internal/validator" // Registers listen_addr.
)

const readHeaderTimeout = time.Second

var errAlreadyStarted = errors.New("server already started")

//go:generate options-gen -out-filename=server_options.gen.go -from-struct=Options
type Options struct {
	logger            *zap.Logger        `option:"mandatory" validate:"required"`
	name              string             `option:"mandatory" validate:"required"`
	addr              string             `option:"mandatory" validate:"required,listen_addr"`
	maxConns          int                `option:"mandatory" validate:"min=1"`
	handlersRegistrar func(e *echo.Echo) `option:"mandatory" validate:"required"`
	console           io.Writer          `option:"mandatory" validate:"required"`

	// shutdownTimeout bounds the wait for in-flight exchanges on stop.
	// Zero waits until they complete.
	shutdownTimeout time.Duration `validate:"min=0"`
}

// Server owns one listener. Connections are served at most maxConns at a
// time and each carries a single request, so with maxConns=1 exchanges are
// strictly sequential in acceptance order.
type Server struct {
	lg              *zap.Logger
	name            string
	maxConns        int
	console         io.Writer
	shutdownTimeout time.Duration
	srv             *http.Server

	ln        net.Listener
	state     atomic.Int32
	stateHook func(State)
}

func New(opts Options) (*Server, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %v", err)
	}

	e := echo.New()
	e.Use(
		middlewares.NewRequestID(),
		middlewares.NewRequestLogger(opts.logger),
		middlewares.NewRecovery(opts.logger),
	)

	opts.handlersRegistrar(e)

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           e,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	srv.SetKeepAlivesEnabled(false)

	return &Server{
		lg:              opts.logger,
		name:            opts.name,
		maxConns:        opts.maxConns,
		console:         opts.console,
		shutdownTimeout: opts.shutdownTimeout,
		srv:             srv,
	}, nil
}

// Listen binds the listener and prints the banner.
// A bind failure leaves the server in StateUnstarted.
func (s *Server) Listen() error {
	if s.State() != StateUnstarted {
		return errAlreadyStarted
	}

	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listen: %v", err)
	}

	s.ln = netutil.LimitListener(ln, s.maxConns)
	s.setState(StateBound)
	s.lg.Debug("bound", zap.Stringer("addr", ln.Addr()), zap.Int("max_conns", s.maxConns))

	s.printBanner(ln.Addr())
	return nil
}

// Run serves until ctx is done, then stops accepting, lets the in-flight
// exchange finish and prints the farewell line. It binds first if Listen
// was not called. A serve failure is returned without the farewell.
func (s *Server) Run(ctx context.Context) error {
	switch s.State() {
	case StateUnstarted:
		if err := s.Listen(); err != nil {
			return err
		}
	case StateBound:
	default:
		return errAlreadyStarted
	}

	s.setState(StateServing)

	interrupt := ctx
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		<-ctx.Done()

		// The group context is also done when Serve fails on its own.
		if interrupt.Err() != nil {
			s.setState(StateStopping)
		}
		return s.shutdown() //nolint:contextcheck // graceful shutdown with new context
	})

	eg.Go(func() error {
		s.lg.Debug("serve", zap.Stringer("addr", s.ln.Addr()))

		if err := s.srv.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %v", err)
		}
		return nil
	})

	err := eg.Wait()
	s.setState(StateStopped)
	if err != nil {
		return err
	}

	s.printFarewell()
	return nil
}

// shutdown closes the listener and waits for in-flight exchanges. When the
// shutdown timeout runs out the remaining connections are cut; that is
// still an orderly stop.
func (s *Server) shutdown() error {
	ctx := context.Background()
	if s.shutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.shutdownTimeout)
		defer cancel()
	}

	err := s.srv.Shutdown(ctx)
	switch {
	case err == nil:
		return nil

	case errors.Is(err, context.DeadlineExceeded):
		s.lg.Warn("in-flight exchange cut on shutdown", zap.Duration("timeout", s.shutdownTimeout))
		if err := s.srv.Close(); err != nil {
			s.lg.Warn("force close", zap.Error(err))
		}
		return nil
	}

	return multierr.Append(fmt.Errorf("shutdown: %v", err), s.srv.Close())
}

// Addr is the bound address, nil before Listen.
func (s *Server) Addr() net.Addr {
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

func (s *Server) State() State {
	return State(s.state.Load())
}

func (s *Server) setState(st State) {
	s.state.Store(int32(st))
	if s.stateHook != nil {
		s.stateHook(st)
	}
}
