package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	DefaultReadBufferSize  = 4096 // 4kB
	DefaultWriteBufferSize = 4096 // 4kB
)

var (
	ErrBind         = errors.New("http: bind failed")
	ErrConnectionIO = errors.New("http: connection i/o failed")
)

// Server answers every connection with one preconfigured OK response, or a
// 404 when the request line is not RootRequestLine. Connections are served
// one at a time, in accept order.
type Server struct {
	Name string

	ok         Response
	logger     *slog.Logger
	transcript *Transcript
	inst       instruments
}

type Option func(*serverOptions)

type serverOptions struct {
	logger         *slog.Logger
	transcript     io.Writer
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
}

// WithLogger replaces the default otelslog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *serverOptions) {
		o.logger = logger
	}
}

// WithTranscript prints the raw lines of every connection to w.
func WithTranscript(w io.Writer) Option {
	return func(o *serverOptions) {
		o.transcript = w
	}
}

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *serverOptions) {
		o.tracerProvider = tp
	}
}

func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *serverOptions) {
		o.meterProvider = mp
	}
}

func NewServer(name string, ok Response, opts ...Option) (*Server, error) {
	var o serverOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = otelslog.NewLogger(name)
	}
	if o.tracerProvider == nil {
		o.tracerProvider = otel.GetTracerProvider()
	}
	if o.meterProvider == nil {
		o.meterProvider = otel.GetMeterProvider()
	}

	inst, err := newInstruments(o.tracerProvider, o.meterProvider)
	if err != nil {
		return nil, fmt.Errorf("http: creating instruments: %w", err)
	}

	s := &Server{
		Name:   name,
		ok:     ok,
		logger: o.logger,
		inst:   inst,
	}
	if o.transcript != nil {
		s.transcript = NewTranscript(o.transcript)
	}
	return s, nil
}

// ListenAndServe binds addr and serves until ctx is cancelled. A bind
// failure is returned wrapped in ErrBind.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("%w on %s: %w", ErrBind, addr, err)
	}

	s.logger.InfoContext(ctx, "listening", "server", s.Name, "addr", listener.Addr().String())
	return s.Serve(ctx, listener)
}

// Serve accepts connections from listener one at a time. The next
// connection is accepted only after the previous one is closed. Errors of a
// single connection are logged and do not stop the loop. Serve closes the
// listener and returns nil once ctx is cancelled.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	stop := context.AfterFunc(ctx, func() {
		listener.Close()
	})
	defer stop()
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if errors.Is(err, net.ErrClosed) {
				return err
			}
			s.logger.ErrorContext(ctx, "failed to accept connection", "error", err)
			continue
		}

		// Already logged by the session.
		_ = s.ServeConn(ctx, conn)
	}
}

// ServeConn reads one request head from conn, writes the matching response
// and closes conn. No deadline is set: a client that never finishes its
// head blocks the caller until ctx is cancelled.
func (s *Server) ServeConn(ctx context.Context, conn net.Conn) error {
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() {
		conn.Close()
	})
	defer stop()

	return newSession(s, conn).run(ctx)
}
