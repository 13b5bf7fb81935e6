package main

import (
	"bytes"
	"context"
	"errors"
	"net"
	"strings"
	"testing"

	"github.com/freekieb7/hellohttp/config"
	"github.com/freekieb7/hellohttp/http"
)

func TestRun_ConfigurationErrorBeforeBind(t *testing.T) {
	// The argument is rejected before :80 is bound.
	err := run(context.Background(), []string{"yaml"})

	var cfgErr *config.Error
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestRun_BindError(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	listener, err := net.Listen("tcp", config.Addr)
	if err != nil {
		t.Skipf("cannot hold %s: %v", config.Addr, err)
	}
	defer listener.Close()

	err = run(context.Background(), []string{"text"})
	if !errors.Is(err, http.ErrBind) {
		t.Fatalf("expected bind error, got %v", err)
	}
}

func TestNewLogger_DefaultLogsConnectionFailures(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	cfg, err := config.Load(nil)
	if err != nil {
		t.Fatal(err)
	}

	var stderr bytes.Buffer
	server, err := http.NewServer(name, cfg.Response(), http.WithLogger(newLogger(cfg, &stderr)))
	if err != nil {
		t.Fatal(err)
	}

	// A client that leaves before sending its request line.
	serverConn, clientConn := net.Pipe()
	clientConn.Close()

	err = server.ServeConn(context.Background(), serverConn)
	if !errors.Is(err, http.ErrConnectionIO) {
		t.Fatalf("expected connection i/o error, got %v", err)
	}
	if !strings.Contains(stderr.String(), "connection failed") {
		t.Errorf("connection failure not logged: %q", stderr.String())
	}
}
