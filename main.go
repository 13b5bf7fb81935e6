package main

import (
	"context"
	"errors"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/freekieb7/hellohttp/config"
	"github.com/freekieb7/hellohttp/http"
	"github.com/freekieb7/hellohttp/telemetry"
	"go.opentelemetry.io/contrib/bridges/otelslog"
)

const name = "hellohttp"

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		log.Fatalln(err)
	}
}

func run(ctx context.Context, args []string) (err error) {
	cfg, err := config.Load(args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Telemetry {
		var shutdown func(context.Context) error
		shutdown, err = telemetry.Setup(ctx, name)
		if err != nil {
			return err
		}
		defer func() {
			err = errors.Join(err, shutdown(context.Background()))
		}()
	}

	server, err := http.NewServer(name, cfg.Response(),
		http.WithLogger(newLogger(cfg, os.Stderr)),
		http.WithTranscript(os.Stdout))
	if err != nil {
		return err
	}

	return server.ListenAndServe(ctx, cfg.Addr)
}

// newLogger sends records through the OTel log pipeline when it is exported,
// and to w otherwise.
func newLogger(cfg config.Config, w io.Writer) *slog.Logger {
	if cfg.Telemetry {
		return otelslog.NewLogger(name)
	}
	return slog.New(slog.NewTextHandler(w, nil))
}
