package config

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/freekieb7/hellohttp/http"
)

// Addr is fixed: all interfaces, port 80.
const Addr = ":80"

const defaultContentType = "html"

var bodies = map[http.ContentType]string{
	http.ContentTypeHTML: "<!DOCTYPE html><html><head><title>Hello World</title></head><body>Hello World</body></html>",
	http.ContentTypeJSON: `{"message": "Hello World!"}`,
	http.ContentTypeText: "Hello World!",
}

type Config struct {
	ContentType http.ContentType
	Body        string
	Addr        string
	// Telemetry enables OTLP export. The exporters read the remaining
	// OTEL_* variables themselves.
	Telemetry bool
}

// Error is a startup configuration error. It is always fatal.
type Error struct {
	Arg string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("config: %s: %v", e.Arg, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Load parses the process arguments (without the program name). At most one
// positional argument is accepted: html, json or text. html is the default.
func Load(args []string) (Config, error) {
	fs := flag.NewFlagSet("hellohttp", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return Config{}, &Error{Arg: fmt.Sprint(args), Err: err}
	}

	tag := defaultContentType
	switch fs.NArg() {
	case 0:
	case 1:
		tag = fs.Arg(0)
	default:
		return Config{}, &Error{Arg: fmt.Sprint(fs.Args()), Err: fmt.Errorf("expected at most one content type, got %d", fs.NArg())}
	}

	ct, err := http.ParseContentType(tag)
	if err != nil {
		return Config{}, &Error{Arg: tag, Err: err}
	}

	return Config{
		ContentType: ct,
		Body:        bodies[ct],
		Addr:        Addr,
		Telemetry:   os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "",
	}, nil
}

// Response builds the OK response served for the root request.
func (c Config) Response() http.Response {
	return http.NewResponse(http.StatusOK, c.ContentType, c.Body)
}
