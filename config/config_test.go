package config_test

import (
	"errors"
	"testing"

	"github.com/freekieb7/hellohttp/config"
	"github.com/freekieb7/hellohttp/http"
	"github.com/freekieb7/hellohttp/test"
)

func TestLoad_Default(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	cfg, err := config.Load(nil)
	test.NoError(t, err)

	test.Equal(t, http.ContentTypeHTML, cfg.ContentType)
	test.Equal(t, "<!DOCTYPE html><html><head><title>Hello World</title></head><body>Hello World</body></html>", cfg.Body)
	test.Equal(t, ":80", cfg.Addr)
	test.Equal(t, false, cfg.Telemetry)
}

func TestLoad_ContentTypes(t *testing.T) {
	cases := []struct {
		arg  string
		ct   http.ContentType
		body string
	}{
		{"html", http.ContentTypeHTML, "<!DOCTYPE html><html><head><title>Hello World</title></head><body>Hello World</body></html>"},
		{"json", http.ContentTypeJSON, `{"message": "Hello World!"}`},
		{"text", http.ContentTypeText, "Hello World!"},
	}

	for _, c := range cases {
		t.Run(c.arg, func(t *testing.T) {
			cfg, err := config.Load([]string{c.arg})
			test.NoError(t, err)
			test.Equal(t, c.ct, cfg.ContentType)
			test.Equal(t, c.body, cfg.Body)
		})
	}
}

func TestLoad_UnknownContentType(t *testing.T) {
	_, err := config.Load([]string{"xml"})

	var cfgErr *config.Error
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *config.Error, got %v", err)
	}
	test.Equal(t, "xml", cfgErr.Arg)
	test.ErrorIs(t, err, http.ErrUnknownContentType)
}

func TestLoad_TooManyArguments(t *testing.T) {
	_, err := config.Load([]string{"html", "json"})

	var cfgErr *config.Error
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *config.Error, got %v", err)
	}
}

func TestLoad_UnknownFlag(t *testing.T) {
	_, err := config.Load([]string{"-port", "8080"})

	var cfgErr *config.Error
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *config.Error, got %v", err)
	}
}

func TestLoad_Telemetry(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://127.0.0.1:4317")

	cfg, err := config.Load([]string{"text"})
	test.NoError(t, err)
	test.Equal(t, true, cfg.Telemetry)
}

func TestConfig_Response(t *testing.T) {
	cfg, err := config.Load([]string{"json"})
	test.NoError(t, err)

	res := cfg.Response()
	test.Equal(t, http.StatusOK, res.Status())
	test.Equal(t, "application/json", res.ContentType().MIME())
	test.Equal(t, len(cfg.Body), res.ContentLength())
}
