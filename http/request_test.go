package http

import (
	"bufio"
	"io"
	"strings"
	"testing"

	"github.com/freekieb7/hellohttp/test"
)

func TestReadLine(t *testing.T) {
	br := bufio.NewReader(strings.NewReader("GET / HTTP/1.1\r\nHost: a\n\r\nlast"))

	for _, want := range []string{"GET / HTTP/1.1", "Host: a", "", "last"} {
		line, err := readLine(br)
		test.NoError(t, err)
		test.Equal(t, want, line)
	}

	_, err := readLine(br)
	test.ErrorIs(t, err, io.EOF)
}

func TestRequestHead_IsRoot(t *testing.T) {
	cases := map[string]bool{
		"GET / HTTP/1.1":      true,
		"GET / HTTP/1.0":      false,
		"GET /index HTTP/1.1": false,
		"HEAD / HTTP/1.1":     false,
		"GET / HTTP/1.1 ":     false,
		"get / HTTP/1.1":      false,
		"":                    false,
	}

	for line, want := range cases {
		test.Equal(t, want, RequestHead{Line: line}.IsRoot())
	}
}

func TestNormalizeEOF(t *testing.T) {
	test.ErrorIs(t, normalizeEOF(io.EOF), ErrEmptyRequest)
	test.ErrorIs(t, normalizeEOF(io.ErrUnexpectedEOF), io.ErrUnexpectedEOF)
}
