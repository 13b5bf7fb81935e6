package http

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// RootRequestLine is the only request line answered with the OK response.
// The comparison is literal: no method, path or version parsing.
const RootRequestLine = "GET / HTTP/1.1"

var ErrEmptyRequest = errors.New("http: connection closed before request line")

// RequestHead is what the server keeps of a request: its first line.
// Header lines are read and dropped, a body is never read.
type RequestHead struct {
	Line string
	// Terminated reports whether the head ended with a blank line rather
	// than end of stream.
	Terminated bool
}

func (head RequestHead) IsRoot() bool {
	return head.Line == RootRequestLine
}

// readLine reads one line. The terminating "\n" and an optional "\r" before
// it are stripped. A final unterminated line is returned with a nil error;
// io.EOF is only returned when nothing was read.
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimSuffix(line, "\r"), nil
		}
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

func isEOF(err error) bool {
	return errors.Is(err, io.EOF)
}

// normalizeEOF turns a clean end of stream before the request line into
// ErrEmptyRequest.
func normalizeEOF(err error) error {
	if isEOF(err) {
		return ErrEmptyRequest
	}
	return err
}
