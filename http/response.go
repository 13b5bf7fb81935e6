package http

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
)

var (
	protocolHttp11     = []byte("HTTP/1.1 ")
	headerContentLen   = []byte("Content-Length: ")
	headerContentType  = []byte("Content-Type: ")
	charsetUTF8        = []byte("; charset=UTF-8")
	headerConnectionCl = []byte("Connection: Closed")
	crlf               = []byte("\r\n")
)

// Response is an immutable HTTP response. The wire form is rendered once by
// NewResponse so a shared Response can be written by any number of
// connections without synchronisation.
type Response struct {
	status      uint16
	contentType ContentType
	body        []byte
	raw         []byte
}

// NewResponse builds a response with the given status, content type and
// body. Content-Length is the UTF-8 byte length of body.
func NewResponse(status uint16, ct ContentType, body string) Response {
	res := Response{
		status:      status,
		contentType: ct,
		body:        []byte(body),
	}
	res.raw = res.render()
	return res
}

// NotFound builds the 404 answer for a request line that is not the root.
func NotFound(requestLine string) Response {
	return NewResponse(StatusNotFound, ContentTypePlain, fmt.Sprintf("Resource not found: '%s'", requestLine))
}

func (res Response) render() []byte {
	var buf bytes.Buffer
	buf.Grow(128 + len(res.body))

	buf.Write(protocolHttp11)
	buf.WriteString(statusLine(res.status))
	buf.Write(crlf)

	buf.Write(headerContentLen)
	buf.WriteString(strconv.Itoa(len(res.body)))
	buf.Write(crlf)

	buf.Write(headerContentType)
	buf.WriteString(res.contentType.MIME())
	buf.Write(charsetUTF8)
	buf.Write(crlf)

	buf.Write(headerConnectionCl)
	buf.Write(crlf)

	buf.Write(crlf)
	buf.Write(res.body)

	return buf.Bytes()
}

func (res Response) Status() uint16 {
	return res.status
}

// StatusLine returns the status part of the first line, e.g. "200 OK".
func (res Response) StatusLine() string {
	return statusLine(res.status)
}

func (res Response) ContentType() ContentType {
	return res.contentType
}

func (res Response) ContentLength() int {
	return len(res.body)
}

// Body returns a copy of the body.
func (res Response) Body() []byte {
	return bytes.Clone(res.body)
}

// Bytes returns a copy of the serialized response.
func (res Response) Bytes() []byte {
	return bytes.Clone(res.raw)
}

// WriteTo writes the serialized response to w.
func (res Response) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(res.raw)
	return int64(n), err
}
