package http

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

// session handles exactly one accepted connection. Nothing in it outlives
// the connection.
type session struct {
	server *Server
	ctx    context.Context
	span   trace.Span

	id      string
	conn    net.Conn
	br      *bufio.Reader
	bw      *bufio.Writer
	started time.Time

	head     RequestHead
	response Response
	err      error
}

type stateFunc func(*session) stateFunc

// peerHost drops the port from a peer address. Addresses without a port,
// such as those of in-memory pipes, are returned unchanged.
func peerHost(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}

func newSession(s *Server, conn net.Conn) *session {
	return &session{
		server:  s,
		id:      uuid.NewString(),
		conn:    conn,
		br:      bufio.NewReaderSize(conn, DefaultReadBufferSize),
		bw:      bufio.NewWriterSize(conn, DefaultWriteBufferSize),
		started: time.Now(),
	}
}

func (sess *session) run(ctx context.Context) error {
	peer := sess.conn.RemoteAddr().String()
	sess.ctx, sess.span = sess.server.inst.startConnection(ctx, sess.id, peer)

	sess.server.logger.InfoContext(sess.ctx, "connection accepted", "connection_id", sess.id, "peer", peer)
	sess.server.transcript.Connection(peerHost(peer))

	for state := awaitRequestLine; state != nil; {
		state = state(sess)
	}
	return sess.err
}

func (sess *session) fail(step string, err error) stateFunc {
	sess.err = fmt.Errorf("%w: %s: %w", ErrConnectionIO, step, err)
	return closeSession
}

// state funcs

func awaitRequestLine(sess *session) stateFunc {
	first, err := readLine(sess.br)
	if err != nil {
		return sess.fail("read request line", normalizeEOF(err))
	}
	sess.server.transcript.Received(first)
	sess.head.Line = first
	sess.span.SetAttributes(attrRequestLine.String(first))

	if first == "" {
		sess.head.Terminated = true
		return dispatch
	}
	return readHeaders
}

func readHeaders(sess *session) stateFunc {
	for {
		line, err := readLine(sess.br)
		if err != nil {
			if isEOF(err) {
				return dispatch
			}
			return sess.fail("read headers", err)
		}
		sess.server.transcript.Received(line)
		if line == "" {
			sess.head.Terminated = true
			return dispatch
		}
	}
}

func dispatch(sess *session) stateFunc {
	sess.span.SetAttributes(attrHeadTerminated.Bool(sess.head.Terminated))
	if !sess.head.Terminated {
		sess.server.logger.DebugContext(sess.ctx, "request head ended at end of stream", "connection_id", sess.id)
	}

	if sess.head.IsRoot() {
		sess.response = sess.server.ok
	} else {
		sess.response = NotFound(sess.head.Line)
	}
	return writeResponse
}

func writeResponse(sess *session) stateFunc {
	sess.server.transcript.Writing(sess.response)

	n, err := sess.response.WriteTo(sess.bw)
	if err == nil {
		err = sess.bw.Flush()
	}
	if err != nil {
		return sess.fail("write response", err)
	}

	sess.server.inst.recordResponse(sess.ctx, sess.span, sess.response.Status())
	sess.server.logger.InfoContext(sess.ctx, "response written",
		"connection_id", sess.id,
		"request_line", sess.head.Line,
		"status", sess.response.StatusLine(),
		"head_terminated", sess.head.Terminated,
		"bytes", n)
	return closeSession
}

func closeSession(sess *session) stateFunc {
	if err := sess.conn.Close(); err != nil {
		sess.server.logger.DebugContext(sess.ctx, "connection close failed", "connection_id", sess.id, "error", err)
	}
	if sess.err != nil {
		sess.server.logger.ErrorContext(sess.ctx, "connection failed",
			"connection_id", sess.id,
			"error", sess.err)
	}
	sess.server.inst.endConnection(sess.ctx, sess.span, sess.started, sess.err)
	return nil
}
