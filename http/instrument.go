package http

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/freekieb7/hellohttp/http"

const (
	outcomeServed = "served"
	outcomeFailed = "failed"
)

var (
	attrConnectionID   = attribute.Key("connection.id")
	attrPeerAddress    = attribute.Key("net.peer.address")
	attrRequestLine    = attribute.Key("http.request.line")
	attrStatusCode     = attribute.Key("http.response.status_code")
	attrHeadTerminated = attribute.Key("http.request.head_terminated")
	attrOutcome        = attribute.Key("outcome")
)

type instruments struct {
	tracer      trace.Tracer
	connections metric.Int64Counter
	responses   metric.Int64Counter
	duration    metric.Float64Histogram
}

func newInstruments(tp trace.TracerProvider, mp metric.MeterProvider) (instruments, error) {
	meter := mp.Meter(instrumentationName)

	var (
		inst instruments
		err  error
	)
	inst.tracer = tp.Tracer(instrumentationName)

	inst.connections, err = meter.Int64Counter("http.server.connections",
		metric.WithDescription("Number of connections handled, by outcome"),
		metric.WithUnit("{connection}"))
	if err != nil {
		return inst, err
	}

	inst.responses, err = meter.Int64Counter("http.server.responses",
		metric.WithDescription("Number of responses written, by status code"),
		metric.WithUnit("{response}"))
	if err != nil {
		return inst, err
	}

	inst.duration, err = meter.Float64Histogram("http.server.connection.duration",
		metric.WithDescription("Time from accept to close of a connection"),
		metric.WithUnit("s"))
	if err != nil {
		return inst, err
	}

	return inst, nil
}

func (inst instruments) startConnection(ctx context.Context, id, peer string) (context.Context, trace.Span) {
	return inst.tracer.Start(ctx, "http.connection",
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attrConnectionID.String(id),
			attrPeerAddress.String(peer),
		))
}

func (inst instruments) recordResponse(ctx context.Context, span trace.Span, status uint16) {
	span.SetAttributes(attrStatusCode.Int(int(status)))
	inst.responses.Add(ctx, 1, metric.WithAttributes(attrStatusCode.Int(int(status))))
}

func (inst instruments) endConnection(ctx context.Context, span trace.Span, started time.Time, err error) {
	outcome := outcomeServed
	if err != nil {
		outcome = outcomeFailed
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	inst.connections.Add(ctx, 1, metric.WithAttributes(attrOutcome.String(outcome)))
	inst.duration.Record(ctx, time.Since(started).Seconds())
	span.End()
}
