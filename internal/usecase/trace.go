package usecase

import (
	"context"
	"errors"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var usecaseTracer = otel.Tracer("bet-hub/internal/usecase")
var usecaseNoopSpan = trace.SpanFromContext(context.Background())

const (
	attrProvider         = attribute.Key("bethub.provider")
	attrProviderLeagueID = attribute.Key("bethub.provider_league_id")
	attrLeagueID         = attribute.Key("bethub.league_id")
	attrWeek             = attribute.Key("bethub.week")
	attrTeams            = attribute.Key("bethub.teams")
	attrPayouts          = attribute.Key("bethub.payouts")
	attrImportStage      = attribute.Key("bethub.import_stage")
)

// startUsecaseSpan only opens a child span when the caller is already
// traced, so background work does not produce orphan root spans.
func startUsecaseSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if strings.TrimSpace(name) == "" {
		return ctx, usecaseNoopSpan
	}
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, usecaseNoopSpan
	}
	return usecaseTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// failSpan marks span as failed. Import failures also carry their stage.
func failSpan(span trace.Span, err error) {
	if err == nil {
		return
	}
	var importErr *ImportError
	if errors.As(err, &importErr) {
		span.SetAttributes(attrImportStage.String(string(importErr.Stage)))
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
