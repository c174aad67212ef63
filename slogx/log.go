package slogx

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
)

// NewLogFields converts otel attributes to slog attributes.
func NewLogFields(kvs ...attribute.KeyValue) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(kvs))
	for _, kv := range kvs {
		switch kv.Value.Type() {
		case attribute.BOOL:
			attrs = append(attrs, slog.Bool(string(kv.Key), kv.Value.AsBool()))
		case attribute.INT64:
			attrs = append(attrs, slog.Int64(string(kv.Key), kv.Value.AsInt64()))
		case attribute.STRING:
			attrs = append(attrs, slog.String(string(kv.Key), kv.Value.AsString()))
		default:
			attrs = append(attrs, slog.Any(string(kv.Key), kv.Value.AsInterface()))
		}
	}
	return attrs
}

func ErrorAttr(err error) slog.Attr {
	return slog.Any("error", err)
}

func Error(ctx context.Context, msg string, err error, kvs ...attribute.KeyValue) {
	slog.LogAttrs(ctx, slog.LevelError, msg, append(NewLogFields(kvs...), ErrorAttr(err))...)
}

func Debug(ctx context.Context, msg string, kvs ...attribute.KeyValue) {
	slog.LogAttrs(ctx, slog.LevelDebug, msg, NewLogFields(kvs...)...)
}
