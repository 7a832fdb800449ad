package store

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	gmap "github.com/blong14/gmem/internal/map/hashmap"
)

// Table is the interning surface: byte string keys mapped to opaque
// values. Each table is exclusively owned by one logical owner; callers
// needing concurrent access add their own synchronization.
type Table interface {
	Get(key []byte) (any, bool)
	Set(key []byte, value any) bool
	Range(f func(k []byte, v any) bool)
	Count() int
}

type TableTracer interface {
	Table
	TraceSet(ctx context.Context, key []byte, value any) bool
}

type TableOpts struct {
	TableName   []byte
	WithHashMap func() *gmap.Map[any]
}

// HashTable implements Table and TableTracer
type HashTable struct {
	name   []byte
	impl   *gmap.Map[any]
	tracer trace.Tracer
}

var _ TableTracer = &HashTable{}

func New(opt *TableOpts) Table {
	var name []byte
	var impl *gmap.Map[any]
	if opt != nil {
		name = opt.TableName
	}
	if opt != nil && opt.WithHashMap != nil {
		impl = opt.WithHashMap()
	} else {
		impl = gmap.New[any]()
	}
	return &HashTable{name: name, impl: impl, tracer: otel.Tracer("hashmap")}
}

func (db *HashTable) Get(key []byte) (any, bool) {
	return db.impl.Get(key)
}

func (db *HashTable) Set(key []byte, value any) bool {
	return db.impl.Set(key, value)
}

func (db *HashTable) Range(f func(k []byte, v any) bool) {
	db.impl.Range(f)
}

func (db *HashTable) Count() int {
	return db.impl.Count()
}

func (db *HashTable) TraceSet(ctx context.Context, key []byte, value any) bool {
	_, span := db.tracer.Start(ctx, "hashmap:set")
	defer span.End()
	span.SetAttributes(
		attribute.String("table.name", string(db.name)),
		attribute.String("key", string(key)),
		attribute.Int("count", db.impl.Count()),
	)
	return db.impl.Set(key, value)
}
