package mixin

import (
	"kwlab-go-backend/ent/schema/ulid"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/mixin"
)

// NewUlid creates a Mixin that provides a prefixed ULID primary key.
func NewUlid(prefix string) *UlidMixin {
	return &UlidMixin{prefix: prefix}
}

// UlidMixin defines an ent Mixin
type UlidMixin struct {
	mixin.Schema
	prefix string
}

// Fields provides the id field.
func (m UlidMixin) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			GoType(ulid.ID("")).
			DefaultFunc(func() ulid.ID { return ulid.MustNew(m.prefix) }),
	}
}
