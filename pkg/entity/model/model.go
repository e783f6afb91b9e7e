package model

import "kwlab-go-backend/ent/schema/ulid"

// ID is the prefixed ULID of every entity.
type ID = ulid.ID
