// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CollectionLog is the predicate function for collectionlog builders.
type CollectionLog func(*sql.Selector)

// CronJobConfig is the predicate function for cronjobconfig builders.
type CronJobConfig func(*sql.Selector)

// Keyword is the predicate function for keyword builders.
type Keyword func(*sql.Selector)

// KeywordDocCount is the predicate function for keyworddoccount builders.
type KeywordDocCount func(*sql.Selector)

// SeedUsage is the predicate function for seedusage builders.
type SeedUsage func(*sql.Selector)
