package globalid

// object holds the ULID prefix of one entity.
type object struct {
	Prefix string
}

type globalIDs struct {
	Keyword         object
	KeywordDocCount object
	SeedUsage       object
	CollectionLog   object
	CronJobConfig   object
	CollectionJob   object
}

// New returns the ULID prefix registry for all entities.
func New() globalIDs {
	return globalIDs{
		Keyword:         object{Prefix: "KW"},
		KeywordDocCount: object{Prefix: "DC"},
		SeedUsage:       object{Prefix: "SU"},
		CollectionLog:   object{Prefix: "CL"},
		CronJobConfig:   object{Prefix: "CC"},
		CollectionJob:   object{Prefix: "JB"},
	}
}
