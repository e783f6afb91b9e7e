package registry

import (
	"context"

	"kwlab-go-backend/config"
	"kwlab-go-backend/ent"
	"kwlab-go-backend/pkg/adapter/controller"
	"kwlab-go-backend/pkg/adapter/repository/collectionlogrepository"
	"kwlab-go-backend/pkg/adapter/repository/cronjobconfigrepository"
	"kwlab-go-backend/pkg/adapter/repository/doccountrepository"
	"kwlab-go-backend/pkg/adapter/repository/keywordrepository"
	"kwlab-go-backend/pkg/adapter/repository/seedusagerepository"
	"kwlab-go-backend/pkg/entity/model"
	"kwlab-go-backend/pkg/infrastructure/email"
	"kwlab-go-backend/pkg/infrastructure/external/opensearch"
	"kwlab-go-backend/pkg/infrastructure/external/searchad"
	"kwlab-go-backend/pkg/infrastructure/scheduler"
	"kwlab-go-backend/pkg/infrastructure/storage"
	ur "kwlab-go-backend/pkg/usecase/repository"
	"kwlab-go-backend/pkg/usecase/usecase/autocollect"
	"kwlab-go-backend/pkg/usecase/usecase/collector"
	"kwlab-go-backend/pkg/usecase/usecase/doccount"
	"kwlab-go-backend/pkg/usecase/usecase/jobs"
	"kwlab-go-backend/pkg/usecase/usecase/keypool"

	"go.uber.org/zap"
)

type registry struct {
	client *ent.Client
	logger *zap.SugaredLogger

	keywordRepo ur.Keyword
	seedRepo    ur.SeedUsage
	docRepo     ur.DocCount
	logRepo     ur.CollectionLog
	cronRepo    ur.CronJobConfig

	searchAdPool *keypool.Pool
	openAPIPool  *keypool.Pool

	collector *collector.Collector
	docCount  *doccount.Service
	jobs      *jobs.Registry
	loop      *autocollect.Loop
	scheduler *scheduler.Scheduler
	email     *email.EmailService
}

// Registry is an interface of registry
type Registry interface {
	NewController() controller.Controller
	Scheduler() *scheduler.Scheduler
	Collector() *collector.Collector
	Jobs() *jobs.Registry
	Pools() []*keypool.Pool
}

// New wires every component of the app from config and the db client.
func New(ctx context.Context, client *ent.Client, logger *zap.SugaredLogger) (Registry, error) {
	r := &registry{client: client, logger: logger}

	r.keywordRepo = keywordrepository.NewKeywordRepository(client)
	r.seedRepo = seedusagerepository.NewSeedUsageRepository(client)
	r.docRepo = doccountrepository.NewDocCountRepository(client)
	r.logRepo = collectionlogrepository.NewCollectionLogRepository(client)
	r.cronRepo = cronjobconfigrepository.NewCronJobConfigRepository(client)

	r.searchAdPool = keypool.New("searchad", searchAdCredentials(), logger)
	r.openAPIPool = keypool.New("openapi", openAPICredentials(), logger)

	var notifier collector.Notifier
	if config.C.Email.SMTPHost != "" {
		r.email = email.NewEmailService()
		notifier = r.email
	}

	var archiver collector.Archiver
	s3, err := storage.NewS3Storage(ctx)
	if err != nil {
		return nil, err
	}
	if s3 != nil {
		archiver = s3
	}

	adsClient := searchad.NewClient(r.searchAdPool, logger)
	searchClient := opensearch.NewClient(r.openAPIPool, logger)

	retry := collector.NewRetryPolicy(logger)
	r.collector = collector.New(
		r.keywordRepo, r.seedRepo, r.logRepo,
		adsClient, retry, archiver, notifier, r.searchAdPool, logger,
	)
	r.docCount = doccount.NewService(r.docRepo, searchClient, collector.NewRetryPolicy(logger), logger)

	r.jobs = jobs.NewRegistry(logger)
	r.jobs.Register(model.JobTypeManualCollect, jobs.ManualCollectRunner(r.collector))
	r.jobs.Register(model.JobTypeAutoCollect, jobs.AutoCollectRunner(r.collector))
	r.jobs.Register(model.JobTypeLargeScaleAutoCollect, jobs.LargeScaleAutoCollectRunner(r.collector))
	r.jobs.Register(model.JobTypeDocCount, jobs.DocCountRunner(r.docCount, r.collector.Freshness()))

	var loopNotifier autocollect.Notifier
	if r.email != nil {
		loopNotifier = r.email
	}
	r.loop = autocollect.NewLoop(r.collector, loopNotifier, nil, logger)

	r.scheduler = scheduler.NewScheduler(
		r.collector, r.docCount, r.jobs, r.cronRepo, logger,
		r.searchAdPool, r.openAPIPool,
	)

	return r, nil
}

// NewController generates controllers
func (r *registry) NewController() controller.Controller {
	return controller.Controller{
		Keyword:    r.NewKeywordController(),
		Collect:    r.NewCollectController(),
		Job:        r.NewJobController(),
		Credential: r.NewCredentialController(),
		CronJob:    r.NewCronJobController(),
	}
}

func (r *registry) Scheduler() *scheduler.Scheduler { return r.scheduler }
func (r *registry) Collector() *collector.Collector { return r.collector }
func (r *registry) Jobs() *jobs.Registry            { return r.jobs }

func (r *registry) Pools() []*keypool.Pool {
	return []*keypool.Pool{r.searchAdPool, r.openAPIPool}
}

func searchAdCredentials() []model.Credential {
	creds := make([]model.Credential, 0, len(config.C.SearchAd.Credentials))
	for _, c := range config.C.SearchAd.Credentials {
		creds = append(creds, model.Credential{
			Name:       c.Name,
			APIKey:     c.APIKey,
			Secret:     c.Secret,
			CustomerID: c.CustomerID,
			DailyLimit: c.DailyLimit,
			Active:     true,
		})
	}
	return creds
}

func openAPICredentials() []model.Credential {
	creds := make([]model.Credential, 0, len(config.C.OpenAPI.Credentials))
	for _, c := range config.C.OpenAPI.Credentials {
		creds = append(creds, model.Credential{
			Name:       c.Name,
			APIKey:     c.ClientID,
			Secret:     c.ClientSecret,
			DailyLimit: c.DailyLimit,
			Active:     true,
		})
	}
	return creds
}
