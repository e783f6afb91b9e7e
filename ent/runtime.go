// Code generated by ent, DO NOT EDIT.

package ent

import (
	"kwlab-go-backend/ent/collectionlog"
	"kwlab-go-backend/ent/cronjobconfig"
	"kwlab-go-backend/ent/keyword"
	"kwlab-go-backend/ent/keyworddoccount"
	"kwlab-go-backend/ent/schema"
	"kwlab-go-backend/ent/schema/ulid"
	"kwlab-go-backend/ent/seedusage"
	"time"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	collectionlogMixin := schema.CollectionLog{}.Mixin()
	collectionlogMixinFields0 := collectionlogMixin[0].Fields()
	_ = collectionlogMixinFields0
	collectionlogMixinFields2 := collectionlogMixin[2].Fields()
	_ = collectionlogMixinFields2
	collectionlogFields := schema.CollectionLog{}.Fields()
	_ = collectionlogFields
	// collectionlogDescCreatedAt is the schema descriptor for created_at field.
	collectionlogDescCreatedAt := collectionlogMixinFields2[0].Descriptor()
	// collectionlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	collectionlog.DefaultCreatedAt = collectionlogDescCreatedAt.Default.(func() time.Time)
	// collectionlogDescUpdatedAt is the schema descriptor for updated_at field.
	collectionlogDescUpdatedAt := collectionlogMixinFields2[1].Descriptor()
	// collectionlog.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	collectionlog.DefaultUpdatedAt = collectionlogDescUpdatedAt.Default.(func() time.Time)
	// collectionlog.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	collectionlog.UpdateDefaultUpdatedAt = collectionlogDescUpdatedAt.UpdateDefault.(func() time.Time)
	// collectionlogDescJobName is the schema descriptor for job_name field.
	collectionlogDescJobName := collectionlogFields[0].Descriptor()
	// collectionlog.JobNameValidator is a validator for the "job_name" field. It is called by the builders before save.
	collectionlog.JobNameValidator = func() func(string) error {
		validators := collectionlogDescJobName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(job_name string) error {
			for _, fn := range fns {
				if err := fn(job_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// collectionlogDescDurationSeconds is the schema descriptor for duration_seconds field.
	collectionlogDescDurationSeconds := collectionlogFields[4].Descriptor()
	// collectionlog.DefaultDurationSeconds holds the default value on creation for the duration_seconds field.
	collectionlog.DefaultDurationSeconds = collectionlogDescDurationSeconds.Default.(int)
	// collectionlog.DurationSecondsValidator is a validator for the "duration_seconds" field. It is called by the builders before save.
	collectionlog.DurationSecondsValidator = collectionlogDescDurationSeconds.Validators[0].(func(int) error)
	// collectionlogDescTotalProcessed is the schema descriptor for total_processed field.
	collectionlogDescTotalProcessed := collectionlogFields[5].Descriptor()
	// collectionlog.DefaultTotalProcessed holds the default value on creation for the total_processed field.
	collectionlog.DefaultTotalProcessed = collectionlogDescTotalProcessed.Default.(int)
	// collectionlog.TotalProcessedValidator is a validator for the "total_processed" field. It is called by the builders before save.
	collectionlog.TotalProcessedValidator = collectionlogDescTotalProcessed.Validators[0].(func(int) error)
	// collectionlogDescNewCount is the schema descriptor for new_count field.
	collectionlogDescNewCount := collectionlogFields[6].Descriptor()
	// collectionlog.DefaultNewCount holds the default value on creation for the new_count field.
	collectionlog.DefaultNewCount = collectionlogDescNewCount.Default.(int)
	// collectionlog.NewCountValidator is a validator for the "new_count" field. It is called by the builders before save.
	collectionlog.NewCountValidator = collectionlogDescNewCount.Validators[0].(func(int) error)
	// collectionlogDescUpdatedCount is the schema descriptor for updated_count field.
	collectionlogDescUpdatedCount := collectionlogFields[7].Descriptor()
	// collectionlog.DefaultUpdatedCount holds the default value on creation for the updated_count field.
	collectionlog.DefaultUpdatedCount = collectionlogDescUpdatedCount.Default.(int)
	// collectionlog.UpdatedCountValidator is a validator for the "updated_count" field. It is called by the builders before save.
	collectionlog.UpdatedCountValidator = collectionlogDescUpdatedCount.Validators[0].(func(int) error)
	// collectionlogDescSkippedCount is the schema descriptor for skipped_count field.
	collectionlogDescSkippedCount := collectionlogFields[8].Descriptor()
	// collectionlog.DefaultSkippedCount holds the default value on creation for the skipped_count field.
	collectionlog.DefaultSkippedCount = collectionlogDescSkippedCount.Default.(int)
	// collectionlog.SkippedCountValidator is a validator for the "skipped_count" field. It is called by the builders before save.
	collectionlog.SkippedCountValidator = collectionlogDescSkippedCount.Validators[0].(func(int) error)
	// collectionlogDescFailedCount is the schema descriptor for failed_count field.
	collectionlogDescFailedCount := collectionlogFields[9].Descriptor()
	// collectionlog.DefaultFailedCount holds the default value on creation for the failed_count field.
	collectionlog.DefaultFailedCount = collectionlogDescFailedCount.Default.(int)
	// collectionlog.FailedCountValidator is a validator for the "failed_count" field. It is called by the builders before save.
	collectionlog.FailedCountValidator = collectionlogDescFailedCount.Validators[0].(func(int) error)
	// collectionlogDescAPICallsMade is the schema descriptor for api_calls_made field.
	collectionlogDescAPICallsMade := collectionlogFields[10].Descriptor()
	// collectionlog.DefaultAPICallsMade holds the default value on creation for the api_calls_made field.
	collectionlog.DefaultAPICallsMade = collectionlogDescAPICallsMade.Default.(int)
	// collectionlog.APICallsMadeValidator is a validator for the "api_calls_made" field. It is called by the builders before save.
	collectionlog.APICallsMadeValidator = collectionlogDescAPICallsMade.Validators[0].(func(int) error)
	// collectionlogDescID is the schema descriptor for id field.
	collectionlogDescID := collectionlogMixinFields0[0].Descriptor()
	// collectionlog.DefaultID holds the default value on creation for the id field.
	collectionlog.DefaultID = collectionlogDescID.Default.(func() ulid.ID)
	cronjobconfigMixin := schema.CronJobConfig{}.Mixin()
	cronjobconfigMixinFields0 := cronjobconfigMixin[0].Fields()
	_ = cronjobconfigMixinFields0
	cronjobconfigMixinFields2 := cronjobconfigMixin[2].Fields()
	_ = cronjobconfigMixinFields2
	cronjobconfigFields := schema.CronJobConfig{}.Fields()
	_ = cronjobconfigFields
	// cronjobconfigDescCreatedAt is the schema descriptor for created_at field.
	cronjobconfigDescCreatedAt := cronjobconfigMixinFields2[0].Descriptor()
	// cronjobconfig.DefaultCreatedAt holds the default value on creation for the created_at field.
	cronjobconfig.DefaultCreatedAt = cronjobconfigDescCreatedAt.Default.(func() time.Time)
	// cronjobconfigDescUpdatedAt is the schema descriptor for updated_at field.
	cronjobconfigDescUpdatedAt := cronjobconfigMixinFields2[1].Descriptor()
	// cronjobconfig.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	cronjobconfig.DefaultUpdatedAt = cronjobconfigDescUpdatedAt.Default.(func() time.Time)
	// cronjobconfig.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	cronjobconfig.UpdateDefaultUpdatedAt = cronjobconfigDescUpdatedAt.UpdateDefault.(func() time.Time)
	// cronjobconfigDescJobName is the schema descriptor for job_name field.
	cronjobconfigDescJobName := cronjobconfigFields[0].Descriptor()
	// cronjobconfig.JobNameValidator is a validator for the "job_name" field. It is called by the builders before save.
	cronjobconfig.JobNameValidator = func() func(string) error {
		validators := cronjobconfigDescJobName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(job_name string) error {
			for _, fn := range fns {
				if err := fn(job_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// cronjobconfigDescSchedule is the schema descriptor for schedule field.
	cronjobconfigDescSchedule := cronjobconfigFields[2].Descriptor()
	// cronjobconfig.ScheduleValidator is a validator for the "schedule" field. It is called by the builders before save.
	cronjobconfig.ScheduleValidator = cronjobconfigDescSchedule.Validators[0].(func(string) error)
	// cronjobconfigDescEnabled is the schema descriptor for enabled field.
	cronjobconfigDescEnabled := cronjobconfigFields[3].Descriptor()
	// cronjobconfig.DefaultEnabled holds the default value on creation for the enabled field.
	cronjobconfig.DefaultEnabled = cronjobconfigDescEnabled.Default.(bool)
	// cronjobconfigDescBatchSize is the schema descriptor for batch_size field.
	cronjobconfigDescBatchSize := cronjobconfigFields[4].Descriptor()
	// cronjobconfig.DefaultBatchSize holds the default value on creation for the batch_size field.
	cronjobconfig.DefaultBatchSize = cronjobconfigDescBatchSize.Default.(int)
	// cronjobconfig.BatchSizeValidator is a validator for the "batch_size" field. It is called by the builders before save.
	cronjobconfig.BatchSizeValidator = cronjobconfigDescBatchSize.Validators[0].(func(int) error)
	// cronjobconfigDescConcurrency is the schema descriptor for concurrency field.
	cronjobconfigDescConcurrency := cronjobconfigFields[5].Descriptor()
	// cronjobconfig.DefaultConcurrency holds the default value on creation for the concurrency field.
	cronjobconfig.DefaultConcurrency = cronjobconfigDescConcurrency.Default.(int)
	// cronjobconfig.ConcurrencyValidator is a validator for the "concurrency" field. It is called by the builders before save.
	cronjobconfig.ConcurrencyValidator = cronjobconfigDescConcurrency.Validators[0].(func(int) error)
	// cronjobconfigDescAdminEmail is the schema descriptor for admin_email field.
	cronjobconfigDescAdminEmail := cronjobconfigFields[6].Descriptor()
	// cronjobconfig.DefaultAdminEmail holds the default value on creation for the admin_email field.
	cronjobconfig.DefaultAdminEmail = cronjobconfigDescAdminEmail.Default.(string)
	// cronjobconfigDescRespectQuota is the schema descriptor for respect_quota field.
	cronjobconfigDescRespectQuota := cronjobconfigFields[7].Descriptor()
	// cronjobconfig.DefaultRespectQuota holds the default value on creation for the respect_quota field.
	cronjobconfig.DefaultRespectQuota = cronjobconfigDescRespectQuota.Default.(bool)
	// cronjobconfigDescID is the schema descriptor for id field.
	cronjobconfigDescID := cronjobconfigMixinFields0[0].Descriptor()
	// cronjobconfig.DefaultID holds the default value on creation for the id field.
	cronjobconfig.DefaultID = cronjobconfigDescID.Default.(func() ulid.ID)
	keywordMixin := schema.Keyword{}.Mixin()
	keywordMixinFields0 := keywordMixin[0].Fields()
	_ = keywordMixinFields0
	keywordMixinFields2 := keywordMixin[2].Fields()
	_ = keywordMixinFields2
	keywordFields := schema.Keyword{}.Fields()
	_ = keywordFields
	// keywordDescCreatedAt is the schema descriptor for created_at field.
	keywordDescCreatedAt := keywordMixinFields2[0].Descriptor()
	// keyword.DefaultCreatedAt holds the default value on creation for the created_at field.
	keyword.DefaultCreatedAt = keywordDescCreatedAt.Default.(func() time.Time)
	// keywordDescUpdatedAt is the schema descriptor for updated_at field.
	keywordDescUpdatedAt := keywordMixinFields2[1].Descriptor()
	// keyword.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	keyword.DefaultUpdatedAt = keywordDescUpdatedAt.Default.(func() time.Time)
	// keyword.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	keyword.UpdateDefaultUpdatedAt = keywordDescUpdatedAt.UpdateDefault.(func() time.Time)
	// keywordDescKeyword is the schema descriptor for keyword field.
	keywordDescKeyword := keywordFields[0].Descriptor()
	// keyword.KeywordValidator is a validator for the "keyword" field. It is called by the builders before save.
	keyword.KeywordValidator = func() func(string) error {
		validators := keywordDescKeyword.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(keyword string) error {
			for _, fn := range fns {
				if err := fn(keyword); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// keywordDescMonthlyPcSearch is the schema descriptor for monthly_pc_search field.
	keywordDescMonthlyPcSearch := keywordFields[1].Descriptor()
	// keyword.DefaultMonthlyPcSearch holds the default value on creation for the monthly_pc_search field.
	keyword.DefaultMonthlyPcSearch = keywordDescMonthlyPcSearch.Default.(int)
	// keyword.MonthlyPcSearchValidator is a validator for the "monthly_pc_search" field. It is called by the builders before save.
	keyword.MonthlyPcSearchValidator = keywordDescMonthlyPcSearch.Validators[0].(func(int) error)
	// keywordDescMonthlyMobileSearch is the schema descriptor for monthly_mobile_search field.
	keywordDescMonthlyMobileSearch := keywordFields[2].Descriptor()
	// keyword.DefaultMonthlyMobileSearch holds the default value on creation for the monthly_mobile_search field.
	keyword.DefaultMonthlyMobileSearch = keywordDescMonthlyMobileSearch.Default.(int)
	// keyword.MonthlyMobileSearchValidator is a validator for the "monthly_mobile_search" field. It is called by the builders before save.
	keyword.MonthlyMobileSearchValidator = keywordDescMonthlyMobileSearch.Validators[0].(func(int) error)
	// keywordDescAvgMonthlySearch is the schema descriptor for avg_monthly_search field.
	keywordDescAvgMonthlySearch := keywordFields[3].Descriptor()
	// keyword.DefaultAvgMonthlySearch holds the default value on creation for the avg_monthly_search field.
	keyword.DefaultAvgMonthlySearch = keywordDescAvgMonthlySearch.Default.(int)
	// keyword.AvgMonthlySearchValidator is a validator for the "avg_monthly_search" field. It is called by the builders before save.
	keyword.AvgMonthlySearchValidator = keywordDescAvgMonthlySearch.Validators[0].(func(int) error)
	// keywordDescMonthlyClickPc is the schema descriptor for monthly_click_pc field.
	keywordDescMonthlyClickPc := keywordFields[4].Descriptor()
	// keyword.DefaultMonthlyClickPc holds the default value on creation for the monthly_click_pc field.
	keyword.DefaultMonthlyClickPc = keywordDescMonthlyClickPc.Default.(float64)
	// keywordDescMonthlyClickMobile is the schema descriptor for monthly_click_mobile field.
	keywordDescMonthlyClickMobile := keywordFields[5].Descriptor()
	// keyword.DefaultMonthlyClickMobile holds the default value on creation for the monthly_click_mobile field.
	keyword.DefaultMonthlyClickMobile = keywordDescMonthlyClickMobile.Default.(float64)
	// keywordDescCtrPc is the schema descriptor for ctr_pc field.
	keywordDescCtrPc := keywordFields[6].Descriptor()
	// keyword.DefaultCtrPc holds the default value on creation for the ctr_pc field.
	keyword.DefaultCtrPc = keywordDescCtrPc.Default.(float64)
	// keywordDescCtrMobile is the schema descriptor for ctr_mobile field.
	keywordDescCtrMobile := keywordFields[7].Descriptor()
	// keyword.DefaultCtrMobile holds the default value on creation for the ctr_mobile field.
	keyword.DefaultCtrMobile = keywordDescCtrMobile.Default.(float64)
	// keywordDescAdDepth is the schema descriptor for ad_depth field.
	keywordDescAdDepth := keywordFields[8].Descriptor()
	// keyword.DefaultAdDepth holds the default value on creation for the ad_depth field.
	keyword.DefaultAdDepth = keywordDescAdDepth.Default.(int)
	// keyword.AdDepthValidator is a validator for the "ad_depth" field. It is called by the builders before save.
	keyword.AdDepthValidator = keywordDescAdDepth.Validators[0].(func(int) error)
	// keywordDescCompetition is the schema descriptor for competition field.
	keywordDescCompetition := keywordFields[9].Descriptor()
	// keyword.DefaultCompetition holds the default value on creation for the competition field.
	keyword.DefaultCompetition = keywordDescCompetition.Default.(string)
	// keyword.CompetitionValidator is a validator for the "competition" field. It is called by the builders before save.
	keyword.CompetitionValidator = keywordDescCompetition.Validators[0].(func(string) error)
	// keywordDescSeed is the schema descriptor for seed field.
	keywordDescSeed := keywordFields[10].Descriptor()
	// keyword.DefaultSeed holds the default value on creation for the seed field.
	keyword.DefaultSeed = keywordDescSeed.Default.(string)
	// keyword.SeedValidator is a validator for the "seed" field. It is called by the builders before save.
	keyword.SeedValidator = keywordDescSeed.Validators[0].(func(string) error)
	// keywordDescID is the schema descriptor for id field.
	keywordDescID := keywordMixinFields0[0].Descriptor()
	// keyword.DefaultID holds the default value on creation for the id field.
	keyword.DefaultID = keywordDescID.Default.(func() ulid.ID)
	keyworddoccountMixin := schema.KeywordDocCount{}.Mixin()
	keyworddoccountMixinFields0 := keyworddoccountMixin[0].Fields()
	_ = keyworddoccountMixinFields0
	keyworddoccountMixinFields2 := keyworddoccountMixin[2].Fields()
	_ = keyworddoccountMixinFields2
	keyworddoccountFields := schema.KeywordDocCount{}.Fields()
	_ = keyworddoccountFields
	// keyworddoccountDescCreatedAt is the schema descriptor for created_at field.
	keyworddoccountDescCreatedAt := keyworddoccountMixinFields2[0].Descriptor()
	// keyworddoccount.DefaultCreatedAt holds the default value on creation for the created_at field.
	keyworddoccount.DefaultCreatedAt = keyworddoccountDescCreatedAt.Default.(func() time.Time)
	// keyworddoccountDescUpdatedAt is the schema descriptor for updated_at field.
	keyworddoccountDescUpdatedAt := keyworddoccountMixinFields2[1].Descriptor()
	// keyworddoccount.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	keyworddoccount.DefaultUpdatedAt = keyworddoccountDescUpdatedAt.Default.(func() time.Time)
	// keyworddoccount.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	keyworddoccount.UpdateDefaultUpdatedAt = keyworddoccountDescUpdatedAt.UpdateDefault.(func() time.Time)
	// keyworddoccountDescKeyword is the schema descriptor for keyword field.
	keyworddoccountDescKeyword := keyworddoccountFields[0].Descriptor()
	// keyworddoccount.KeywordValidator is a validator for the "keyword" field. It is called by the builders before save.
	keyworddoccount.KeywordValidator = func() func(string) error {
		validators := keyworddoccountDescKeyword.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(keyword string) error {
			for _, fn := range fns {
				if err := fn(keyword); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// keyworddoccountDescBlogTotal is the schema descriptor for blog_total field.
	keyworddoccountDescBlogTotal := keyworddoccountFields[1].Descriptor()
	// keyworddoccount.DefaultBlogTotal holds the default value on creation for the blog_total field.
	keyworddoccount.DefaultBlogTotal = keyworddoccountDescBlogTotal.Default.(int)
	// keyworddoccount.BlogTotalValidator is a validator for the "blog_total" field. It is called by the builders before save.
	keyworddoccount.BlogTotalValidator = keyworddoccountDescBlogTotal.Validators[0].(func(int) error)
	// keyworddoccountDescCafeTotal is the schema descriptor for cafe_total field.
	keyworddoccountDescCafeTotal := keyworddoccountFields[2].Descriptor()
	// keyworddoccount.DefaultCafeTotal holds the default value on creation for the cafe_total field.
	keyworddoccount.DefaultCafeTotal = keyworddoccountDescCafeTotal.Default.(int)
	// keyworddoccount.CafeTotalValidator is a validator for the "cafe_total" field. It is called by the builders before save.
	keyworddoccount.CafeTotalValidator = keyworddoccountDescCafeTotal.Validators[0].(func(int) error)
	// keyworddoccountDescWebTotal is the schema descriptor for web_total field.
	keyworddoccountDescWebTotal := keyworddoccountFields[3].Descriptor()
	// keyworddoccount.DefaultWebTotal holds the default value on creation for the web_total field.
	keyworddoccount.DefaultWebTotal = keyworddoccountDescWebTotal.Default.(int)
	// keyworddoccount.WebTotalValidator is a validator for the "web_total" field. It is called by the builders before save.
	keyworddoccount.WebTotalValidator = keyworddoccountDescWebTotal.Validators[0].(func(int) error)
	// keyworddoccountDescNewsTotal is the schema descriptor for news_total field.
	keyworddoccountDescNewsTotal := keyworddoccountFields[4].Descriptor()
	// keyworddoccount.DefaultNewsTotal holds the default value on creation for the news_total field.
	keyworddoccount.DefaultNewsTotal = keyworddoccountDescNewsTotal.Default.(int)
	// keyworddoccount.NewsTotalValidator is a validator for the "news_total" field. It is called by the builders before save.
	keyworddoccount.NewsTotalValidator = keyworddoccountDescNewsTotal.Validators[0].(func(int) error)
	// keyworddoccountDescID is the schema descriptor for id field.
	keyworddoccountDescID := keyworddoccountMixinFields0[0].Descriptor()
	// keyworddoccount.DefaultID holds the default value on creation for the id field.
	keyworddoccount.DefaultID = keyworddoccountDescID.Default.(func() ulid.ID)
	seedusageMixin := schema.SeedUsage{}.Mixin()
	seedusageMixinFields0 := seedusageMixin[0].Fields()
	_ = seedusageMixinFields0
	seedusageMixinFields2 := seedusageMixin[2].Fields()
	_ = seedusageMixinFields2
	seedusageFields := schema.SeedUsage{}.Fields()
	_ = seedusageFields
	// seedusageDescCreatedAt is the schema descriptor for created_at field.
	seedusageDescCreatedAt := seedusageMixinFields2[0].Descriptor()
	// seedusage.DefaultCreatedAt holds the default value on creation for the created_at field.
	seedusage.DefaultCreatedAt = seedusageDescCreatedAt.Default.(func() time.Time)
	// seedusageDescUpdatedAt is the schema descriptor for updated_at field.
	seedusageDescUpdatedAt := seedusageMixinFields2[1].Descriptor()
	// seedusage.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	seedusage.DefaultUpdatedAt = seedusageDescUpdatedAt.Default.(func() time.Time)
	// seedusage.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	seedusage.UpdateDefaultUpdatedAt = seedusageDescUpdatedAt.UpdateDefault.(func() time.Time)
	// seedusageDescSeed is the schema descriptor for seed field.
	seedusageDescSeed := seedusageFields[0].Descriptor()
	// seedusage.SeedValidator is a validator for the "seed" field. It is called by the builders before save.
	seedusage.SeedValidator = func() func(string) error {
		validators := seedusageDescSeed.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(seed string) error {
			for _, fn := range fns {
				if err := fn(seed); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// seedusageDescUsageCount is the schema descriptor for usage_count field.
	seedusageDescUsageCount := seedusageFields[1].Descriptor()
	// seedusage.DefaultUsageCount holds the default value on creation for the usage_count field.
	seedusage.DefaultUsageCount = seedusageDescUsageCount.Default.(int)
	// seedusage.UsageCountValidator is a validator for the "usage_count" field. It is called by the builders before save.
	seedusage.UsageCountValidator = seedusageDescUsageCount.Validators[0].(func(int) error)
	// seedusageDescID is the schema descriptor for id field.
	seedusageDescID := seedusageMixinFields0[0].Descriptor()
	// seedusage.DefaultID holds the default value on creation for the id field.
	seedusage.DefaultID = seedusageDescID.Default.(func() ulid.ID)
}
