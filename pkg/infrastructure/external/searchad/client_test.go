package searchad_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"kwlab-go-backend/config"
	"kwlab-go-backend/pkg/entity/model"
	"kwlab-go-backend/pkg/infrastructure/external/searchad"
	"kwlab-go-backend/pkg/usecase/usecase/keypool"
	"kwlab-go-backend/testutil"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*searchad.Client, *keypool.Pool) {
	t.Helper()
	testutil.ReadConfig()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	config.C.SearchAd.BaseURL = srv.URL

	pool := keypool.New("searchad", []model.Credential{
		{
			Name:       "primary",
			APIKey:     "api-key",
			Secret:     "secret",
			CustomerID: "1000001",
			DailyLimit: 100,
			Active:     true,
		},
	}, zap.NewNop().Sugar())

	return searchad.NewClient(pool, zap.NewNop().Sugar()), pool
}

func TestRelatedKeywordsNormalization(t *testing.T) {
	var gotReq *http.Request
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotReq = r.Clone(context.Background())
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"keywordList":[
			{"relKeyword":"camping chair","monthlyPcQcCnt":1200,"monthlyMobileQcCnt":"< 10",
			 "monthlyAvePcClkCnt":"3.4","monthlyAveMobileClkCnt":0.5,
			 "monthlyAvePcCtr":"0.8%","monthlyAveMobileCtr":"1.2%",
			 "plAvgDepth":15,"compIdx":"HIGH"},
			{"relKeyword":"camping table","monthlyPcQcCnt":"2,000","monthlyMobileQcCnt":300,
			 "monthlyAvePcClkCnt":null,"monthlyAveMobileClkCnt":"n/a",
			 "monthlyAvePcCtr":"","monthlyAveMobileCtr":null,
			 "plAvgDepth":"< 5","compIdx":"LOW"}
		]}`))
	})

	keywords, raw, err := client.RelatedKeywords(context.Background(), []string{"camping"})
	require.NoError(t, err)
	require.NotEmpty(t, raw)
	require.Len(t, keywords, 2)

	first := keywords[0]
	require.Equal(t, "camping chair", first.Keyword)
	require.Equal(t, 1200, first.MonthlyPcSearch)
	require.Equal(t, 10, first.MonthlyMobileSearch)
	require.Equal(t, 1210, first.AvgMonthlySearch)
	require.Equal(t, 3.4, first.MonthlyClickPc)
	require.Equal(t, 0.8, first.CtrPc)
	require.Equal(t, 15, first.AdDepth)
	require.Equal(t, "HIGH", first.Competition)

	second := keywords[1]
	require.Equal(t, 2300, second.AvgMonthlySearch)
	require.Zero(t, second.MonthlyClickPc)
	require.Zero(t, second.CtrPc)
	require.Equal(t, 5, second.AdDepth)

	// Every output upholds avg = pc + mobile.
	for _, kw := range keywords {
		require.Equal(t, kw.MonthlyPcSearch+kw.MonthlyMobileSearch, kw.AvgMonthlySearch)
	}

	// Request contract: query params and signed headers.
	require.Equal(t, "camping", gotReq.URL.Query().Get("hintKeywords"))
	require.Equal(t, "1", gotReq.URL.Query().Get("showDetail"))
	require.Equal(t, "api-key", gotReq.Header.Get("X-API-KEY"))
	require.Equal(t, "1000001", gotReq.Header.Get("X-Customer"))
	require.NotEmpty(t, gotReq.Header.Get("X-Timestamp"))
	require.Equal(t,
		searchad.Sign(gotReq.Header.Get("X-Timestamp"), http.MethodGet, "/keywordstool", "secret"),
		gotReq.Header.Get("X-Signature"),
	)
}

func TestRelatedKeywordsRateLimited(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "300")
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, _, err := client.RelatedKeywords(context.Background(), []string{"camping"})
	var rateErr *model.RateLimitedError
	require.True(t, errors.As(err, &rateErr))
	require.Equal(t, 300.0, rateErr.RetryAfter.Seconds())
}

func TestRelatedKeywordsAuthInvalidDeactivatesCredential(t *testing.T) {
	client, pool := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, _, err := client.RelatedKeywords(context.Background(), []string{"camping"})
	var authErr *model.AuthInvalidError
	require.True(t, errors.As(err, &authErr))
	require.Equal(t, "primary", authErr.CredentialName)

	// The rejected credential is out of rotation.
	_, err = pool.Select()
	var noCred *model.NoCredentialAvailableError
	require.True(t, errors.As(err, &noCred))
}

func TestRelatedKeywordsServerErrorIsTransient(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, _, err := client.RelatedKeywords(context.Background(), []string{"camping"})
	var transient *model.TransientError
	require.True(t, errors.As(err, &transient))
	require.Equal(t, http.StatusBadGateway, transient.Status)
}

func TestRelatedKeywordsMissingListIsEmptyResult(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"ok"}`))
	})

	keywords, _, err := client.RelatedKeywords(context.Background(), []string{"camping"})
	require.NoError(t, err)
	require.Empty(t, keywords)
}

func TestRelatedKeywordsMalformedBodyIsEmptyResult(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})

	keywords, _, err := client.RelatedKeywords(context.Background(), []string{"camping"})
	require.NoError(t, err)
	require.Empty(t, keywords)
}

func TestRelatedKeywordsInputValidation(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

	_, _, err := client.RelatedKeywords(context.Background(), []string{"  "})
	require.Error(t, err)

	_, _, err = client.RelatedKeywords(context.Background(), []string{"a", "b", "c", "d", "e", "f"})
	require.Error(t, err)
}

func TestRelatedKeywordsRecordsUsage(t *testing.T) {
	client, pool := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"keywordList":[]}`))
	})

	_, _, err := client.RelatedKeywords(context.Background(), []string{"camping"})
	require.NoError(t, err)

	snap := pool.Snapshot()
	require.Equal(t, 1, snap[0].UsedToday)
}
