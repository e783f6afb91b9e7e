package opensearch_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"kwlab-go-backend/config"
	"kwlab-go-backend/pkg/entity/model"
	"kwlab-go-backend/pkg/infrastructure/external/opensearch"
	"kwlab-go-backend/pkg/usecase/usecase/keypool"
	"kwlab-go-backend/testutil"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*opensearch.Client, *keypool.Pool) {
	t.Helper()
	testutil.ReadConfig()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	config.C.OpenAPI.BaseURL = srv.URL

	pool := keypool.New("openapi", []model.Credential{
		{
			Name:       "open-1",
			APIKey:     "client-id",
			Secret:     "client-secret",
			DailyLimit: 100,
			Active:     true,
		},
	}, zap.NewNop().Sugar())

	return opensearch.NewClient(pool, zap.NewNop().Sugar()), pool
}

func TestTotal(t *testing.T) {
	var gotPath, gotID, gotSecret, gotDisplay string
	client, pool := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotID = r.Header.Get("X-Naver-Client-Id")
		gotSecret = r.Header.Get("X-Naver-Client-Secret")
		gotDisplay = r.URL.Query().Get("display")
		w.Write([]byte(`{"total":48213,"start":1,"items":[]}`))
	})

	total, err := client.Total(context.Background(), opensearch.ChannelBlog, "camping")
	require.NoError(t, err)
	require.Equal(t, 48213, total)

	require.Equal(t, "/blog.json", gotPath)
	require.Equal(t, "client-id", gotID)
	require.Equal(t, "client-secret", gotSecret)
	require.Equal(t, "1", gotDisplay, "totals only need a minimal result page")

	require.Equal(t, 1, pool.Snapshot()[0].UsedToday)
}

func TestSearchStripsMarkup(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"total":2,"start":1,"items":[
			{"title":"<b>camping</b> chair","link":"https://example.com/1",
			 "description":"best <script>alert(1)</script>picks"}
		]}`))
	})

	res, err := client.Search(context.Background(), opensearch.ChannelNews, "camping", 10)
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	require.Equal(t, "camping chair", res.Items[0].Title)
	require.NotContains(t, res.Items[0].Description, "<script>")
	require.NotContains(t, res.Items[0].Description, "alert(1)")
}

func TestTotalAuthFailureDeactivates(t *testing.T) {
	client, pool := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.Total(context.Background(), opensearch.ChannelCafe, "camping")
	var authErr *model.AuthInvalidError
	require.True(t, errors.As(err, &authErr))

	_, err = pool.Select()
	require.Error(t, err)
}

func TestTotalRateLimited(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.Total(context.Background(), opensearch.ChannelWeb, "camping")
	var rateErr *model.RateLimitedError
	require.True(t, errors.As(err, &rateErr))
}

func TestTotalServerErrorIsTransient(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Total(context.Background(), opensearch.ChannelNews, "camping")
	var transient *model.TransientError
	require.True(t, errors.As(err, &transient))
}

func TestChannels(t *testing.T) {
	require.Equal(t, []opensearch.Channel{
		opensearch.ChannelBlog,
		opensearch.ChannelCafe,
		opensearch.ChannelWeb,
		opensearch.ChannelNews,
	}, opensearch.Channels())
}
