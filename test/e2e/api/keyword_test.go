package api_test

import (
	"context"
	"net/http"
	"testing"

	"kwlab-go-backend/ent"
	"kwlab-go-backend/testutil/e2e"

	"github.com/gavv/httpexpect/v2"
)

func dropKeywords(t *testing.T, client *ent.Client) {
	t.Helper()
	if _, err := client.Keyword.Delete().Exec(context.Background()); err != nil {
		t.Fatalf("failed to drop keywords: %v", err)
	}
	if _, err := client.SeedUsage.Delete().Exec(context.Background()); err != nil {
		t.Fatalf("failed to drop seed usage: %v", err)
	}
}

func TestKeyword_CRUD(t *testing.T) {
	expect, _, teardown := e2e.Setup(t, e2e.SetupOption{
		TearDown: dropKeywords,
	})
	defer teardown()

	createKeyword := func(text string, avgPc, avgMobile int) *httpexpect.Object {
		return e2e.WithAdminKey(expect.POST("/api/keywords")).
			WithJSON(map[string]interface{}{
				"keyword":             text,
				"monthlyPcSearch":     avgPc,
				"monthlyMobileSearch": avgMobile,
				"competition":         "HIGH",
				"seed":                "camping",
			}).
			Expect().
			Status(http.StatusCreated).
			JSON().Object()
	}

	t.Run("It Should create and fetch a keyword", func(t *testing.T) {
		created := createKeyword("camping chair", 900, 2100)
		id := created.Value("id").String().Raw()
		created.Value("avg_monthly_search").Number().IsEqual(3000)

		got := e2e.WithAdminKey(expect.GET("/api/keywords/" + id)).
			Expect().
			Status(http.StatusOK).
			JSON().Object()
		got.Value("keyword").Object().Value("keyword").String().IsEqual("camping chair")
	})

	t.Run("It Should reject an empty keyword", func(t *testing.T) {
		e2e.WithAdminKey(expect.POST("/api/keywords")).
			WithJSON(map[string]interface{}{"keyword": ""}).
			Expect().
			Status(http.StatusBadRequest)
	})

	t.Run("It Should browse with filters", func(t *testing.T) {
		createKeyword("camping lantern", 100, 150)

		page := e2e.WithAdminKey(expect.GET("/api/keywords")).
			WithQuery("q", "camping").
			WithQuery("sortBy", "avg_monthly_search").
			WithQuery("sortDir", "desc").
			Expect().
			Status(http.StatusOK).
			JSON().Object()

		items := page.Value("items").Array()
		items.Length().Gt(0)
		items.Value(0).Object().Value("keyword").String().IsEqual("camping chair")
	})

	t.Run("It Should reject an unknown sort field by name", func(t *testing.T) {
		e2e.WithAdminKey(expect.GET("/api/keywords")).
			WithQuery("sortBy", "bogus").
			Expect().
			Status(http.StatusBadRequest).
			JSON().Object().
			Value("error").String().Contains("bogus")
	})

	t.Run("It Should report insights", func(t *testing.T) {
		insights := e2e.WithAdminKey(expect.GET("/api/keywords/insights")).
			Expect().
			Status(http.StatusOK).
			JSON().Object()
		insights.Value("totalKeywords").Number().Gt(0)
		insights.ContainsKey("competitionBreakdown")
	})

	t.Run("It Should export CSV", func(t *testing.T) {
		body := e2e.WithAdminKey(expect.GET("/api/keywords/export")).
			Expect().
			Status(http.StatusOK).
			Body()
		body.Contains("keyword,monthly_pc_search")
		body.Contains("camping chair")
	})

	t.Run("It Should delete a keyword", func(t *testing.T) {
		created := createKeyword("camping stove", 10, 20)
		id := created.Value("id").String().Raw()

		e2e.WithAdminKey(expect.DELETE("/api/keywords/"+id)).
			Expect().
			Status(http.StatusNoContent)

		e2e.WithAdminKey(expect.GET("/api/keywords/"+id)).
			Expect().
			Status(http.StatusNotFound)
	})
}
