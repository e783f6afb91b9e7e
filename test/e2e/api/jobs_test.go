package api_test

import (
	"net/http"
	"testing"

	"kwlab-go-backend/testutil/e2e"
)

func TestJobs_Registry(t *testing.T) {
	expect, _, teardown := e2e.Setup(t, e2e.SetupOption{})
	defer teardown()

	t.Run("It Should reject an unknown job type", func(t *testing.T) {
		e2e.WithAdminKey(expect.POST("/api/jobs")).
			WithJSON(map[string]interface{}{
				"type":   "mystery_job",
				"params": map[string]interface{}{},
			}).
			Expect().
			Status(http.StatusBadRequest)
	})

	t.Run("It Should return 404 for a missing job", func(t *testing.T) {
		e2e.WithAdminKey(expect.GET("/api/jobs/JB00000000000000000000000000")).
			Expect().
			Status(http.StatusNotFound)
	})
}

func TestCredentials_Snapshot(t *testing.T) {
	expect, _, teardown := e2e.Setup(t, e2e.SetupOption{})
	defer teardown()

	snapshot := e2e.WithAdminKey(expect.GET("/api/credentials")).
		Expect().
		Status(http.StatusOK).
		JSON().Object()

	snapshot.ContainsKey("searchad")
	snapshot.ContainsKey("openapi")

	// Counters are exposed, secrets are not.
	first := snapshot.Value("searchad").Array().Value(0).Object()
	first.ContainsKey("name")
	first.ContainsKey("usedToday")
	first.ContainsKey("dailyLimit")
	first.NotContainsKey("secret")
}

func TestAutoCollect_Status(t *testing.T) {
	expect, _, teardown := e2e.Setup(t, e2e.SetupOption{})
	defer teardown()

	status := e2e.WithAdminKey(expect.GET("/api/collect/auto/status")).
		Expect().
		Status(http.StatusOK).
		JSON().Object()

	status.Value("running").Boolean().IsFalse()
	status.Value("processedCount").Number().IsEqual(0)
}
