package api_test

import (
	"net/http"
	"testing"

	"kwlab-go-backend/testutil/e2e"
)

func TestAuth_AdminKey(t *testing.T) {
	expect, _, teardown := e2e.Setup(t, e2e.SetupOption{})
	defer teardown()

	t.Run("It Should serve the health check without a key", func(t *testing.T) {
		expect.GET("/health_check").
			Expect().
			Status(http.StatusOK).
			Body().IsEqual("ok")
	})

	t.Run("It Should reject API requests without a key", func(t *testing.T) {
		expect.GET("/api/jobs").
			Expect().
			Status(http.StatusUnauthorized).
			JSON().Object().ContainsKey("error")
	})

	t.Run("It Should reject API requests with a wrong key", func(t *testing.T) {
		expect.GET("/api/jobs").
			WithHeader("X-Admin-Key", "definitely-wrong").
			Expect().
			Status(http.StatusUnauthorized)
	})

	t.Run("It Should accept API requests with the configured key", func(t *testing.T) {
		e2e.WithAdminKey(expect.GET("/api/jobs")).
			Expect().
			Status(http.StatusOK).
			JSON().Array()
	})
}
