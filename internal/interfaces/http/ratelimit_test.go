package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/componentes-api/internal/infrastructure/metrics"
	apphttp "github.com/jhoicas/componentes-api/internal/interfaces/http"
)

func TestLoginRateLimiter_AgotaRafagaYResponde429(t *testing.T) {
	rec := &fakeRecorder{}
	rl := apphttp.NewLoginRateLimiter(apphttp.LoginRateLimiterConfig{PerMinute: 1, Burst: 2}, rec)
	defer rl.Stop()

	app := fiber.New()
	app.Post("/login", rl.Middleware(), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	var statuses []int
	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/login", nil), -1)
		require.NoError(t, err)
		statuses = append(statuses, resp.StatusCode)
		if resp.StatusCode == http.StatusTooManyRequests {
			assert.Equal(t, "60", resp.Header.Get("Retry-After"))
		}
		resp.Body.Close()
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, statuses)
	assert.Equal(t, []string{metrics.LoginRateLimited}, rec.logins)
	assert.Equal(t, 1, rl.Len())
}
