package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_RecordsRouteAndStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/competitors/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/competitors/42", nil))
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("/competitors/:id", "GET", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("unmatched", "GET", "404")))
}

func TestObservers(t *testing.T) {
	m := New()

	m.ObserveViewModel("dashboard", "ready")
	m.ObserveViewModel("dashboard", "ready")
	m.ObserveViewModel("comparison", "missing_primary_entity")
	m.ObserveAICall("analyze", nil)
	m.ObserveAICall("analyze", errors.New("quota"))
	m.ObserveCache("competitors", true)
	m.ObserveCache("competitors", false)
	m.ObserveCache("competitors", false)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.viewModels.WithLabelValues("dashboard", "ready")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.viewModels.WithLabelValues("comparison", "missing_primary_entity")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.aiCalls.WithLabelValues("analyze", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.aiCalls.WithLabelValues("analyze", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cacheLookups.WithLabelValues("competitors", "hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.cacheLookups.WithLabelValues("competitors", "miss")))
}

func TestHandler_ExposesMetrics(t *testing.T) {
	m := New()
	m.ObserveViewModel("dashboard", "invalid")

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `rivalradar_comparison_view_models_total{status="invalid",view="dashboard"} 1`)
}

func TestNew_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		_ = New()
		_ = New()
	})
}
