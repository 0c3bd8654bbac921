package handlers_test_suite

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/rogerio-castellano/bakery-api/internal/auth"
	"github.com/rogerio-castellano/bakery-api/internal/cache"
	handler "github.com/rogerio-castellano/bakery-api/internal/http/handlers"
	rl "github.com/rogerio-castellano/bakery-api/internal/http/rate_limiter"
	"github.com/rogerio-castellano/bakery-api/internal/http/router"
	"github.com/rogerio-castellano/bakery-api/internal/metrics"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexHandler(t *testing.T) {
	w := get(newRouter(), "/")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Equal(t, "<h1>Bakery API</h1>", w.Body.String())
}

func TestHealthHandler(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		d := deps()
		d.Ping = func(context.Context) error { return nil }
		r := router.NewRouter(handler.New(d), router.Options{})

		w := get(r, "/healthz")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	})

	t.Run("Database unreachable", func(t *testing.T) {
		d := deps()
		d.Ping = func(context.Context) error { return errors.New("connection refused") }
		r := router.NewRouter(handler.New(d), router.Options{})

		w := get(r, "/healthz")
		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.JSONEq(t, `{"status":"unavailable"}`, w.Body.String())
	})
}

func TestListCache(t *testing.T) {
	t.Cleanup(clearAll)

	c := newMapCache()
	d := deps()
	d.Cache = c
	r := router.NewRouter(handler.New(d), router.Options{})

	createBakery("Delightful donuts")

	t.Run("Miss stores the response", func(t *testing.T) {
		w := get(r, "/bakeries")
		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, c.has(cache.KeyBakeries))
	})

	t.Run("Hit is served from the cache", func(t *testing.T) {
		c.Set(t.Context(), cache.KeyBakeries, []byte(`[{"cached":true}]`))

		w := get(r, "/bakeries")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		assert.JSONEq(t, `[{"cached":true}]`, w.Body.String())
	})

	t.Run("Writes invalidate", func(t *testing.T) {
		get(r, "/baked_goods/by_price")
		require.True(t, c.has(cache.KeyBakedGoodsPrice))

		w := postForm(r, url.Values{"name": {"Croissant"}, "price": {"3.5"}, "bakery_id": {"1"}})
		require.Equal(t, http.StatusCreated, w.Code)

		assert.False(t, c.has(cache.KeyBakeries))
		assert.False(t, c.has(cache.KeyBakedGoodsPrice))

		w = get(r, "/bakeries")
		assert.Contains(t, w.Body.String(), "Croissant")
	})

	t.Run("Failed writes do not invalidate", func(t *testing.T) {
		before := c.deletes

		w := postForm(r, url.Values{"name": {"Bun"}})
		require.Equal(t, http.StatusBadRequest, w.Code)
		w = patchBakery(r, "9999", url.Values{"name": {"Ghost"}})
		require.Equal(t, http.StatusNotFound, w.Code)
		w = patchBakery(r, "1", url.Values{})
		require.Equal(t, http.StatusOK, w.Code)

		assert.Equal(t, before, c.deletes)
	})
}

func TestListCache_WriteDuringLoad(t *testing.T) {
	t.Cleanup(clearAll)

	c := newMapCache()
	bakeries := newPausingBakeries()
	d := deps()
	d.Bakeries = bakeries
	d.Cache = c
	r := router.NewRouter(handler.New(d), router.Options{})

	createBakery("Old Name")

	done := make(chan string)
	go func() {
		done <- get(r, "/bakeries").Body.String()
	}()

	<-bakeries.loaded
	w := patchBakery(r, "1", url.Values{"name": {"New Name"}})
	require.Equal(t, http.StatusOK, w.Code)
	close(bakeries.release)

	assert.Contains(t, <-done, "Old Name", "the overlapping read still answers with what it loaded")
	assert.False(t, c.has(cache.KeyBakeries))

	w = get(r, "/bakeries")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "New Name")
	assert.NotContains(t, w.Body.String(), "Old Name")
}

func TestTokenGuard(t *testing.T) {
	t.Cleanup(clearAll)
	r := router.NewRouter(handler.New(deps()), router.Options{JWTSecret: jwtSecret})
	createBakery("Delightful donuts")

	t.Run("Reads stay open", func(t *testing.T) {
		w := get(r, "/bakeries")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Write without token", func(t *testing.T) {
		req := jsonRequest(http.MethodPost, "/baked_goods", `{"name":"Croissant","price":3.5,"bakery_id":1}`)
		req.Header.Del("Authorization")
		w := serve(r, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Write with token from another secret", func(t *testing.T) {
		other, err := auth.GenerateToken([]byte("other"), "tests", time.Hour)
		require.NoError(t, err)

		req := jsonRequest(http.MethodDelete, "/baked_goods/1", "")
		req.Header.Set("Authorization", "Bearer "+other)
		w := serve(r, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Write with valid token", func(t *testing.T) {
		w := postForm(r, url.Values{"name": {"Croissant"}, "price": {"3.5"}, "bakery_id": {"1"}})
		assert.Equal(t, http.StatusCreated, w.Code)
	})
}

func TestTokenGuard_SubjectIsLogged(t *testing.T) {
	t.Cleanup(clearAll)

	logger, hook := logtest.NewNullLogger()
	d := deps()
	d.BakedGoods = failingBakedGoods{bakedGoodRepo}
	d.Logger = logger
	r := router.NewRouter(handler.New(d), router.Options{JWTSecret: jwtSecret})

	w := deleteBakedGood(r, "1")
	require.Equal(t, http.StatusInternalServerError, w.Code)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "tests", entry.Data["subject"])
	assert.NotEmpty(t, entry.Data["request_id"])
}

func TestRateLimit(t *testing.T) {
	limiter := rl.New(1, 2)
	r := router.NewRouter(handler.New(deps()), router.Options{Limiter: limiter})

	assert.Equal(t, http.StatusOK, get(r, "/bakeries").Code)
	assert.Equal(t, http.StatusOK, get(r, "/bakeries").Code)

	w := get(r, "/bakeries")
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	// Service endpoints are not limited.
	assert.Equal(t, http.StatusOK, get(r, "/healthz").Code)
}

func TestRateLimit_ForwardedHeaders(t *testing.T) {
	forwarded := func(r http.Handler, i int) int {
		req := httptest.NewRequest(http.MethodGet, "/bakeries", nil)
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("10.0.0.%d", i))
		req.Header.Set("X-Real-IP", fmt.Sprintf("10.0.1.%d", i))
		return serve(r, req).Code
	}

	t.Run("Ignored by default", func(t *testing.T) {
		limiter := rl.New(1, 2)
		r := router.NewRouter(handler.New(deps()), router.Options{Limiter: limiter})

		rejected := 0
		for i := range 50 {
			if forwarded(r, i) == http.StatusTooManyRequests {
				rejected++
			}
		}

		assert.GreaterOrEqual(t, rejected, 47)
		assert.Equal(t, 1, limiter.VisitorCount())
	})

	t.Run("Honoured behind a trusted proxy", func(t *testing.T) {
		limiter := rl.New(1, 1)
		r := router.NewRouter(handler.New(deps()), router.Options{Limiter: limiter, TrustProxy: true})

		for i := range 3 {
			assert.Equal(t, http.StatusOK, forwarded(r, i))
		}
		assert.Equal(t, 3, limiter.VisitorCount())
	})
}

func TestMetricsEndpoint(t *testing.T) {
	t.Cleanup(clearAll)

	m := metrics.New()
	d := deps()
	d.Metrics = m
	r := router.NewRouter(handler.New(d), router.Options{Metrics: m})

	createBakery("Delightful donuts")
	require.Equal(t, http.StatusCreated, postForm(r, url.Values{"name": {"Croissant"}, "price": {"3.5"}, "bakery_id": {"1"}}).Code)
	get(r, "/bakeries/1")

	w := get(r, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "bakery_baked_goods_created_total 1")
	assert.Contains(t, body, `route="/bakeries/{id}"`)
}

func TestSwaggerDoc(t *testing.T) {
	w := get(newRouter(), "/swagger/doc.json")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title": "Bakery API"`)
	assert.Contains(t, w.Body.String(), "/baked_goods/most_expensive")
}
