package handlers

import (
	"context"
	"net/http"
	"sync"

	"github.com/rogerio-castellano/bakery-api/internal/cache"
	"github.com/rogerio-castellano/bakery-api/internal/http/middleware"
	"github.com/rogerio-castellano/bakery-api/internal/metrics"
	"github.com/rogerio-castellano/bakery-api/internal/repo"
	"github.com/sirupsen/logrus"
)

// Deps are the collaborators a Handler needs. Bakeries, BakedGoods and Stats
// are required; the rest fall back to no-op defaults.
type Deps struct {
	Bakeries   repo.BakeryRepository
	BakedGoods repo.BakedGoodRepository
	Stats      repo.StatsRepository
	Cache      cache.Cache
	Metrics    *metrics.Metrics
	Logger     logrus.FieldLogger
	Ping       func(context.Context) error
}

type Handler struct {
	bakeryRepo    repo.BakeryRepository
	bakedGoodRepo repo.BakedGoodRepository
	statsRepo     repo.StatsRepository
	cache         cache.Cache
	metrics       *metrics.Metrics
	logger        logrus.FieldLogger
	ping          func(context.Context) error

	// cacheMu orders cache stores against invalidations; cacheGen counts
	// invalidations so a load that overlapped a write is not stored.
	cacheMu  sync.Mutex
	cacheGen uint64
}

func New(d Deps) *Handler {
	h := &Handler{
		bakeryRepo:    d.Bakeries,
		bakedGoodRepo: d.BakedGoods,
		statsRepo:     d.Stats,
		cache:         d.Cache,
		metrics:       d.Metrics,
		logger:        d.Logger,
		ping:          d.Ping,
	}
	if h.cache == nil {
		h.cache = cache.Nop{}
	}
	if h.metrics == nil {
		h.metrics = metrics.New()
	}
	if h.logger == nil {
		h.logger = logrus.StandardLogger()
	}
	return h
}

// requestLogger tags entries with the request id and, on guarded routes, the
// token subject.
func (h *Handler) requestLogger(r *http.Request) logrus.FieldLogger {
	logger := h.logger.WithField("request_id", middleware.GetRequestID(r.Context()))
	if subject := middleware.GetSubject(r.Context()); subject != "" {
		logger = logger.WithField("subject", subject)
	}
	return logger
}

// serverError logs err and answers 500 with msg.
func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.requestLogger(r).WithError(err).Error(msg)
	http.Error(w, msg, http.StatusInternalServerError)
}

// invalidate drops cached list responses after a write.
func (h *Handler) invalidate(r *http.Request) {
	h.cacheMu.Lock()
	defer h.cacheMu.Unlock()

	h.cacheGen++
	if err := h.cache.Delete(r.Context(), cache.AllKeys...); err != nil {
		h.requestLogger(r).WithError(err).Warn("cache invalidation failed")
	}
}

// serveCached answers from the cache when it can; otherwise it loads, encodes,
// stores, and writes the response. A body loaded while a write invalidated the
// cache is served but not stored.
func (h *Handler) serveCached(w http.ResponseWriter, r *http.Request, key string, failMsg string, load func(context.Context) (any, error)) {
	ctx := r.Context()

	body, ok, err := h.cache.Get(ctx, key)
	switch {
	case err != nil:
		h.metrics.CacheLookup("error")
		h.requestLogger(r).WithError(err).Warn("cache lookup failed")
	case ok:
		h.metrics.CacheLookup("hit")
		writeRawJSON(w, http.StatusOK, body)
		return
	default:
		h.metrics.CacheLookup("miss")
	}

	gen := h.generation()
	data, err := load(ctx)
	if err != nil {
		h.serverError(w, r, failMsg, err)
		return
	}

	body, err = marshalJSON(data)
	if err != nil {
		h.serverError(w, r, "failed to encode response", err)
		return
	}

	h.store(r, gen, key, body)
	writeRawJSON(w, http.StatusOK, body)
}

func (h *Handler) generation() uint64 {
	h.cacheMu.Lock()
	defer h.cacheMu.Unlock()
	return h.cacheGen
}

// store caches body unless an invalidation happened since gen was read.
func (h *Handler) store(r *http.Request, gen uint64, key string, body []byte) {
	h.cacheMu.Lock()
	defer h.cacheMu.Unlock()

	if h.cacheGen != gen {
		return
	}
	if err := h.cache.Set(r.Context(), key, body); err != nil {
		h.requestLogger(r).WithError(err).Warn("cache store failed")
	}
}
