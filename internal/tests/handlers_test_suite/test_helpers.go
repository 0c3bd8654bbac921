package handlers_test_suite

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rogerio-castellano/bakery-api/internal/auth"
	handler "github.com/rogerio-castellano/bakery-api/internal/http/handlers"
	"github.com/rogerio-castellano/bakery-api/internal/http/router"
	"github.com/rogerio-castellano/bakery-api/internal/models"
	"github.com/rogerio-castellano/bakery-api/internal/repo"
)

var jwtSecret = []byte("secret")

var (
	token         string
	store         *repo.InMemoryStore
	bakeryRepo    *repo.InMemoryBakeryRepository
	bakedGoodRepo *repo.InMemoryBakedGoodRepository
	statsRepo     *repo.InMemoryStatsRepository
)

func init() {
	store = repo.NewInMemoryStore()
	bakeryRepo = repo.NewInMemoryBakeryRepository(store)
	bakedGoodRepo = repo.NewInMemoryBakedGoodRepository(store)
	statsRepo = repo.NewInMemoryStatsRepository(store)

	var err error
	token, err = auth.GenerateToken(jwtSecret, "tests", time.Hour)
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func deps() handler.Deps {
	return handler.Deps{
		Bakeries:   bakeryRepo,
		BakedGoods: bakedGoodRepo,
		Stats:      statsRepo,
	}
}

// newRouter wires the in-memory repositories without any optional middleware.
func newRouter() http.Handler {
	return router.NewRouter(handler.New(deps()), router.Options{})
}

func clearAll() {
	store.Clear()
}

func createBakery(name string) models.Bakery {
	b, err := bakeryRepo.Create(context.Background(), models.Bakery{Name: name})
	if err != nil {
		panic(err)
	}
	return b
}

func addBakedGood(bakeryID int, name string, price float64) models.BakedGood {
	g, err := bakedGoodRepo.Create(context.Background(), models.BakedGood{Name: name, Price: price, BakeryID: bakeryID})
	if err != nil {
		panic(err)
	}
	return g
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postForm(r http.Handler, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/baked_goods", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postJSON(r http.Handler, g handler.BakedGoodRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(g)
	req := httptest.NewRequest(http.MethodPost, "/baked_goods", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func patchBakery(r http.Handler, id string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/bakeries/"+id, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func deleteBakedGood(r http.Handler, id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodDelete, "/baked_goods/"+id, nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func importCSV(r http.Handler, csvContent string) *httptest.ResponseRecorder {
	body, contentType := multipartCSV(csvContent, "baked_goods.csv")
	req := httptest.NewRequest(http.MethodPost, "/baked_goods/import", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func multipartCSV(csvContent string, filename string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, _ := writer.CreateFormFile("file", filename)
	part.Write([]byte(csvContent))

	writer.Close()
	return &buf, writer.FormDataContentType()
}

// mapCache is a cache.Cache that records what the handlers store and drop.
type mapCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	deletes int
}

func newMapCache() *mapCache {
	return &mapCache{entries: map[string][]byte{}}
}

func (c *mapCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok, nil
}

func (c *mapCache) Set(_ context.Context, key string, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	return nil
}

func (c *mapCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.entries, k)
	}
	c.deletes++
	return nil
}

func (c *mapCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// pausingBakeries holds the first GetAll after it has loaded, until release
// is closed.
type pausingBakeries struct {
	*repo.InMemoryBakeryRepository
	once    sync.Once
	loaded  chan struct{}
	release chan struct{}
}

func newPausingBakeries() *pausingBakeries {
	return &pausingBakeries{
		InMemoryBakeryRepository: bakeryRepo,
		loaded:                   make(chan struct{}),
		release:                  make(chan struct{}),
	}
}

func (p *pausingBakeries) GetAll(ctx context.Context) ([]models.Bakery, error) {
	bakeries, err := p.InMemoryBakeryRepository.GetAll(ctx)
	p.once.Do(func() {
		close(p.loaded)
		<-p.release
	})
	return bakeries, err
}

// failingBakedGoods fails every delete.
type failingBakedGoods struct {
	*repo.InMemoryBakedGoodRepository
}

func (failingBakedGoods) Delete(context.Context, int) error {
	return errors.New("connection reset")
}
