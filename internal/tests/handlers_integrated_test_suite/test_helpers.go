package handlers_integrated_test_suite

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/rogerio-castellano/bakery-api/internal/auth"
	"github.com/rogerio-castellano/bakery-api/internal/db"
	handler "github.com/rogerio-castellano/bakery-api/internal/http/handlers"
	"github.com/rogerio-castellano/bakery-api/internal/http/router"
	"github.com/rogerio-castellano/bakery-api/internal/repo"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var jwtSecret = []byte("secret")

var (
	token    string
	database *gorm.DB
)

// setup connects to DATABASE_URL and migrates. It reports false when no
// database is configured so the suite can skip.
func setup() (bool, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return false, nil
	}

	var err error
	database, err = db.Connect(dsn, logrus.New())
	if err != nil {
		return false, fmt.Errorf("could not connect to database: %w", err)
	}
	if err := db.Migrate(database); err != nil {
		return false, err
	}

	token, err = auth.GenerateToken(jwtSecret, "tests", time.Hour)
	if err != nil {
		return false, fmt.Errorf("error generating token: %w", err)
	}
	return true, nil
}

func newRouter() http.Handler {
	h := handler.New(handler.Deps{
		Bakeries:   repo.NewGormBakeryRepository(database),
		BakedGoods: repo.NewGormBakedGoodRepository(database),
		Stats:      repo.NewGormStatsRepository(database),
		Ping:       db.Pinger(database),
	})
	return router.NewRouter(h, router.Options{JWTSecret: jwtSecret})
}

func clearAll() {
	database.Exec("TRUNCATE TABLE baked_goods, bakeries RESTART IDENTITY CASCADE")
}

func send(r http.Handler, method, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
