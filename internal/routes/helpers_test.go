package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/servibook/booking-api/internal/config"
	dbpkg "github.com/servibook/booking-api/internal/db"
	"github.com/servibook/booking-api/internal/domain/role"
	"github.com/servibook/booking-api/internal/models"
	"github.com/servibook/booking-api/internal/notify"
	"github.com/servibook/booking-api/internal/storage"
)

const testPassword = "secret123"

// fakeCache is an in-memory cache that counts hits so tests can tell a
// cached response from a fresh query.
type fakeCache struct {
	mu    sync.Mutex
	store map[string]string
	Hits  int
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: map[string]string{}}
}

func (f *fakeCache) Get(_ context.Context, key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.store[key]
	if ok {
		f.Hits++
	}
	return v, ok
}

func (f *fakeCache) Set(_ context.Context, key, value string, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.store[key] = value
}

func (f *fakeCache) Delete(_ context.Context, keys ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, k := range keys {
		delete(f.store, k)
	}
}

func (f *fakeCache) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.store)
}

type testAPI struct {
	t        *testing.T
	router   *gin.Engine
	db       *gorm.DB
	cfg      *config.Config
	notifier *notify.MockNotifier
	cache    *fakeCache
	images   *storage.MockImageStore

	// Stubbed email domain check; flip to false to simulate a domain that
	// does not resolve.
	emailOK bool
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(db))

	api := &testAPI{
		t:        t,
		db:       db,
		cfg:      &config.Config{JWTSecret: "test-secret", FrontendURL: "http://localhost:3000"},
		notifier: notify.NewMockNotifier(),
		cache:    newFakeCache(),
		images:   storage.NewMockImageStore(),
		emailOK:  true,
	}

	api.router = gin.New()
	Register(api.router, Deps{
		DB:         db,
		Cfg:        api.cfg,
		Notifier:   api.notifier,
		Cache:      api.cache,
		Images:     api.images,
		EmailCheck: func(string) bool { return api.emailOK },
	})
	return api
}

func (a *testAPI) createUser(name, email string, r role.Role) *models.User {
	a.t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(a.t, err)

	u := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        "555-0101",
		Role:         string(r),
	}
	require.NoError(a.t, a.db.Create(u).Error)
	return u
}

func (a *testAPI) tokenFor(u *models.User) string {
	a.t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  u.ID,
		"role": u.Role,
		"exp":  time.Now().Add(time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	})
	signed, err := token.SignedString([]byte(a.cfg.JWTSecret))
	require.NoError(a.t, err)
	return signed
}

func (a *testAPI) createService(name, category string, price float64) *models.Service {
	a.t.Helper()

	svc := &models.Service{
		Name:        name,
		Description: name + " description",
		Category:    category,
		Price:       price,
		Duration:    30,
		Status:      models.ServiceStatusActive,
	}
	require.NoError(a.t, a.db.Create(svc).Error)
	return svc
}

func (a *testAPI) request(method, path, token string, body any) *httptest.ResponseRecorder {
	a.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testAPI) multipart(path, token, field, filename string, content []byte) *httptest.ResponseRecorder {
	a.t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	require.NoError(a.t, err)
	_, err = part.Write(content)
	require.NoError(a.t, err)
	require.NoError(a.t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
