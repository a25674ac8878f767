package transfer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imgdock/service/internal/config"
)

// In-memory fakes backing full request round-trips.

type fakeStorage struct {
	objects map[string]bool
}

func (f *fakeStorage) PresignedPut(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://storage.test/" + key + "?sig=abc", nil
}

func (f *fakeStorage) Exists(_ context.Context, key string) (bool, error) {
	return f.objects[key], nil
}

func (f *fakeStorage) PublicURL(key string) string {
	return "https://cdn.test/" + key
}

type fakePendingStore struct {
	m map[string]PendingTransfer
}

func (f *fakePendingStore) Put(_ context.Context, id string, pt *PendingTransfer, _ time.Duration) error {
	f.m[id] = *pt
	return nil
}

func (f *fakePendingStore) Get(_ context.Context, id string) (*PendingTransfer, error) {
	pt, ok := f.m[id]
	if !ok {
		return nil, ErrPendingNotFound
	}
	return &pt, nil
}

func (f *fakePendingStore) Delete(_ context.Context, id string) error {
	delete(f.m, id)
	return nil
}

type fakeImageRepo struct {
	m map[string]Image
}

func (f *fakeImageRepo) CreateIfAbsent(_ context.Context, img *Image) error {
	if _, ok := f.m[img.ID]; ok {
		return ErrImageExists
	}
	f.m[img.ID] = *img
	return nil
}

func (f *fakeImageRepo) Get(_ context.Context, id string) (*Image, error) {
	img, ok := f.m[id]
	if !ok {
		return nil, ErrImageNotFound
	}
	return &img, nil
}

type fakeURLCache struct {
	m map[string]string
}

func (f *fakeURLCache) Put(_ context.Context, id, url string, _ time.Duration) error {
	f.m[id] = url
	return nil
}

func (f *fakeURLCache) Get(_ context.Context, id string) (string, error) {
	url, ok := f.m[id]
	if !ok {
		return "", ErrCacheMiss
	}
	return url, nil
}

type testEnv struct {
	router  *chi.Mux
	storage *fakeStorage
	pending *fakePendingStore
	images  *fakeImageRepo
	urls    *fakeURLCache
}

func newTestEnv() *testEnv {
	env := &testEnv{
		storage: &fakeStorage{objects: map[string]bool{}},
		pending: &fakePendingStore{m: map[string]PendingTransfer{}},
		images:  &fakeImageRepo{m: map[string]Image{}},
		urls:    &fakeURLCache{m: map[string]string{}},
	}

	cfg := &config.Config{MaxSizeMB: 99, MaxSizeBytes: 99 * 1024 * 1024}
	h := NewHandler(NewService(env.storage, env.pending, env.images, env.urls, cfg))

	r := chi.NewRouter()
	r.Post("/transfer", h.CreateTransfer)
	r.Post("/transfer/{id}/done", h.CompleteTransfer)
	r.Get("/i/{id}", h.GetImage)
	env.router = r
	return env
}

func (e *testEnv) do(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	decoded := map[string]any{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	return rec, decoded
}

func TestTransferEndToEnd(t *testing.T) {
	env := newTestEnv()

	// Begin.
	rec, body := env.do(t, http.MethodPost, "/transfer", `{"name":"a.jpg","size":1000,"type":"image/jpeg"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), body["ok"])

	id := body["id"].(string)
	assert.Len(t, id, 6)
	wantKey := time.Now().UTC().Format("20060102") + "/a.jpg"
	assert.Equal(t, wantKey, body["key"])
	assert.Equal(t, "https://storage.test/"+wantKey+"?sig=abc", body["uploadUrl"])

	// Confirm before the object arrives: rejected, pending survives.
	rec, body = env.do(t, http.MethodPost, "/transfer/"+id+"/done", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, float64(0), body["ok"])
	assert.Equal(t, "Bad Request: file not uploaded to storage", body["e"])
	_, stillPending := env.pending.m[id]
	assert.True(t, stillPending)

	// Client performs the direct upload.
	env.storage.objects[wantKey] = true

	// Confirm succeeds and retires the pending record.
	rec, body = env.do(t, http.MethodPost, "/transfer/"+id+"/done", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), body["ok"])
	assert.Equal(t, id, body["id"])
	_, stillPending = env.pending.m[id]
	assert.False(t, stillPending)

	img := env.images.m[id]
	assert.Equal(t, wantKey, img.Key)

	// Drop the write-through entry to exercise the durable-store read path.
	delete(env.urls.m, id)

	// First resolve: served from the images table, no cache flag.
	rec, body = env.do(t, http.MethodGet, "/i/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), body["ok"])
	assert.Equal(t, "https://cdn.test/"+wantKey, body["url"])
	assert.NotContains(t, body, "c")

	// Second resolve: cache hit, same URL, flagged.
	rec, body = env.do(t, http.MethodGet, "/i/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://cdn.test/"+wantKey, body["url"])
	assert.Equal(t, float64(1), body["c"])
}

func TestConfirmWritesThroughURLCache(t *testing.T) {
	env := newTestEnv()

	_, body := env.do(t, http.MethodPost, "/transfer", `{"name":"b.png","size":2048,"type":"image/png"}`)
	id := body["id"].(string)
	env.storage.objects[body["key"].(string)] = true

	rec, _ := env.do(t, http.MethodPost, "/transfer/"+id+"/done", "")
	require.Equal(t, http.StatusOK, rec.Code)

	// Confirmation pre-warmed the cache, so the first resolve is already a hit.
	rec, body = env.do(t, http.MethodGet, "/i/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), body["c"])
}

func TestCreateTransferValidation(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantErr    string
	}{
		{
			name:       "malformed json",
			body:       `{`,
			wantStatus: http.StatusBadRequest,
			wantErr:    "Bad Request: invalid request body",
		},
		{
			name:       "empty name",
			body:       `{"name":"","size":1000,"type":"image/jpeg"}`,
			wantStatus: http.StatusBadRequest,
			wantErr:    "Bad Request: name cannot be empty",
		},
		{
			name:       "non-image type",
			body:       `{"name":"a.txt","size":1000,"type":"text/plain"}`,
			wantStatus: http.StatusBadRequest,
			wantErr:    "Bad Request: unsupported file type, only image/* is accepted",
		},
		{
			name:       "size over ceiling",
			body:       `{"name":"a.jpg","size":103809025,"type":"image/jpeg"}`,
			wantStatus: http.StatusRequestEntityTooLarge,
			wantErr:    "Payload Too Large: max 99MB",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			rec, body := env.do(t, http.MethodPost, "/transfer", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, float64(0), body["ok"])
			assert.Equal(t, tt.wantErr, body["e"])
		})
	}
}

func TestCompleteTransferUnknownID(t *testing.T) {
	env := newTestEnv()

	rec, body := env.do(t, http.MethodPost, "/transfer/zzzzzz/done", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, float64(0), body["ok"])
	assert.Equal(t, "Not Found: transfer expired or not found", body["e"])
}

func TestGetImageUnknownID(t *testing.T) {
	env := newTestEnv()

	rec, body := env.do(t, http.MethodGet, "/i/zzzzzz", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, float64(0), body["ok"])
	assert.Equal(t, "Not Found: image not found", body["e"])
}
