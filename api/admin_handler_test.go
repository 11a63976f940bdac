package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aargomedo/astracore-backend/editor"
	"github.com/aargomedo/astracore-backend/kvstore"
	"github.com/aargomedo/astracore-backend/models"
	"github.com/aargomedo/astracore-backend/session"
)

type stubPostStore struct {
	posts   map[uuid.UUID]*models.Post
	deleted []uuid.UUID
}

func newStubPostStore() *stubPostStore {
	return &stubPostStore{posts: make(map[uuid.UUID]*models.Post)}
}

func (s *stubPostStore) FindAll() ([]*models.Post, error) { return nil, nil }

func (s *stubPostStore) FindByID(id uuid.UUID) (*models.Post, error) {
	return s.posts[id], nil
}

func (s *stubPostStore) Add(post *models.Post) error {
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	post.CreatedAt = time.Now()
	stored := *post
	s.posts[post.ID] = &stored
	return nil
}

func (s *stubPostStore) Update(post *models.Post) error {
	stored := *post
	s.posts[post.ID] = &stored
	return nil
}

func (s *stubPostStore) Delete(id uuid.UUID) error {
	s.deleted = append(s.deleted, id)
	delete(s.posts, id)
	return nil
}

type stubCommentStore struct{}

func (stubCommentStore) FindByPost(postID uuid.UUID, ascending bool) ([]*models.Comment, error) {
	return nil, nil
}
func (stubCommentStore) Delete(id uuid.UUID) error { return nil }

type adminFixture struct {
	router *chi.Mux
	gate   *session.Gate
	posts  *stubPostStore
}

func newAdminFixture(maxAttempts int) adminFixture {
	gate := session.NewGate(kvstore.NewMemStore(), "operator", "hunter2", zerolog.Nop())
	posts := newStubPostStore()
	ed := editor.New(posts, stubCommentStore{}, gate, "operator", zerolog.Nop())
	h := newAdminHandler(ed, gate, session.NewLoginLimiter(maxAttempts, time.Minute))

	r := chi.NewRouter()
	r.Post("/admin/login", h.login())
	r.Post("/admin/logout", h.logout())
	r.Post("/admin/post", h.createPost())
	r.Delete("/admin/post/{postID}", h.deletePost())

	return adminFixture{router: r, gate: gate, posts: posts}
}

func (f adminFixture) do(method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.RemoteAddr = "10.0.0.1:52000"
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestLoginOpensGate(t *testing.T) {
	t.Parallel()

	f := newAdminFixture(5)

	rec := f.do(http.MethodPost, "/admin/login", `{"username":"operator","password":"hunter2"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, f.gate.Active())

	rec = f.do(http.MethodPost, "/admin/logout", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, f.gate.Active())
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	t.Parallel()

	f := newAdminFixture(5)

	rec := f.do(http.MethodPost, "/admin/login", `{"username":"operator","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, f.gate.Active())
}

func TestLoginRateLimited(t *testing.T) {
	t.Parallel()

	f := newAdminFixture(2)

	for i := 0; i < 2; i++ {
		rec := f.do(http.MethodPost, "/admin/login", `{"username":"operator","password":"wrong"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}

	// Correct credentials no longer help once the limit is hit.
	rec := f.do(http.MethodPost, "/admin/login", `{"username":"operator","password":"hunter2"}`)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.False(t, f.gate.Active())
}

func TestCreatePostStampsOperator(t *testing.T) {
	t.Parallel()

	f := newAdminFixture(5)
	require.Equal(t, http.StatusOK, f.do(http.MethodPost, "/admin/login", `{"username":"operator","password":"hunter2"}`).Code)

	rec := f.do(http.MethodPost, "/admin/post", `{"title":"Hola","content":"cuerpo"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var post models.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &post))
	assert.Equal(t, "operator", post.Author)
	assert.NotEqual(t, uuid.Nil, post.ID)
}

func TestCreatePostRejectsMissingTitle(t *testing.T) {
	t.Parallel()

	f := newAdminFixture(5)
	require.Equal(t, http.StatusOK, f.do(http.MethodPost, "/admin/login", `{"username":"operator","password":"hunter2"}`).Code)

	rec := f.do(http.MethodPost, "/admin/post", `{"content":"cuerpo"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeletePostRequiresConfirmQuery(t *testing.T) {
	t.Parallel()

	f := newAdminFixture(5)
	require.Equal(t, http.StatusOK, f.do(http.MethodPost, "/admin/login", `{"username":"operator","password":"hunter2"}`).Code)

	rec := f.do(http.MethodPost, "/admin/post", `{"title":"Hola","content":"cuerpo"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var post models.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &post))

	rec = f.do(http.MethodDelete, "/admin/post/"+post.ID.String(), "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, f.posts.deleted)

	rec = f.do(http.MethodDelete, "/admin/post/"+post.ID.String()+"?confirm=true", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []uuid.UUID{post.ID}, f.posts.deleted)
}
