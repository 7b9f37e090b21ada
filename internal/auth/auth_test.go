package auth

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type user struct {
	id   int
	hash string
}

type memUsers struct {
	byLogin map[string]user
}

func (m *memUsers) CreateUser(_ context.Context, login, _, password string) (int, error) {
	if _, ok := m.byLogin[login]; ok {
		return 0, errors.New("duplicate login")
	}
	id := len(m.byLogin) + 1
	m.byLogin[login] = user{id, password}
	return id, nil
}

func (m *memUsers) GetByLogin(_ context.Context, login string) (int, string, error) {
	u := m.byLogin[login]
	return u.id, u.hash, nil
}

func newEnv() *Authenv {
	return &Authenv{
		JWTkey: []byte("test-key"),
		Repo:   &memUsers{byLogin: map[string]user{}},
		Log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func call(h http.HandlerFunc, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func session(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == cookieName {
			return c
		}
	}
	t.Fatal("no session cookie")
	return nil
}

func TestRegisterAndLogin(t *testing.T) {
	env := newEnv()

	rec := call(env.RegisterHandler, `{"login":"geo","email":"geo@example.com","password":"pillars"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	c := session(t, rec)
	assert.True(t, c.HttpOnly)

	rec = call(env.RegisterHandler, `{"login":"geo","email":"geo@example.com","password":"pillars"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = call(env.RegisterHandler, `{"login":"short","email":"s@example.com","password":"123"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = call(env.AuthHandler, `{"login":"geo","password":"pillars"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	session(t, rec)

	rec = call(env.AuthHandler, `{"login":"geo","password":"rooms"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = call(env.AuthHandler, `{"login":"nobody","password":"rooms"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware(t *testing.T) {
	env := newEnv()
	var seen int
	protected := env.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = UserID(r.Context())
	}))

	rec := call(env.RegisterHandler, `{"login":"geo","email":"geo@example.com","password":"pillars"}`)
	c := session(t, rec)

	rec = call(protected.ServeHTTP, "", c)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, seen)

	rec = call(protected.ServeHTTP, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	forged := &http.Cookie{Name: cookieName, Value: c.Value + "x"}
	rec = call(protected.ServeHTTP, "", forged)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	other := newEnv()
	other.JWTkey = []byte("another-key")
	rec = call(other.AuthMiddleware(http.NotFoundHandler()).ServeHTTP, "", c)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLimiter(t *testing.T) {
	l := NewIPRateLimiter(0.001, 2)
	h := l.LimitMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestUserID(t *testing.T) {
	_, ok := UserID(context.Background())
	assert.False(t, ok)

	id, ok := UserID(WithUser(context.Background(), 7, "geo"))
	assert.True(t, ok)
	assert.Equal(t, 7, id)
}
