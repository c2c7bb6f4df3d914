package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"MMECalc/internal/repo"
)

func newEnv() *Authenv {
	return &Authenv{JWTkey: []byte("test-key"), Repo: repo.NewMemory()}
}

func post(h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h(w, httptest.NewRequest("POST", "/", strings.NewReader(body)))
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == cookieName {
			return c
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func TestRegisterLoginRoundTrip(t *testing.T) {
	env := newEnv()

	w := post(env.RegisterHandler, `{"login":"ada","email":"ada@example.com","password":"secret1"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("register status %d: %s", w.Code, w.Body.String())
	}
	if c := sessionCookie(t, w); !c.HttpOnly || !c.Secure {
		t.Errorf("cookie flags %+v", c)
	}

	if w := post(env.RegisterHandler, `{"login":"ada","email":"x@example.com","password":"secret1"}`); w.Code != http.StatusConflict {
		t.Errorf("duplicate status %d", w.Code)
	}

	w = post(env.AuthHandler, `{"login":"ada","password":"secret1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login status %d", w.Code)
	}
	cookie := sessionCookie(t, w)

	var gotID int
	var gotLogin string
	protected := env.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = UserID(r.Context())
		gotLogin = UserLogin(r.Context())
	}))
	req := httptest.NewRequest("GET", "/api/user/history", nil)
	req.AddCookie(cookie)
	rw := httptest.NewRecorder()
	protected.ServeHTTP(rw, req)
	if rw.Code != http.StatusOK || gotID != 1 || gotLogin != "ada" {
		t.Errorf("middleware: status %d id %d login %q", rw.Code, gotID, gotLogin)
	}

	rw = httptest.NewRecorder()
	protected.ServeHTTP(rw, httptest.NewRequest("GET", "/api/user/history", nil))
	if rw.Code != http.StatusUnauthorized {
		t.Errorf("no cookie status %d", rw.Code)
	}
}

func TestAuthRejects(t *testing.T) {
	env := newEnv()
	post(env.RegisterHandler, `{"login":"ada","email":"ada@example.com","password":"secret1"}`)

	tests := []struct {
		name   string
		h      http.HandlerFunc
		body   string
		status int
	}{
		{"short password", env.RegisterHandler, `{"login":"bob","email":"b@example.com","password":"123"}`, http.StatusBadRequest},
		{"missing email", env.RegisterHandler, `{"login":"bob","password":"secret1"}`, http.StatusBadRequest},
		{"bad json", env.AuthHandler, `{`, http.StatusBadRequest},
		{"wrong password", env.AuthHandler, `{"login":"ada","password":"wrong!"}`, http.StatusUnauthorized},
		{"unknown user", env.AuthHandler, `{"login":"eve","password":"secret1"}`, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := post(tt.h, tt.body); w.Code != tt.status {
				t.Errorf("status %d, want %d", w.Code, tt.status)
			}
		})
	}
}

func TestParseToken(t *testing.T) {
	key := []byte("k")
	now := time.Now()

	tok, err := IssueToken(key, 7, "ada", now)
	if err != nil {
		t.Fatal(err)
	}
	claims, err := ParseToken(key, tok)
	if err != nil || claims.UserID != 7 || claims.Login != "ada" {
		t.Fatalf("claims %+v err %v", claims, err)
	}

	if _, err := ParseToken([]byte("other"), tok); err == nil {
		t.Error("wrong key accepted")
	}
	expired, _ := IssueToken(key, 7, "ada", now.Add(-tokenTTL-time.Hour))
	if _, err := ParseToken(key, expired); err == nil {
		t.Error("expired token accepted")
	}
	anonymous, _ := IssueToken(key, 0, "", now)
	if _, err := ParseToken(key, anonymous); err == nil {
		t.Error("token without user accepted")
	}
}

func TestRateLimiter(t *testing.T) {
	l := NewIPRateLimiter(0, 3)
	h := l.LimitMiddleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	call := func(addr string) int {
		req := httptest.NewRequest("GET", "/api/formulas", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		return w.Code
	}
	for i, port := range []string{"1000", "1001", "1002"} {
		if code := call("10.0.0.1:" + port); code != http.StatusOK {
			t.Errorf("request %d status %d", i, code)
		}
	}
	if code := call("10.0.0.1:1003"); code != http.StatusTooManyRequests {
		t.Errorf("expected 429 across ports, got %d", code)
	}
	if code := call("10.0.0.2:1000"); code != http.StatusOK {
		t.Errorf("other client limited: %d", code)
	}
}

func TestDSN(t *testing.T) {
	tests := map[string]string{
		"":                                    defaultDSN,
		"postgres://u@h/db":                   "postgres://u@h/db?sslmode=require",
		"postgres://u@h/db?connect_timeout=5": "postgres://u@h/db?connect_timeout=5&sslmode=require",
		"host=h dbname=db":                    "host=h dbname=db sslmode=require",
		"host=h sslmode=disable":              "host=h sslmode=disable",
	}
	for in, want := range tests {
		if got := DSN(in); got != want {
			t.Errorf("DSN(%q) = %q, want %q", in, got, want)
		}
	}
}
