package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"promptbox/models"
	ginctx "promptbox/pkg/context"
	"promptbox/pkg/jwt"
	"promptbox/pkg/response"

	"github.com/gin-gonic/gin"
)

var testSecret = []byte("test-secret")

type fakeUsers struct {
	users map[int64]*models.User
}

func (f *fakeUsers) FindByID(_ context.Context, id int64) (*models.User, error) {
	return f.users[id], nil
}

func newAuthRouter(t *testing.T, optional bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := &fakeUsers{users: map[int64]*models.User{
		1: {ID: 1, Username: "alice"},
	}}

	r := gin.New()
	mw := Auth(testSecret, users)
	if optional {
		mw = OptionalAuth(testSecret, users)
	}
	r.GET("/ping", mw, func(c *gin.Context) {
		uid := ginctx.GetOptionalUserID(c)
		response.Success(c, gin.H{"userId": uid})
	})
	return r
}

func doRequest(t *testing.T, r *gin.Engine, token string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest("GET", "/ping", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return w, body
}

func TestAuthMissingToken(t *testing.T) {
	r := newAuthRouter(t, false)
	w, _ := doRequest(t, r, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthValidToken(t *testing.T) {
	r := newAuthRouter(t, false)
	token, err := jwt.GenerateToken(testSecret, 1, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	w, body := doRequest(t, r, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	data := body["data"].(map[string]any)
	if data["userId"].(float64) != 1 {
		t.Fatalf("expected user id 1, got %v", data["userId"])
	}
}

// 令牌有效但用户已不存在，身份解析必须失败
func TestAuthUnknownUser(t *testing.T) {
	r := newAuthRouter(t, false)
	token, err := jwt.GenerateToken(testSecret, 99, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	w, _ := doRequest(t, r, token)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthExpiredToken(t *testing.T) {
	r := newAuthRouter(t, false)
	token, err := jwt.GenerateToken(testSecret, 1, -time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	w, _ := doRequest(t, r, token)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

// 可选鉴权：无令牌按匿名放行
func TestOptionalAuthAnonymous(t *testing.T) {
	r := newAuthRouter(t, true)
	w, body := doRequest(t, r, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	data := body["data"].(map[string]any)
	if data["userId"].(float64) != 0 {
		t.Fatalf("expected anonymous user id 0, got %v", data["userId"])
	}
}

// 可选鉴权：坏令牌也按匿名放行
func TestOptionalAuthBadToken(t *testing.T) {
	r := newAuthRouter(t, true)
	w, body := doRequest(t, r, "garbage")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	data := body["data"].(map[string]any)
	if data["userId"].(float64) != 0 {
		t.Fatalf("expected anonymous user id 0, got %v", data["userId"])
	}
}
