package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"crm-backend/internal/config"
	"crm-backend/internal/database"
	"crm-backend/internal/models"
	"crm-backend/internal/password"
	"crm-backend/internal/server"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var dbSeq int64

// setupServer поднимает in-memory БД (с включёнными внешними ключами),
// подкладывает её в database.DB и собирает боевой роутер.
func setupServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:handlertest%d?mode=memory&cache=shared&_fk=1", atomic.AddInt64(&dbSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	database.DB = db

	seedUser(t, "admin", "123456", "Administrator", models.RoleAdmin)

	return server.NewRouter(&config.Config{
		ServerPort:    "0",
		SessionSecret: "test-secret",
	})
}

func seedUser(t *testing.T, username, plain, nickname, role string) *models.User {
	t.Helper()

	hash, err := password.Hash(plain)
	if err != nil {
		t.Fatalf("failed to hash seed password: %v", err)
	}
	u := models.User{Username: username, Password: hash, Nickname: nickname, Role: role}
	if err := database.DB.Create(&u).Error; err != nil {
		t.Fatalf("failed to seed user %s: %v", username, err)
	}
	return &u
}

// testClient гоняет запросы через роутер и таскает сессионную куку
// между ними, как это делал бы браузер.
type testClient struct {
	t       *testing.T
	r       *gin.Engine
	cookies map[string]*http.Cookie
}

func newClient(t *testing.T, r *gin.Engine) *testClient {
	return &testClient{t: t, r: r, cookies: map[string]*http.Cookie{}}
}

func (tc *testClient) do(method, path string, body interface{}) (int, map[string]interface{}) {
	tc.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			tc.t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range tc.cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	tc.r.ServeHTTP(w, req)

	for _, ck := range w.Result().Cookies() {
		tc.cookies[ck.Name] = ck
	}

	var envelope map[string]interface{}
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
			tc.t.Fatalf("response is not a JSON envelope: %v (%s)", err, w.Body.String())
		}
	}

	return w.Code, envelope
}

func (tc *testClient) login(username, plain string) map[string]interface{} {
	tc.t.Helper()

	status, body := tc.do("POST", "/api/login", map[string]string{
		"username": username,
		"password": plain,
	})
	if status != http.StatusOK {
		tc.t.Fatalf("login as %s failed: %d %v", username, status, body)
	}
	return body
}

// envelopeData достаёт data из конверта.
func envelopeData(t *testing.T, body map[string]interface{}) map[string]interface{} {
	t.Helper()

	data, ok := body["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("envelope has no data object: %v", body)
	}
	return data
}

func envelopeItems(t *testing.T, body map[string]interface{}) []interface{} {
	t.Helper()

	items, ok := body["data"].([]interface{})
	if !ok {
		t.Fatalf("envelope has no data list: %v", body)
	}
	return items
}
