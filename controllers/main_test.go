package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"scholarhub/models"
	"scholarhub/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testSecret = []byte("test-secret")

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeProvider records the last payment-intent request and can be primed
// to fail.
type fakeProvider struct {
	amount   int64
	currency string
	err      error
}

func (f *fakeProvider) CreatePaymentIntent(amount int64, currency string) (string, error) {
	f.amount, f.currency = amount, currency
	if f.err != nil {
		return "", f.err
	}
	return "pi_test_secret", nil
}

// setupTest builds the real router over an in-memory database and a fake
// payment provider, one database per test.
func setupTest(t *testing.T) (*Controller, *fakeProvider, *gin.Engine) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	if err := MigrateModels(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	payments := &fakeProvider{}
	h := New(db, payments, testSecret)
	return h, payments, SetupRouter(h, db)
}

func seedUser(t *testing.T, db *gorm.DB, email, role string) models.User {
	t.Helper()
	user := models.User{Email: email, Role: role}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func tokenFor(t *testing.T, email string) string {
	t.Helper()
	token, err := utils.IssueToken(email, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

// doJSON performs a request against the router; body may be nil.
func doJSON(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}
