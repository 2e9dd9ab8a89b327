package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/devfolio/internal/db"
	"golang.org/x/crypto/bcrypt"
)

func seedAdminUser(t *testing.T, username, password string) {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if err := db.DB.Create(&db.User{Username: username, Password: string(hashed)}).Error; err != nil {
		t.Fatalf("failed to seed admin user: %v", err)
	}
}

func loginAdmin(t *testing.T, h http.Handler, username, password string) []*http.Cookie {
	t.Helper()
	body := `{"username":"` + username + `","password":"` + password + `"}`
	w := doJSON(t, h, http.MethodPost, "/admin/login", body)
	if w.Code != http.StatusOK {
		t.Fatalf("login failed with status %d: %s", w.Code, w.Body.String())
	}
	return w.Result().Cookies()
}

func doAuthed(t *testing.T, h http.Handler, cookies []*http.Cookie, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestAdminLoginRejectsBadCredentials(t *testing.T) {
	h, cleanup := setupPublicTestAPI(t)
	defer cleanup()

	seedAdminUser(t, "admin", "correct-password")

	w := doJSON(t, h, http.MethodPost, "/admin/login", `{"username":"admin","password":"wrong"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", w.Code)
	}

	w = doJSON(t, h, http.MethodPost, "/admin/login", `{"username":"ghost","password":"whatever"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown user, got %d", w.Code)
	}
}

func TestAdminMessagesRequireAuth(t *testing.T) {
	h, cleanup := setupPublicTestAPI(t)
	defer cleanup()

	w := doJSON(t, h, http.MethodGet, "/admin/api/messages", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", w.Code)
	}
}

func TestAdminInboxAndBulkRead(t *testing.T) {
	h, cleanup := setupPublicTestAPI(t)
	defer cleanup()

	seedAdminUser(t, "admin", "admin-pass")

	// 公开接口提交两条留言
	for _, subject := range []string{"First", "Second"} {
		payload := `{"name":"Sender","email":"sender@example.com","subject":"` + subject + `","message":"Body"}`
		w := doJSON(t, h, http.MethodPost, "/api/contact", payload)
		if w.Code != http.StatusCreated {
			t.Fatalf("contact submission failed: %d", w.Code)
		}
	}

	cookies := loginAdmin(t, h, "admin", "admin-pass")

	w := doAuthed(t, h, cookies, http.MethodGet, "/admin/api/messages", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for inbox, got %d", w.Code)
	}

	var inbox struct {
		Messages []map[string]interface{} `json:"messages"`
		Unread   int64                    `json:"unread"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &inbox); err != nil {
		t.Fatalf("failed to decode inbox: %v", err)
	}
	if len(inbox.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(inbox.Messages))
	}
	if inbox.Unread != 2 {
		t.Fatalf("expected 2 unread, got %d", inbox.Unread)
	}

	w = doAuthed(t, h, cookies, http.MethodPost, "/admin/api/messages/read", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for bulk read, got %d", w.Code)
	}

	var result struct {
		Updated int64 `json:"updated"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode result: %v", err)
	}
	if result.Updated != 2 {
		t.Fatalf("expected 2 updated messages, got %d", result.Updated)
	}

	var unread int64
	db.DB.Model(&db.ContactMessage{}).Where("is_read = ?", false).Count(&unread)
	if unread != 0 {
		t.Fatalf("expected no unread messages after bulk read, got %d", unread)
	}
}
