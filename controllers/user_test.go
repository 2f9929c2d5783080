package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"scholarhub/models"
)

func TestCreateUserIdempotent(t *testing.T) {
	h, _, r := setupTest(t)

	body := map[string]string{"name": "Alice", "email": "alice@example.com"}
	w := doJSON(r, http.MethodPost, "/users", "", body)
	if w.Code != http.StatusOK {
		t.Fatalf("first create: got %d, want 200", w.Code)
	}
	var first struct {
		InsertedID *uint `json:"inserted_id"`
	}
	decode(t, w, &first)
	if first.InsertedID == nil {
		t.Fatal("first create: expected an inserted id")
	}

	w = doJSON(r, http.MethodPost, "/users", "", body)
	if w.Code != http.StatusOK {
		t.Fatalf("second create: got %d, want 200", w.Code)
	}
	var second struct {
		Message    string `json:"message"`
		InsertedID *uint  `json:"inserted_id"`
	}
	decode(t, w, &second)
	if second.Message != "user already exists" || second.InsertedID != nil {
		t.Fatalf("second create: got %+v", second)
	}

	var count int64
	h.DB.Model(&models.User{}).Where("email = ?", "alice@example.com").Count(&count)
	if count != 1 {
		t.Fatalf("got %d records, want 1", count)
	}
}

func TestCreateUserRejectsBadEmail(t *testing.T) {
	_, _, r := setupTest(t)

	w := doJSON(r, http.MethodPost, "/users", "", map[string]string{"email": "not-an-email"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400", w.Code)
	}
}

func TestGetUserRoleSelfOnly(t *testing.T) {
	h, _, r := setupTest(t)
	seedUser(t, h.DB, "mod@example.com", models.RoleModerator)
	token := tokenFor(t, "mod@example.com")

	// A valid token for a different email is forbidden regardless of role.
	w := doJSON(r, http.MethodGet, "/users/role/other@example.com", token, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("foreign email: got %d, want 403", w.Code)
	}

	w = doJSON(r, http.MethodGet, "/users/role/mod@example.com", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("own email: got %d, want 200", w.Code)
	}
	var flags struct {
		Admin     bool `json:"admin"`
		Moderator bool `json:"moderator"`
		User      bool `json:"user"`
	}
	decode(t, w, &flags)
	if flags.Admin || !flags.Moderator || flags.User {
		t.Fatalf("got flags %+v", flags)
	}
}

func TestGetUserRoleUnknownEmailIsPlainUser(t *testing.T) {
	_, _, r := setupTest(t)
	token := tokenFor(t, "ghost@example.com")

	w := doJSON(r, http.MethodGet, "/users/role/ghost@example.com", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("got %d, want 200", w.Code)
	}
	var flags struct {
		Admin     bool `json:"admin"`
		Moderator bool `json:"moderator"`
		User      bool `json:"user"`
	}
	decode(t, w, &flags)
	if flags.Admin || flags.Moderator || !flags.User {
		t.Fatalf("got flags %+v", flags)
	}
}

func TestGetUsersAdminOnly(t *testing.T) {
	h, _, r := setupTest(t)
	seedUser(t, h.DB, "user@example.com", models.RoleUser)
	seedUser(t, h.DB, "admin@example.com", models.RoleAdmin)

	if w := doJSON(r, http.MethodGet, "/users", "", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("no token: got %d, want 401", w.Code)
	}
	if w := doJSON(r, http.MethodGet, "/users", tokenFor(t, "user@example.com"), nil); w.Code != http.StatusForbidden {
		t.Fatalf("user token: got %d, want 403", w.Code)
	}

	w := doJSON(r, http.MethodGet, "/users", tokenFor(t, "admin@example.com"), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("admin token: got %d, want 200", w.Code)
	}
	var users []models.User
	decode(t, w, &users)
	if len(users) != 2 {
		t.Fatalf("got %d users, want 2", len(users))
	}
}

func TestUpdateUserRole(t *testing.T) {
	h, _, r := setupTest(t)
	seedUser(t, h.DB, "admin@example.com", models.RoleAdmin)
	target := seedUser(t, h.DB, "user@example.com", models.RoleUser)
	token := tokenFor(t, "admin@example.com")
	path := fmt.Sprintf("/users/role/%d", target.ID)

	w := doJSON(r, http.MethodPatch, path, token, map[string]string{"role": "Superuser"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unknown role: got %d, want 400", w.Code)
	}

	w = doJSON(r, http.MethodPatch, path, token, map[string]string{"role": models.RoleModerator})
	if w.Code != http.StatusOK {
		t.Fatalf("valid role: got %d, want 200", w.Code)
	}

	var updated models.User
	h.DB.First(&updated, target.ID)
	if updated.Role != models.RoleModerator {
		t.Fatalf("got role %q, want Moderator", updated.Role)
	}
}

func TestDeleteUser(t *testing.T) {
	h, _, r := setupTest(t)
	seedUser(t, h.DB, "admin@example.com", models.RoleAdmin)
	target := seedUser(t, h.DB, "user@example.com", models.RoleUser)
	token := tokenFor(t, "admin@example.com")

	w := doJSON(r, http.MethodDelete, fmt.Sprintf("/users/%d", target.ID), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("got %d, want 200", w.Code)
	}
	var result struct {
		DeletedCount int64 `json:"deleted_count"`
	}
	decode(t, w, &result)
	if result.DeletedCount != 1 {
		t.Fatalf("got deleted_count %d, want 1", result.DeletedCount)
	}

	var count int64
	h.DB.Model(&models.User{}).Count(&count)
	if count != 1 {
		t.Fatalf("got %d users left, want 1", count)
	}
}
