package handler_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/v1/auth/register", gin.H{
		"name":     "สมชาย",
		"email":    "somchai@example.com",
		"password": "secret123",
	})
	requireStatus(t, w, http.StatusCreated)

	var created struct {
		ID    uint   `json:"id"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	decode(t, w, &created)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "user", created.Role)

	w = doJSON(t, r, http.MethodPost, "/v1/auth/login", gin.H{
		"email":    "somchai@example.com",
		"password": "secret123",
	})
	requireStatus(t, w, http.StatusOK)

	var login struct {
		Token string `json:"token"`
		User  struct {
			Role string `json:"role"`
		} `json:"user"`
	}
	decode(t, w, &login)
	require.NotEmpty(t, login.Token)
	assert.Equal(t, "user", login.User.Role)

	// token works on the protected route
	w = doAuthed(t, r, http.MethodGet, "/v1/auth/me", login.Token)
	requireStatus(t, w, http.StatusOK)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r, _ := newTestServer(t)

	body := gin.H{"name": "a", "email": "dup@example.com", "password": "secret123"}
	requireStatus(t, doJSON(t, r, http.MethodPost, "/v1/auth/register", body), http.StatusCreated)
	requireStatus(t, doJSON(t, r, http.MethodPost, "/v1/auth/register", body), http.StatusConflict)
}

func TestRegisterMissingFields(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/v1/auth/register", gin.H{"email": "x@example.com"})
	requireStatus(t, w, http.StatusBadRequest)
}

func TestLoginRejections(t *testing.T) {
	r, _ := newTestServer(t)

	requireStatus(t, doJSON(t, r, http.MethodPost, "/v1/auth/register", gin.H{
		"name": "a", "email": "a@example.com", "password": "secret123",
	}), http.StatusCreated)

	w := doJSON(t, r, http.MethodPost, "/v1/auth/login", gin.H{
		"email": "a@example.com", "password": "wrong",
	})
	requireStatus(t, w, http.StatusUnauthorized)

	w = doJSON(t, r, http.MethodPost, "/v1/auth/login", gin.H{
		"email": "nobody@example.com", "password": "secret123",
	})
	requireStatus(t, w, http.StatusUnauthorized)
}

func TestMeRequiresToken(t *testing.T) {
	r, _ := newTestServer(t)
	requireStatus(t, doAuthed(t, r, http.MethodGet, "/v1/auth/me", ""), http.StatusUnauthorized)
	requireStatus(t, doAuthed(t, r, http.MethodGet, "/v1/auth/me", "not-a-jwt"), http.StatusUnauthorized)
}
