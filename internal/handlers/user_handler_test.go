package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUsers_LengthMatchesRegistrations(t *testing.T) {
	env := newTestEnv()

	for i := 0; i < 3; i++ {
		w := env.do(t, http.MethodPost, "/api/register", gin.H{
			"phone":    fmt.Sprintf("980000000%d", i),
			"password": "secret123",
		})
		require.Equal(t, http.StatusOK, w.Code)
	}
	// A duplicate registration must not add a fourth user.
	dup := env.do(t, http.MethodPost, "/api/register", gin.H{
		"phone":    "9800000000",
		"password": "secret123",
	})
	require.Equal(t, http.StatusBadRequest, dup.Code)

	w := env.do(t, http.MethodGet, "/api/users", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var users []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	assert.Len(t, users, 3)
	for _, user := range users {
		assert.NotContains(t, user, "password")
	}
}

func TestGetUser(t *testing.T) {
	env := newTestEnv()
	register := env.do(t, http.MethodPost, "/api/register", gin.H{
		"phone":    "9800000001",
		"password": "secret123",
		"name":     "Asha",
	})
	require.Equal(t, http.StatusOK, register.Code)

	users, _ := env.users.FindAll(context.Background())
	require.Len(t, users, 1)
	id := users[0].ID.Hex()

	t.Run("found", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/users/"+id, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Asha", decodeJSON(t, w)["name"])
	})

	t.Run("missing", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/users/64b0c8f4e13f4a2d9c000000", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "User not found", decodeJSON(t, w)["error"])
	})

	t.Run("invalid id", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/users/not-an-object-id", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDebugAllUsers(t *testing.T) {
	env := newTestEnv()
	env.do(t, http.MethodPost, "/api/register", gin.H{
		"phone":    "9800000001",
		"password": "secret123",
	})

	w := env.do(t, http.MethodGet, "/debug-all-users", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "All users printed in terminal", w.Body.String())
}
