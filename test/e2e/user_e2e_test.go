package e2e_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestE2EUserManagement(t *testing.T) {
	app := setupTestApp(t)
	defer app.cleanup(t)

	adminToken := app.bootstrapAdmin(t, "admin@example.com", "admin-password-123")

	const (
		aliceEmail    = "alice@example.com"
		alicePassword = "alice-password-1"
	)

	var aliceID string

	t.Run("admin creates a user", func(t *testing.T) {
		resp, err := app.post("/users", map[string]any{
			"first_name": "Alice",
			"last_name":  "Smith",
			"email":      aliceEmail,
			"password":   alicePassword,
		}, authHeader(adminToken))
		require.NoError(t, err)

		var created map[string]any
		parseResponse(t, resp, &created)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "Alice", created["first_name"])
		assert.Equal(t, aliceEmail, created["email"])
		assert.Equal(t, false, created["is_admin"])
		assert.NotContains(t, created, "password")
		assert.NotContains(t, created, "password_hash")

		aliceID = created["id"].(string)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		resp, err := app.post("/users", map[string]any{
			"first_name": "Other",
			"last_name":  "Alice",
			"email":      aliceEmail,
			"password":   "another-password",
		}, authHeader(adminToken))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("non-admin cannot create users", func(t *testing.T) {
		aliceToken := app.login(t, aliceEmail, alicePassword)

		resp, err := app.post("/users", map[string]any{
			"first_name": "Bob",
			"last_name":  "Jones",
			"email":      "bob@example.com",
			"password":   "bob-password-12",
		}, authHeader(aliceToken))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("user updates own name but not email", func(t *testing.T) {
		aliceToken := app.login(t, aliceEmail, alicePassword)

		resp, err := app.put("/users/"+aliceID, map[string]any{
			"first_name": "Alicia",
		}, authHeader(aliceToken))
		require.NoError(t, err)

		var updated map[string]any
		parseResponse(t, resp, &updated)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Alicia", updated["first_name"])
		assert.Equal(t, "Smith", updated["last_name"])

		emailResp, err := app.put("/users/"+aliceID, map[string]any{
			"email": "sneaky@example.com",
		}, authHeader(aliceToken))
		require.NoError(t, err)
		defer emailResp.Body.Close()
		assert.Equal(t, http.StatusForbidden, emailResp.StatusCode)
	})

	t.Run("admin changes another user's email", func(t *testing.T) {
		resp, err := app.put("/users/"+aliceID, map[string]any{
			"email": "alicia@example.com",
		}, authHeader(adminToken))
		require.NoError(t, err)

		var updated map[string]any
		parseResponse(t, resp, &updated)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "alicia@example.com", updated["email"])
	})

	t.Run("profiles are publicly readable", func(t *testing.T) {
		resp, err := app.get("/users/"+aliceID, nil)
		require.NoError(t, err)

		var fetched map[string]any
		parseResponse(t, resp, &fetched)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, aliceID, fetched["id"])

		listResp, err := app.get("/users", nil)
		require.NoError(t, err)

		var users []map[string]any
		parseResponse(t, listResp, &users)
		require.Equal(t, http.StatusOK, listResp.StatusCode)
		assert.Len(t, users, 2) // admin + alice
	})

	t.Run("unknown user is a 404", func(t *testing.T) {
		resp, err := app.get("/users/00000000-0000-0000-0000-000000000000", nil)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
