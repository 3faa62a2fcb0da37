package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/recipevault/recipevault/internal/database"
	"github.com/recipevault/recipevault/internal/models"
)

func setupTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return NewServer(db, nil).Router()
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateAndGetRecipe(t *testing.T) {
	router := setupTestServer(t)

	recipe := map[string]interface{}{
		"userId":      "user-1",
		"title":       "Test Recipe",
		"description": "Test Description",
		"cookingTime": 30,
		"ingredients": []map[string]string{
			{"name": "pasta", "amount": "250", "unit": "g"},
		},
		"instructions":        []string{"step1", "step2"},
		"dietaryRestrictions": []string{"Vegetarian"},
		"difficulty":          "Easy",
		"category":            "Dinner",
	}

	w := doJSON(t, router, "POST", "/recipes", recipe)
	assert.Equal(t, 201, w.Code)

	var created models.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Test Recipe", created.Title)

	w = doJSON(t, router, "GET", "/recipes/"+created.ID, nil)
	assert.Equal(t, 200, w.Code)

	var fetched models.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, created.ID, fetched.ID)
	assert.Len(t, fetched.Ingredients, 1)
	assert.Equal(t, "pasta", fetched.Ingredients[0].Name)
}

func TestCreateRecipeIgnoresClientID(t *testing.T) {
	router := setupTestServer(t)

	w := doJSON(t, router, "POST", "/recipes", map[string]interface{}{
		"id":           "1700000000000",
		"userId":       "user-1",
		"title":        "Clock Collision",
		"cookingTime":  5,
		"ingredients":  []map[string]string{{"name": "x", "amount": "1", "unit": "g"}},
		"instructions": []string{"do it"},
	})
	assert.Equal(t, 201, w.Code)

	var created models.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEqual(t, "1700000000000", created.ID)
}

func TestGetRecipeNotFound(t *testing.T) {
	router := setupTestServer(t)

	w := doJSON(t, router, "GET", "/recipes/missing", nil)
	assert.Equal(t, 404, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Recipe not found", resp["error"])
}

func TestListRecipesByUser(t *testing.T) {
	router := setupTestServer(t)

	for i, owner := range []string{"alice", "alice", "bob"} {
		w := doJSON(t, router, "POST", "/recipes", map[string]interface{}{
			"userId":       owner,
			"title":        fmt.Sprintf("Recipe %d", i),
			"cookingTime":  10,
			"ingredients":  []map[string]string{{"name": "x", "amount": "1", "unit": "g"}},
			"instructions": []string{"cook"},
		})
		require.Equal(t, 201, w.Code)
	}

	w := doJSON(t, router, "GET", "/recipes?userId=alice", nil)
	assert.Equal(t, 200, w.Code)

	var recipes []models.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recipes))
	assert.Len(t, recipes, 2)
	for _, r := range recipes {
		assert.Equal(t, "alice", r.UserID)
	}

	w = doJSON(t, router, "GET", "/recipes", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recipes))
	assert.Len(t, recipes, 3)
}

func TestUpdateRecipeIsFullReplacement(t *testing.T) {
	router := setupTestServer(t)

	w := doJSON(t, router, "POST", "/recipes", map[string]interface{}{
		"userId":       "user-1",
		"title":        "Before",
		"description":  "long description",
		"cookingTime":  30,
		"category":     "Dinner",
		"ingredients":  []map[string]string{{"name": "x", "amount": "1", "unit": "g"}},
		"instructions": []string{"cook"},
	})
	require.Equal(t, 201, w.Code)
	var created models.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	// A PUT without the category drops it: full replacement, not a patch.
	w = doJSON(t, router, "PUT", "/recipes/"+created.ID, map[string]interface{}{
		"userId":       "user-1",
		"title":        "After",
		"cookingTime":  15,
		"ingredients":  []map[string]string{{"name": "y", "amount": "2", "unit": "kg"}},
		"instructions": []string{"cook more"},
	})
	assert.Equal(t, 200, w.Code)

	w = doJSON(t, router, "GET", "/recipes/"+created.ID, nil)
	var fetched models.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, "After", fetched.Title)
	assert.Equal(t, 15, fetched.CookingTime)
	assert.Empty(t, fetched.Category)
	assert.Equal(t, "y", fetched.Ingredients[0].Name)
}

func TestUpdateMissingRecipe(t *testing.T) {
	router := setupTestServer(t)

	w := doJSON(t, router, "PUT", "/recipes/nope", map[string]interface{}{
		"title": "x", "cookingTime": 1,
	})
	assert.Equal(t, 404, w.Code)
}

func TestUserCRUDAndEmailQuery(t *testing.T) {
	router := setupTestServer(t)

	w := doJSON(t, router, "POST", "/users", map[string]interface{}{
		"email":     "demo@example.com",
		"password":  "$2a$10$fakehashfakehashfakehash",
		"name":      "Demo User",
		"favorites": []string{},
	})
	require.Equal(t, 201, w.Code)

	var created models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)

	w = doJSON(t, router, "GET", "/users?email=demo@example.com", nil)
	assert.Equal(t, 200, w.Code)
	var users []models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	require.Len(t, users, 1)
	assert.Equal(t, created.ID, users[0].ID)

	w = doJSON(t, router, "GET", "/users?email=other@example.com", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	assert.Empty(t, users)

	w = doJSON(t, router, "GET", "/users/"+created.ID, nil)
	assert.Equal(t, 200, w.Code)

	w = doJSON(t, router, "GET", "/users/missing", nil)
	assert.Equal(t, 404, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "User not found", resp["error"])
}

func TestUpdateUserReplacesFavorites(t *testing.T) {
	router := setupTestServer(t)

	w := doJSON(t, router, "POST", "/users", map[string]interface{}{
		"email": "a@b.c", "password": "h", "name": "A", "favorites": []string{"1"},
	})
	require.Equal(t, 201, w.Code)
	var created models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, router, "PUT", "/users/"+created.ID, map[string]interface{}{
		"email": "a@b.c", "password": "h", "name": "A", "favorites": []string{"1", "3"},
	})
	assert.Equal(t, 200, w.Code)

	var updated models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, models.StringList{"1", "3"}, updated.Favorites)
}
