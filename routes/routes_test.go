package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/apakhome20-stack/efebem/config"
	"github.com/apakhome20-stack/efebem/models"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	return SetupRouter(db), db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == "session_token" {
			return c
		}
	}
	t.Fatal("session_token cookie not set")
	return nil
}

func TestRegisterMeLogoutFlow(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", gin.H{
		"email":    "ayse@example.com",
		"password": "gizli123",
		"name":     "Ayşe",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var registered struct {
		Success         bool   `json:"success"`
		UserID          string `json:"user_id"`
		NeedsOnboarding bool   `json:"needs_onboarding"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &registered))
	assert.True(t, registered.Success)
	assert.True(t, registered.NeedsOnboarding)
	assert.NotEmpty(t, registered.UserID)

	cookie := sessionCookie(t, w)
	assert.True(t, cookie.HttpOnly)

	w = doJSON(t, r, http.MethodGet, "/api/auth/me", nil, []*http.Cookie{cookie})
	require.Equal(t, http.StatusOK, w.Code)

	var me models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))
	assert.Equal(t, "ayse@example.com", me.Email)
	assert.Equal(t, registered.UserID, me.ID)
	assert.NotContains(t, w.Body.String(), "password_hash")

	w = doJSON(t, r, http.MethodPost, "/api/auth/logout", nil, []*http.Cookie{cookie})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/auth/me", nil, []*http.Cookie{cookie})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOnboardingSetsGoal(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", gin.H{
		"email":    "mehmet@example.com",
		"password": "gizli123",
		"name":     "Mehmet",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	cookie := sessionCookie(t, w)

	w = doJSON(t, r, http.MethodPost, "/api/auth/onboarding", gin.H{
		"age":            28,
		"gender":         "erkek",
		"height_cm":      175,
		"weight_kg":      75,
		"goal_weight_kg": 70,
		"activity_level": "orta",
	}, []*http.Cookie{cookie})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Success          bool `json:"success"`
		DailyCalorieGoal int  `json:"daily_calorie_goal"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2148, resp.DailyCalorieGoal)

	w = doJSON(t, r, http.MethodGet, "/api/auth/me", nil, []*http.Cookie{cookie})
	require.Equal(t, http.StatusOK, w.Code)

	var me models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))
	assert.False(t, me.NeedsOnboarding())
	assert.Equal(t, 2148, me.DailyCalorieGoal)
}

func TestFoodLogAndDailyStats(t *testing.T) {
	r, db := newTestRouter(t)

	require.NoError(t, db.Create(&models.TurkishFood{
		ID:              "simit",
		Name:            "Simit",
		CaloriesPer100g: 420,
		ProteinPer100g:  10,
		CarbsPer100g:    80,
		FatPer100g:      5,
	}).Error)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", gin.H{
		"email":    "fatma@example.com",
		"password": "gizli123",
		"name":     "Fatma",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	cookie := sessionCookie(t, w)

	w = doJSON(t, r, http.MethodPost, "/api/food-logs/manual?food_name=Simit&portion_grams=150", nil, []*http.Cookie{cookie})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/food-logs", nil, []*http.Cookie{cookie})
	require.Equal(t, http.StatusOK, w.Code)

	var logs []models.FoodLog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logs))
	require.Len(t, logs, 1)
	assert.Equal(t, "Simit", logs[0].FoodName)
	assert.InDelta(t, 630, logs[0].Calories, 0.01)

	w = doJSON(t, r, http.MethodGet, "/api/stats/daily", nil, []*http.Cookie{cookie})
	require.Equal(t, http.StatusOK, w.Code)

	var daily struct {
		CaloriesConsumed float64 `json:"calories_consumed"`
		DailyGoal        int     `json:"daily_goal"`
		MealsCount       int     `json:"meals_count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &daily))
	assert.InDelta(t, 630, daily.CaloriesConsumed, 0.01)
	assert.Equal(t, 2000, daily.DailyGoal)
	assert.Equal(t, 1, daily.MealsCount)

	w = doJSON(t, r, http.MethodDelete, "/api/food-logs/"+logs[0].ID, nil, []*http.Cookie{cookie})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/food-logs", nil, []*http.Cookie{cookie})
	require.Equal(t, http.StatusOK, w.Code)
	logs = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logs))
	assert.Empty(t, logs)
}

func TestPublicReferenceRoutes(t *testing.T) {
	r, db := newTestRouter(t)

	require.NoError(t, db.Create(&models.TurkishFood{
		ID: "menemen", Name: "Menemen", CaloriesPer100g: 95,
	}).Error)
	require.NoError(t, db.Create(&models.WorkoutExercise{
		ID: "kosu", Name: "Koşu", CaloriesPerMinute: 10,
	}).Error)

	w := doJSON(t, r, http.MethodGet, "/api/turkish-foods", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Menemen")

	w = doJSON(t, r, http.MethodGet, "/api/workout-exercises", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Koşu")

	w = doJSON(t, r, http.MethodGet, "/api/food-logs", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
