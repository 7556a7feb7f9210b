package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwschwaner/calorietracker-app/internal/catalog"
	"github.com/jwschwaner/calorietracker-app/internal/models"
	"github.com/jwschwaner/calorietracker-app/internal/repository"
	"github.com/jwschwaner/calorietracker-app/internal/service"
	"github.com/jwschwaner/calorietracker-app/internal/storage"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cat := catalog.New([]models.Ingredient{
		{Name: "Oatmeal", Calories: 350, Protein: 13, Carbs: 60, Fat: 6},
		{Name: "Banana", Calories: 89, Protein: 1.1, Carbs: 22.8, Fat: 0.3},
	})
	store := storage.NewMemory()
	dailyRepo := repository.NewDailyDetailsRepo(store)
	userRepo := repository.NewUserDataRepo(store)

	calcSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"dailyCalories": 2100}`))
	}))
	t.Cleanup(calcSrv.Close)

	ingredientsService := service.NewIngredientsService(cat, dailyRepo)
	userDataService := service.NewUserDataService(userRepo, dailyRepo, service.NewDailyCalorieCalculatorService(calcSrv.URL, calcSrv.Client()))

	router := gin.New()
	SetupRoutes(router, NewHandlers(ingredientsService, userDataService, dailyRepo))
	return router
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestTrackIngredientEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/tracking",
		`{"ingredientName":"oatmeal","grams":150,"mealType":"breakfast","date":"2026-03-05"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var details models.DailyCalorieDetails
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &details))
	assert.Equal(t, 2000, details.DailyGoal)
	assert.Equal(t, 525, details.DailyTotal)
	require.Len(t, details.TrackedItems, 1)
	assert.Equal(t, "Oatmeal", details.TrackedItems[0].Name)
}

func TestTrackIngredientUnknownReturns404(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/tracking",
		`{"ingredientName":"Dragonfruit","grams":100,"mealType":"snack"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTrackIngredientRejectsBadInput(t *testing.T) {
	router := newTestRouter(t)

	// Missing grams
	w := doJSON(router, http.MethodPost, "/api/tracking",
		`{"ingredientName":"Oatmeal","mealType":"breakfast"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Negative grams
	w = doJSON(router, http.MethodPost, "/api/tracking",
		`{"ingredientName":"Oatmeal","grams":-10,"mealType":"breakfast"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown meal type
	w = doJSON(router, http.MethodPost, "/api/tracking",
		`{"ingredientName":"Oatmeal","grams":100,"mealType":"brunch"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Bad date
	w = doJSON(router, http.MethodPost, "/api/tracking",
		`{"ingredientName":"Oatmeal","grams":100,"mealType":"breakfast","date":"05.03.2026"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchIngredientsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/api/ingredients/search?q=oat", "")
	require.Equal(t, http.StatusOK, w.Code)

	var matches []models.Ingredient
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &matches))
	require.Len(t, matches, 1)
	assert.Equal(t, "Oatmeal", matches[0].Name)

	// Blank query returns an empty list, not the whole catalog.
	w = doJSON(router, http.MethodGet, "/api/ingredients/search", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &matches))
	assert.Empty(t, matches)
}

func TestListIngredientsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/api/ingredients", "")
	require.Equal(t, http.StatusOK, w.Code)

	var all []models.Ingredient
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	assert.Len(t, all, 2)
}

func TestDailyDetailsEndpoints(t *testing.T) {
	router := newTestRouter(t)

	// Nothing tracked yet.
	w := doJSON(router, http.MethodGet, "/api/days/2026-03-05", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(router, http.MethodPost, "/api/tracking",
		`{"ingredientName":"Banana","grams":120,"mealType":"snack","date":"2026-03-05"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/days/2026-03-05", "")
	require.Equal(t, http.StatusOK, w.Code)
	var details models.DailyCalorieDetails
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &details))
	assert.Equal(t, 107, details.DailyTotal)

	w = doJSON(router, http.MethodDelete, "/api/days/2026-03-05", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(router, http.MethodGet, "/api/days/2026-03-05", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProfileEndpoints(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/api/profile", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(router, http.MethodPut, "/api/profile",
		`{"gender":"female","age":30,"heightCm":170,"weightKg":65,"activityLevel":"moderate","goal":"maintainWeight"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		UserData     models.UserData            `json:"userData"`
		DailyDetails models.DailyCalorieDetails `json:"dailyDetails"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.UserData.CurrentDailyCalorieGoal)
	assert.Equal(t, 2100, *resp.UserData.CurrentDailyCalorieGoal)
	assert.Equal(t, 2100, resp.DailyDetails.DailyGoal)

	w = doJSON(router, http.MethodGet, "/api/profile", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodDelete, "/api/profile", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(router, http.MethodGet, "/api/profile", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Invalid enum values are rejected at the boundary.
	w = doJSON(router, http.MethodPut, "/api/profile",
		`{"gender":"other","age":30,"heightCm":170,"weightKg":65,"activityLevel":"moderate","goal":"maintainWeight"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
