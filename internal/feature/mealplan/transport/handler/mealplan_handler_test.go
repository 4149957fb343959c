package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"kitchensync_backend/internal/feature/mealplan/domain/entity"
	"kitchensync_backend/internal/feature/mealplan/usecase"
	recipesusecase "kitchensync_backend/internal/feature/recipes/usecase"
	jwtmw "kitchensync_backend/internal/platform/jwt"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockMealPlanUsecase はMealPlanUsecaseインターフェースのテスト用モックです。
type mockMealPlanUsecase struct {
	getByDateFn  func(ctx context.Context, userID uint, date time.Time) (*entity.MealPlan, error)
	getWeekFn    func(ctx context.Context, userID uint, start time.Time) ([]entity.MealPlan, error)
	assignMealFn func(ctx context.Context, userID uint, date time.Time, mealType string, recipeID uint) (*entity.MealPlan, error)
	removeMealFn func(ctx context.Context, userID uint, date time.Time, mealType string) error
}

func (m *mockMealPlanUsecase) GetByDate(ctx context.Context, userID uint, date time.Time) (*entity.MealPlan, error) {
	return m.getByDateFn(ctx, userID, date)
}
func (m *mockMealPlanUsecase) GetWeek(ctx context.Context, userID uint, start time.Time) ([]entity.MealPlan, error) {
	return m.getWeekFn(ctx, userID, start)
}
func (m *mockMealPlanUsecase) AssignMeal(ctx context.Context, userID uint, date time.Time, mealType string, recipeID uint) (*entity.MealPlan, error) {
	return m.assignMealFn(ctx, userID, date, mealType, recipeID)
}
func (m *mockMealPlanUsecase) RemoveMeal(ctx context.Context, userID uint, date time.Time, mealType string) error {
	return m.removeMealFn(ctx, userID, date, mealType)
}

// setUserID は認証ミドルウェアを通過した状態を再現するテスト用ミドルウェアです。
func setUserID(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(jwtmw.ContextUserID, userID)
		c.Next()
	}
}

func newMealPlanRouter(uc MealPlanUsecase, userID uint) *gin.Engine {
	h := NewMealPlanHandler(uc)
	r := gin.New()
	auth := r.Group("/", setUserID(userID))
	auth.GET("/mealplans", h.GetByDate)
	auth.GET("/mealplans/week", h.GetWeek)
	auth.PUT("/mealplans", h.AssignMeal)
	auth.DELETE("/mealplans", h.RemoveMeal)
	return r
}

func TestMealPlanHandler_GetByDate(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		uc := &mockMealPlanUsecase{
			getByDateFn: func(ctx context.Context, userID uint, date time.Time) (*entity.MealPlan, error) {
				assert.Equal(t, uint(1), userID)
				assert.True(t, date.Equal(day))
				return &entity.MealPlan{
					UserID: 1,
					Date:   day,
					Meals:  []entity.MealEntry{{Type: "Dinner", RecipeID: 5}},
				}, nil
			},
		}
		r := newMealPlanRouter(uc, 1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/mealplans?date=2025-03-10", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"date":"2025-03-10","meals":[{"type":"Dinner","recipe_id":5}]}`, w.Body.String())
	})

	t.Run("empty day still returns a plan", func(t *testing.T) {
		uc := &mockMealPlanUsecase{
			getByDateFn: func(ctx context.Context, userID uint, date time.Time) (*entity.MealPlan, error) {
				return &entity.MealPlan{UserID: 1, Date: day}, nil
			},
		}
		r := newMealPlanRouter(uc, 1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/mealplans?date=2025-03-10", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"date":"2025-03-10","meals":[]}`, w.Body.String())
	})

	t.Run("malformed date", func(t *testing.T) {
		r := newMealPlanRouter(&mockMealPlanUsecase{}, 1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/mealplans?date=03-10-2025", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"invalid date, expected YYYY-MM-DD"}`, w.Body.String())
	})

	t.Run("missing date", func(t *testing.T) {
		r := newMealPlanRouter(&mockMealPlanUsecase{}, 1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/mealplans", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestMealPlanHandler_GetWeek(t *testing.T) {
	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	uc := &mockMealPlanUsecase{
		getWeekFn: func(ctx context.Context, userID uint, got time.Time) ([]entity.MealPlan, error) {
			assert.True(t, got.Equal(start))
			plans := make([]entity.MealPlan, 7)
			for i := range plans {
				plans[i] = entity.MealPlan{UserID: 1, Date: start.AddDate(0, 0, i)}
			}
			plans[2].Meals = []entity.MealEntry{{Type: "Lunch", RecipeID: 8}}
			return plans, nil
		},
	}
	r := newMealPlanRouter(uc, 1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/mealplans/week?start=2025-03-10", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var got []map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 7)
	assert.Equal(t, "2025-03-10", got[0]["date"])
	assert.Equal(t, "2025-03-16", got[6]["date"])
	assert.Len(t, got[2]["meals"], 1)
}

func TestMealPlanHandler_AssignMeal(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		body       gin.H
		assignFn   func(ctx context.Context, userID uint, date time.Time, mealType string, recipeID uint) (*entity.MealPlan, error)
		wantStatus int
		wantBody   string
	}{
		{
			name: "success",
			body: gin.H{"date": "2025-03-10", "meal_type": "Dinner", "recipe_id": 5},
			assignFn: func(ctx context.Context, userID uint, date time.Time, mealType string, recipeID uint) (*entity.MealPlan, error) {
				assert.Equal(t, uint(1), userID)
				assert.True(t, date.Equal(day))
				assert.Equal(t, "Dinner", mealType)
				assert.Equal(t, uint(5), recipeID)
				return &entity.MealPlan{
					UserID: 1,
					Date:   day,
					Meals:  []entity.MealEntry{{Type: "Dinner", RecipeID: 5}},
				}, nil
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"date":"2025-03-10","meals":[{"type":"Dinner","recipe_id":5}]}`,
		},
		{
			name:       "missing meal_type",
			body:       gin.H{"date": "2025-03-10", "recipe_id": 5},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"invalid request"}`,
		},
		{
			name:       "malformed date",
			body:       gin.H{"date": "next monday", "meal_type": "Dinner", "recipe_id": 5},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"invalid date, expected YYYY-MM-DD"}`,
		},
		{
			name: "unknown recipe",
			body: gin.H{"date": "2025-03-10", "meal_type": "Dinner", "recipe_id": 99},
			assignFn: func(ctx context.Context, userID uint, date time.Time, mealType string, recipeID uint) (*entity.MealPlan, error) {
				return nil, recipesusecase.ErrRecipeNotFound
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"recipe not found"}`,
		},
		{
			name: "unknown meal type",
			body: gin.H{"date": "2025-03-10", "meal_type": "Brunch", "recipe_id": 5},
			assignFn: func(ctx context.Context, userID uint, date time.Time, mealType string, recipeID uint) (*entity.MealPlan, error) {
				return nil, errors.New("unknown meal type: Brunch")
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"unknown meal type: Brunch"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newMealPlanRouter(&mockMealPlanUsecase{assignMealFn: tt.assignFn}, 1)

			body, _ := json.Marshal(tt.body)
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodPut, "/mealplans", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestMealPlanHandler_RemoveMeal(t *testing.T) {
	tests := []struct {
		name       string
		removeFn   func(ctx context.Context, userID uint, date time.Time, mealType string) error
		wantStatus int
	}{
		{
			name: "success",
			removeFn: func(ctx context.Context, userID uint, date time.Time, mealType string) error {
				assert.Equal(t, "Lunch", mealType)
				return nil
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name: "no plan for the day",
			removeFn: func(ctx context.Context, userID uint, date time.Time, mealType string) error {
				return usecase.ErrPlanNotFound
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "slot not planned",
			removeFn: func(ctx context.Context, userID uint, date time.Time, mealType string) error {
				return usecase.ErrMealNotPlanned
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "repository failure",
			removeFn: func(ctx context.Context, userID uint, date time.Time, mealType string) error {
				return errors.New("db down")
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newMealPlanRouter(&mockMealPlanUsecase{removeMealFn: tt.removeFn}, 1)

			body, _ := json.Marshal(gin.H{"date": "2025-03-10", "meal_type": "Lunch"})
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodDelete, "/mealplans", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
