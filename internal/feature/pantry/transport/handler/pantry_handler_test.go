package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"kitchensync_backend/internal/feature/pantry/domain/entity"
	"kitchensync_backend/internal/feature/pantry/usecase"
	jwtmw "kitchensync_backend/internal/platform/jwt"
)

// mockPantryUsecase is a mock implementation of the PantryUsecase interface.
type mockPantryUsecase struct {
	ListFunc   func(ctx context.Context, userID uint, category string) ([]entity.PantryItem, error)
	AddFunc    func(ctx context.Context, userID uint, name, category, quantity, unit string) (*entity.PantryItem, error)
	UpdateFunc func(ctx context.Context, userID, id uint, name, category, quantity, unit string) (*entity.PantryItem, error)
	RemoveFunc func(ctx context.Context, userID, id uint) error
	ClearFunc  func(ctx context.Context, userID uint) error
}

func (m *mockPantryUsecase) List(ctx context.Context, userID uint, category string) ([]entity.PantryItem, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID, category)
	}
	return nil, nil
}

func (m *mockPantryUsecase) Add(ctx context.Context, userID uint, name, category, quantity, unit string) (*entity.PantryItem, error) {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, userID, name, category, quantity, unit)
	}
	return &entity.PantryItem{ID: 1, Name: name, Category: category, Quantity: quantity, Unit: unit, UserID: userID}, nil
}

func (m *mockPantryUsecase) Update(ctx context.Context, userID, id uint, name, category, quantity, unit string) (*entity.PantryItem, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, userID, id, name, category, quantity, unit)
	}
	return &entity.PantryItem{ID: id, Name: name, Category: category, Quantity: quantity, Unit: unit, UserID: userID}, nil
}

func (m *mockPantryUsecase) Remove(ctx context.Context, userID, id uint) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, userID, id)
	}
	return nil
}

func (m *mockPantryUsecase) Clear(ctx context.Context, userID uint) error {
	if m.ClearFunc != nil {
		return m.ClearFunc(ctx, userID)
	}
	return nil
}

// setUserID simulates the auth middleware by injecting a user ID into the context.
func setUserID(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(jwtmw.ContextUserID, userID)
		c.Next()
	}
}

func newPantryRouter(uc *mockPantryUsecase, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewPantryHandler(uc)
	r := gin.New()
	g := r.Group("/", setUserID(userID))
	g.GET("/pantry", h.List)
	g.POST("/pantry", h.Add)
	g.PUT("/pantry/:id", h.Update)
	g.DELETE("/pantry/:id", h.Remove)
	g.DELETE("/pantry", h.Clear)
	return r
}

func TestPantryHandler_List(t *testing.T) {
	uc := &mockPantryUsecase{
		ListFunc: func(ctx context.Context, userID uint, category string) ([]entity.PantryItem, error) {
			return []entity.PantryItem{
				{ID: 1, Name: "Tomato", Category: "Produce", Quantity: "3", Unit: "pieces", UserID: userID},
			}, nil
		},
	}
	r := newPantryRouter(uc, 1)

	req, _ := http.NewRequest(http.MethodGet, "/pantry", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body, 1)
	assert.Equal(t, "Tomato", body[0]["name"])
}

func TestPantryHandler_List_Unauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewPantryHandler(&mockPantryUsecase{})
	r := gin.New()
	r.GET("/pantry", h.List) // no middleware

	req, _ := http.NewRequest(http.MethodGet, "/pantry", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPantryHandler_Add(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    gin.H
		expectedStatus int
	}{
		{
			name:           "success",
			requestBody:    gin.H{"name": "Tomato", "category": "Produce", "quantity": "3", "unit": "pieces"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing name",
			requestBody:    gin.H{"category": "Produce"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing category",
			requestBody:    gin.H{"name": "Tomato"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newPantryRouter(&mockPantryUsecase{}, 1)

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPost, "/pantry", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestPantryHandler_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc := &mockPantryUsecase{
			UpdateFunc: func(ctx context.Context, userID, id uint, name, category, quantity, unit string) (*entity.PantryItem, error) {
				return nil, usecase.ErrItemNotFound
			},
		}
		r := newPantryRouter(uc, 1)

		body, _ := json.Marshal(gin.H{"name": "Tomato", "category": "Produce"})
		req, _ := http.NewRequest(http.MethodPut, "/pantry/99", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		r := newPantryRouter(&mockPantryUsecase{}, 1)

		body, _ := json.Marshal(gin.H{"name": "Tomato", "category": "Produce"})
		req, _ := http.NewRequest(http.MethodPut, "/pantry/abc", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPantryHandler_Remove(t *testing.T) {
	t.Run("success returns 204", func(t *testing.T) {
		r := newPantryRouter(&mockPantryUsecase{}, 1)

		req, _ := http.NewRequest(http.MethodDelete, "/pantry/1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		uc := &mockPantryUsecase{
			RemoveFunc: func(ctx context.Context, userID, id uint) error {
				return usecase.ErrItemNotFound
			},
		}
		r := newPantryRouter(uc, 1)

		req, _ := http.NewRequest(http.MethodDelete, "/pantry/99", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPantryHandler_Clear(t *testing.T) {
	cleared := false
	uc := &mockPantryUsecase{
		ClearFunc: func(ctx context.Context, userID uint) error {
			cleared = true
			return nil
		},
	}
	r := newPantryRouter(uc, 1)

	req, _ := http.NewRequest(http.MethodDelete, "/pantry", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.True(t, cleared)
}
