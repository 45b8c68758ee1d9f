package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wealth_backend/internal/feature/projection/domain/entity"
	"wealth_backend/internal/feature/projection/usecase"
	"wealth_backend/internal/platform/validation"
)

// mockProjectionUsecase records the input it was called with.
type mockProjectionUsecase struct {
	got    *entity.Input
	result entity.Projection
}

func (m *mockProjectionUsecase) Calculate(in entity.Input) entity.Projection {
	m.got = &in
	return m.result
}

func postCalculate(t *testing.T, h *ProjectionHandler, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	router := gin.New()
	router.POST("/calculate", h.Calculate)

	req := httptest.NewRequest(http.MethodPost, "/calculate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return w, out
}

func TestProjectionHandler_Calculate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	validation.Init()

	t.Run("success passes the input through", func(t *testing.T) {
		uc := &mockProjectionUsecase{result: entity.Projection{
			Snapshots:      []entity.YearSnapshot{{Year: 1, Age: 31, Value: 1256.56, Invested: 1200}},
			TotalInvested:  1200,
			ProjectedValue: 1256.56,
			YearsToGoal:    1,
		}}

		w, body := postCalculate(t, NewProjectionHandler(uc),
			`{"age":30,"monthly_investment":100,"goal_amount":1000,"risk_profile":"Aggressive"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, uc.got)
		assert.Equal(t, entity.Input{Age: 30, MonthlyInvestment: 100, GoalAmount: 1000, RiskProfile: "Aggressive"}, *uc.got)
		assert.Equal(t, map[string]any{
			"projection": []any{
				map[string]any{"year": 1.0, "age": 31.0, "value": 1256.56, "invested": 1200.0},
			},
			"total_invested":  1200.0,
			"projected_value": 1256.56,
			"years_to_goal":   1.0,
		}, body)
	})

	t.Run("zero age and zero investment are accepted", func(t *testing.T) {
		uc := &mockProjectionUsecase{}

		w, _ := postCalculate(t, NewProjectionHandler(uc),
			`{"age":0,"monthly_investment":0,"goal_amount":10,"risk_profile":"moderate"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, uc.got)
		assert.Equal(t, 0, uc.got.Age)
	})

	t.Run("empty projection is an array", func(t *testing.T) {
		h := NewProjectionHandler(usecase.NewProjectionUsecase())

		w, body := postCalculate(t, h, `{"age":70,"monthly_investment":100,"goal_amount":10,"risk_profile":"moderate"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []any{}, body["projection"])
		assert.Equal(t, 0.0, body["years_to_goal"])
	})

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"missing age", `{"monthly_investment":100,"goal_amount":10}`, "age"},
		{"negative investment", `{"age":30,"monthly_investment":-1,"goal_amount":10}`, "monthly_investment"},
		{"missing goal", `{"age":30,"monthly_investment":100}`, "goal_amount"},
		{"age of wrong type", `{"age":"thirty","monthly_investment":100,"goal_amount":10}`, "age"},
		{"malformed json", `{"age":`, "payload"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockProjectionUsecase{}

			w, body := postCalculate(t, NewProjectionHandler(uc), tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Nil(t, uc.got, "usecase must not be called")
			assert.Contains(t, body["details"], tt.field)
		})
	}
}
