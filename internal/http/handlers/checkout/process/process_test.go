package process

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dataiq/storefront/internal/http/middlewarectx"
	"github.com/dataiq/storefront/internal/models"
	checkoutservice "github.com/dataiq/storefront/internal/services/checkout"
)

// MockService реализует интерфейс process.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Process(ctx context.Context, visitorUID string, contact models.ContactDetails) (*models.Order, error) {
	args := m.Called(ctx, visitorUID, contact)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func TestProcessHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	validContact := models.ContactDetails{FullName: "Dana Reeve", Email: "dana@example.com", Company: "Acme"}
	order := &models.Order{
		ID:         "order-1",
		TotalPrice: 450,
		TotalCount: 1,
		Contact:    validContact,
		CreatedAt:  time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name           string
		requestBody    any
		visitorUID     string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "успешное оформление заказа",
			requestBody: Request{FullName: "Dana Reeve", Email: "dana@example.com", Company: "Acme"},
			visitorUID:  "visitor-1",
			setupMock: func(m *MockService) {
				m.On("Process", mock.Anything, "visitor-1", validContact).Return(order, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"id":"order-1"`,
		},
		{
			name:           "некорректный JSON",
			requestBody:    "not a json",
			visitorUID:     "visitor-1",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"failed to decode request"`,
		},
		{
			name:           "некорректный email",
			requestBody:    Request{FullName: "Dana Reeve", Email: "not-an-email"},
			visitorUID:     "visitor-1",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Email must be a valid email`,
		},
		{
			name:           "не указаны контактные данные",
			requestBody:    Request{},
			visitorUID:     "visitor-1",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field FullName is a required field`,
		},
		{
			name:           "отсутствует авторизация",
			requestBody:    Request{FullName: "Dana Reeve", Email: "dana@example.com"},
			visitorUID:     "",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"unauthorized"`,
		},
		{
			name:        "пустая корзина",
			requestBody: Request{FullName: "Dana Reeve", Email: "dana@example.com"},
			visitorUID:  "visitor-1",
			setupMock: func(m *MockService) {
				m.On("Process", mock.Anything, "visitor-1", models.ContactDetails{FullName: "Dana Reeve", Email: "dana@example.com"}).
					Return(nil, fmt.Errorf("checkout.Process: %w", checkoutservice.ErrEmptyCart))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"cart is empty"`,
		},
		{
			name:        "ошибка сервиса",
			requestBody: Request{FullName: "Dana Reeve", Email: "dana@example.com"},
			visitorUID:  "visitor-1",
			setupMock: func(m *MockService) {
				m.On("Process", mock.Anything, "visitor-1", models.ContactDetails{FullName: "Dana Reeve", Email: "dana@example.com"}).
					Return(nil, errors.New("redis down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"internal error"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			var body []byte
			var err error
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, err = json.Marshal(tt.requestBody)
				require.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/checkout", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			if tt.visitorUID != "" {
				ctx := context.WithValue(req.Context(), middlewarectx.VisitorUID, tt.visitorUID)
				req = req.WithContext(ctx)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
