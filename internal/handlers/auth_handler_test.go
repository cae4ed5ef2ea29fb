package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/repository"
)

func TestLogin(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.User{
		ID:        uuid.New(),
		Name:      "User",
		Email:     "user@nextmail.com",
		Password:  string(hash),
		CreatedAt: time.Now(),
	}).Error)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/login", NewAuthHandler(repository.NewUserRepository(db), "test-secret").Login)

	tests := []struct {
		name           string
		body           map[string]string
		expectedStatus int
	}{
		{
			name:           "valid credentials",
			body:           map[string]string{"email": "user@nextmail.com", "password": "123456"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "wrong password",
			body:           map[string]string{"email": "user@nextmail.com", "password": "654321"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "unknown email",
			body:           map[string]string{"email": "nobody@nextmail.com", "password": "123456"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing password",
			body:           map[string]string{"email": "user@nextmail.com"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := json.Marshal(tt.body)
			require.NoError(t, err)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			require.Equal(t, tt.expectedStatus, w.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			if tt.expectedStatus == http.StatusOK {
				assert.NotEmpty(t, body["token"])
				assert.Equal(t, "User", body["name"])
			} else {
				assert.NotEmpty(t, body["error"])
			}
		})
	}
}
