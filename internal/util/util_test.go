package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestJWT_RoundTrip(t *testing.T) {
	token, err := GenerateJWT("learner-1", "auth-service", testSecret, time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, "auth-service", testSecret)
	require.NoError(t, err)
	assert.Equal(t, "learner-1", claims.Subject)

	claims, err = ParseJWT(token, "", testSecret)
	require.NoError(t, err)
	assert.Equal(t, "learner-1", claims.Subject)
}

func TestJWT_Rejects(t *testing.T) {
	valid, err := GenerateJWT("learner-1", "auth-service", testSecret, time.Hour)
	require.NoError(t, err)
	expired, err := GenerateJWT("learner-1", "auth-service", testSecret, -time.Minute)
	require.NoError(t, err)
	noSubject, err := GenerateJWT("", "auth-service", testSecret, time.Hour)
	require.NoError(t, err)
	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{Subject: "learner-1"}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		issuer string
		secret string
	}{
		{"wrong secret", valid, "", "another-secret"},
		{"wrong issuer", valid, "someone-else", testSecret},
		{"expired", expired, "", testSecret},
		{"empty subject", noSubject, "", testSecret},
		{"unexpected algorithm", hs512, "", testSecret},
		{"garbage", "not-a-token", "", testSecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJWT(tt.token, tt.issuer, tt.secret)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

type sample struct {
	ID    string `validate:"required"`
	Level string `validate:"omitempty,oneof=beginner intermediate advanced"`
	XP    int    `validate:"gte=0"`
}

func TestValidateStruct(t *testing.T) {
	assert.NoError(t, ValidateStruct(sample{ID: "u1", Level: "advanced"}))

	err := ValidateStruct(sample{Level: "guru", XP: -1})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"sample.ID", "sample.Level", "sample.XP"}, verr.Fields)
	assert.Contains(t, verr.Error(), "sample.Level failed oneof=beginner intermediate advanced")
	assert.Contains(t, verr.Error(), "sample.ID failed required")
}

func TestHandleError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", fmt.Errorf("load: %w", ErrProfileNotFound), http.StatusNotFound},
		{"exists", ErrProfileExists, http.StatusConflict},
		{"id mismatch", ErrProfileIDMismatch, http.StatusBadRequest},
		{"validation", NewValidationError("limit must not be negative"), http.StatusBadRequest},
		{"internal", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleError(c, tt.err)

			assert.Equal(t, tt.want, w.Code)
			assert.True(t, c.IsAborted())
			var resp Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.want, resp.Code)
			if tt.want == http.StatusInternalServerError {
				assert.Equal(t, "Internal server error", resp.Message)
			}
		})
	}
}

func TestParseIntDefault(t *testing.T) {
	assert.Equal(t, 3, ParseIntDefault("3", 5))
	assert.Equal(t, 5, ParseIntDefault("", 5))
	assert.Equal(t, 5, ParseIntDefault("abc", 5))
	assert.Equal(t, 5, ParseIntDefault("-1", 5))
}
