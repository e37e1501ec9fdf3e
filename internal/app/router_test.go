package app

import (
	"bytes"
	"coder_edu_learner/internal/config"
	"coder_edu_learner/internal/engine"
	"coder_edu_learner/internal/service"
	"coder_edu_learner/internal/util"
	"coder_edu_learner/pkg/database"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupRouter(t *testing.T, jwtEnabled bool) *gin.Engine {
	t.Helper()
	db, err := database.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	cfg := &config.Config{
		Server: config.ServerConfig{Mode: gin.TestMode},
		CORS:   config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
		JWT:    config.JWTConfig{Enabled: jwtEnabled, Secret: testSecret},
		Engine: config.EngineConfig{HistoryWindow: 50, MaxAchievementPasses: 3},
	}
	return NewRouter(cfg, db, nil, service.NewStaticEngineProvider(engine.Default()))
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, header map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func TestRecommendationsBundle(t *testing.T) {
	r := setupRouter(t, false)

	tests := []struct {
		name       string
		body       interface{}
		wantStatus int
	}{
		{
			name: "valid bundle",
			body: gin.H{
				"profile": gin.H{"id": "u1", "currentStreak": 10, "weakAreas": []string{"Algorithms"}},
				"history": []gin.H{{"timestamp": "2026-03-02T09:00:00Z", "type": "video", "completionRate": 0.9, "engagementLevel": 80}},
				"action":  "daily-login",
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing profile id",
			body:       gin.H{"profile": gin.H{"name": "Ada"}},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown learning style",
			body:       gin.H{"profile": gin.H{"id": "u1", "learningStyle": "telepathic"}},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed json",
			body:       `{"profile": `,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := doJSON(t, r, http.MethodPost, "/api/recommendations", tt.body, nil)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantStatus, env.Code)
		})
	}

	w, env := doJSON(t, r, http.MethodPost, "/api/recommendations", tests[0].body, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var res engine.EvaluateResult
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.NotEmpty(t, res.Insights)
	assert.Equal(t, "Algorithms", res.Recommendations[0].Topic)
	require.Len(t, res.Achievements, 1)
	assert.Equal(t, engine.AchievementWeekStreak, res.Achievements[0].ID)
	require.NotNil(t, res.Motivation)
}

func TestProfileLifecycle(t *testing.T) {
	r := setupRouter(t, false)

	w, _ := doJSON(t, r, http.MethodGet, "/api/profiles/missing", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/api/profiles", gin.H{"id": "learner-1", "name": "Ada"}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/api/profiles", gin.H{"id": "learner-1"}, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w, _ = doJSON(t, r, http.MethodPut, "/api/profiles/learner-1", gin.H{"id": "other"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env := doJSON(t, r, http.MethodPost, "/api/profiles/learner-1/events",
		gin.H{"action": "daily-login", "eventData": gin.H{"streak": 7}}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var tracked service.TrackEventResult
	require.NoError(t, json.Unmarshal(env.Data, &tracked))
	require.Len(t, tracked.Unlocked, 1)
	assert.Equal(t, 100, tracked.Profile.TotalXP)

	w, _ = doJSON(t, r, http.MethodPost, "/api/profiles/learner-1/events", gin.H{"action": "level-up"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/api/profiles/learner-1/activities", gin.H{
		"activities": []gin.H{{"timestamp": "2026-03-02T20:00:00Z", "type": "exercise", "topicType": "go", "performanceScore": 80}},
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w, env = doJSON(t, r, http.MethodGet, "/api/profiles/learner-1", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var p engine.Profile
	require.NoError(t, json.Unmarshal(env.Data, &p))
	assert.Len(t, p.Achievements, 1)
	assert.Equal(t, 7, p.CurrentStreak)
	require.Len(t, p.LearningPatterns, 1)
	assert.Equal(t, engine.TimeEvening, p.LearningPatterns[0].TimeOfDay)

	for _, path := range []string{"insights", "recommendations?limit=2", "motivation", "style", "patterns"} {
		w, _ = doJSON(t, r, http.MethodGet, "/api/profiles/learner-1/"+path, nil, nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	w, _ = doJSON(t, r, http.MethodPost, "/api/profiles/learner-1/predict", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/api/profiles/learner-1/adaptive-path", gin.H{"goals": []string{"Learn React"}}, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, r, http.MethodGet, "/api/profiles/missing/insights", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStatelessEndpoints(t *testing.T) {
	r := setupRouter(t, false)

	w, env := doJSON(t, r, http.MethodPost, "/api/adaptive/difficulty", gin.H{"current": "intermediate", "score": 90}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var adj service.AdjustDifficultyResult
	require.NoError(t, json.Unmarshal(env.Data, &adj))
	assert.Equal(t, engine.Advanced, adj.Adjusted)

	w, _ = doJSON(t, r, http.MethodPost, "/api/adaptive/difficulty", gin.H{"current": "intermediate"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/api/career/predict", gin.H{"skills": []string{"React"}, "interests": []string{"frontend"}}, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/api/career/trends", gin.H{"skills": []string{"jQuery"}}, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, env = doJSON(t, r, http.MethodGet, "/api/achievements", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var catalog []engine.Achievement
	require.NoError(t, json.Unmarshal(env.Data, &catalog))
	assert.Len(t, catalog, len(engine.AchievementCatalog()))
}

func TestHealthAndRequestID(t *testing.T) {
	r := setupRouter(t, false)

	w, env := doJSON(t, r, http.MethodGet, "/api/health", nil, map[string]string{util.HeaderRequestID: "req-1"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "req-1", w.Header().Get(util.HeaderRequestID))

	var health struct {
		Status           string `json:"status"`
		ReferenceVersion string `json:"referenceVersion"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &health))
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, engine.DefaultReference().Version, health.ReferenceVersion)

	w, _ = doJSON(t, r, http.MethodGet, "/api/health", nil, nil)
	assert.Len(t, w.Header().Get(util.HeaderRequestID), 36)
}

func TestProfileRoutesRequireOwner(t *testing.T) {
	r := setupRouter(t, true)

	token, err := util.GenerateJWT("learner-1", "", testSecret, time.Hour)
	require.NoError(t, err)
	auth := map[string]string{"Authorization": "Bearer " + token}

	w, _ := doJSON(t, r, http.MethodPost, "/api/profiles", gin.H{"id": "learner-1"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/api/profiles", gin.H{"id": "learner-1"}, auth)
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = doJSON(t, r, http.MethodGet, "/api/profiles/learner-1", nil, auth)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, r, http.MethodGet, "/api/profiles/learner-2", nil, auth)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = doJSON(t, r, http.MethodGet, "/api/profiles/learner-1", nil, map[string]string{"Authorization": "Bearer not-a-token"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = doJSON(t, r, http.MethodGet, "/api/health", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateProfileBoundToTokenSubject(t *testing.T) {
	r := setupRouter(t, true)

	token, err := util.GenerateJWT("learner-7", "", testSecret, time.Hour)
	require.NoError(t, err)
	auth := map[string]string{"Authorization": "Bearer " + token}

	w, _ := doJSON(t, r, http.MethodPost, "/api/profiles", gin.H{"id": "someone-else"}, auth)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = doJSON(t, r, http.MethodGet, "/api/profiles/learner-7", nil, auth)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, env := doJSON(t, r, http.MethodPost, "/api/profiles", gin.H{"name": "Ada"}, auth)
	require.Equal(t, http.StatusCreated, w.Code)
	var p engine.Profile
	require.NoError(t, json.Unmarshal(env.Data, &p))
	assert.Equal(t, "learner-7", p.ID)
}

func TestRecommendationsBundleCountsEventXP(t *testing.T) {
	r := setupRouter(t, false)

	w, env := doJSON(t, r, http.MethodPost, "/api/recommendations", gin.H{
		"profile":   gin.H{"id": "u1", "totalXP": 950},
		"action":    "xp-gained",
		"eventData": gin.H{"xp": 100},
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var res engine.EvaluateResult
	require.NoError(t, json.Unmarshal(env.Data, &res))
	require.Len(t, res.Achievements, 1)
	assert.Equal(t, engine.AchievementXP1000, res.Achievements[0].ID)
}
