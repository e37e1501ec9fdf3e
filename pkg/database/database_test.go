package database

import (
	"coder_edu_learner/internal/config"
	"coder_edu_learner/internal/model"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormlogger "gorm.io/gorm/logger"
)

func TestInitDB_SQLiteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "learner.db")

	db, err := InitDB(&config.DatabaseConfig{Driver: config.DriverSQLite, Path: path, LogLevel: "silent"})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	for _, table := range []interface{}{&model.LearnerProfile{}, &model.AchievementRecord{}, &model.ActivityLog{}} {
		assert.True(t, db.Migrator().HasTable(table))
	}
	assert.FileExists(t, path)
}

func TestInitDB_UnsupportedDriver(t *testing.T) {
	_, err := InitDB(&config.DatabaseConfig{Driver: "oracle"})
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestLogLevel(t *testing.T) {
	tests := map[string]gormlogger.LogLevel{
		"silent": gormlogger.Silent,
		"error":  gormlogger.Error,
		"info":   gormlogger.Info,
		"warn":   gormlogger.Warn,
		"":       gormlogger.Warn,
	}
	for name, want := range tests {
		assert.Equal(t, want, logLevel(name), name)
	}
}

func TestInitRedis_Disabled(t *testing.T) {
	rdb, err := InitRedis(&config.RedisConfig{})
	assert.NoError(t, err)
	assert.Nil(t, rdb)
}
