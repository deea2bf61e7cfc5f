package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDSNConfig(t *testing.T) {
	cfg := Config{
		Host:     "db.internal",
		Port:     3307,
		User:     "reader",
		Password: "p@ss:word/",
		Name:     "cmdb",
	}

	dsn := DSNConfig(cfg)
	assert.Equal(t, "db.internal:3307", dsn.Addr)
	assert.Equal(t, "p@ss:word/", dsn.Passwd)
	assert.Equal(t, 30*time.Second, dsn.Timeout)
	assert.True(t, dsn.ParseTime)
	assert.Contains(t, dsn.FormatDSN(), "reader:p@ss:word/@tcp(db.internal:3307)/cmdb")

	cfg.TimeoutSeconds = 5
	assert.Equal(t, 5*time.Second, DSNConfig(cfg).ReadTimeout)
}

func TestConnect(t *testing.T) {
	t.Run("Invalid Connection", func(t *testing.T) {
		cfg := Config{
			Host:           "localhost",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrongpassword",
			Name:           "cmdb",
			TimeoutSeconds: 1,
		}

		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})
}
