package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTargets_Default(t *testing.T) {
	targets, err := parseTargets("")
	require.NoError(t, err)

	assert.Equal(t, defaultMonthlyTargets, targets)
	assert.Equal(t, 3000.0, targets[0])
	assert.Equal(t, 9000.0, targets[11])

	var sum float64
	for _, v := range targets {
		sum += v
	}
	assert.Equal(t, 71000.0, sum)
}

func TestParseTargets_Custom(t *testing.T) {
	targets, err := parseTargets("100, 200,300,400,500,600,700,800,900,1000,1100, 1200")
	require.NoError(t, err)
	assert.Equal(t, 100.0, targets[0])
	assert.Equal(t, 1200.0, targets[11])
}

func TestParseTargets_NumeroValoriErrato(t *testing.T) {
	_, err := parseTargets("100,200,300")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "attesi 12 valori")
}

func TestParseTargets_ValoreNonNumerico(t *testing.T) {
	_, err := parseTargets("100,200,abc,400,500,600,700,800,900,1000,1100,1200")
	require.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	withURL := DBConfig{DatabaseURL: "postgresql://u:p@db.example.com:5432/vcrm?sslmode=require"}
	assert.Equal(t, withURL.DatabaseURL, withURL.ConnectionString())

	discrete := DBConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss/word",
		DBName:   "vcrm",
		SSLMode:  "disable",
	}
	dsn := discrete.ConnectionString()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "localhost:5432")
	assert.Contains(t, dsn, "sslmode=disable")
	// la password con caratteri speciali viene URL-encoded
	assert.NotContains(t, dsn, "p@ss/word")
}

func TestHTTPConfig_Addr(t *testing.T) {
	cfg := HTTPConfig{Host: "0.0.0.0", Port: 8080}
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
}
