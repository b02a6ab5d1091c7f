package config

import (
	"testing"
	"time"

	"github.com/sangkips/vendor-ledger-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 24*time.Hour, cfg.JWT.ExpiryHours)
	assert.Equal(t, 168*time.Hour, cfg.JWT.RefreshExpiryHours)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "none", cfg.Printer.Type)
	assert.Equal(t, 48, cfg.Printer.Width)
	assert.Len(t, cfg.Companies, 3)
	assert.Equal(t, "Unique Realcon", cfg.Company(enum.CompanyUniqueRealcon).Name)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DB_SQLITE_PATH", "/tmp/ledger.db")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("COMPANY_AIRDE_DEVELOPER_ADDRESS", "Baner, Pune")
	t.Setenv("COMPANY_AIRDE_DEVELOPER_EMAIL", "accounts@airde.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "/tmp/ledger.db", cfg.Database.SQLitePath)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)

	dev := cfg.Company(enum.CompanyAirdeDeveloper)
	assert.Equal(t, "Airde Developer", dev.Name)
	assert.Equal(t, "Baner, Pune", dev.Address)
	assert.Equal(t, "accounts@airde.example", dev.Email)
}

func TestDSN(t *testing.T) {
	c := DatabaseConfig{Host: "db", User: "u", Password: "p", Name: "n", Port: "5432", SSLMode: "disable", Timezone: "UTC"}
	assert.Equal(t, "host=db user=u password=p dbname=n port=5432 sslmode=disable TimeZone=UTC", c.DSN())
}

func TestCompany_Unknown(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, CompanyProfile{Name: "Other"}, cfg.Company(enum.CompanyName("Other")))
}
