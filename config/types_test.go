package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	c := &Config{}
	c.Server.Port = 8080
	c.Database.Host = "localhost"
	c.Database.DBName = "fertitrack"
	c.Authentication.Paseto.Issuer = "fertitrack"
	c.Authentication.Paseto.Audience = "fertitrack-api"
	c.Authentication.Paseto.Mode = "local"
	c.Authorization.CasbinModelPath = "casbin_model.conf"
	return c
}

func TestConfigValidate(t *testing.T) {
	t.Run("valid config passes", func(t *testing.T) {
		if err := validConfig().Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{
			name:    "zero port",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantMsg: "server.port",
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantMsg: "server.port",
		},
		{
			name:    "missing database host",
			mutate:  func(c *Config) { c.Database.Host = "" },
			wantMsg: "database.host",
		},
		{
			name:    "missing database name",
			mutate:  func(c *Config) { c.Database.DBName = "" },
			wantMsg: "database.dbname",
		},
		{
			name:    "missing issuer",
			mutate:  func(c *Config) { c.Authentication.Paseto.Issuer = "" },
			wantMsg: "issuer",
		},
		{
			name:    "missing audience",
			mutate:  func(c *Config) { c.Authentication.Paseto.Audience = "" },
			wantMsg: "audience",
		},
		{
			name:    "bad paseto mode",
			mutate:  func(c *Config) { c.Authentication.Paseto.Mode = "hybrid" },
			wantMsg: "paseto.mode",
		},
		{
			name:    "missing casbin model path",
			mutate:  func(c *Config) { c.Authorization.CasbinModelPath = "" },
			wantMsg: "casbin_model_path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)
			err := c.Validate()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}
