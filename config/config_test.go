package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	conf, err := Parse([]byte("mysql:\n  host: db\n  port: 3306\n  username: u\n  password: p\n  database: foodgram\n"))
	require.NoError(t, err)

	assert.Equal(t, 8080, conf.Server.Http)
	assert.Equal(t, 7*24*time.Hour, conf.Jwt.Expire())
	assert.Equal(t, 10*time.Minute, conf.Report.CacheTTL())
	assert.False(t, conf.Debug())
	assert.Equal(t, "u:p@tcp(db:3306)/foodgram?charset=utf8mb4&parseTime=True&loc=Local", conf.MySQL.Dsn())
}

func TestParse_Overrides(t *testing.T) {
	conf, err := Parse([]byte(`
app:
  debug: true
server:
  http: 9000
redis:
  enabled: true
  address: cache
  port: 6380
jwt:
  secret: s
  expire_seconds: 60
`))
	require.NoError(t, err)

	assert.True(t, conf.Debug())
	assert.Equal(t, 9000, conf.Server.Http)
	assert.True(t, conf.Redis.Enabled)
	assert.Equal(t, "cache", conf.Redis.Address)
	assert.Equal(t, time.Minute, conf.Jwt.Expire())
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("server: [1, 2"))
	assert.Error(t, err)
}
