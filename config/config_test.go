package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blog.yaml")
	content := []byte(`
database:
  driver: sqlite
  dsn: "file::memory:"
jwt:
  secret: from-file
store:
  timeout: 3s
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	t.Setenv("BLOG_CONFIG", path)
	t.Setenv("BLOG_JWT_SECRET", "from-env")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
	assert.Equal(t, 3*time.Second, cfg.Store.Timeout)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "/admin", cfg.Admin.LoginPath)
	assert.Equal(t, "Admin User", cfg.Blog.DefaultAuthorName)
}

func TestValidate(t *testing.T) {
	base := Config{
		Database: DatabaseConfig{Driver: "sqlite", DSN: ":memory:"},
		JWT:      JWTConfig{Secret: "s"},
		Store:    StoreConfig{Timeout: time.Second},
	}
	assert.NoError(t, base.Validate())

	bad := base
	bad.Database.Driver = "mysql"
	assert.Error(t, bad.Validate())

	bad = base
	bad.JWT.Secret = ""
	assert.Error(t, bad.Validate())

	bad = base
	bad.Store.Timeout = 0
	assert.Error(t, bad.Validate())
}
