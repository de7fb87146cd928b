package bootstrap

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/happyfaces/facepaint/config"
	"github.com/happyfaces/facepaint/internal/domain"
	"github.com/happyfaces/facepaint/internal/logging"
)

func TestEmailConfig_UsesAPIKeyAsPassword(t *testing.T) {
	cfg := config.Default().Email
	cfg.APIKey = "re_test"
	cfg.TimeoutSeconds = 3

	ec := EmailConfig(cfg)
	assert.Equal(t, "smtp.resend.com", ec.Host)
	assert.Equal(t, 465, ec.Port)
	assert.Equal(t, "resend", ec.Username)
	assert.Equal(t, "re_test", ec.Password)
	assert.True(t, ec.SSL)
	assert.Equal(t, 3*time.Second, ec.Timeout())
}

func TestNewValidator_PhoneRulePerMode(t *testing.T) {
	raw := map[string]any{
		"name":    "Jo",
		"email":   "jo@example.com",
		"message": "Hello there, lovely work!",
	}

	_, err := NewValidator(config.ValidationConfig{}, config.ModeEdge).Contact(raw)
	assert.NoError(t, err)

	_, err = NewValidator(config.ValidationConfig{}, config.ModePersisted).Contact(raw)
	assert.Error(t, err)
}

func TestOpenStore_SQLite(t *testing.T) {
	cfg := config.Default().Database
	cfg.Driver = "sqlite"
	cfg.SQLitePath = filepath.Join(t.TempDir(), "store.db")

	repos, closeFn, err := OpenStore(context.Background(), cfg, logging.Discard())
	require.NoError(t, err)
	defer closeFn()

	msg := &domain.ContactMessage{Name: "Jo", Email: "jo@example.com", Message: "Hello there, lovely work!"}
	require.NoError(t, repos.Contacts.Create(context.Background(), msg))
	assert.NotEmpty(t, msg.ID)
}

func TestOpenStore_UnknownDriver(t *testing.T) {
	cfg := config.Default().Database
	cfg.Driver = "mysql"

	_, _, err := OpenStore(context.Background(), cfg, logging.Discard())
	assert.Error(t, err)
}
