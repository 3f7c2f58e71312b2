package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidCategory(t *testing.T) {
	assert.True(t, ValidCategory("mens-bags"))
	assert.True(t, ValidCategory("womens-bags"))
	assert.True(t, ValidCategory("wallets"))
	assert.False(t, ValidCategory("offers"), "offers is a flag, not a category")
	assert.False(t, ValidCategory("shoes"))
	assert.False(t, ValidCategory(""))
}

func TestCategorySubLists(t *testing.T) {
	assert.Equal(t, []string{"Backpacks", "Handbags", "Crossbody Bags"}, Categories["mens-bags"].Subs)
	assert.Equal(t, []string{"Backpacks", "Shoulder Bags"}, Categories["womens-bags"].Subs)
	assert.Empty(t, Categories["wallets"].Subs)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "3306", cfg.DBPort)
	assert.Equal(t, "orders_exchange", cfg.OrderExchange)
	assert.Equal(t, 10, cfg.MaxPriority)
	assert.Equal(t, 5*time.Second, cfg.WriteTimeout)
}

func TestGetEnvOverride(t *testing.T) {
	t.Setenv("ORDER_QUEUE", "custom_queue")
	t.Setenv("ORDER_WRITE_TIMEOUT_SECONDS", "9")

	cfg := LoadConfig()

	assert.Equal(t, "custom_queue", cfg.OrderQueue)
	assert.Equal(t, 9*time.Second, cfg.WriteTimeout)
}
