package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
telegram:
  token: "123:abc"
  run_mode: longpoll
deposits:
  group_chat_id: -1001234567890
  operator_ids: [111, 222]
  min_amount: 50
health:
  port: 10000
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Deposits.GroupChatID != -1001234567890 {
		t.Fatalf("group_chat_id = %d", cfg.Deposits.GroupChatID)
	}
	if len(cfg.Deposits.OperatorIDs) != 2 {
		t.Fatalf("operator_ids = %v", cfg.Deposits.OperatorIDs)
	}
	if cfg.Health.Port != 10000 {
		t.Fatalf("health port = %d", cfg.Health.Port)
	}
	if cfg.CoreConfig() == nil || cfg.CoreConfig().Telegram.Token != "123:abc" {
		t.Fatalf("core config not inherited: %+v", cfg.CoreConfig())
	}
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
telegram:
  token: "123:abc"
deposits:
  group_chat_id: -100
  operator_ids: [111]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Deposits.MinAmount != 50 {
		t.Fatalf("min_amount default = %v, want 50", cfg.Deposits.MinAmount)
	}
	if cfg.Health.Port != 10000 {
		t.Fatalf("health port default = %d, want 10000", cfg.Health.Port)
	}
}

func TestNormalizeRejectsMissingGroup(t *testing.T) {
	path := writeConfig(t, `
telegram:
  token: "123:abc"
deposits:
  operator_ids: [111]
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for missing group_chat_id")
	}
}

func TestNormalizeRejectsEmptyOperators(t *testing.T) {
	path := writeConfig(t, `
telegram:
  token: "123:abc"
deposits:
  group_chat_id: -100
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for empty operator_ids")
	}
}
