package service

import (
	"os"
	"testing"

	"skillcycle/internal/config"
	"skillcycle/internal/content"
	"skillcycle/internal/logger"
)

// TestMain initializes the logger for all tests in this package
func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{Env: "test", Level: "error"}); err != nil {
		panic("Failed to initialize logger for tests: " + err.Error())
	}
	exitVal := m.Run()
	_ = logger.Sync()
	os.Exit(exitVal)
}

func mustCatalog(t testing.TB) *content.Catalog {
	t.Helper()
	c, err := content.Load()
	if err != nil {
		t.Fatalf("load content: %v", err)
	}
	return c
}
