package logging_test

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"teamchat/internal/infrastructure/logging"
)

func TestNewLogger(t *testing.T) {
	log, err := logging.NewLogger("debug")
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	if !log.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("debug level should be enabled")
	}

	log, err = logging.NewLogger("")
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	if log.Core().Enabled(zapcore.DebugLevel) || !log.Core().Enabled(zapcore.InfoLevel) {
		t.Fatalf("default level should be info")
	}

	if _, err := logging.NewLogger("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
