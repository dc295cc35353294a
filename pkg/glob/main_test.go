package glob

import (
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	// Component loggers derive from the global logger; tests that inspect
	// log output pass their own through WithLogger.
	log.Logger = zerolog.Nop()
	os.Exit(m.Run())
}

func TestDefaultLoggerIsQuiet(t *testing.T) {
	logger := newOptions(nil).log()
	assert.False(t, logger.Trace().Enabled())
	assert.False(t, logger.Debug().Enabled())
}
