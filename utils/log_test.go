package utils_test

import (
	"testing"

	"github.com/NethermindEth/seqcore/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogLevelString(t *testing.T) {
	for level, str := range map[utils.LogLevel]string{
		utils.DEBUG: "debug",
		utils.INFO:  "info",
		utils.WARN:  "warn",
		utils.ERROR: "error",
	} {
		assert.Equal(t, str, level.String())
	}
}

func TestLogLevelSet(t *testing.T) {
	var level utils.LogLevel
	require.NoError(t, level.Set("ERROR"))
	assert.Equal(t, utils.ERROR, level)

	require.NoError(t, level.UnmarshalText([]byte("info")))
	assert.Equal(t, utils.INFO, level)

	assert.ErrorIs(t, level.Set("trace"), utils.ErrUnknownLogLevel)
}

func TestZapLogger(t *testing.T) {
	for _, level := range []utils.LogLevel{utils.DEBUG, utils.INFO, utils.WARN, utils.ERROR} {
		logger, err := utils.NewZapLogger(level, false)
		require.NoError(t, err)
		assert.NotNil(t, logger)
	}
}
