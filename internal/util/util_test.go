package util

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRandomHex(t *testing.T) {
	first, err := GenerateRandomHex(64)
	require.NoError(t, err)
	second, err := GenerateRandomHex(64)
	require.NoError(t, err)

	assert.Len(t, first, 128)
	assert.Regexp(t, "^[0-9a-f]+$", first)
	assert.NotEqual(t, first, second)
}

func TestLogError_KeepsWrappedError(t *testing.T) {
	sentinel := errors.New("sentinel")

	err := LogError("[test] операция", sentinel)

	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, "[test] операция: sentinel", err.Error())
}

func TestNewLogger_UnknownLevelFallsBack(t *testing.T) {
	logger, err := NewLogger("verbose")

	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(0))
	assert.False(t, logger.Core().Enabled(-1))
}

func TestHashToken(t *testing.T) {
	digest := HashToken("abc")

	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", digest)
	assert.NotEqual(t, digest, HashToken("abd"))
}
