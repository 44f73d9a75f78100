package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigError_Error(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ErrUnknownRank.Message, ErrUnknownRank.Error())
	assert.Equal(t, ErrUnknownRank.Message+": \"Z\"", ErrUnknownRank.With("%q", "Z").Error())
}

func TestConfigError_Is(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("load: %w", ErrInvalidTotal.With("A=%d", -1))

	assert.True(t, errors.Is(err, ErrInvalidTotal))
	assert.False(t, errors.Is(err, ErrInvalidColumn))

	var cfgErr *ConfigError
	assert.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, ErrCodeInvalidTotal, cfgErr.Code)
	assert.Empty(t, ErrInvalidTotal.Detail, "With must not mutate the sentinel")
}
