package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "1,234,567", FormatMoney(1234567))
	assert.Equal(t, "1,234.50", FormatMoney(1234.5))
	assert.Equal(t, "0", FormatMoney(0))
}

func TestFormatWeight(t *testing.T) {
	assert.Equal(t, "1250", FormatWeight(1250))
	assert.Equal(t, "12.5", FormatWeight(12.5))
}
