package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLocaleDecimal(t *testing.T) {
	cases := map[string]string{
		"36.123,45":  "36123.45",
		" 36,50 ":    "36.50",
		"1.234.567,89": "1234567.89",
		"38":         "38",
	}

	for input, expected := range cases {
		assert.Equal(t, expected, NormalizeLocaleDecimal(input))
	}
}
