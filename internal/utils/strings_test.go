package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTP(t *testing.T) {
	t.Run("generates numeric code of requested length", func(t *testing.T) {
		otp, err := GenerateOTP(6)
		require.NoError(t, err)
		assert.Len(t, otp, 6)
		assert.Regexp(t, `^[0-9]{6}$`, otp)
	})

	t.Run("rejects non-positive length", func(t *testing.T) {
		_, err := GenerateOTP(0)
		assert.Error(t, err)
	})

	t.Run("successive codes differ", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 20; i++ {
			otp, err := GenerateOTP(6)
			require.NoError(t, err)
			seen[otp] = true
		}
		// 20 identical 6-digit codes would indicate a broken generator
		assert.Greater(t, len(seen), 1)
	})
}

func TestIsValidPhoneNumber(t *testing.T) {
	tests := []struct {
		phone string
		valid bool
	}{
		{"+911234567890", true},
		{"9112345678", true},
		{"123", false},
		{"not-a-phone", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, IsValidPhoneNumber(tt.phone), tt.phone)
	}
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("student@campus.edu"))
	assert.True(t, IsValidEmail("first.last@campus.ac.in"))
	assert.False(t, IsValidEmail("no-at-sign"))
	assert.False(t, IsValidEmail("@campus.edu"))
}

func TestMaskPhoneNumber(t *testing.T) {
	assert.Equal(t, "********7890", MaskPhoneNumber("+911234567890"))
	assert.Equal(t, "1234", MaskPhoneNumber("1234"))
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "Main Gate", SanitizeString("  Main \t Gate \n"))
	assert.Equal(t, "", SanitizeString("\t\n"))
}
