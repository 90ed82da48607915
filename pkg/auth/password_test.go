package auth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePassword_Valid(t *testing.T) {
	valid := []string{
		"Secret1!",
		"LongerPassword{}",
		`Quote"Pass`,
		"Abcdefg,",
		"UPPERCASEONLY<>",
	}

	for _, password := range valid {
		assert.NoError(t, ValidatePassword(password), "password %q should be valid", password)
	}
}

func TestValidatePassword_TooShort(t *testing.T) {
	err := ValidatePassword("Ab!")

	require.Error(t, err)
	var ve *PasswordValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Violations, "must be at least 8 characters long")
}

func TestValidatePassword_MissingUppercase(t *testing.T) {
	err := ValidatePassword("lowercase1!")

	require.Error(t, err)
	var ve *PasswordValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{"must contain at least one uppercase letter"}, ve.Violations)
}

func TestValidatePassword_MissingSpecialChar(t *testing.T) {
	err := ValidatePassword("NoSpecial1")

	require.Error(t, err)
	var ve *PasswordValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{"must contain at least one special character"}, ve.Violations)
}

func TestValidatePassword_ReportsAllViolations(t *testing.T) {
	err := ValidatePassword("short")

	require.Error(t, err)
	var ve *PasswordValidationError
	require.True(t, errors.As(err, &ve))
	assert.Len(t, ve.Violations, 3)
}

func TestValidatePassword_SpecialSetIsExact(t *testing.T) {
	// Characters outside the policy's special set do not count
	err := ValidatePassword("NotSpecial~1")

	require.Error(t, err)
	var ve *PasswordValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{"must contain at least one special character"}, ve.Violations)
}

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("Secret1!", bcryptTestCost)
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "Secret1!", hash)

	assert.NoError(t, ComparePassword(hash, "Secret1!"))
	assert.Error(t, ComparePassword(hash, "WrongPass1!"))
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := HashPassword("", bcryptTestCost)
	assert.Error(t, err)
}

// Low cost keeps the test fast; production cost comes from config.
const bcryptTestCost = 4
