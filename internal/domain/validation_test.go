package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("user@example.com"))
	assert.True(t, ValidEmail("a.b+c@sub.domain.id"))

	assert.False(t, ValidEmail(""))
	assert.False(t, ValidEmail("no-at.example.com"))
	assert.False(t, ValidEmail("two@@example.com"))
	assert.False(t, ValidEmail("spaces in@example.com"))
	assert.False(t, ValidEmail("user@nodot"))
	assert.False(t, ValidEmail("x@"+strings.Repeat("a", 250)+".com"))
}

func TestValidPassword(t *testing.T) {
	assert.True(t, ValidPassword("Str0ng!pass"))
	assert.True(t, ValidPassword("Aa1!aaaa"))

	assert.False(t, ValidPassword("Sh0rt!a"))       // 7 chars
	assert.False(t, ValidPassword("alllower1!"))    // no upper
	assert.False(t, ValidPassword("ALLUPPER1!"))    // no lower
	assert.False(t, ValidPassword("NoDigits!!"))    // no digit
	assert.False(t, ValidPassword("NoSymbols123"))  // no symbol
}
