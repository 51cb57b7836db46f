package paramx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestInvariantProvider(t *testing.T) {
	p := Invariant()

	assert.Equal(t, language.Und, p.Tag())
	assert.Equal(t, "042", p.Sprintf("%03d", 42))
	assert.Equal(t, "1000000", p.Sprintf("%d", 1000000))
	assert.Equal(t, "42", p.Sprint(42))
}

func TestLocaleProvider(t *testing.T) {
	p := Locale(language.English)

	assert.Equal(t, language.English, p.Tag())
	assert.Equal(t, "1,000,000", p.Sprintf("%d", 1000000))
}
