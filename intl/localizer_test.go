package intl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLocalizer_GetLocalizedMessage(t *testing.T) {
	l := New(language.English)

	assert.Equal(t, "too short", l.GetLocalizedMessage("too_short"))

	l.SetLocale("ru")
	assert.Equal(t, "слишком короткий", l.GetLocalizedMessage("too_short"))

	l.SetLocale("es")
	assert.Equal(t, "demasiado corto", l.GetLocalizedMessage("too_short"))
}

func TestLocalizer_UnknownMessageFallsBackToID(t *testing.T) {
	l := New(language.English)
	assert.Equal(t, "no_such_message", l.GetLocalizedMessage("no_such_message"))
}

func TestLocalizer_Clone(t *testing.T) {
	l := New(language.English)
	l.SetLocale("ru")

	clone := l.Clone()
	assert.Equal(t, "too short", clone.GetLocalizedMessage("too_short"))

	clone.SetLocale("es")
	assert.Equal(t, "слишком короткий", l.GetLocalizedMessage("too_short"))
	assert.Equal(t, "demasiado corto", clone.GetLocalizedMessage("too_short"))
}

func TestLocalizer_Localize_Error(t *testing.T) {
	l := New(language.English)
	_, err := l.Localize("no_such_message")
	require.Error(t, err)
}
