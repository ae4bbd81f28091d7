package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internal_errors "github.com/hearth-app/hearth/internal/errors"
)

func TestThreadValidator(t *testing.T) {
	v := &ThreadValidator{MaxTitleLen: 10, MaxContentLen: 20}

	assert.NoError(t, v.Title("short"))
	assert.NoError(t, v.Content("fits easily"))

	t.Run("empty title", func(t *testing.T) {
		err := v.Title("")
		var statusErr *internal_errors.ErrorWithStatusCode
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, 400, statusErr.StatusCode)
	})

	t.Run("too long title", func(t *testing.T) {
		assert.Error(t, v.Title(strings.Repeat("a", 11)))
	})

	t.Run("length counted in runes", func(t *testing.T) {
		// 10 multibyte characters must pass a 10-rune limit
		assert.NoError(t, v.Title(strings.Repeat("ё", 10)))
	})

	t.Run("too long content", func(t *testing.T) {
		assert.Error(t, v.Content(strings.Repeat("a", 21)))
	})
}

func TestCommentValidator(t *testing.T) {
	v := &CommentValidator{MaxContentLen: 5}

	assert.NoError(t, v.Content("12345"))
	assert.Error(t, v.Content("123456"))
	assert.Error(t, v.Content(""))
}

func TestNoteValidator(t *testing.T) {
	v := &NoteValidator{MaxTitleLen: 5}

	assert.NoError(t, v.Title("notes"))
	assert.Error(t, v.Title(""))
	assert.Error(t, v.Title("too long"))
}
