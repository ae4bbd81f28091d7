package utils

import (
	"unicode/utf8"

	"github.com/hearth-app/hearth/internal/errors"
)

type ThreadValidator struct {
	MaxTitleLen   int
	MaxContentLen int
}

func (v *ThreadValidator) Title(title string) error {
	if len(title) == 0 {
		return errors.BadRequest("Title is required")
	}
	if utf8.RuneCountInString(title) > v.MaxTitleLen {
		return errors.BadRequest("Title is too long")
	}
	return nil
}

func (v *ThreadValidator) Content(content string) error {
	if len(content) == 0 {
		return errors.BadRequest("Content is required")
	}
	if utf8.RuneCountInString(content) > v.MaxContentLen {
		return errors.BadRequest("Content is too long")
	}
	return nil
}

type CommentValidator struct {
	MaxContentLen int
}

func (v *CommentValidator) Content(content string) error {
	if len(content) == 0 {
		return errors.BadRequest("Content is required")
	}
	if utf8.RuneCountInString(content) > v.MaxContentLen {
		return errors.BadRequest("Content is too long")
	}
	return nil
}

type NoteValidator struct {
	MaxTitleLen int
}

func (v *NoteValidator) Title(title string) error {
	if len(title) == 0 {
		return errors.BadRequest("Title is required")
	}
	if utf8.RuneCountInString(title) > v.MaxTitleLen {
		return errors.BadRequest("Title is too long")
	}
	return nil
}
