package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ChapterCount is the number of chapters in the Quran.
const ChapterCount = 114

// VerseKey is the canonical identifier of one verse: "chapter:verse".
type VerseKey struct {
	Chapter int
	Verse   int
}

func (k VerseKey) String() string {
	return fmt.Sprintf("%d:%d", k.Chapter, k.Verse)
}

// Validate checks the key against the canonical chapter range. Verse numbers
// are only required to be positive here; the per-chapter length table is
// enforced at enrollment, where a new item can come into existence.
func (k VerseKey) Validate() error {
	var errs []FieldError
	if k.Chapter < 1 || k.Chapter > ChapterCount {
		errs = append(errs, FieldError{Field: "chapter", Message: fmt.Sprintf("must be between 1 and %d", ChapterCount)})
	}
	if k.Verse < 1 {
		errs = append(errs, FieldError{Field: "verse", Message: "must be >= 1"})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// ParseVerseKey parses a "chapter:verse" string into a VerseKey.
func ParseVerseKey(s string) (VerseKey, error) {
	chapterStr, verseStr, ok := strings.Cut(s, ":")
	if !ok {
		return VerseKey{}, NewValidationError("verse_key", "must have the form chapter:verse")
	}

	chapter, err := strconv.Atoi(chapterStr)
	if err != nil {
		return VerseKey{}, NewValidationError("verse_key", "chapter must be a number")
	}
	verse, err := strconv.Atoi(verseStr)
	if err != nil {
		return VerseKey{}, NewValidationError("verse_key", "verse must be a number")
	}

	key := VerseKey{Chapter: chapter, Verse: verse}
	if err := key.Validate(); err != nil {
		return VerseKey{}, err
	}
	return key, nil
}
