package hifz

import (
	"fmt"

	"github.com/heartmarshall/hifz-backend/internal/domain"
)

// AddVerseInput holds the parameters for adding a single verse.
type AddVerseInput struct {
	Chapter int
	Verse   int
}

// Validate checks all fields and collects all errors.
func (i *AddVerseInput) Validate() error {
	return domain.VerseKey{Chapter: i.Chapter, Verse: i.Verse}.Validate()
}

// AddRangeInput holds the parameters for adding a contiguous verse range.
type AddRangeInput struct {
	Chapter    int
	StartVerse int
	EndVerse   int
}

// Validate checks all fields and collects all errors. The maximum range size
// is enforced by the service, which knows its configuration.
func (i *AddRangeInput) Validate() error {
	var errs []domain.FieldError

	if i.Chapter < 1 || i.Chapter > domain.ChapterCount {
		errs = append(errs, domain.FieldError{Field: "chapter", Message: fmt.Sprintf("must be between 1 and %d", domain.ChapterCount)})
	}
	if i.StartVerse < 1 {
		errs = append(errs, domain.FieldError{Field: "start_verse", Message: "must be >= 1"})
	}
	if i.EndVerse < 1 {
		errs = append(errs, domain.FieldError{Field: "end_verse", Message: "must be >= 1"})
	}
	if i.StartVerse >= 1 && i.EndVerse >= 1 && i.StartVerse > i.EndVerse {
		errs = append(errs, domain.FieldError{Field: "start_verse", Message: "must be <= end_verse"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RecordReviewInput holds the parameters for recording a review outcome.
type RecordReviewInput struct {
	VerseKey string
	Quality  int
}

// Validate checks all fields and collects all errors. Quality outside 0–5 is
// rejected here, at the boundary; the update engine clamps only after
// acceptance.
func (i *RecordReviewInput) Validate() error {
	var errs []domain.FieldError

	if _, err := domain.ParseVerseKey(i.VerseKey); err != nil {
		errs = append(errs, domain.FieldError{Field: "verse_key", Message: "must be a valid chapter:verse key"})
	}
	if i.Quality < 0 || i.Quality > 5 {
		errs = append(errs, domain.FieldError{Field: "quality", Message: "must be between 0 and 5"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// GetDueInput holds the parameters for fetching due reviews.
type GetDueInput struct {
	// Limit caps the batch size. Nil means the configured default; an
	// explicit value of zero or less yields an empty batch.
	Limit *int
}

// ChapterProgressInput holds the parameters for a chapter progress query.
type ChapterProgressInput struct {
	Chapter int
}

// Validate checks the chapter number.
func (i *ChapterProgressInput) Validate() error {
	if i.Chapter < 1 || i.Chapter > domain.ChapterCount {
		return domain.NewValidationError("chapter", fmt.Sprintf("must be between 1 and %d", domain.ChapterCount))
	}
	return nil
}

// ReviewHistoryInput holds the parameters for fetching an item's review history.
type ReviewHistoryInput struct {
	VerseKey string
	Limit    int
	Offset   int
}

// Validate checks all fields and collects all errors.
func (i *ReviewHistoryInput) Validate() error {
	var errs []domain.FieldError

	if _, err := domain.ParseVerseKey(i.VerseKey); err != nil {
		errs = append(errs, domain.FieldError{Field: "verse_key", Message: "must be a valid chapter:verse key"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be >= 0"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
