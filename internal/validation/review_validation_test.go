package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateReplyText(t *testing.T) {
	v := New()

	cases := []struct {
		name  string
		text  string
		valid bool
	}{
		{"empty", "", false},
		{"only spaces", "   ", false},
		{"too short", "gracias", false},
		{"one word", "muchisimasgracias", false},
		{"minimum valid", "Gracias por su compra", true},
		{"too long", strings.Repeat("palabra ", 80), false},
		{"trimmed valid", "  Gracias por preferirnos  ", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := v.ValidateReplyText(tc.text)
			assert.Equal(t, tc.valid, r.Valid)
			if !tc.valid {
				assert.NotEmpty(t, r.Message)
				assert.NotEmpty(t, v.FieldError(FieldReplyText))
			}
		})
	}
}

func TestValidateReplyTextRealtimeSkipsRequired(t *testing.T) {
	v := New()
	assert.True(t, v.ValidateReplyTextRealtime("").Valid)
	assert.False(t, v.ValidateReplyTextRealtime("corto").Valid)
	assert.True(t, v.ValidateReplyTextRealtime("Gracias por su compra").Valid)
}

func TestValidateReviewID(t *testing.T) {
	v := New()
	assert.True(t, v.ValidateReviewID("65a1b2c3d4e5f6a7b8c9d0e1").Valid)
	assert.False(t, v.ValidateReviewID("").Valid)
	assert.False(t, v.ValidateReviewID("not-an-id").Valid)
	assert.False(t, v.ValidateReviewID("65A1B2C3D4E5F6A7B8C9D0E1").Valid)
	assert.False(t, v.ValidateReviewID("65a1b2c3d4e5f6a7b8c9d0e").Valid)
}

func TestValidateSearchTerm(t *testing.T) {
	v := New()
	assert.True(t, v.ValidateSearchTerm("").Valid)
	assert.True(t, v.ValidateSearchTerm("ramo de rosas").Valid)
	assert.True(t, v.ValidateSearchTerm("peonías año Ñoño correo@x.com #promo_1-2.3").Valid)
	assert.False(t, v.ValidateSearchTerm("rosas; DROP TABLE").Valid)
	assert.False(t, v.ValidateSearchTerm(strings.Repeat("a", 101)).Valid)
}

func TestValidateDateFilters(t *testing.T) {
	v := New()
	v.Now = func() time.Time {
		return time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)
	}

	assert.True(t, v.ValidateDateFilters("", "").Valid)
	assert.True(t, v.ValidateDateFilters("2025-01-01", "2025-01-10").Valid)
	assert.True(t, v.ValidateDateFilters("2025-01-01", "").Valid)

	// from > to
	assert.False(t, v.ValidateDateFilters("2025-01-10", "2025-01-01").Valid)
	// malformed
	assert.False(t, v.ValidateDateFilters("10/01/2025", "").Valid)
	// future
	assert.False(t, v.ValidateDateFilters("2025-12-31", "").Valid)
	assert.False(t, v.ValidateDateFilters("", "2026-01-01").Valid)
	// span over 365 days
	assert.False(t, v.ValidateDateFilters("2024-01-01", "2025-06-01").Valid)
}

func TestValidateRatingFilter(t *testing.T) {
	v := New()
	assert.True(t, v.ValidateRatingFilter("todos").Valid)
	assert.True(t, v.ValidateRatingFilter("").Valid)
	for _, r := range []string{"1", "2", "3", "4", "5"} {
		assert.True(t, v.ValidateRatingFilter(r).Valid)
	}
	assert.False(t, v.ValidateRatingFilter("0").Valid)
	assert.False(t, v.ValidateRatingFilter("6").Valid)
	assert.False(t, v.ValidateRatingFilter("excelente").Valid)
}

func TestValidateReplySubmissionShortCircuits(t *testing.T) {
	v := New()

	r := v.ValidateReplySubmission("bad-id", "corto")
	assert.False(t, r.Valid)
	// id failed first, so the reply text rule never ran
	assert.NotEmpty(t, v.FieldError(FieldReviewID))
	assert.Empty(t, v.FieldError(FieldReplyText))

	r = v.ValidateReplySubmission("65a1b2c3d4e5f6a7b8c9d0e1", "corto")
	assert.False(t, r.Valid)
	assert.NotEmpty(t, v.FieldError(FieldReplyText))

	r = v.ValidateReplySubmission("65a1b2c3d4e5f6a7b8c9d0e1", "Gracias por su compra")
	assert.True(t, r.Valid)
}

func TestFieldErrorPrefersSubmitTime(t *testing.T) {
	v := New()

	v.ValidateReplyTextRealtime("corto")
	realtimeMsg := v.FieldError(FieldReplyText)
	assert.NotEmpty(t, realtimeMsg)

	v.ValidateReplyText("")
	assert.Equal(t, "La respuesta es obligatoria", v.FieldError(FieldReplyText))

	v.ClearFieldError(FieldReplyText)
	assert.Empty(t, v.FieldError(FieldReplyText))
}

func TestClearErrors(t *testing.T) {
	v := New()
	v.ValidateReplyText("")
	v.ValidateReviewID("x")
	assert.True(t, v.HasErrors())

	v.ClearErrors()
	assert.False(t, v.HasErrors())
}
