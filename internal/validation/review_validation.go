// Package validation holds the stateful field validation used by the
// review moderation flows. Every rule writes its outcome into a shared
// error map even when called purely for a read; callers clear errors
// explicitly, there is no automatic expiry.
package validation

import (
	"regexp"
	"time"

	"marquesa/internal/utils"
)

const (
	FieldReplyText  = "replyText"
	FieldReviewID   = "reviewId"
	FieldSearchTerm = "searchTerm"
	FieldDateRange  = "dateRange"
	FieldRating     = "rating"
)

const (
	replyMinLen   = 10
	replyMaxLen   = 500
	replyMinWords = 2
	searchMaxLen  = 100
	maxRangeDays  = 365
)

var (
	reviewIDPattern = regexp.MustCompile(`^[a-f0-9]{24}$`)
	searchPattern   = regexp.MustCompile(`^[a-zA-Z0-9áéíóúÁÉÍÓÚñÑüÜ\s\-_.@#]*$`)
	ratingPattern   = regexp.MustCompile(`^[1-5]$`)
)

type Result struct {
	Valid   bool
	Message string
}

func ok() Result             { return Result{Valid: true} }
func fail(msg string) Result { return Result{Valid: false, Message: msg} }

// Validator collects submit-time and real-time errors per field.
// Submit-time errors win when both exist.
type Validator struct {
	submitErrors   map[string]string
	realtimeErrors map[string]string

	// Now is injectable for date-range tests; defaults to time.Now.
	Now func() time.Time
}

func New() *Validator {
	return &Validator{
		submitErrors:   map[string]string{},
		realtimeErrors: map[string]string{},
	}
}

func (v *Validator) now() time.Time {
	if v.Now != nil {
		return v.Now()
	}
	return time.Now()
}

func (v *Validator) record(field string, realtime bool, r Result) Result {
	target := v.submitErrors
	if realtime {
		target = v.realtimeErrors
	}
	if r.Valid {
		delete(target, field)
	} else {
		target[field] = r.Message
	}
	return r
}

// FieldError prefers the submit-time message over the real-time one.
func (v *Validator) FieldError(field string) string {
	if msg, okk := v.submitErrors[field]; okk {
		return msg
	}
	return v.realtimeErrors[field]
}

func (v *Validator) HasErrors() bool {
	return len(v.submitErrors) > 0 || len(v.realtimeErrors) > 0
}

func (v *Validator) ClearErrors() {
	v.submitErrors = map[string]string{}
	v.realtimeErrors = map[string]string{}
}

func (v *Validator) ClearFieldError(field string) {
	delete(v.submitErrors, field)
	delete(v.realtimeErrors, field)
}

func replyTextRule(text string) Result {
	trimmed := utils.TrimOrEmpty(text)
	if trimmed == "" {
		return fail("La respuesta es obligatoria")
	}
	if len([]rune(trimmed)) < replyMinLen {
		return fail("La respuesta debe tener al menos 10 caracteres")
	}
	if len([]rune(trimmed)) > replyMaxLen {
		return fail("La respuesta no puede superar los 500 caracteres")
	}
	if utils.WordCount(trimmed) < replyMinWords {
		return fail("La respuesta debe tener al menos 2 palabras")
	}
	return ok()
}

func (v *Validator) ValidateReplyText(text string) Result {
	return v.record(FieldReplyText, false, replyTextRule(text))
}

// ValidateReplyTextRealtime skips the required rule so an empty field
// does not flag while the user is still typing.
func (v *Validator) ValidateReplyTextRealtime(text string) Result {
	if utils.TrimOrEmpty(text) == "" {
		return v.record(FieldReplyText, true, ok())
	}
	return v.record(FieldReplyText, true, replyTextRule(text))
}

func (v *Validator) ValidateReviewID(id string) Result {
	trimmed := utils.TrimOrEmpty(id)
	if trimmed == "" {
		return v.record(FieldReviewID, false, fail("El identificador de la reseña es obligatorio"))
	}
	if !reviewIDPattern.MatchString(trimmed) {
		return v.record(FieldReviewID, false, fail("El identificador de la reseña no es válido"))
	}
	return v.record(FieldReviewID, false, ok())
}

func searchTermRule(term string) Result {
	trimmed := utils.TrimOrEmpty(term)
	if trimmed == "" {
		return ok()
	}
	if len([]rune(trimmed)) > searchMaxLen {
		return fail("La búsqueda no puede superar los 100 caracteres")
	}
	if !searchPattern.MatchString(trimmed) {
		return fail("La búsqueda contiene caracteres no permitidos")
	}
	return ok()
}

func (v *Validator) ValidateSearchTerm(term string) Result {
	return v.record(FieldSearchTerm, false, searchTermRule(term))
}

func (v *Validator) ValidateSearchTermRealtime(term string) Result {
	return v.record(FieldSearchTerm, true, searchTermRule(term))
}

// ValidateDateFilters checks an optional YYYY-MM-DD range: valid dates,
// neither in the future, from <= to, span capped at 365 days.
func (v *Validator) ValidateDateFilters(from, to string) Result {
	from = utils.TrimOrEmpty(from)
	to = utils.TrimOrEmpty(to)

	var fromT, toT time.Time
	var err error

	if from != "" {
		fromT, err = utils.ParseDate(from)
		if err != nil {
			return v.record(FieldDateRange, false, fail("La fecha inicial no es válida"))
		}
	}
	if to != "" {
		toT, err = utils.ParseDate(to)
		if err != nil {
			return v.record(FieldDateRange, false, fail("La fecha final no es válida"))
		}
	}

	now := v.now()
	if from != "" && fromT.After(now) {
		return v.record(FieldDateRange, false, fail("La fecha inicial no puede estar en el futuro"))
	}
	if to != "" && toT.After(now) {
		return v.record(FieldDateRange, false, fail("La fecha final no puede estar en el futuro"))
	}

	if from != "" && to != "" {
		if fromT.After(toT) {
			return v.record(FieldDateRange, false, fail("La fecha inicial no puede ser mayor que la final"))
		}
		if toT.Sub(fromT) > maxRangeDays*24*time.Hour {
			return v.record(FieldDateRange, false, fail("El rango de fechas no puede superar los 365 días"))
		}
	}

	return v.record(FieldDateRange, false, ok())
}

func (v *Validator) ValidateRatingFilter(val string) Result {
	trimmed := utils.TrimOrEmpty(val)
	if trimmed == "" || trimmed == "todos" || ratingPattern.MatchString(trimmed) {
		return v.record(FieldRating, false, ok())
	}
	return v.record(FieldRating, false, fail("El filtro de calificación no es válido"))
}

// ValidateReplySubmission short-circuits on the first failing rule:
// id first, then text.
func (v *Validator) ValidateReplySubmission(id, text string) Result {
	if r := v.ValidateReviewID(id); !r.Valid {
		return r
	}
	return v.ValidateReplyText(text)
}
