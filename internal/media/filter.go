// Package media re-derives review listings from an already-fetched full
// set. Filtering and sorting happen in memory; the repositories return
// everything and the handler slices afterwards.
package media

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"marquesa/internal/domain/models"
	"marquesa/internal/utils"
)

const (
	SortByCreatedAt = "createdAt"
	SortByRating    = "rating"

	SortAsc  = "asc"
	SortDesc = "desc"

	// RatingAll disables the rating filter.
	RatingAll = "todos"
)

type Filter struct {
	DateFrom  string
	DateTo    string
	HasImage  bool
	HasVideo  bool
	Search    string
	Rating    string
	SortBy    string
	SortOrder string
}

// Active reports whether any narrowing criterion is set.
func (f Filter) Active() bool {
	return f.DateFrom != "" || f.DateTo != "" || f.HasImage || f.HasVideo ||
		utils.TrimOrEmpty(f.Search) != "" ||
		(f.Rating != "" && f.Rating != RatingAll)
}

// Apply filters and sorts a copy of the input; the original slice is
// left untouched.
func (f Filter) Apply(reviews []models.Review) []models.Review {
	out := make([]models.Review, 0, len(reviews))

	var fromT, toT time.Time
	var hasFrom, hasTo bool
	if f.DateFrom != "" {
		if t, err := utils.ParseDate(f.DateFrom); err == nil {
			fromT, hasFrom = t, true
		}
	}
	if f.DateTo != "" {
		if t, err := utils.ParseDate(f.DateTo); err == nil {
			// inclusive end of day
			toT, hasTo = t.Add(24*time.Hour-time.Nanosecond), true
		}
	}

	rating, filterRating := 0, false
	if f.Rating != "" && f.Rating != RatingAll {
		if n, err := strconv.Atoi(f.Rating); err == nil {
			rating, filterRating = n, true
		}
	}

	search := strings.ToLower(utils.TrimOrEmpty(f.Search))

	for _, r := range reviews {
		if hasFrom && r.CreatedAt.Before(fromT) {
			continue
		}
		if hasTo && r.CreatedAt.After(toT) {
			continue
		}
		if f.HasImage && r.ImageURL == "" {
			continue
		}
		if f.HasVideo && r.VideoURL == "" {
			continue
		}
		if filterRating && r.Rating != rating {
			continue
		}
		if search != "" && !matchesSearch(r, search) {
			continue
		}
		out = append(out, r)
	}

	f.sortReviews(out)
	return out
}

func matchesSearch(r models.Review, search string) bool {
	return strings.Contains(strings.ToLower(r.ClientName), search) ||
		strings.Contains(strings.ToLower(r.Message), search) ||
		strings.Contains(strings.ToLower(r.Response), search)
}

func (f Filter) sortReviews(reviews []models.Review) {
	sortBy := f.SortBy
	if sortBy == "" {
		sortBy = SortByCreatedAt
	}
	asc := f.SortOrder == SortAsc

	sort.SliceStable(reviews, func(i, j int) bool {
		var less bool
		switch sortBy {
		case SortByRating:
			if reviews[i].Rating == reviews[j].Rating {
				less = reviews[i].CreatedAt.Before(reviews[j].CreatedAt)
			} else {
				less = reviews[i].Rating < reviews[j].Rating
			}
		default:
			less = reviews[i].CreatedAt.Before(reviews[j].CreatedAt)
		}
		if asc {
			return less
		}
		return !less
	})
}
