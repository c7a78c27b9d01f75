package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"marquesa/internal/domain/models"
	"marquesa/internal/http/middleware"
	"marquesa/internal/media"
	"marquesa/internal/pagination"
	"marquesa/internal/repositories"
	"marquesa/internal/services"
	"marquesa/internal/validation"
)

const reviewPageWindow = 5

// parseReviewFilter validates the query parameters and builds the
// in-memory filter. Invalid values reject the request instead of being
// silently dropped.
func parseReviewFilter(c *gin.Context) (media.Filter, bool) {
	v := validation.New()

	search := c.Query("search")
	if r := v.ValidateSearchTerm(search); !r.Valid {
		RespondError(c, http.StatusBadRequest, r.Message, nil)
		return media.Filter{}, false
	}

	dateFrom := c.Query("dateFrom")
	dateTo := c.Query("dateTo")
	if r := v.ValidateDateFilters(dateFrom, dateTo); !r.Valid {
		RespondError(c, http.StatusBadRequest, r.Message, nil)
		return media.Filter{}, false
	}

	rating := c.Query("rating")
	if r := v.ValidateRatingFilter(rating); !r.Valid {
		RespondError(c, http.StatusBadRequest, r.Message, nil)
		return media.Filter{}, false
	}

	return media.Filter{
		DateFrom:  dateFrom,
		DateTo:    dateTo,
		HasImage:  c.Query("hasImage") == "true",
		HasVideo:  c.Query("hasVideo") == "true",
		Search:    search,
		Rating:    rating,
		SortBy:    c.DefaultQuery("sortBy", media.SortByCreatedAt),
		SortOrder: c.DefaultQuery("sortOrder", media.SortDesc),
	}, true
}

func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

// ListReviews returns the full moderation listing with filters and
// pagination for the admin panel.
func ListReviews(c *gin.Context) {
	filter, ok := parseReviewFilter(c)
	if !ok {
		return
	}

	repo := repositories.ReviewRepository{}
	reviews, err := repo.ListAll()
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	filtered := filter.Apply(reviews)

	pager := pagination.New(filtered, queryInt(c, "limit", pagination.DefaultPerPage))
	pager.GoToPage(queryInt(c, "page", 1))

	RespondSuccess(c, http.StatusOK, gin.H{
		"reviews":     pager.CurrentItems(),
		"pagination":  pager.Info(),
		"pageNumbers": pager.PageNumbers(reviewPageWindow),
	})
}

// ListProductReviews returns the visible reviews of a product for the
// storefront, with the average rating and the optional AI summary.
func ListProductReviews(c *gin.Context) {
	pid, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || pid <= 0 {
		RespondError(c, http.StatusBadRequest, "id de producto no válido", err)
		return
	}

	repo := repositories.ReviewRepository{}
	reviews, err := repo.ListVisibleByProduct(pid)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	avg, err := repo.AverageRating(pid)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	payload := gin.H{
		"reviews":       reviews,
		"averageRating": avg,
		"totalReviews":  len(reviews),
	}

	if s := getSummarizer(); s != nil && s.Enabled() {
		if summary, sumErr := s.Summarize(c.Request.Context(), pid); sumErr == nil && summary != "" {
			payload["ai_summary"] = summary
		}
	}

	RespondSuccess(c, http.StatusOK, payload)
}

type createReviewRequest struct {
	ProductID      int64  `json:"productId"`
	ClientName     string `json:"clientName"`
	ProfilePicture string `json:"profilePicture"`
	Rating         int    `json:"rating"`
	Message        string `json:"message"`
	ImageURL       string `json:"imageUrl"`
	VideoURL       string `json:"videoUrl"`
}

func CreateReview(c *gin.Context) {
	var req createReviewRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	rev := models.Review{
		ProductID:      req.ProductID,
		ClientName:     req.ClientName,
		ProfilePicture: req.ProfilePicture,
		Rating:         req.Rating,
		Message:        req.Message,
		ImageURL:       req.ImageURL,
		VideoURL:       req.VideoURL,
	}

	svc := services.ReviewService{
		ReviewRepo: repositories.ReviewRepository{},
		RequestID:  middleware.GetRequestID(c),
	}
	if err := svc.Create(&rev); err != nil {
		RespondDomainError(c, err)
		return
	}

	RespondSuccess(c, http.StatusCreated, rev)
}

type replyRequest struct {
	Text string `json:"text"`
}

func ReplyReview(c *gin.Context) {
	var req replyRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.ReviewService{
		ReviewRepo: repositories.ReviewRepository{},
		RequestID:  middleware.GetRequestID(c),
	}
	if err := svc.Reply(c.Param("id"), req.Text); err != nil {
		RespondDomainError(c, err)
		return
	}

	RespondMessage(c, http.StatusOK, "respuesta publicada")
}

type moderateRequest struct {
	Status string `json:"status"`
}

func ModerateReview(c *gin.Context) {
	var req moderateRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.ReviewService{
		ReviewRepo: repositories.ReviewRepository{},
		RequestID:  middleware.GetRequestID(c),
	}
	if err := svc.Moderate(c.Param("id"), models.ReviewStatus(req.Status)); err != nil {
		RespondDomainError(c, err)
		return
	}

	RespondMessage(c, http.StatusOK, "reseña actualizada")
}

func DeleteReview(c *gin.Context) {
	svc := services.ReviewService{
		ReviewRepo: repositories.ReviewRepository{},
		RequestID:  middleware.GetRequestID(c),
	}
	if err := svc.Delete(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}

	RespondMessage(c, http.StatusOK, "reseña eliminada")
}
