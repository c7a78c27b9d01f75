package services

import (
	"marquesa/internal/domain"
	"marquesa/internal/domain/models"
	"marquesa/internal/repositories"
	"marquesa/internal/utils"
	"marquesa/internal/validation"
)

// ReviewService owns the moderation rules around reviews. Wire format
// checks live in the handlers; everything stateful goes through here.
type ReviewService struct {
	ReviewRepo repositories.ReviewRepository
	RequestID  string
}

// Create stores a new pending review after checking the rating range.
func (s ReviewService) Create(rev *models.Review) error {
	if rev.Rating < 1 || rev.Rating > 5 {
		return domain.ValidationError{Field: "rating", Msg: "la calificación debe estar entre 1 y 5"}
	}
	if utils.TrimOrEmpty(rev.ClientName) == "" {
		return domain.ValidationError{Field: "clientName", Msg: "el nombre es obligatorio"}
	}
	if utils.TrimOrEmpty(rev.Message) == "" {
		return domain.ValidationError{Field: "message", Msg: "el mensaje es obligatorio"}
	}

	rev.Status = models.ReviewStatusPending
	if err := s.ReviewRepo.Create(rev); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "review", "create", "id="+rev.ID)
	return nil
}

// Reply validates the submission through the shared rule set, then
// persists the response and flips the review to replied.
func (s ReviewService) Reply(id, text string) error {
	v := validation.New()
	if r := v.ValidateReplySubmission(id, text); !r.Valid {
		return domain.ValidationError{Msg: r.Message}
	}

	if _, err := s.ReviewRepo.GetByID(id); err != nil {
		return err
	}
	if err := s.ReviewRepo.SaveReply(id, text); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "review", "reply", "id="+id)
	return nil
}

// Moderate accepts approved/rejected only; replied is reserved for the
// reply flow.
func (s ReviewService) Moderate(id string, status models.ReviewStatus) error {
	v := validation.New()
	if r := v.ValidateReviewID(id); !r.Valid {
		return domain.ValidationError{Msg: r.Message}
	}
	if !models.ValidModeration(status) {
		return domain.ValidationError{Field: "status", Msg: "el estado debe ser approved o rejected"}
	}

	if err := s.ReviewRepo.UpdateStatus(id, status); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "review", "moderate", "id="+id+" status="+string(status))
	return nil
}

func (s ReviewService) Delete(id string) error {
	v := validation.New()
	if r := v.ValidateReviewID(id); !r.Valid {
		return domain.ValidationError{Msg: r.Message}
	}

	if err := s.ReviewRepo.Delete(id); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "review", "delete", "id="+id)
	return nil
}
