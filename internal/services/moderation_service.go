package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	customerrors "github.com/saikumarkadapa/portfolio-api/internal/errors"
	"github.com/saikumarkadapa/portfolio-api/internal/models"
	"github.com/saikumarkadapa/portfolio-api/internal/repository"
	"gorm.io/gorm"
)

// ModerationService owns the business rules for visitor comments and
// contact submissions: validation, the approval/read state machines, and
// keeping the analytics counters in step with every mutation (the
// repositories apply the counter deltas transactionally).
type ModerationService struct {
	commentRepo   repository.CommentRepository
	contactRepo   repository.ContactRepository
	notifications chan<- models.ContactNotification
}

// NewModerationService creates and returns a new ModerationService.
// notifications may be nil, in which case contact submissions simply
// skip the e-mail dispatch.
func NewModerationService(
	commentRepo repository.CommentRepository,
	contactRepo repository.ContactRepository,
	notifications chan<- models.ContactNotification,
) *ModerationService {
	return &ModerationService{
		commentRepo:   commentRepo,
		contactRepo:   contactRepo,
		notifications: notifications,
	}
}

// CommentInput is the client-supplied payload for a new comment.
type CommentInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Profession string `json:"profession"`
	Content    string `json:"comment"`
}

// ContactInput is the client-supplied payload for a contact submission.
type ContactInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

// ListComments returns approved comments only (the public path) or every
// comment (the moderation path).
func (s *ModerationService) ListComments(approvedOnly bool) ([]models.Comment, error) {
	if approvedOnly {
		return s.commentRepo.GetApproved()
	}
	return s.commentRepo.GetAll()
}

// SubmitComment validates the input and creates the comment in the
// unapproved state. totalComments is incremented with the insert.
// Validation failures leave no partial state behind.
func (s *ModerationService) SubmitComment(input CommentInput) (*models.Comment, error) {
	vErr := customerrors.NewValidationError()
	if isBlank(input.Name) {
		vErr.Add("name", "name is required")
	}
	if !isValidEmail(input.Email) {
		vErr.Add("email", "a valid email address is required")
	}
	if len(strings.TrimSpace(input.Content)) < minMessageLength {
		vErr.Add("comment", fmt.Sprintf("comment must be at least %d characters", minMessageLength))
	}
	if vErr.HasErrors() {
		return nil, vErr
	}

	comment := &models.Comment{
		Name:    strings.TrimSpace(input.Name),
		Email:   strings.TrimSpace(input.Email),
		Content: strings.TrimSpace(input.Content),
	}
	if !isBlank(input.Profession) {
		profession := strings.TrimSpace(input.Profession)
		comment.Profession = &profession
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ApproveComment marks the comment as approved. Idempotent: approving
// twice leaves the flag true and changes nothing else.
func (s *ModerationService) ApproveComment(id uint) (*models.Comment, error) {
	comment, err := s.commentRepo.Approve(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &customerrors.NotFoundError{Kind: "comment", ID: id}
		}
		return nil, err
	}
	return comment, nil
}

// LikeComment adds one like to the comment and to totalLikes. Nothing
// stops the same visitor from liking repeatedly.
func (s *ModerationService) LikeComment(id uint) (*models.Comment, error) {
	comment, err := s.commentRepo.Like(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &customerrors.NotFoundError{Kind: "comment", ID: id}
		}
		return nil, err
	}
	return comment, nil
}

// DeleteComment removes the comment from either state and rolls its
// counts out of the analytics totals.
func (s *ModerationService) DeleteComment(id uint) error {
	deleted, err := s.commentRepo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return &customerrors.NotFoundError{Kind: "comment", ID: id}
	}
	return nil
}

// ListContacts returns every contact submission.
func (s *ModerationService) ListContacts() ([]models.Contact, error) {
	return s.contactRepo.GetAll()
}

// SubmitContact validates the input, stores the submission unread (with
// totalContacts incremented in the same transaction) and queues the
// owner notification and auto-reply e-mails. Mail delivery is
// best-effort: a full queue or a failing transport never affects the
// caller.
func (s *ModerationService) SubmitContact(input ContactInput) (*models.Contact, error) {
	vErr := customerrors.NewValidationError()
	if isBlank(input.FirstName) {
		vErr.Add("firstName", "first name is required")
	}
	if isBlank(input.LastName) {
		vErr.Add("lastName", "last name is required")
	}
	if !isValidEmail(input.Email) {
		vErr.Add("email", "a valid email address is required")
	}
	if isBlank(input.Subject) {
		vErr.Add("subject", "subject is required")
	}
	if len(strings.TrimSpace(input.Message)) < minMessageLength {
		vErr.Add("message", fmt.Sprintf("message must be at least %d characters", minMessageLength))
	}
	if vErr.HasErrors() {
		return nil, vErr
	}

	contact := &models.Contact{
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Email:     strings.TrimSpace(input.Email),
		Subject:   strings.TrimSpace(input.Subject),
		Message:   strings.TrimSpace(input.Message),
	}
	if err := s.contactRepo.Create(contact); err != nil {
		return nil, err
	}

	s.dispatchNotification(contact)
	return contact, nil
}

// MarkContactRead marks the contact as read. Idempotent; the flag never
// goes back to unread.
func (s *ModerationService) MarkContactRead(id uint) (*models.Contact, error) {
	contact, err := s.contactRepo.MarkRead(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &customerrors.NotFoundError{Kind: "contact", ID: id}
		}
		return nil, err
	}
	return contact, nil
}

// DeleteContact removes the contact and decrements totalContacts.
func (s *ModerationService) DeleteContact(id uint) error {
	deleted, err := s.contactRepo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return &customerrors.NotFoundError{Kind: "contact", ID: id}
	}
	return nil
}

// dispatchNotification hands the contact to the mail workers without
// blocking the request path. When the queue is full the event is dropped
// and logged; the submission itself already succeeded.
func (s *ModerationService) dispatchNotification(contact *models.Contact) {
	if s.notifications == nil {
		return
	}
	event := models.ContactNotification{
		FirstName:  contact.FirstName,
		LastName:   contact.LastName,
		Email:      contact.Email,
		Subject:    contact.Subject,
		Message:    contact.Message,
		ReceivedAt: contact.CreatedAt,
	}
	select {
	case s.notifications <- event:
		log.Printf("Notification queued for contact submission from %s", contact.Email)
	default:
		log.Printf("ERROR: Notification queue full, dropping notification for %s", contact.Email)
	}
}
