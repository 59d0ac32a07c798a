package services_test

import (
	"testing"

	customerrors "github.com/saikumarkadapa/portfolio-api/internal/errors"
	"github.com/saikumarkadapa/portfolio-api/internal/models"
	"github.com/saikumarkadapa/portfolio-api/internal/repository"
	"github.com/saikumarkadapa/portfolio-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newModerationService(db *gorm.DB, notifications chan<- models.ContactNotification) *services.ModerationService {
	return services.NewModerationService(
		repository.NewCommentRepository(db),
		repository.NewContactRepository(db),
		notifications,
	)
}

func validComment() services.CommentInput {
	return services.CommentInput{
		Name:    "Jane Smith",
		Email:   "jane@example.com",
		Content: "Amazing portfolio, the projects look great!",
	}
}

func validContact() services.ContactInput {
	return services.ContactInput{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@x.com",
		Subject:   "Hi",
		Message:   "Hello there, loved the site",
	}
}

func TestSubmitComment_CreatesUnapprovedAndCounts(t *testing.T) {
	db := newTestDB(t)
	svc := newModerationService(db, nil)

	before := analyticsSnapshot(t, db)

	comment, err := svc.SubmitComment(validComment())
	require.NoError(t, err)

	assert.False(t, comment.IsApproved, "new comments must start unapproved")
	assert.Equal(t, 0, comment.Likes)
	assert.NotZero(t, comment.ID)
	assert.False(t, comment.CreatedAt.IsZero())

	after := analyticsSnapshot(t, db)
	assert.Equal(t, before.TotalComments+1, after.TotalComments)
	assert.Equal(t, before.TotalLikes, after.TotalLikes)
}

func TestSubmitComment_ValidationFailsFast(t *testing.T) {
	db := newTestDB(t)
	svc := newModerationService(db, nil)

	tests := []struct {
		name  string
		input services.CommentInput
		field string
	}{
		{
			name:  "missing name",
			input: services.CommentInput{Email: "jane@example.com", Content: "A perfectly fine comment body"},
			field: "name",
		},
		{
			name:  "bad email",
			input: services.CommentInput{Name: "Jane", Email: "not-an-email", Content: "A perfectly fine comment body"},
			field: "email",
		},
		{
			name:  "body too short",
			input: services.CommentInput{Name: "Jane", Email: "jane@example.com", Content: "too short"},
			field: "comment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := analyticsSnapshot(t, db)

			_, err := svc.SubmitComment(tt.input)
			var vErr *customerrors.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Contains(t, vErr.Fields, tt.field)

			// Fail fast: no record created, no counter change.
			var count int64
			require.NoError(t, db.Model(&models.Comment{}).Count(&count).Error)
			assert.Zero(t, count)
			assert.Equal(t, before, analyticsSnapshot(t, db))
		})
	}
}

func TestApproveComment_Idempotent(t *testing.T) {
	db := newTestDB(t)
	svc := newModerationService(db, nil)

	comment, err := svc.SubmitComment(validComment())
	require.NoError(t, err)

	approved, err := svc.ApproveComment(comment.ID)
	require.NoError(t, err)
	assert.True(t, approved.IsApproved)

	before := analyticsSnapshot(t, db)

	again, err := svc.ApproveComment(comment.ID)
	require.NoError(t, err)
	assert.True(t, again.IsApproved)
	assert.Equal(t, before, analyticsSnapshot(t, db), "second approve must change no counters")
}

func TestApproveComment_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newModerationService(db, nil)

	before := analyticsSnapshot(t, db)

	_, err := svc.ApproveComment(9999)
	var nfErr *customerrors.NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "comment", nfErr.Kind)
	assert.Equal(t, uint(9999), nfErr.ID)
	assert.Equal(t, before, analyticsSnapshot(t, db))
}

func TestLikeComment_RepeatsUnbounded(t *testing.T) {
	// Likes are intentionally not deduplicated; every call counts.
	db := newTestDB(t)
	svc := newModerationService(db, nil)

	comment, err := svc.SubmitComment(validComment())
	require.NoError(t, err)

	for i := 1; i <= 3; i++ {
		liked, err := svc.LikeComment(comment.ID)
		require.NoError(t, err)
		assert.Equal(t, i, liked.Likes)
		assert.Equal(t, i, analyticsSnapshot(t, db).TotalLikes)
	}
}

func TestDeleteComment_RollsCountersBack(t *testing.T) {
	db := newTestDB(t)
	svc := newModerationService(db, nil)

	comment, err := svc.SubmitComment(validComment())
	require.NoError(t, err)
	_, err = svc.LikeComment(comment.ID)
	require.NoError(t, err)
	_, err = svc.LikeComment(comment.ID)
	require.NoError(t, err)

	before := analyticsSnapshot(t, db)
	require.NoError(t, svc.DeleteComment(comment.ID))

	after := analyticsSnapshot(t, db)
	assert.Equal(t, before.TotalComments-1, after.TotalComments)
	assert.Equal(t, before.TotalLikes-2, after.TotalLikes, "deleting takes the comment's likes out of the total")

	err = svc.DeleteComment(comment.ID)
	var nfErr *customerrors.NotFoundError
	require.ErrorAs(t, err, &nfErr)
}

func TestListComments_ApprovedIsStrictSubset(t *testing.T) {
	db := newTestDB(t)
	svc := newModerationService(db, nil)

	first, err := svc.SubmitComment(validComment())
	require.NoError(t, err)
	second, err := svc.SubmitComment(services.CommentInput{
		Name:    "Mike Davis",
		Email:   "mike@example.com",
		Content: "Solid implementation, would love to collaborate!",
	})
	require.NoError(t, err)
	_, err = svc.SubmitComment(services.CommentInput{
		Name:    "Anna Lee",
		Email:   "anna@example.com",
		Content: "Great work on the responsive design here.",
	})
	require.NoError(t, err)

	_, err = svc.ApproveComment(second.ID)
	require.NoError(t, err)

	all, err := svc.ListComments(false)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	approved, err := svc.ListComments(true)
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, second.ID, approved[0].ID)
	assert.NotEqual(t, first.ID, approved[0].ID)
	for _, c := range approved {
		assert.True(t, c.IsApproved)
	}
}

func TestSubmitContact_CreatesUnreadCountsAndNotifies(t *testing.T) {
	db := newTestDB(t)
	notifications := make(chan models.ContactNotification, 1)
	svc := newModerationService(db, notifications)

	before := analyticsSnapshot(t, db)

	contact, err := svc.SubmitContact(validContact())
	require.NoError(t, err)
	assert.False(t, contact.IsRead, "new contacts must start unread")

	after := analyticsSnapshot(t, db)
	assert.Equal(t, before.TotalContacts+1, after.TotalContacts)

	select {
	case event := <-notifications:
		assert.Equal(t, "Jane", event.FirstName)
		assert.Equal(t, "jane@x.com", event.Email)
		assert.Equal(t, "Hi", event.Subject)
	default:
		t.Fatal("expected a notification event to be queued")
	}
}

func TestSubmitContact_FullQueueDoesNotFailSubmission(t *testing.T) {
	db := newTestDB(t)
	// Unbuffered channel with no reader: the dispatch must drop, not block.
	notifications := make(chan models.ContactNotification)
	svc := newModerationService(db, notifications)

	contact, err := svc.SubmitContact(validContact())
	require.NoError(t, err)
	assert.NotZero(t, contact.ID)
	assert.Equal(t, 1, analyticsSnapshot(t, db).TotalContacts)
}

func TestSubmitContact_Validation(t *testing.T) {
	db := newTestDB(t)
	svc := newModerationService(db, nil)

	input := validContact()
	input.FirstName = "  "
	input.Message = "short"

	_, err := svc.SubmitContact(input)
	var vErr *customerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "firstName")
	assert.Contains(t, vErr.Fields, "message")

	assert.Zero(t, analyticsSnapshot(t, db).TotalContacts)
}

func TestMarkContactRead_IdempotentAndMonotonic(t *testing.T) {
	db := newTestDB(t)
	svc := newModerationService(db, nil)

	contact, err := svc.SubmitContact(validContact())
	require.NoError(t, err)

	read, err := svc.MarkContactRead(contact.ID)
	require.NoError(t, err)
	assert.True(t, read.IsRead)

	again, err := svc.MarkContactRead(contact.ID)
	require.NoError(t, err)
	assert.True(t, again.IsRead)

	_, err = svc.MarkContactRead(12345)
	var nfErr *customerrors.NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "contact", nfErr.Kind)
}

func TestDeleteContact_DecrementsCounter(t *testing.T) {
	db := newTestDB(t)
	svc := newModerationService(db, nil)

	contact, err := svc.SubmitContact(validContact())
	require.NoError(t, err)
	require.Equal(t, 1, analyticsSnapshot(t, db).TotalContacts)

	require.NoError(t, svc.DeleteContact(contact.ID))
	assert.Zero(t, analyticsSnapshot(t, db).TotalContacts)

	err = svc.DeleteContact(contact.ID)
	var nfErr *customerrors.NotFoundError
	require.ErrorAs(t, err, &nfErr)
}
