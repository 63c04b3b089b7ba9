package review

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neotaste/creator-portal/app/models"
)

func TestCanSubmitNewVideo(t *testing.T) {
	tests := []struct {
		name    string
		videos  []models.Video
		blocked bool
	}{
		{name: "no videos", videos: nil, blocked: false},
		{
			name:    "only approved videos",
			videos:  []models.Video{{Status: models.VideoStatusApproved}, {Status: models.VideoStatusApproved}},
			blocked: false,
		},
		{
			name:    "pending video blocks",
			videos:  []models.Video{{Status: models.VideoStatusApproved}, {Status: models.VideoStatusPending}},
			blocked: true,
		},
		{
			name:    "rejected video blocks",
			videos:  []models.Video{{Status: models.VideoStatusRejected}},
			blocked: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanSubmitNewVideo(tt.videos)
			if tt.blocked {
				var eligErr *EligibilityError
				require.Error(t, err)
				assert.True(t, errors.As(err, &eligErr))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsEligibleForExpense(t *testing.T) {
	assert.True(t, IsEligibleForExpense(&models.Video{Status: models.VideoStatusApproved}))
	assert.False(t, IsEligibleForExpense(&models.Video{Status: models.VideoStatusApproved, InvoiceSubmitted: true}))
	assert.False(t, IsEligibleForExpense(&models.Video{Status: models.VideoStatusPending}))
	assert.False(t, IsEligibleForExpense(&models.Video{Status: models.VideoStatusRejected}))
}

func TestEligibleVideos(t *testing.T) {
	videos := []models.Video{
		{Title: "a", Status: models.VideoStatusApproved},
		{Title: "b", Status: models.VideoStatusApproved, InvoiceSubmitted: true},
		{Title: "c", Status: models.VideoStatusPending},
	}

	eligible := EligibleVideos(videos)
	require.Len(t, eligible, 1)
	assert.Equal(t, "a", eligible[0].Title)
}

func TestApproveVideoClearsComment(t *testing.T) {
	comment := "shaky footage"
	v := &models.Video{Status: models.VideoStatusPending, AdminComment: &comment}

	require.NoError(t, ApproveVideo(v, 7))
	assert.Equal(t, models.VideoStatusApproved, v.Status)
	assert.Nil(t, v.AdminComment)
	require.NotNil(t, v.ReviewedByID)
	assert.Equal(t, uint(7), *v.ReviewedByID)
	assert.NotNil(t, v.ReviewedAt)
}

func TestApproveVideoOnlyWhenPending(t *testing.T) {
	for _, status := range []string{models.VideoStatusApproved, models.VideoStatusRejected} {
		v := &models.Video{Status: status}
		err := ApproveVideo(v, 7)
		var validationErr *ValidationError
		require.Error(t, err, "status %s", status)
		assert.True(t, errors.As(err, &validationErr))
		assert.Equal(t, status, v.Status)
	}
}

func TestRejectVideoOnlyWhenPending(t *testing.T) {
	for _, status := range []string{models.VideoStatusApproved, models.VideoStatusRejected} {
		v := &models.Video{Status: status}
		err := RejectVideo(v, 7, "changed my mind")
		var validationErr *ValidationError
		require.Error(t, err, "status %s", status)
		assert.True(t, errors.As(err, &validationErr))
		assert.Equal(t, status, v.Status)
		assert.Nil(t, v.AdminComment)
	}
}

func TestRejectVideoRequiresComment(t *testing.T) {
	v := &models.Video{Status: models.VideoStatusPending}

	err := RejectVideo(v, 7, "   ")
	var validationErr *ValidationError
	require.Error(t, err)
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "comment", validationErr.Field)
	assert.Equal(t, models.VideoStatusPending, v.Status)
}

func TestRejectVideoStoresComment(t *testing.T) {
	v := &models.Video{Status: models.VideoStatusPending}

	require.NoError(t, RejectVideo(v, 7, "  audio is missing  "))
	assert.Equal(t, models.VideoStatusRejected, v.Status)
	require.NotNil(t, v.AdminComment)
	assert.Equal(t, "audio is missing", *v.AdminComment)
}

func TestResubmitVideoResetsReviewFields(t *testing.T) {
	comment := "too dark"
	reviewer := uint(3)
	v := &models.Video{
		Status:       models.VideoStatusRejected,
		Title:        "old title",
		AdminComment: &comment,
		ReviewedByID: &reviewer,
	}

	require.NoError(t, ResubmitVideo(v, VideoResubmission{
		Title:    "new title",
		FilePath: "videos/key",
		FileName: "take2.mp4",
		FileSize: 2048,
		FileType: "video/mp4",
	}))
	assert.Equal(t, models.VideoStatusPending, v.Status)
	assert.Equal(t, "new title", v.Title)
	assert.Equal(t, "videos/key", v.FilePath)
	assert.Nil(t, v.AdminComment)
	assert.Nil(t, v.ReviewedAt)
	assert.Nil(t, v.ReviewedByID)
	assert.False(t, v.SubmittedAt.IsZero())
}

func TestResubmitVideoWithLinkClearsFile(t *testing.T) {
	v := &models.Video{
		Status:   models.VideoStatusRejected,
		Title:    "original",
		FilePath: "videos/old-key",
		FileName: "take1.mp4",
		FileSize: 1024,
		FileType: "video/mp4",
	}

	require.NoError(t, ResubmitVideo(v, VideoResubmission{VideoURL: "https://www.tiktok.com/@me/video/2"}))
	assert.Equal(t, models.VideoStatusPending, v.Status)
	assert.Equal(t, "https://www.tiktok.com/@me/video/2", v.VideoURL)
	assert.Empty(t, v.FilePath)
	assert.Empty(t, v.FileName)
	assert.Zero(t, v.FileSize)
}

func TestResubmitVideoRequiresSource(t *testing.T) {
	v := &models.Video{Status: models.VideoStatusRejected}

	err := ResubmitVideo(v, VideoResubmission{Title: "new title"})
	var validationErr *ValidationError
	require.Error(t, err)
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "source", validationErr.Field)
	assert.Equal(t, models.VideoStatusRejected, v.Status)
}

func TestResubmitVideoKeepsTitleWhenEmpty(t *testing.T) {
	v := &models.Video{Status: models.VideoStatusRejected, Title: "original"}

	require.NoError(t, ResubmitVideo(v, VideoResubmission{
		Title:    "  ",
		FilePath: "videos/key",
		FileName: "take2.mp4",
		FileSize: 2048,
		FileType: "video/mp4",
	}))
	assert.Equal(t, "original", v.Title)
}

func TestResubmitVideoOnlyWhenRejected(t *testing.T) {
	for _, status := range []string{models.VideoStatusPending, models.VideoStatusApproved} {
		v := &models.Video{Status: status}
		err := ResubmitVideo(v, VideoResubmission{FilePath: "p", FileName: "f", FileSize: 1, FileType: "video/mp4"})
		var eligErr *EligibilityError
		require.Error(t, err, "status %s", status)
		assert.True(t, errors.As(err, &eligErr))
	}
}

func TestDeclineInvoiceRequiresComment(t *testing.T) {
	i := &models.Invoice{Status: models.InvoiceStatusPending}

	err := DeclineInvoice(i, 7, "")
	var validationErr *ValidationError
	require.Error(t, err)
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "comment", validationErr.Field)
}

func TestApproveInvoiceClearsStaleComment(t *testing.T) {
	comment := "wrong billing period"
	i := &models.Invoice{Status: models.InvoiceStatusPending, AdminComment: &comment}

	require.NoError(t, ApproveInvoice(i, 7))
	assert.Equal(t, models.InvoiceStatusApproved, i.Status)
	assert.Nil(t, i.AdminComment)
}

func TestApproveInvoiceOnlyWhenPending(t *testing.T) {
	for _, status := range []string{models.InvoiceStatusApproved, models.InvoiceStatusDeclined} {
		i := &models.Invoice{Status: status}
		err := ApproveInvoice(i, 7)
		var validationErr *ValidationError
		require.Error(t, err, "status %s", status)
		assert.True(t, errors.As(err, &validationErr))
		assert.Equal(t, status, i.Status)
	}
}

func TestDeclineInvoiceOnlyWhenPending(t *testing.T) {
	for _, status := range []string{models.InvoiceStatusApproved, models.InvoiceStatusDeclined} {
		i := &models.Invoice{Status: status}
		err := DeclineInvoice(i, 7, "missing receipts")
		var validationErr *ValidationError
		require.Error(t, err, "status %s", status)
		assert.True(t, errors.As(err, &validationErr))
		assert.Equal(t, status, i.Status)
		assert.Nil(t, i.AdminComment)
	}
}

func TestReuploadInvoiceOnlyWhenDeclined(t *testing.T) {
	i := &models.Invoice{Status: models.InvoiceStatusPending}
	err := ReuploadInvoice(i, "invoices/key", "fixed.pdf", 512)
	var eligErr *EligibilityError
	require.Error(t, err)
	assert.True(t, errors.As(err, &eligErr))
}

func TestReuploadInvoiceResetsReviewFields(t *testing.T) {
	comment := "missing receipts"
	i := &models.Invoice{
		Status:       models.InvoiceStatusDeclined,
		Description:  "Review visit at The Ivy",
		AdminComment: &comment,
	}

	require.NoError(t, ReuploadInvoice(i, "invoices/key", "fixed.pdf", 512))
	assert.Equal(t, models.InvoiceStatusPending, i.Status)
	assert.Equal(t, "invoices/key", i.FilePath)
	assert.Equal(t, "Review visit at The Ivy", i.Description)
	assert.Nil(t, i.AdminComment)
	assert.Nil(t, i.ReviewedAt)
	assert.Nil(t, i.ReviewedByID)
}

func TestValidateInvoiceType(t *testing.T) {
	assert.NoError(t, ValidateInvoiceType(models.InvoiceTypeReferralPayout))
	assert.NoError(t, ValidateInvoiceType(models.InvoiceTypeFoodExpense))
	assert.Error(t, ValidateInvoiceType("mileage"))
	assert.Error(t, ValidateInvoiceType(""))
}

func TestValidateCurrency(t *testing.T) {
	assert.NoError(t, ValidateCurrency(models.CurrencyGBP))
	assert.NoError(t, ValidateCurrency(models.CurrencyEUR))
	assert.Error(t, ValidateCurrency("USD"))
}
