package review

import (
	"strings"
	"time"

	"github.com/neotaste/creator-portal/app/models"
)

// CanSubmitNewVideo decides whether a creator may open a fresh video slot.
// A pending video blocks until it is reviewed; a rejected video blocks
// until it is resubmitted in place.
func CanSubmitNewVideo(videos []models.Video) error {
	for _, v := range videos {
		switch v.Status {
		case models.VideoStatusPending:
			return &EligibilityError{Reason: "you already have a video awaiting review"}
		case models.VideoStatusRejected:
			return &EligibilityError{Reason: "please resubmit your rejected video before uploading a new one"}
		}
	}
	return nil
}

// IsEligibleForExpense reports whether an approved video can still back a
// food expense invoice.
func IsEligibleForExpense(v *models.Video) bool {
	return v.Status == models.VideoStatusApproved && !v.InvoiceSubmitted
}

// EligibleVideos filters the videos that can back a food expense invoice.
func EligibleVideos(videos []models.Video) []models.Video {
	eligible := make([]models.Video, 0, len(videos))
	for _, v := range videos {
		if IsEligibleForExpense(&v) {
			eligible = append(eligible, v)
		}
	}
	return eligible
}

// ApproveVideo marks a pending video as approved and clears any stale
// review comment. Approved and rejected are decided states; a rejected
// video re-enters review via resubmission only.
func ApproveVideo(v *models.Video, reviewerID uint) error {
	if v.Status != models.VideoStatusPending {
		return &ValidationError{Field: "status", Message: "only pending videos can be approved"}
	}
	now := time.Now()
	v.Status = models.VideoStatusApproved
	v.AdminComment = nil
	v.ReviewedAt = &now
	v.ReviewedByID = &reviewerID
	return nil
}

// RejectVideo marks a video as rejected. The comment is mandatory so the
// creator knows what to fix.
func RejectVideo(v *models.Video, reviewerID uint, comment string) error {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return &ValidationError{Field: "comment", Message: "a rejection reason is required"}
	}
	if v.Status != models.VideoStatusPending {
		return &ValidationError{Field: "status", Message: "only pending videos can be rejected"}
	}
	now := time.Now()
	v.Status = models.VideoStatusRejected
	v.AdminComment = &comment
	v.ReviewedAt = &now
	v.ReviewedByID = &reviewerID
	return nil
}

// VideoResubmission carries the replacement source for a rejected video.
// Either a pasted link (VideoURL) or an uploaded file (FilePath and the
// file metadata) must be set; the file takes precedence when both are.
type VideoResubmission struct {
	Title       string
	Description string
	VideoURL    string
	FilePath    string
	FileName    string
	FileSize    int64
	FileType    string
}

// ResubmitVideo resets a rejected video back into the review queue with a
// replacement source. Title and description are kept unless new ones are
// given.
func ResubmitVideo(v *models.Video, r VideoResubmission) error {
	if v.Status != models.VideoStatusRejected {
		return &EligibilityError{Reason: "only rejected videos can be resubmitted"}
	}
	r.VideoURL = strings.TrimSpace(r.VideoURL)
	if r.FilePath == "" && r.VideoURL == "" {
		return &ValidationError{Field: "source", Message: "paste a video link or upload a file"}
	}
	if title := strings.TrimSpace(r.Title); title != "" {
		v.Title = title
	}
	if description := strings.TrimSpace(r.Description); description != "" {
		v.Description = description
	}
	if r.FilePath != "" {
		v.FilePath = r.FilePath
		v.FileName = r.FileName
		v.FileSize = r.FileSize
		v.FileType = r.FileType
		v.VideoURL = r.VideoURL
	} else {
		v.VideoURL = r.VideoURL
		v.FilePath = ""
		v.FileName = ""
		v.FileSize = 0
		v.FileType = ""
	}
	v.Status = models.VideoStatusPending
	v.AdminComment = nil
	v.ReviewedAt = nil
	v.ReviewedByID = nil
	v.SubmittedAt = time.Now()
	return nil
}

// ApproveInvoice marks a pending invoice as approved and clears any stale
// review comment. A declined invoice re-enters review via reupload only.
func ApproveInvoice(i *models.Invoice, reviewerID uint) error {
	if i.Status != models.InvoiceStatusPending {
		return &ValidationError{Field: "status", Message: "only pending invoices can be approved"}
	}
	now := time.Now()
	i.Status = models.InvoiceStatusApproved
	i.AdminComment = nil
	i.ReviewedAt = &now
	i.ReviewedByID = &reviewerID
	return nil
}

// DeclineInvoice marks an invoice as declined. The comment is mandatory.
func DeclineInvoice(i *models.Invoice, reviewerID uint, comment string) error {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return &ValidationError{Field: "comment", Message: "a decline reason is required"}
	}
	if i.Status != models.InvoiceStatusPending {
		return &ValidationError{Field: "status", Message: "only pending invoices can be declined"}
	}
	now := time.Now()
	i.Status = models.InvoiceStatusDeclined
	i.AdminComment = &comment
	i.ReviewedAt = &now
	i.ReviewedByID = &reviewerID
	return nil
}

// ReuploadInvoice resets a declined invoice back into the review queue with
// a replacement document.
func ReuploadInvoice(i *models.Invoice, filePath, fileName string, fileSize int64) error {
	if i.Status != models.InvoiceStatusDeclined {
		return &EligibilityError{Reason: "only declined invoices can be reuploaded"}
	}
	i.FilePath = filePath
	i.FileName = fileName
	i.FileSize = fileSize
	i.Status = models.InvoiceStatusPending
	i.AdminComment = nil
	i.ReviewedAt = nil
	i.ReviewedByID = nil
	i.SubmittedAt = time.Now()
	return nil
}

// ValidateInvoiceType checks the submitted invoice type.
func ValidateInvoiceType(t string) error {
	switch t {
	case models.InvoiceTypeReferralPayout, models.InvoiceTypeFoodExpense:
		return nil
	}
	return &ValidationError{Field: "type", Message: "invoice type must be referral_payout or food_expense"}
}

// ValidateCurrency checks the submitted invoice currency.
func ValidateCurrency(c string) error {
	switch c {
	case models.CurrencyGBP, models.CurrencyEUR:
		return nil
	}
	return &ValidationError{Field: "currency", Message: "currency must be GBP or EUR"}
}
