package upload

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"
)

// MaxVideoSize is the upload ceiling for creator videos (500 MB).
const MaxVideoSize = 500 * 1024 * 1024

// MaxInvoiceSize is the upload ceiling for invoice documents (10 MB).
const MaxInvoiceSize = 10 * 1024 * 1024

var allowedVideoExt = map[string]bool{
	".mp4": true,
	".mov": true,
}

var allowedVideoMime = map[string]bool{
	"video/mp4":       true,
	"video/quicktime": true,
}

// ValidateVideoBySniff checks the provided filename (extension) and the first bytes (head)
// against the supported video types. Returns detected mime or an error.
func ValidateVideoBySniff(filename string, head []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedVideoExt[ext] {
		return "", errors.New("only MP4 and MOV videos are supported")
	}

	detected := http.DetectContentType(head)

	// Block obvious scriptable types regardless of extension
	if strings.HasPrefix(detected, "text/html") || strings.HasPrefix(detected, "application/xhtml") {
		return "", errors.New("invalid file type: HTML content is not allowed")
	}

	// MOV and some MP4 variants may return octet-stream depending on Go version; allow by extension
	if detected == "application/octet-stream" && allowedVideoExt[ext] {
		return detected, nil
	}

	if allowedVideoMime[detected] {
		return detected, nil
	}

	return "", errors.New("this file type is not supported")
}

// ValidateInvoiceBySniff checks that the uploaded invoice is a PDF document.
func ValidateInvoiceBySniff(filename string, head []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".pdf" {
		return "", errors.New("invoices must be uploaded as PDF")
	}

	detected := http.DetectContentType(head)
	if detected == "application/pdf" {
		return detected, nil
	}
	// http.DetectContentType only knows %PDF- prefixed files; anything else
	// with a .pdf extension is not a real PDF.
	return "", errors.New("the uploaded file is not a valid PDF")
}

// ValidateVideoSize checks the upload against the video size ceiling.
func ValidateVideoSize(size int64) error {
	if size > MaxVideoSize {
		return errors.New("videos must be 500MB or smaller")
	}
	return nil
}

// ValidateInvoiceSize checks the upload against the invoice size ceiling.
func ValidateInvoiceSize(size int64) error {
	if size > MaxInvoiceSize {
		return errors.New("invoice documents must be 10MB or smaller")
	}
	return nil
}
