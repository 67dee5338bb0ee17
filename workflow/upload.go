package workflow

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	mserrors "github.com/otherjamesbrown/meetsum-cli/pkg/errors"
	"github.com/otherjamesbrown/meetsum-cli/pkg/logging"
)

// MaxUploadSize is the largest PDF the backend accepts. Files of exactly
// this size are allowed.
const MaxUploadSize = 10 << 20 // 10 MiB

// pdfMediaType is the only media type accepted for upload.
const pdfMediaType = "application/pdf"

// Upload describes a file selected for upload.
type Upload struct {
	// Name is the file name sent to the backend.
	Name string

	// Size is the declared size in bytes.
	Size int64

	// ContentType is the declared media type.
	ContentType string

	// Reader supplies the file content.
	Reader io.Reader
}

// OpenFile prepares an Upload from a path on disk, deriving the media
// type from the file extension the way a browser derives it from the
// file. The returned close func must be called after the upload.
func OpenFile(path string) (Upload, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return Upload{}, nil, fmt.Errorf("opening %s: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return Upload{}, nil, fmt.Errorf("stating %s: %w", path, err)
	}

	contentType := ""
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		contentType = pdfMediaType
	}

	return Upload{
		Name:        filepath.Base(path),
		Size:        info.Size(),
		ContentType: contentType,
		Reader:      f,
	}, f.Close, nil
}

// UploadPDF validates the file, uploads it, seeds the session transcript
// and meeting identifier from the extraction result, and then chains
// straight into summary generation. Validation failures make no network
// call and leave the session untouched.
func (c *Controller) UploadPDF(ctx context.Context, file Upload) error {
	// Client-local constraints, checked before any request.
	if file.ContentType != pdfMediaType {
		c.notifyError("Invalid file type", "Please upload a PDF file only.")
		return fmt.Errorf("file %s has media type %q: %w", file.Name, file.ContentType, mserrors.ErrValidation)
	}
	if file.Size > MaxUploadSize {
		c.notifyError("File too large", "Please upload a PDF file smaller than 10MB.")
		return fmt.Errorf("file %s is %d bytes (limit %d): %w", file.Name, file.Size, MaxUploadSize, mserrors.ErrValidation)
	}

	c.mu.Lock()
	if c.uploadPhase == PhaseRunning {
		c.mu.Unlock()
		return fmt.Errorf("upload of another file in flight: %w", mserrors.ErrBusy)
	}
	c.uploadPhase = PhaseRunning
	c.mu.Unlock()

	c.logger.Info("starting PDF upload", logging.F("file", file.Name), logging.F("size", file.Size))

	result, err := c.api.UploadPDF(ctx, file.Name, file.Reader)
	if err != nil {
		c.mu.Lock()
		c.uploadPhase = PhaseError
		c.mu.Unlock()

		c.logger.Error("PDF upload failed", logging.F("file", file.Name), logging.Err(err))
		c.notifyError("PDF upload failed", err.Error())
		return fmt.Errorf("uploading %s: %w", file.Name, err)
	}

	c.mu.Lock()
	c.transcript = result.Meeting.Transcript
	c.meetingID = result.Meeting.ID
	c.uploadPhase = PhaseSuccess
	c.mu.Unlock()

	c.logger.Info("PDF upload successful",
		logging.F("meeting_id", result.Meeting.ID),
		logging.F("chars", result.ExtractedTextLength),
		logging.F("pages", result.NumPages))
	c.notifySuccess("PDF uploaded successfully!",
		fmt.Sprintf("Extracted %d characters from %d pages.", result.ExtractedTextLength, result.NumPages))

	// Auto-chain: the user does not need a second action to get a summary.
	return c.GenerateSummary(ctx)
}
