// Package client provides the HTTP client for the Meeting Summarizer backend API.
// This file contains the PDF upload method.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// uploadFieldName is the multipart form field the backend expects the
// PDF under.
const uploadFieldName = "pdf"

// UploadedMeeting is the meeting stub the backend creates from an
// uploaded PDF.
type UploadedMeeting struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Transcript string `json:"transcript"`
	Status     string `json:"status"`
}

// PDFUploadResult is the backend's response to a PDF upload. It is
// ephemeral: the workflow consumes it immediately to seed the session.
type PDFUploadResult struct {
	Message             string          `json:"message"`
	Meeting             UploadedMeeting `json:"meeting"`
	ExtractedTextLength int             `json:"extractedTextLength"`
	NumPages            int             `json:"numPages"`
}

// UploadPDF transmits the file as multipart form data and returns the
// extraction result. File type and size limits are enforced by the
// workflow layer before this call.
func (c *APIClient) UploadPDF(ctx context.Context, filename string, file io.Reader) (*PDFUploadResult, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(uploadFieldName, filename)
	if err != nil {
		return nil, fmt.Errorf("creating form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finalizing multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/meetings/upload-pdf", &buf)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var result PDFUploadResult
	if err := c.send(req, &result); err != nil {
		return nil, fmt.Errorf("uploading %s: %w", filename, err)
	}
	return &result, nil
}
