package backend

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/finsight/dashboard/internal/errors"
)

// FinancialSummary fetches the dashboard headline data
// (GET /api/financial/summary).
func (c *Client) FinancialSummary(ctx context.Context) (*FinancialSummary, error) {
	var summary FinancialSummary
	if err := c.getAuthed(ctx, "/api/financial/summary", &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// RiskAssessment fetches the current risk assessment
// (GET /api/analysis/risk).
func (c *Client) RiskAssessment(ctx context.Context) (*RiskAssessment, error) {
	var assessment RiskAssessment
	if err := c.getAuthed(ctx, "/api/analysis/risk", &assessment); err != nil {
		return nil, err
	}
	return &assessment, nil
}

// ListReports fetches the generated-reports list (GET /api/reports/).
func (c *Client) ListReports(ctx context.Context) (*ReportList, error) {
	var list ReportList
	if err := c.getAuthed(ctx, "/api/reports/", &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GenerateReport asks the backend to produce a new report
// (POST /api/reports/generate).
func (c *Client) GenerateReport(ctx context.Context, req ReportRequest) (*ReportSummary, error) {
	var summary ReportSummary
	if err := c.postAuthed(ctx, "/api/reports/generate", req, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// UploadHistory fetches previously uploaded statements
// (GET /api/upload/history).
func (c *Client) UploadHistory(ctx context.Context) (*UploadHistory, error) {
	var history UploadHistory
	if err := c.getAuthed(ctx, "/api/upload/history", &history); err != nil {
		return nil, err
	}
	return &history, nil
}

// UploadStatement streams a financial statement to the backend for
// processing (POST /api/upload/statement, multipart).
func (c *Client) UploadStatement(ctx context.Context, filename string, file io.Reader) (*UploadRecord, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		part, err := mw.CreateFormFile("file", filename)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, file); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(mw.Close())
	}()

	req, err := c.newRequest(ctx, http.MethodPost, "/api/upload/statement", pr)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var record UploadRecord
	if err := c.doAuthed(req, &record); err != nil {
		return nil, errors.Wrapf(err, "[Client.UploadStatement] %s", filename)
	}
	return &record, nil
}

// supported statement extensions, mirrored from the backend's file processor
var supportedStatementExts = map[string]bool{
	".csv":  true,
	".xlsx": true,
	".xls":  true,
	".pdf":  true,
}

// ValidateStatementFilename rejects unsupported statement types before any
// bytes are sent.
func ValidateStatementFilename(filename string) error {
	for ext := range supportedStatementExts {
		if len(filename) > len(ext) && filename[len(filename)-len(ext):] == ext {
			return nil
		}
	}
	return fmt.Errorf("unsupported file type %q: expected csv, xlsx, xls or pdf", filename)
}
