package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/mamadbah2/poultry/internal/config"
	"github.com/mamadbah2/poultry/internal/service/reports"
)

// exportRange is the sheet tab reports are appended to.
const exportRange = "Reports!A:E"

// ExportRepository appends generated reports to a Google Sheets spreadsheet.
type ExportRepository struct {
	service       *sheetsapi.Service
	spreadsheetID string
	logger        *zap.Logger
}

// NewExportRepository builds a Google Sheets backed report exporter.
func NewExportRepository(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (*ExportRepository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &ExportRepository{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        logger,
	}, nil
}

// AppendReport appends one row per report: generation time, type, period, and
// the summary serialized as JSON.
func (r *ExportRepository) AppendReport(ctx context.Context, report reports.Report) error {
	summary, err := json.Marshal(report.Summary)
	if err != nil {
		return fmt.Errorf("encode report summary: %w", err)
	}

	row := []interface{}{
		time.Now().Format(time.RFC3339),
		report.Type,
		report.DateRange.StartDate,
		report.DateRange.EndDate,
		string(summary),
	}
	payload := &sheetsapi.ValueRange{Values: [][]interface{}{row}}

	call := r.service.Spreadsheets.Values.Append(r.spreadsheetID, exportRange, payload).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("append report row: %w", err)
	}

	r.logger.Debug("report row appended", zap.String("type", report.Type))
	return nil
}
