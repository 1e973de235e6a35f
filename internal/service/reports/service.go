package reports

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/poultry/internal/domain/models"
	"github.com/mamadbah2/poultry/internal/service/eggs"
	"github.com/mamadbah2/poultry/internal/service/feed"
	"github.com/mamadbah2/poultry/internal/service/mortality"
)

// Report type tags accepted by Generate.
const (
	TypeProduction    = "production"
	TypeFeed          = "feed"
	TypeMortality     = "mortality"
	TypeFinancial     = "financial"
	TypeComprehensive = "comprehensive"
)

// Fixed figures carried over from the manual bookkeeping era. They are not
// derived from stored data and must not be read as live telemetry.
const (
	placeholderTotalConsumption = 842
	placeholderAvgConsumption   = 120
	placeholderCommonCause      = "Natural causes"
	placeholderRevenue          = 8250
	placeholderExpenses         = 4210
	placeholderNetProfit        = 4040
	placeholderProfitMargin     = 49
)

// Exporter pushes a generated report to an external destination.
type Exporter interface {
	AppendReport(ctx context.Context, report Report) error
}

// Service filters the entity collections by date range and computes
// type-specific summaries.
type Service struct {
	eggStore       eggs.Store
	feedStore      feed.Store
	mortalityStore mortality.Store
	exporter       Exporter
	logger         *zap.Logger
}

// NewService wires a new report generator. exporter may be nil when no export
// backend is configured.
func NewService(eggStore eggs.Store, feedStore feed.Store, mortalityStore mortality.Store, exporter Exporter, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		eggStore:       eggStore,
		feedStore:      feedStore,
		mortalityStore: mortalityStore,
		exporter:       exporter,
		logger:         logger,
	}
}

// DateRange echoes the requested period back to the client.
type DateRange struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// Report is a generated summary for one type tag and period.
type Report struct {
	Type      string    `json:"type"`
	DateRange DateRange `json:"dateRange"`
	Summary   any       `json:"summary"`
}

// ProductionSummary reports egg totals over the range.
type ProductionSummary struct {
	TotalEggs     int    `json:"totalEggs"`
	BrokenEggs    int    `json:"brokenEggs"`
	AveragePerDay int    `json:"averagePerDay"`
	SuccessRate   string `json:"successRate"`
}

// FeedSummary reports purchases over the range. Consumption figures are
// placeholders.
type FeedSummary struct {
	TotalStock         float64 `json:"totalStock"`
	TotalConsumption   int     `json:"totalConsumption"`
	AverageConsumption int     `json:"averageConsumption"`
	StockValue         float64 `json:"stockValue"`
}

// MortalitySummary reports losses over the range. CommonCause is a
// placeholder, not computed from the cause field.
type MortalitySummary struct {
	TotalDeaths   int            `json:"totalDeaths"`
	ByAge         map[string]int `json:"byAge"`
	MortalityRate string         `json:"mortalityRate"`
	CommonCause   string         `json:"commonCause"`
}

// FinancialSummary is entirely placeholder data; there is no financial
// collection backing it.
type FinancialSummary struct {
	Revenue      int `json:"revenue"`
	Expenses     int `json:"expenses"`
	NetProfit    int `json:"netProfit"`
	ProfitMargin int `json:"profitMargin"`
}

// ComprehensiveSummary combines headline figures from all three collections.
type ComprehensiveSummary struct {
	Production struct {
		TotalEggs int `json:"totalEggs"`
	} `json:"production"`
	FeedStock float64 `json:"feedStock"`
	Mortality int     `json:"mortality"`
}

// Generate builds the summary for one report type over the given period.
// endDate is inclusive through the end of that calendar day. An unknown type
// yields models.ErrInvalidReportType.
func (s *Service) Generate(ctx context.Context, reportType, startDate, endDate string) (Report, error) {
	start, end, err := parseRange(startDate, endDate)
	if err != nil {
		return Report{}, err
	}

	report := Report{
		Type:      reportType,
		DateRange: DateRange{StartDate: startDate, EndDate: endDate},
	}

	switch reportType {
	case TypeProduction:
		report.Summary, err = s.productionSummary(ctx, start, end)
	case TypeFeed:
		report.Summary, err = s.feedSummary(ctx, start, end)
	case TypeMortality:
		report.Summary, err = s.mortalitySummary(ctx, start, end)
	case TypeFinancial:
		report.Summary = FinancialSummary{
			Revenue:      placeholderRevenue,
			Expenses:     placeholderExpenses,
			NetProfit:    placeholderNetProfit,
			ProfitMargin: placeholderProfitMargin,
		}
	case TypeComprehensive:
		report.Summary, err = s.comprehensiveSummary(ctx, start, end)
	default:
		return Report{}, models.ErrInvalidReportType
	}
	if err != nil {
		return Report{}, err
	}

	return report, nil
}

// ExportResult is the response of an export request.
type ExportResult struct {
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	DateRange DateRange `json:"dateRange"`
}

// Export pushes a generated report to the configured backend when one exists
// for the format. Every other format answers with a placeholder message; no
// file is produced.
func (s *Service) Export(ctx context.Context, format, reportType, startDate, endDate string) (ExportResult, error) {
	result := ExportResult{
		Message:   fmt.Sprintf("Export to %s functionality would be implemented here", format),
		Type:      reportType,
		DateRange: DateRange{StartDate: startDate, EndDate: endDate},
	}

	if format != "sheets" || s.exporter == nil {
		return result, nil
	}

	report, err := s.Generate(ctx, reportType, startDate, endDate)
	if err != nil {
		return ExportResult{}, err
	}

	if err := s.exporter.AppendReport(ctx, report); err != nil {
		return ExportResult{}, fmt.Errorf("export report to sheets: %w", err)
	}

	s.logger.Info("report exported", zap.String("type", reportType), zap.String("format", format))
	result.Message = "Report exported to Google Sheets"
	return result, nil
}

func (s *Service) productionSummary(ctx context.Context, start, end time.Time) (ProductionSummary, error) {
	records, err := s.eggStore.FindByDateRange(ctx, start, end)
	if err != nil {
		return ProductionSummary{}, fmt.Errorf("load egg productions: %w", err)
	}

	var totalEggs, brokenEggs int
	for _, record := range records {
		totalEggs += record.TotalEggs
		brokenEggs += record.BrokenEggs
	}

	var avgPerDay int
	if len(records) > 0 {
		avgPerDay = int(math.Round(float64(totalEggs) / float64(len(records))))
	}

	return ProductionSummary{
		TotalEggs:     totalEggs,
		BrokenEggs:    brokenEggs,
		AveragePerDay: avgPerDay,
		SuccessRate:   eggs.SuccessRate(totalEggs, brokenEggs),
	}, nil
}

func (s *Service) feedSummary(ctx context.Context, start, end time.Time) (FeedSummary, error) {
	stocks, err := s.feedStore.FindByPurchaseRange(ctx, start, end)
	if err != nil {
		return FeedSummary{}, fmt.Errorf("load feed purchases: %w", err)
	}

	var totalStock, stockValue float64
	for _, stock := range stocks {
		totalStock += stock.Quantity
		stockValue += stock.Quantity * stock.CostPerUnit
	}

	return FeedSummary{
		TotalStock:         totalStock,
		TotalConsumption:   placeholderTotalConsumption,
		AverageConsumption: placeholderAvgConsumption,
		StockValue:         stockValue,
	}, nil
}

func (s *Service) mortalitySummary(ctx context.Context, start, end time.Time) (MortalitySummary, error) {
	records, err := s.mortalityStore.FindByDateRange(ctx, start, end)
	if err != nil {
		return MortalitySummary{}, fmt.Errorf("load mortality records: %w", err)
	}

	totalDeaths := 0
	byAge := map[string]int{}
	for _, record := range records {
		totalDeaths += record.Count
		byAge[record.AgeGroup] += record.Count
	}

	rate := float64(totalDeaths) / float64(models.FlockSize) * 100

	return MortalitySummary{
		TotalDeaths:   totalDeaths,
		ByAge:         byAge,
		MortalityRate: fmt.Sprintf("%.1f", rate),
		CommonCause:   placeholderCommonCause,
	}, nil
}

func (s *Service) comprehensiveSummary(ctx context.Context, start, end time.Time) (ComprehensiveSummary, error) {
	var summary ComprehensiveSummary

	eggRecords, err := s.eggStore.FindByDateRange(ctx, start, end)
	if err != nil {
		return summary, fmt.Errorf("load egg productions: %w", err)
	}
	for _, record := range eggRecords {
		summary.Production.TotalEggs += record.TotalEggs
	}

	// The feed figure is deliberately unbounded; stock on hand is not a
	// per-period quantity.
	stocks, err := s.feedStore.ListAll(ctx)
	if err != nil {
		return summary, fmt.Errorf("load feed stocks: %w", err)
	}
	for _, stock := range stocks {
		summary.FeedStock += stock.Quantity
	}

	mortalityRecords, err := s.mortalityStore.FindByDateRange(ctx, start, end)
	if err != nil {
		return summary, fmt.Errorf("load mortality records: %w", err)
	}
	for _, record := range mortalityRecords {
		summary.Mortality += record.Count
	}

	return summary, nil
}

// parseRange parses the period bounds, pushing the end to the last instant of
// its calendar day.
func parseRange(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := models.ParseDate(startDate)
	if err != nil {
		verr := &models.ValidationError{}
		verr.Add("startDate", err.Error())
		return time.Time{}, time.Time{}, verr
	}

	end, err := models.ParseDate(endDate)
	if err != nil {
		verr := &models.ValidationError{}
		verr.Add("endDate", err.Error())
		return time.Time{}, time.Time{}, verr
	}

	end = time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 999000000, end.Location())
	return start, end, nil
}
