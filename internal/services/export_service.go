package services

import (
	"sort"
	"time"

	"github.com/solenelark/glowlog/internal/models"
)

var ExportCSVHeaders = []string{
	"Date",
	"Step",
	"Category",
	"Time of day",
	"Status",
	"Product used",
}

type ExportCompletionReader interface {
	ListByUser(userID uint) ([]models.CompletionRecord, error)
}

type ExportService struct {
	steps       RoutineStepReader
	completions ExportCompletionReader
	products    ProductStore
}

type ExportSummary struct {
	TotalEntries int    `json:"total_entries"`
	HasData      bool   `json:"has_data"`
	DateFrom     string `json:"date_from,omitempty"`
	DateTo       string `json:"date_to,omitempty"`
}

type ExportHistoryRow struct {
	Date        string `json:"date"`
	Step        string `json:"step"`
	Category    string `json:"category"`
	TimeOfDay   string `json:"time_of_day"`
	Status      string `json:"status"`
	ProductUsed string `json:"product_used,omitempty"`
}

type ExportBundle struct {
	Steps    []models.RoutineStep `json:"steps"`
	Products []models.Product     `json:"products"`
	History  []ExportHistoryRow   `json:"history"`
}

func NewExportService(steps RoutineStepReader, completions ExportCompletionReader, products ProductStore) *ExportService {
	return &ExportService{steps: steps, completions: completions, products: products}
}

func (service *ExportService) BuildSummary(userID uint) (ExportSummary, error) {
	records, err := service.completions.ListByUser(userID)
	if err != nil {
		return ExportSummary{}, err
	}

	summary := ExportSummary{TotalEntries: len(records), HasData: len(records) > 0}
	if len(records) == 0 {
		return summary, nil
	}

	first, last := records[0].Date, records[0].Date
	for _, record := range records[1:] {
		if record.Date.Before(first) {
			first = record.Date
		}
		if record.Date.After(last) {
			last = record.Date
		}
	}
	summary.DateFrom = FormatDay(first)
	summary.DateTo = FormatDay(last)
	return summary, nil
}

// BuildHistory flattens completion records into dated rows joined with their
// step's display fields, oldest first.
func (service *ExportService) BuildHistory(userID uint) ([]ExportHistoryRow, error) {
	steps, err := service.steps.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	records, err := service.completions.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	stepByID := make(map[uint]models.RoutineStep, len(steps))
	for _, step := range steps {
		stepByID[step.ID] = step
	}

	rows := make([]ExportHistoryRow, 0, len(records))
	for _, record := range records {
		row := ExportHistoryRow{
			Date:        FormatDay(record.Date),
			Status:      record.Status,
			ProductUsed: record.ProductUsed,
		}
		if step, ok := stepByID[record.StepID]; ok {
			row.Step = step.Name
			row.Category = string(step.Category)
			row.TimeOfDay = string(step.TimeOfDay)
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date < rows[j].Date
	})
	return rows, nil
}

func (service *ExportService) BuildBundle(userID uint) (ExportBundle, error) {
	steps, err := service.steps.ListByUser(userID)
	if err != nil {
		return ExportBundle{}, err
	}
	products, err := service.products.ListByUser(userID)
	if err != nil {
		return ExportBundle{}, err
	}
	history, err := service.BuildHistory(userID)
	if err != nil {
		return ExportBundle{}, err
	}
	return ExportBundle{Steps: steps, Products: products, History: history}, nil
}

func (row ExportHistoryRow) CSVRecord() []string {
	return []string{row.Date, row.Step, row.Category, row.TimeOfDay, row.Status, row.ProductUsed}
}

// ExportFileName stamps the export with the generation day.
func ExportFileName(prefix string, extension string, now time.Time) string {
	return prefix + "-" + now.Format("2006-01-02") + "." + extension
}
