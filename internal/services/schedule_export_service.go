package services

import (
	"fmt"
	"io"
	"time"

	"github.com/alimgiray/menuhub/internal/models"
	"github.com/alimgiray/menuhub/internal/repositories"
	"github.com/xuri/excelize/v2"
)

const (
	sheetOpeningHours  = "Opening Hours"
	sheetModeSchedules = "Mode Schedules"
	sheetSpecialHours  = "Special Hours"
)

// ScheduleExportService renders a merchant's schedules as an .xlsx workbook
type ScheduleExportService struct {
	merchantRepo     *repositories.MerchantRepository
	openingHourRepo  *repositories.OpeningHourRepository
	modeScheduleRepo *repositories.ModeScheduleRepository
	specialHourRepo  *repositories.SpecialHourRepository
}

func NewScheduleExportService(
	merchantRepo *repositories.MerchantRepository,
	openingHourRepo *repositories.OpeningHourRepository,
	modeScheduleRepo *repositories.ModeScheduleRepository,
	specialHourRepo *repositories.SpecialHourRepository,
) *ScheduleExportService {
	return &ScheduleExportService{
		merchantRepo:     merchantRepo,
		openingHourRepo:  openingHourRepo,
		modeScheduleRepo: modeScheduleRepo,
		specialHourRepo:  specialHourRepo,
	}
}

// FileName is the attachment name of a merchant's export
func FileName(merchant *models.Merchant) string {
	return fmt.Sprintf("%s-schedule.xlsx", merchant.Code)
}

// Export writes the workbook to w
func (s *ScheduleExportService) Export(merchantID string, w io.Writer) (*models.Merchant, error) {
	merchant, err := s.merchantRepo.GetByID(merchantID)
	if err != nil {
		return nil, err
	}
	if merchant == nil {
		return nil, ErrMerchantNotFound
	}

	openingHours, err := s.openingHourRepo.GetByMerchantID(merchantID)
	if err != nil {
		return nil, err
	}
	modeSchedules, err := s.modeScheduleRepo.GetByMerchantID(merchantID)
	if err != nil {
		return nil, err
	}
	specialHours, err := s.specialHourRepo.ListRange(merchantID, "", "")
	if err != nil {
		return nil, err
	}

	wb := newWorkbook()
	defer wb.file.Close()

	if err := wb.addSheet(sheetOpeningHours, []string{"Day", "Closed", "24 Hours", "Open", "Close"}); err != nil {
		return nil, err
	}
	for _, h := range openingHours {
		if err := wb.writeRow(time.Weekday(h.DayOfWeek).String(), yesNo(h.IsClosed), yesNo(h.Is24Hours), deref(h.OpenTime), deref(h.CloseTime)); err != nil {
			return nil, err
		}
	}

	if err := wb.addSheet(sheetModeSchedules, []string{"Mode", "Day", "Start", "End", "Active"}); err != nil {
		return nil, err
	}
	for _, m := range modeSchedules {
		if err := wb.writeRow(m.Mode.Label(), time.Weekday(m.DayOfWeek).String(), m.StartTime, m.EndTime, yesNo(m.IsActive)); err != nil {
			return nil, err
		}
	}

	if err := wb.addSheet(sheetSpecialHours, []string{"Date", "Name", "Closed", "Open", "Close", "Dine In", "Takeaway", "Delivery"}); err != nil {
		return nil, err
	}
	for _, sh := range specialHours {
		row := []interface{}{sh.Date, sh.DisplayName(), yesNo(sh.IsClosed), deref(sh.OpenTime), deref(sh.CloseTime)}
		for _, mode := range models.OrderModes {
			row = append(row, describeModeOverride(sh.ModeOverride(mode)))
		}
		if err := wb.writeRow(row...); err != nil {
			return nil, err
		}
	}

	if err := wb.file.Write(w); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return merchant, nil
}

type workbook struct {
	file  *excelize.File
	sheet string
	row   int
}

func newWorkbook() *workbook {
	return &workbook{file: excelize.NewFile()}
}

// addSheet starts a sheet with a bold header row. The default sheet is renamed for the first one.
func (w *workbook) addSheet(name string, columns []string) error {
	if w.sheet == "" {
		if err := w.file.SetSheetName("Sheet1", name); err != nil {
			return fmt.Errorf("rename sheet %s: %w", name, err)
		}
	} else if _, err := w.file.NewSheet(name); err != nil {
		return fmt.Errorf("create sheet %s: %w", name, err)
	}
	w.sheet = name
	w.row = 1

	header := make([]interface{}, len(columns))
	for i, col := range columns {
		header[i] = col
	}
	if err := w.writeRow(header...); err != nil {
		return err
	}

	style, err := w.file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		endCell, _ := excelize.CoordinatesToCellName(len(columns), 1)
		_ = w.file.SetCellStyle(name, "A1", endCell, style)
	}
	return nil
}

func (w *workbook) writeRow(values ...interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, w.row)
	if err != nil {
		return err
	}
	if err := w.file.SetSheetRow(w.sheet, cell, &values); err != nil {
		return fmt.Errorf("write row %d of %s: %w", w.row, w.sheet, err)
	}
	w.row++
	return nil
}

func describeModeOverride(enabled *bool, start, end *string) string {
	switch {
	case enabled == nil:
		return ""
	case !*enabled:
		return "Disabled"
	case start != nil && end != nil:
		return *start + " - " + *end
	default:
		return "Enabled"
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
