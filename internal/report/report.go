// Package report renders an employee's task list as an Excel workbook,
// one sheet per zone. The bot sends the result as a document.
package report

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Houeta/restobot/internal/models"
	"github.com/Houeta/restobot/internal/roles"
	"github.com/xuri/excelize/v2"
)

var ErrNoTasks = errors.New("failed to generate report, 0 tasks were provided")

// maxSheetNameLen is the sheet name limit imposed by the xlsx format.
const maxSheetNameLen = 31

// Generator holds the state for the Excel report generation process.
type Generator struct {
	file *excelize.File
}

// NewGenerator creates a new report generator.
func NewGenerator() *Generator {
	return &Generator{
		file: excelize.NewFile(),
	}
}

// GenerateExcelReport renders the given tasks into an xlsx workbook with one
// sheet per zone. It returns ErrNoTasks when the task list is empty.
func GenerateExcelReport(tasks []models.Task) (*bytes.Buffer, error) {
	var err error

	if len(tasks) == 0 {
		return nil, ErrNoTasks
	}

	tasksByZone := make(map[string][]models.Task)
	for _, task := range tasks {
		tasksByZone[task.Zone] = append(tasksByZone[task.Zone], task)
	}

	gen := NewGenerator()
	defer gen.file.Close()

	if err = gen.addSheets(tasksByZone); err != nil {
		return nil, fmt.Errorf("failed to add sheets: %w", err)
	}

	// setup first sheet as active
	gen.file.SetActiveSheet(0)

	// delete default sheet
	if sheetIndex, _ := gen.file.GetSheetIndex("Sheet1"); sheetIndex != -1 {
		if err = gen.file.DeleteSheet("Sheet1"); err != nil {
			return nil, fmt.Errorf("failed to delete default sheet 'Sheet1': %w", err)
		}
	}

	buffer, err := gen.file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write data from saved file: %w", err)
	}

	return buffer, nil
}

// addSheets creates one sheet per zone and fills it with the zone's tasks.
func (g *Generator) addSheets(tasksByZone map[string][]models.Task) error {
	var err error
	headerIndex := 2

	for zone, tasksInZone := range tasksByZone {
		sheetName := truncateSheetName(zone)

		if _, err = g.file.NewSheet(sheetName); err != nil {
			return fmt.Errorf("failed to generate new sheet '%s': %w", sheetName, err)
		}

		if err = g.setupSheet(sheetName, len(tasksInZone)); err != nil {
			return fmt.Errorf("failed to setup sheet '%s': %w", sheetName, err)
		}

		// Fill data
		for i, task := range tasksInZone {
			if err = g.addRow(sheetName, i+headerIndex, task); err != nil { // i+2, because the first row - header
				return fmt.Errorf("failed to add row '%d': %w", i+headerIndex, err)
			}
		}
	}
	return nil
}

// setupSheet initializes the specified sheet with headers, styles, and column widths.
func (g *Generator) setupSheet(sheetName string, rowCount int) error {
	var err error

	// Style creating
	headerStyle, err := g.file.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Vertical: "center", Horizontal: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create new style: %w", err)
	}

	// Headers creating
	rowHeight := 20
	headers := []string{"Task ID", "Created", "Title", "Description", "Deadline", "Priority", "From"}
	if err = g.file.SetRowHeight(sheetName, 1, float64(rowHeight)); err != nil {
		return fmt.Errorf("failed to set row height for headers: %w", err)
	}
	if err = g.file.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return fmt.Errorf("failed to set sheet row for headers: %w", err)
	}
	if err = g.file.SetCellStyle(sheetName, "A1", "G1", headerStyle); err != nil {
		return fmt.Errorf("failed to set cell style for headers: %w", err)
	}

	// Setup width column
	widths := map[string]float64{
		"A": 10, "B": 18, "C": 35, "D": 50, "E": 12, "F": 12, "G": 18, //nolint:mnd // const values for row width
	}
	for col, width := range widths {
		if err = g.file.SetColWidth(sheetName, col, col, width); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	// Add table
	if err = g.file.AddTable(sheetName, &excelize.Table{
		Range:     fmt.Sprintf("A1:G%d", rowCount+1),
		Name:      "table_" + strings.ReplaceAll(sheetName, " ", ""),
		StyleName: "TableStyleMedium9",
	}); err != nil {
		return fmt.Errorf("failed to add table: %w", err)
	}

	return nil
}

// addRow adds a new row to the specified sheet with the details of the given task.
func (g *Generator) addRow(sheetName string, rowNum int, task models.Task) error {
	_, priorityLabel := roles.PriorityBadge(task.Priority)
	rowData := []interface{}{
		task.ID,
		task.CreatedAt.Format("02.01.2006"),
		task.Title,
		task.Description,
		task.Deadline,
		priorityLabel,
		task.SenderID,
	}

	cell := fmt.Sprintf("A%d", rowNum)
	if err := g.file.SetSheetRow(sheetName, cell, &rowData); err != nil {
		return fmt.Errorf("failed to set sheet row '%s': %w", cell, err)
	}

	return nil
}

// truncateSheetName keeps sheet names within the xlsx limit.
func truncateSheetName(name string) string {
	if name == "" {
		return "Unzoned"
	}
	if utf8.RuneCountInString(name) <= maxSheetNameLen {
		return name
	}

	runes := []rune(name)
	return string(runes[:maxSheetNameLen])
}
