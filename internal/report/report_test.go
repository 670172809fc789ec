package report_test

import (
	"testing"
	"time"

	"github.com/Houeta/restobot/internal/models"
	"github.com/Houeta/restobot/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestGenerateExcelReport(t *testing.T) {
	now := time.Now()
	testTasks := []models.Task{
		{ID: 1, Zone: "Bar", Title: "Clean bar", Priority: "high", Deadline: "18:00", SenderID: "111", CreatedAt: now},
		{ID: 2, Zone: "Kitchen", Title: "Restock fridge", Priority: "low", Deadline: "20:00", SenderID: "111", CreatedAt: now},
		{ID: 3, Zone: "Bar", Title: "Polish glasses", Priority: "medium", Deadline: "18:00", SenderID: "222", CreatedAt: now},
	}

	t.Run("successful report generation", func(t *testing.T) {
		buffer, err := report.GenerateExcelReport(testTasks)

		require.NoError(t, err)
		assert.NotNil(t, buffer)

		f, err := excelize.OpenReader(buffer)
		require.NoError(t, err)
		defer f.Close()

		sheetList := f.GetSheetList()
		assert.ElementsMatch(t, []string{"Bar", "Kitchen"}, sheetList)

		headerVal, err := f.GetCellValue("Bar", "A1")
		require.NoError(t, err)
		assert.Equal(t, "Task ID", headerVal)

		taskIDVal, err := f.GetCellValue("Bar", "A2")
		require.NoError(t, err)
		assert.Equal(t, "1", taskIDVal)

		titleVal, err := f.GetCellValue("Bar", "C3")
		require.NoError(t, err)
		assert.Equal(t, "Polish glasses", titleVal)

		priorityVal, err := f.GetCellValue("Kitchen", "F2")
		require.NoError(t, err)
		assert.Equal(t, "Low", priorityVal)
	})

	t.Run("no tasks found", func(t *testing.T) {
		buffer, err := report.GenerateExcelReport([]models.Task{})

		require.Error(t, err)
		assert.Nil(t, buffer)
		require.ErrorIs(t, err, report.ErrNoTasks)
	})
}
