package xlsexport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"job-board-backend/models"
	dbmodels "job-board-backend/models/db"
)

func TestExportApplicationList(t *testing.T) {
	handler := impl{}
	createdAt := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	list := []dbmodels.ApplicationExt{
		{
			Application: dbmodels.Application{
				BaseModel: dbmodels.BaseModel{CreatedAt: createdAt},
				Status:    models.ApplicationStatusPending,
				ResumeUrl: "https://example.com/resume.pdf",
			},
			JobTitle:       "Go разработчик",
			ApplicantName:  "Анна Смирнова",
			ApplicantEmail: "anna@example.com",
		},
	}

	buf, err := handler.ExportApplicationList(list)
	require.Nil(t, err)

	f, err := excelize.OpenReader(buf)
	require.Nil(t, err)
	defer func() { require.Nil(t, f.Close()) }()

	sheet := "Отклики"
	require.Equal(t, []string{sheet}, f.GetSheetList())

	header, err := f.GetCellValue(sheet, "A1")
	require.Nil(t, err)
	require.Equal(t, "ФИО", header)

	name, err := f.GetCellValue(sheet, "A2")
	require.Nil(t, err)
	require.Equal(t, "Анна Смирнова", name)

	title, err := f.GetCellValue(sheet, "C2")
	require.Nil(t, err)
	require.Equal(t, "Go разработчик", title)

	date, err := f.GetCellValue(sheet, "D2")
	require.Nil(t, err)
	require.Equal(t, "15.08.2026", date)

	status, err := f.GetCellValue(sheet, "E2")
	require.Nil(t, err)
	require.Equal(t, models.ApplicationStatusPending.ToHuman(), status)
}

func TestExportEmptyList(t *testing.T) {
	handler := impl{}
	buf, err := handler.ExportApplicationList(nil)
	require.Nil(t, err)

	f, err := excelize.OpenReader(buf)
	require.Nil(t, err)
	defer func() { require.Nil(t, f.Close()) }()

	rows, err := f.GetRows("Отклики")
	require.Nil(t, err)
	require.Len(t, rows, 1)
}
