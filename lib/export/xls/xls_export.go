package xlsexport

import (
	"bytes"

	dbmodels "job-board-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportApplicationList(list []dbmodels.ApplicationExt) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var applicationHeaders = []string{"ФИО", "Почта", "Вакансия", "Дата отклика", "Статус", "Резюме"}

func (i impl) ExportApplicationList(list []dbmodels.ApplicationExt) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, applicationHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		_, err = writeApplicationData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "Отклики")
	return f.WriteToBuffer()
}

func writeApplicationData(f *excelize.File, sheet string, list []dbmodels.ApplicationExt, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(applicationHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "ФИО"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.ApplicantName); err != nil {
			return row, err
		}

		// "Почта"
		col++
		if err := writeColumn(f, sheet, col, row, item.ApplicantEmail); err != nil {
			return row, err
		}

		// "Вакансия"
		col++
		if err := writeColumn(f, sheet, col, row, item.JobTitle); err != nil {
			return row, err
		}

		// "Дата отклика"
		col++
		if err := writeColumn(f, sheet, col, row, item.CreatedAt.Format("02.01.2006")); err != nil {
			return row, err
		}

		// "Статус"
		col++
		if err := writeColumn(f, sheet, col, row, item.Status.ToHuman()); err != nil {
			return row, err
		}

		// "Резюме"
		col++
		if err := writeColumn(f, sheet, col, row, item.ResumeUrl); err != nil {
			return row, err
		}
	}
	return row, nil
}
