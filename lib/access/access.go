package access

import (
	"job-board-backend/db"
	jobstore "job-board-backend/lib/job/store"
	apperrors "job-board-backend/lib/utils/app-errors"
	dbmodels "job-board-backend/models/db"
)

// Provider - единая точка проверки прав на ресурс.
// Обработчики не повторяют сравнение владельца у себя
type Provider interface {
	CheckJobOwner(jobID, userID string) (rec *dbmodels.Job, err error)
	CheckApplicationViewer(rec dbmodels.ApplicationExt, userID string) error
	CheckApplicationJobOwner(rec dbmodels.ApplicationExt, userID string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		jobStore: jobstore.NewInstance(db.DB),
	}
}

type impl struct {
	jobStore jobstore.Provider
}

func (i impl) CheckJobOwner(jobID, userID string) (*dbmodels.Job, error) {
	rec, err := i.jobStore.GetByID(jobID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apperrors.NotFound("вакансия не найдена")
	}
	if rec.RecruiterID != userID {
		return nil, apperrors.Forbidden("вакансия принадлежит другому рекрутеру")
	}
	return rec, nil
}

// CheckApplicationViewer разрешает чтение отклика его автору
// и рекрутеру-владельцу вакансии
func (i impl) CheckApplicationViewer(rec dbmodels.ApplicationExt, userID string) error {
	if rec.ApplicantID == userID {
		return nil
	}
	if rec.JobRecruiterID == userID {
		return nil
	}
	return apperrors.Forbidden("нет доступа к отклику")
}

func (i impl) CheckApplicationJobOwner(rec dbmodels.ApplicationExt, userID string) error {
	if rec.JobRecruiterID != userID {
		return apperrors.Forbidden("отклик принадлежит вакансии другого рекрутера")
	}
	return nil
}
