package applicanthandler

import (
	"bytes"

	"job-board-backend/db"
	"job-board-backend/lib/access"
	applicantstore "job-board-backend/lib/applicant/store"
	xlsexport "job-board-backend/lib/export/xls"
	jobstore "job-board-backend/lib/job/store"
	apperrors "job-board-backend/lib/utils/app-errors"
	"job-board-backend/models"
	applicantapimodels "job-board-backend/models/api/applicant"
	dbmodels "job-board-backend/models/db"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Apply(jobID, userID string, request applicantapimodels.ApplyRequest) (id string, err error)
	GetByID(id, userID string) (view applicantapimodels.ApplicationView, err error)
	ListMy(userID string) (list []applicantapimodels.ApplicationView, err error)
	ListByJob(jobID, userID string) (list []applicantapimodels.ApplicationView, err error)
	ExportByJob(jobID, userID string) (*bytes.Buffer, error)
	UpdateStatus(id, userID string, status models.ApplicationStatus) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:    applicantstore.NewInstance(db.DB),
		jobStore: jobstore.NewInstance(db.DB),
		access:   access.Instance,
		export:   xlsexport.Instance,
	}
}

type impl struct {
	store    applicantstore.Provider
	jobStore jobstore.Provider
	access   access.Provider
	export   xlsexport.Provider
}

func (i impl) Apply(jobID, userID string, request applicantapimodels.ApplyRequest) (id string, err error) {
	logger := log.WithField("job_id", jobID).WithField("applicant_id", userID)
	job, err := i.jobStore.GetByID(jobID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения вакансии для отклика")
		return "", err
	}
	if job == nil {
		return "", apperrors.NotFound("вакансия не найдена")
	}
	if job.Status != models.JobStatusOpen {
		return "", apperrors.Conflict("вакансия не принимает отклики")
	}
	exist, err := i.store.ExistByJobAndApplicant(jobID, userID)
	if err != nil {
		logger.WithError(err).Error("ошибка проверки повторного отклика")
		return "", err
	}
	if exist {
		return "", apperrors.Conflict("отклик на данную вакансию уже отправлен")
	}
	rec := dbmodels.Application{
		JobID:       jobID,
		ApplicantID: userID,
		Status:      models.ApplicationStatusPending,
		CoverLetter: request.CoverLetter,
		ResumeUrl:   request.ResumeUrl,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		// одновременные повторные отклики добираются до вставки,
		// последнее слово за уникальным индексом
		if applicantstore.IsDuplicateErr(err) {
			return "", apperrors.Conflict("отклик на данную вакансию уже отправлен")
		}
		logger.WithError(err).Error("ошибка создания отклика")
		return "", err
	}
	return id, nil
}

func (i impl) GetByID(id, userID string) (view applicantapimodels.ApplicationView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithField("application_id", id).WithError(err).Error("ошибка получения отклика")
		return view, err
	}
	if rec == nil {
		return view, apperrors.NotFound("отклик не найден")
	}
	err = i.access.CheckApplicationViewer(*rec, userID)
	if err != nil {
		return view, err
	}
	return applicantapimodels.ConvertApplication(*rec), nil
}

func (i impl) ListMy(userID string) (list []applicantapimodels.ApplicationView, err error) {
	recList, err := i.store.ListByApplicant(userID)
	if err != nil {
		log.WithField("applicant_id", userID).WithError(err).Error("ошибка получения откликов соискателя")
		return nil, err
	}
	list = make([]applicantapimodels.ApplicationView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, applicantapimodels.ConvertApplication(rec))
	}
	return list, nil
}

func (i impl) ListByJob(jobID, userID string) (list []applicantapimodels.ApplicationView, err error) {
	recList, err := i.listForJobOwner(jobID, userID)
	if err != nil {
		return nil, err
	}
	list = make([]applicantapimodels.ApplicationView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, applicantapimodels.ConvertApplication(rec))
	}
	return list, nil
}

func (i impl) ExportByJob(jobID, userID string) (*bytes.Buffer, error) {
	recList, err := i.listForJobOwner(jobID, userID)
	if err != nil {
		return nil, err
	}
	return i.export.ExportApplicationList(recList)
}

func (i impl) UpdateStatus(id, userID string, status models.ApplicationStatus) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithField("application_id", id).WithError(err).Error("ошибка получения отклика")
		return err
	}
	if rec == nil {
		return apperrors.NotFound("отклик не найден")
	}
	err = i.access.CheckApplicationJobOwner(*rec, userID)
	if err != nil {
		return err
	}
	// статус меняется в любом направлении, рекрутер может вернуть
	// отклоненный отклик на рассмотрение
	err = i.store.UpdateStatus(id, status)
	if err != nil {
		log.WithField("application_id", id).WithError(err).Error("ошибка смены статуса отклика")
		return err
	}
	return nil
}

func (i impl) listForJobOwner(jobID, userID string) (list []dbmodels.ApplicationExt, err error) {
	_, err = i.access.CheckJobOwner(jobID, userID)
	if err != nil {
		return nil, err
	}
	list, err = i.store.ListByJob(jobID)
	if err != nil {
		log.WithField("job_id", jobID).WithError(err).Error("ошибка получения откликов по вакансии")
		return nil, err
	}
	return list, nil
}
