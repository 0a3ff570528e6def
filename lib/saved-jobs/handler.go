package savedjobshandler

import (
	"job-board-backend/db"
	jobstore "job-board-backend/lib/job/store"
	savedjobsstore "job-board-backend/lib/saved-jobs/store"
	apperrors "job-board-backend/lib/utils/app-errors"
	jobapimodels "job-board-backend/models/api/job"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Toggle(userID, jobID string) (saved bool, err error)
	List(userID string) (list []jobapimodels.JobView, err error)
	IsSaved(userID, jobID string) (saved bool, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:    savedjobsstore.NewInstance(db.DB),
		jobStore: jobstore.NewInstance(db.DB),
	}
}

type impl struct {
	store    savedjobsstore.Provider
	jobStore jobstore.Provider
}

// Toggle - обратная сама себе операция: повторный вызов
// возвращает вакансию в исходное состояние сохранения
func (i impl) Toggle(userID, jobID string) (saved bool, err error) {
	logger := log.WithField("user_id", userID).WithField("job_id", jobID)
	job, err := i.jobStore.GetByID(jobID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения вакансии")
		return false, err
	}
	if job == nil {
		return false, apperrors.NotFound("вакансия не найдена")
	}
	rec, err := i.store.Get(userID, jobID)
	if err != nil {
		logger.WithError(err).Error("ошибка проверки сохраненной вакансии")
		return false, err
	}
	if rec != nil {
		err = i.store.Delete(userID, jobID)
		if err != nil {
			logger.WithError(err).Error("ошибка удаления сохраненной вакансии")
			return false, err
		}
		return false, nil
	}
	err = i.store.Create(userID, jobID)
	if err != nil {
		// одновременные переключения добираются до вставки,
		// последнее слово за уникальным индексом
		if savedjobsstore.IsDuplicateErr(err) {
			return true, nil
		}
		logger.WithError(err).Error("ошибка сохранения вакансии")
		return false, err
	}
	return true, nil
}

func (i impl) List(userID string) (list []jobapimodels.JobView, err error) {
	recList, err := i.store.ListJobs(userID)
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("ошибка получения сохраненных вакансий")
		return nil, err
	}
	list = make([]jobapimodels.JobView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, jobapimodels.ConvertJob(rec))
	}
	return list, nil
}

func (i impl) IsSaved(userID, jobID string) (saved bool, err error) {
	rec, err := i.store.Get(userID, jobID)
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("ошибка проверки сохраненной вакансии")
		return false, err
	}
	return rec != nil, nil
}
