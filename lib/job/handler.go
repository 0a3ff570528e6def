package jobhandler

import (
	"job-board-backend/db"
	"job-board-backend/lib/access"
	jobstore "job-board-backend/lib/job/store"
	apperrors "job-board-backend/lib/utils/app-errors"
	"job-board-backend/models"
	jobapimodels "job-board-backend/models/api/job"
	dbmodels "job-board-backend/models/db"

	"github.com/lib/pq"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(userID string, data jobapimodels.JobData) (id string, err error)
	GetByID(id string) (view jobapimodels.JobView, err error)
	Update(id, userID string, data jobapimodels.JobData) error
	Delete(id, userID string) error
	List(filter jobapimodels.JobFilter) (list []jobapimodels.JobView, err error)
	ListMy(userID string) (list []jobapimodels.JobView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:  jobstore.NewInstance(db.DB),
		access: access.Instance,
	}
}

type impl struct {
	store  jobstore.Provider
	access access.Provider
}

func (i impl) Create(userID string, data jobapimodels.JobData) (id string, err error) {
	rec := dbmodels.Job{
		RecruiterID:     userID,
		Title:           data.Title,
		Description:     data.Description,
		Requirements:    pq.StringArray(data.Requirements),
		Salary:          data.Salary,
		Location:        data.Location,
		JobType:         data.JobType,
		ExperienceYears: data.ExperienceYears,
		OpenPositions:   data.OpenPositions,
		Status:          models.JobStatusOpen,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		log.WithField("recruiter_id", userID).WithError(err).Error("ошибка создания вакансии")
		return "", err
	}
	return id, nil
}

func (i impl) GetByID(id string) (view jobapimodels.JobView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithField("job_id", id).WithError(err).Error("ошибка получения вакансии")
		return view, err
	}
	if rec == nil {
		return view, apperrors.NotFound("вакансия не найдена")
	}
	return jobapimodels.ConvertJob(*rec), nil
}

func (i impl) Update(id, userID string, data jobapimodels.JobData) error {
	_, err := i.access.CheckJobOwner(id, userID)
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"title":            data.Title,
		"description":      data.Description,
		"requirements":     pq.StringArray(data.Requirements),
		"salary":           data.Salary,
		"location":         data.Location,
		"job_type":         data.JobType,
		"experience_years": data.ExperienceYears,
		"open_positions":   data.OpenPositions,
	}
	if data.Status != "" {
		updMap["status"] = data.Status
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		log.WithField("job_id", id).WithError(err).Error("ошибка обновления вакансии")
		return err
	}
	return nil
}

func (i impl) Delete(id, userID string) error {
	_, err := i.access.CheckJobOwner(id, userID)
	if err != nil {
		return err
	}
	err = i.store.Delete(id)
	if err != nil {
		log.WithField("job_id", id).WithError(err).Error("ошибка удаления вакансии")
		return err
	}
	return nil
}

func (i impl) List(filter jobapimodels.JobFilter) (list []jobapimodels.JobView, err error) {
	recList, err := i.store.List(filter)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка вакансий")
		return nil, err
	}
	list = make([]jobapimodels.JobView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, jobapimodels.ConvertJob(rec))
	}
	return list, nil
}

func (i impl) ListMy(userID string) (list []jobapimodels.JobView, err error) {
	recList, err := i.store.ListByRecruiter(userID)
	if err != nil {
		log.WithField("recruiter_id", userID).WithError(err).Error("ошибка получения вакансий рекрутера")
		return nil, err
	}
	list = make([]jobapimodels.JobView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, jobapimodels.ConvertJob(rec))
	}
	return list, nil
}
