package savedjobsstore

import (
	dbmodels "job-board-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Get(userID, jobID string) (rec *dbmodels.SavedJob, err error)
	Create(userID, jobID string) error
	Delete(userID, jobID string) error
	ListJobs(userID string) (list []dbmodels.Job, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// IsDuplicateErr распознает нарушение уникальности (user_id, job_id),
// на него опирается обработка одновременных переключений
func IsDuplicateErr(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func (i impl) Get(userID, jobID string) (rec *dbmodels.SavedJob, err error) {
	err = i.db.
		Model(dbmodels.SavedJob{}).
		Where("user_id = ?", userID).
		Where("job_id = ?", jobID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) Create(userID, jobID string) error {
	rec := dbmodels.SavedJob{
		UserID: userID,
		JobID:  jobID,
	}
	return i.db.
		Create(&rec).
		Error
}

func (i impl) Delete(userID, jobID string) error {
	return i.db.
		Where("user_id = ?", userID).
		Where("job_id = ?", jobID).
		Delete(&dbmodels.SavedJob{}).
		Error
}

func (i impl) ListJobs(userID string) (list []dbmodels.Job, err error) {
	list = []dbmodels.Job{}
	err = i.db.
		Model(dbmodels.Job{}).
		Joins("join saved_jobs as s on s.job_id = jobs.id").
		Where("s.user_id = ?", userID).
		Order("s.created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
