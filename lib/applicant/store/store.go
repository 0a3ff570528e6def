package applicantstore

import (
	"job-board-backend/models"
	dbmodels "job-board-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Application) (id string, err error)
	GetByID(id string) (rec *dbmodels.ApplicationExt, err error)
	ExistByJobAndApplicant(jobID, applicantID string) (bool, error)
	ListByApplicant(applicantID string) (list []dbmodels.ApplicationExt, err error)
	ListByJob(jobID string) (list []dbmodels.ApplicationExt, err error)
	UpdateStatus(id string, status models.ApplicationStatus) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// IsDuplicateErr распознает нарушение уникальности (job_id, applicant_id),
// на него опирается обработка одновременных повторных откликов
func IsDuplicateErr(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func (i impl) Create(rec dbmodels.Application) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

const extSelect = "applications.*, " +
	"j.title as job_title, j.location as job_location, j.status as job_status, j.recruiter_id as job_recruiter_id, " +
	"u.full_name as applicant_name, u.email as applicant_email"

func (i impl) extQuery() *gorm.DB {
	return i.db.
		Model(dbmodels.Application{}).
		Select(extSelect).
		Joins("left join jobs as j on j.id = applications.job_id").
		Joins("left join users as u on u.id = applications.applicant_id")
}

func (i impl) GetByID(id string) (rec *dbmodels.ApplicationExt, err error) {
	err = i.extQuery().
		Where("applications.id = ?", id).
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

func (i impl) ExistByJobAndApplicant(jobID, applicantID string) (bool, error) {
	err := i.db.
		Where("job_id = ?", jobID).
		Where("applicant_id = ?", applicantID).
		First(&dbmodels.Application{}).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (i impl) ListByApplicant(applicantID string) (list []dbmodels.ApplicationExt, err error) {
	list = []dbmodels.ApplicationExt{}
	err = i.extQuery().
		Where("applications.applicant_id = ?", applicantID).
		Order("applications.created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByJob(jobID string) (list []dbmodels.ApplicationExt, err error) {
	list = []dbmodels.ApplicationExt{}
	err = i.extQuery().
		Where("applications.job_id = ?", jobID).
		Order("applications.created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) UpdateStatus(id string, status models.ApplicationStatus) error {
	tx := i.db.
		Model(&dbmodels.Application{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("запись не найдена")
	}
	return nil
}
