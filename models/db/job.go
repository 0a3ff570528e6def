package dbmodels

import (
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"job-board-backend/models"
)

// отклики при удалении вакансии сохраняются как история для соискателя,
// чистим только отметки "избранное"
func (j *Job) AfterDelete(tx *gorm.DB) (err error) {
	if j.ID == "" {
		return nil
	}
	tx.Clauses(clause.Returning{}).Where("job_id = ?", j.ID).Delete(&SavedJob{})
	return
}

type Job struct {
	BaseModel
	RecruiterID     string `gorm:"type:varchar(36);index"`
	Recruiter       *User  `gorm:"foreignKey:RecruiterID"`
	Title           string `gorm:"type:varchar(255)"`
	Description     string
	Requirements    pq.StringArray `gorm:"type:text[]"`
	Salary          int
	Location        string         `gorm:"type:varchar(255)"`
	JobType         models.JobType `gorm:"type:varchar(50)"`
	ExperienceYears int
	OpenPositions   int
	Status          models.JobStatus `gorm:"type:varchar(50)"`
}
