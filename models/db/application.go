package dbmodels

import (
	"job-board-backend/models"
)

// Application не объявляет gorm-ассоциацию на Job: вакансия может быть
// удалена рекрутером, а отклик остаётся у соискателя как история.
// Данные вакансии и соискателя подтягиваются join-ом в ApplicationExt.
type Application struct {
	BaseModel
	JobID       string                   `gorm:"type:varchar(36);uniqueIndex:idx_job_applicant;index"`
	ApplicantID string                   `gorm:"type:varchar(36);uniqueIndex:idx_job_applicant;index"`
	Status      models.ApplicationStatus `gorm:"type:varchar(50)"`
	CoverLetter string
	ResumeUrl   string `gorm:"type:varchar(1024)"`
}

type ApplicationExt struct {
	Application
	JobTitle       string
	JobLocation    string
	JobStatus      models.JobStatus
	JobRecruiterID string
	ApplicantName  string
	ApplicantEmail string
}
