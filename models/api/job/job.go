package jobapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"job-board-backend/models"
	dbmodels "job-board-backend/models/db"
)

type JobData struct {
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	Requirements    []string       `json:"requirements"`
	Salary          int            `json:"salary"`
	Location        string         `json:"location"`
	JobType         models.JobType `json:"job_type"`
	ExperienceYears int            `json:"experience_years"`
	OpenPositions   int            `json:"open_positions"`
	// Status учитывается только при обновлении, новая вакансия всегда открыта
	Status models.JobStatus `json:"status,omitempty"`
}

func (r JobData) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("не указано название вакансии")
	}
	if strings.TrimSpace(r.Description) == "" {
		return errors.New("не указано описание вакансии")
	}
	if strings.TrimSpace(r.Location) == "" {
		return errors.New("не указано место работы")
	}
	if !r.JobType.IsValid() {
		return errors.New("не указан тип занятости")
	}
	if r.Salary < 0 {
		return errors.New("зарплата не может быть отрицательной")
	}
	if r.ExperienceYears < 0 {
		return errors.New("требуемый опыт не может быть отрицательным")
	}
	if r.OpenPositions <= 0 {
		return errors.New("число открытых позиций должно быть больше нуля")
	}
	if r.Status != "" && !r.Status.IsValid() {
		return errors.New("недопустимый статус вакансии")
	}
	return nil
}

type JobFilter struct {
	Keyword string `json:"keyword"`
}

type JobView struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Requirements    []string         `json:"requirements,omitempty"`
	Salary          int              `json:"salary"`
	Location        string           `json:"location"`
	JobType         models.JobType   `json:"job_type"`
	ExperienceYears int              `json:"experience_years"`
	OpenPositions   int              `json:"open_positions"`
	Status          models.JobStatus `json:"status"`
	RecruiterID     string           `json:"recruiter_id"`
	CompanyName     string           `json:"company_name,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
}

func ConvertJob(rec dbmodels.Job) JobView {
	view := JobView{
		ID:              rec.ID,
		Title:           rec.Title,
		Description:     rec.Description,
		Requirements:    rec.Requirements,
		Salary:          rec.Salary,
		Location:        rec.Location,
		JobType:         rec.JobType,
		ExperienceYears: rec.ExperienceYears,
		OpenPositions:   rec.OpenPositions,
		Status:          rec.Status,
		RecruiterID:     rec.RecruiterID,
		CreatedAt:       rec.CreatedAt,
	}
	if rec.Recruiter != nil {
		view.CompanyName = rec.Recruiter.CompanyName
	}
	return view
}
