package applicantapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"job-board-backend/models"
	dbmodels "job-board-backend/models/db"
)

type ApplyRequest struct {
	CoverLetter string `json:"cover_letter"`
	ResumeUrl   string `json:"resume_url"`
}

func (r ApplyRequest) Validate() error {
	if r.ResumeUrl != "" && !strings.HasPrefix(r.ResumeUrl, "http") {
		return errors.New("ссылка на резюме должна быть http(s) адресом")
	}
	return nil
}

type StatusUpdateRequest struct {
	Status models.ApplicationStatus `json:"status"`
}

func (r StatusUpdateRequest) Validate() error {
	if !r.Status.IsValid() {
		return errors.New("недопустимый статус отклика")
	}
	return nil
}

type ApplicationView struct {
	ID             string                   `json:"id"`
	JobID          string                   `json:"job_id"`
	JobTitle       string                   `json:"job_title,omitempty"`
	JobLocation    string                   `json:"job_location,omitempty"`
	ApplicantID    string                   `json:"applicant_id"`
	ApplicantName  string                   `json:"applicant_name,omitempty"`
	ApplicantEmail string                   `json:"applicant_email,omitempty"`
	Status         models.ApplicationStatus `json:"status"`
	CoverLetter    string                   `json:"cover_letter,omitempty"`
	ResumeUrl      string                   `json:"resume_url,omitempty"`
	CreatedAt      time.Time                `json:"created_at"`
}

func ConvertApplication(rec dbmodels.ApplicationExt) ApplicationView {
	view := ApplicationView{
		ID:             rec.ID,
		JobID:          rec.JobID,
		JobTitle:       rec.JobTitle,
		JobLocation:    rec.JobLocation,
		ApplicantID:    rec.ApplicantID,
		ApplicantName:  rec.ApplicantName,
		ApplicantEmail: rec.ApplicantEmail,
		Status:         rec.Status,
		CoverLetter:    rec.CoverLetter,
		ResumeUrl:      rec.ResumeUrl,
		CreatedAt:      rec.CreatedAt,
	}
	if view.JobTitle == "" {
		// вакансия была удалена рекрутером, отклик остаётся как история
		view.JobTitle = "Вакансия удалена"
	}
	return view
}
