package gptmodels

import (
	"strings"

	"github.com/pkg/errors"
)

type GenJobDescriptionRequest struct {
	Title              string   `json:"title"`
	ExperienceLevel    string   `json:"experience_level"`
	Skills             []string `json:"skills"`
	CompanyDescription string   `json:"company_description"`
}

func (r GenJobDescriptionRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("не указано название вакансии")
	}
	if len(r.Skills) == 0 {
		return errors.New("не указаны требуемые навыки")
	}
	return nil
}

type GenJobDescriptionResponse struct {
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
}

type GenCoverLetterRequest struct {
	JobTitle    string   `json:"job_title"`
	CompanyName string   `json:"company_name"`
	Skills      []string `json:"skills"`
	Experience  string   `json:"experience"`
}

func (r GenCoverLetterRequest) Validate() error {
	if strings.TrimSpace(r.JobTitle) == "" {
		return errors.New("не указано название вакансии")
	}
	if strings.TrimSpace(r.CompanyName) == "" {
		return errors.New("не указано название компании")
	}
	return nil
}

type GenCoverLetterResponse struct {
	CoverLetter string `json:"cover_letter"`
}
