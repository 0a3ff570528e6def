package userapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"job-board-backend/models"
	dbmodels "job-board-backend/models/db"
)

type UserView struct {
	ID         string           `json:"id"`
	FullName   string           `json:"fullname"`
	Email      string           `json:"email"`
	Role       models.UserRole  `json:"role"`
	Bio        string           `json:"bio,omitempty"`
	Skills     []string         `json:"skills,omitempty"`
	Experience []ExperienceView `json:"experience,omitempty"`
	Education  []EducationView  `json:"education,omitempty"`
	Company    *CompanyView     `json:"company,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
}

type CompanyView struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	WebSite     string `json:"web_site,omitempty"`
}

type ExperienceView struct {
	Company     string     `json:"company"`
	Position    string     `json:"position"`
	Description string     `json:"description,omitempty"`
	DateFrom    time.Time  `json:"date_from"`
	DateTo      *time.Time `json:"date_to,omitempty"`
}

type EducationView struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree,omitempty"`
	Speciality  string `json:"speciality,omitempty"`
	YearFrom    int    `json:"year_from,omitempty"`
	YearTo      int    `json:"year_to,omitempty"`
}

func ConvertUser(rec dbmodels.User) UserView {
	view := UserView{
		ID:        rec.ID,
		FullName:  rec.FullName,
		Email:     rec.Email,
		Role:      rec.Role,
		Bio:       rec.Bio,
		Skills:    rec.Skills,
		CreatedAt: rec.CreatedAt,
	}
	for _, exp := range rec.Experience {
		view.Experience = append(view.Experience, ExperienceView{
			Company:     exp.Company,
			Position:    exp.Position,
			Description: exp.Description,
			DateFrom:    exp.DateFrom,
			DateTo:      exp.DateTo,
		})
	}
	for _, edu := range rec.Education {
		view.Education = append(view.Education, EducationView{
			Institution: edu.Institution,
			Degree:      edu.Degree,
			Speciality:  edu.Speciality,
			YearFrom:    edu.YearFrom,
			YearTo:      edu.YearTo,
		})
	}
	if rec.Role.IsRecruiter() && rec.CompanyName != "" {
		view.Company = &CompanyView{
			Name:        rec.CompanyName,
			Description: rec.CompanyDescription,
			WebSite:     rec.CompanyWebSite,
		}
	}
	return view
}

type ProfileUpdateRequest struct {
	FullName   string           `json:"fullname"`
	Bio        string           `json:"bio"`
	Skills     []string         `json:"skills"`
	Experience []ExperienceView `json:"experience"`
	Education  []EducationView  `json:"education"`
	Company    *CompanyView     `json:"company"`
}

func (r ProfileUpdateRequest) Validate() error {
	if strings.TrimSpace(r.FullName) == "" {
		return errors.New("не указано имя пользователя")
	}
	for _, exp := range r.Experience {
		if strings.TrimSpace(exp.Company) == "" {
			return errors.New("не указана компания в опыте работы")
		}
		if exp.DateTo != nil && exp.DateTo.Before(exp.DateFrom) {
			return errors.New("дата окончания работы раньше даты начала")
		}
	}
	for _, edu := range r.Education {
		if strings.TrimSpace(edu.Institution) == "" {
			return errors.New("не указано учебное заведение")
		}
	}
	return nil
}
