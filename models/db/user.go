package dbmodels

import (
	"time"

	"github.com/lib/pq"
	"job-board-backend/models"
)

type User struct {
	BaseModel
	CompanyProfile
	FullName   string          `gorm:"type:varchar(255)"`
	Email      string          `gorm:"type:varchar(255);uniqueIndex"`
	Password   string          `gorm:"type:varchar(255)"`
	Role       models.UserRole `gorm:"type:varchar(50)"`
	Bio        string
	Skills     pq.StringArray   `gorm:"type:text[]"`
	Experience []UserExperience `gorm:"foreignKey:UserID"`
	Education  []UserEducation  `gorm:"foreignKey:UserID"`
}

// CompanyProfile заполняется только для пользователей с ролью рекрутера
type CompanyProfile struct {
	CompanyName        string `gorm:"type:varchar(255)"`
	CompanyDescription string
	CompanyWebSite     string `gorm:"type:varchar(255)"`
}

type UserExperience struct {
	BaseModel
	UserID      string `gorm:"type:varchar(36);index"`
	Company     string `gorm:"type:varchar(255)"`
	Position    string `gorm:"type:varchar(255)"`
	Description string
	DateFrom    time.Time
	DateTo      *time.Time
}

type UserEducation struct {
	BaseModel
	UserID      string `gorm:"type:varchar(36);index"`
	Institution string `gorm:"type:varchar(255)"`
	Degree      string `gorm:"type:varchar(255)"`
	Speciality  string `gorm:"type:varchar(255)"`
	YearFrom    int
	YearTo      int
}
