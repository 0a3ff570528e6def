package authapimodels

import (
	"strings"

	"github.com/pkg/errors"
	"job-board-backend/models"
	userapimodels "job-board-backend/models/api/users"
)

type RegisterRequest struct {
	FullName string          `json:"fullname"`
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Role     models.UserRole `json:"role"`
}

func (r RegisterRequest) Validate() error {
	if strings.TrimSpace(r.FullName) == "" {
		return errors.New("не указано имя пользователя")
	}
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("не указана почта")
	}
	if !strings.Contains(r.Email, "@") {
		return errors.New("некорректный формат почты")
	}
	if len(r.Password) < 6 {
		return errors.New("пароль должен содержать не менее 6 символов")
	}
	if !r.Role.IsValid() {
		return errors.New("не указана роль пользователя")
	}
	return nil
}

type LoginRequest struct {
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Role     models.UserRole `json:"role"`
}

func (r LoginRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("не указана почта")
	}
	if r.Password == "" {
		return errors.New("не указан пароль")
	}
	if !r.Role.IsValid() {
		return errors.New("не указана роль пользователя")
	}
	return nil
}

type AuthResponse struct {
	User        userapimodels.UserView `json:"user"`
	AccessToken string                 `json:"access_token"`
}
