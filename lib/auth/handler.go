package authhandler

import (
	"job-board-backend/db"
	usersstore "job-board-backend/lib/users/store"
	apperrors "job-board-backend/lib/utils/app-errors"
	authutils "job-board-backend/lib/utils/auth-utils"
	authapimodels "job-board-backend/models/api/auth"
	userapimodels "job-board-backend/models/api/users"
	dbmodels "job-board-backend/models/db"

	"github.com/lib/pq"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Register(request authapimodels.RegisterRequest) (resp authapimodels.AuthResponse, err error)
	Login(request authapimodels.LoginRequest) (resp authapimodels.AuthResponse, err error)
	Me(userID string) (view userapimodels.UserView, err error)
	UpdateProfile(userID string, request userapimodels.ProfileUpdateRequest) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		usersStore: usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	usersStore usersstore.Provider
}

func (i impl) Register(request authapimodels.RegisterRequest) (resp authapimodels.AuthResponse, err error) {
	exist, err := i.usersStore.ExistByEmail(request.Email)
	if err != nil {
		log.WithError(err).Error("ошибка проверки почты при регистрации")
		return resp, err
	}
	if exist {
		return resp, apperrors.Conflict("данная почта уже зарегистрирована")
	}
	hash, err := authutils.HashPassword(request.Password)
	if err != nil {
		log.WithError(err).Error("ошибка хэширования пароля")
		return resp, err
	}
	rec := dbmodels.User{
		FullName: request.FullName,
		Email:    request.Email,
		Password: hash,
		Role:     request.Role,
	}
	id, err := i.usersStore.Create(rec)
	if err != nil {
		log.WithError(err).Error("ошибка создания пользователя")
		return resp, err
	}
	rec.ID = id
	return i.buildAuthResponse(rec)
}

func (i impl) Login(request authapimodels.LoginRequest) (resp authapimodels.AuthResponse, err error) {
	rec, err := i.usersStore.FindByEmail(request.Email)
	if err != nil {
		log.WithError(err).Error("ошибка поиска пользователя при входе")
		return resp, err
	}
	if rec == nil || !authutils.CheckPassword(rec.Password, request.Password) {
		return resp, apperrors.Unauthenticated("неверная почта или пароль")
	}
	// входы соискателя и рекрутера разделены, даже при общей таблице пользователей
	if rec.Role != request.Role {
		return resp, apperrors.Forbidden("учетная запись зарегистрирована с другой ролью")
	}
	return i.buildAuthResponse(*rec)
}

func (i impl) Me(userID string) (view userapimodels.UserView, err error) {
	rec, err := i.usersStore.GetByID(userID)
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("ошибка получения пользователя")
		return view, err
	}
	if rec == nil {
		return view, apperrors.NotFound("пользователь не найден")
	}
	return userapimodels.ConvertUser(*rec), nil
}

func (i impl) UpdateProfile(userID string, request userapimodels.ProfileUpdateRequest) error {
	rec, err := i.usersStore.GetByID(userID)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.NotFound("пользователь не найден")
	}
	updMap := map[string]interface{}{
		"full_name": request.FullName,
		"bio":       request.Bio,
		"skills":    pqStringArray(request.Skills),
	}
	if rec.Role.IsRecruiter() && request.Company != nil {
		updMap["company_name"] = request.Company.Name
		updMap["company_description"] = request.Company.Description
		updMap["company_web_site"] = request.Company.WebSite
	}
	experience := make([]dbmodels.UserExperience, 0, len(request.Experience))
	for _, exp := range request.Experience {
		experience = append(experience, dbmodels.UserExperience{
			Company:     exp.Company,
			Position:    exp.Position,
			Description: exp.Description,
			DateFrom:    exp.DateFrom,
			DateTo:      exp.DateTo,
		})
	}
	education := make([]dbmodels.UserEducation, 0, len(request.Education))
	for _, edu := range request.Education {
		education = append(education, dbmodels.UserEducation{
			Institution: edu.Institution,
			Degree:      edu.Degree,
			Speciality:  edu.Speciality,
			YearFrom:    edu.YearFrom,
			YearTo:      edu.YearTo,
		})
	}
	err = i.usersStore.UpdateProfile(userID, updMap, experience, education)
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("ошибка обновления профиля")
		return err
	}
	return nil
}

func pqStringArray(values []string) pq.StringArray {
	if values == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(values)
}

func (i impl) buildAuthResponse(rec dbmodels.User) (resp authapimodels.AuthResponse, err error) {
	token, err := authutils.GetToken(rec.ID, rec.FullName, rec.Role)
	if err != nil {
		log.WithField("user_id", rec.ID).WithError(err).Error("ошибка выпуска токена сессии")
		return resp, err
	}
	return authapimodels.AuthResponse{
		User:        userapimodels.ConvertUser(rec),
		AccessToken: token,
	}, nil
}
