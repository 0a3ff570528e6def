package apiv1

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"job-board-backend/config"
	authhandler "job-board-backend/lib/auth"
	jobhandler "job-board-backend/lib/job"
	apperrors "job-board-backend/lib/utils/app-errors"
	authutils "job-board-backend/lib/utils/auth-utils"
	"job-board-backend/models"
	apimodels "job-board-backend/models/api"
	authapimodels "job-board-backend/models/api/auth"
	jobapimodels "job-board-backend/models/api/job"
	userapimodels "job-board-backend/models/api/users"
)

type fakeAuthHandler struct{}

func (f fakeAuthHandler) Register(request authapimodels.RegisterRequest) (authapimodels.AuthResponse, error) {
	return f.buildResponse("user-1", request.FullName, request.Role)
}

func (f fakeAuthHandler) Login(request authapimodels.LoginRequest) (authapimodels.AuthResponse, error) {
	if request.Email != "anna@example.com" || request.Password != "qwerty123" {
		return authapimodels.AuthResponse{}, apperrors.Unauthenticated("неверная почта или пароль")
	}
	if request.Role != models.UserRoleJobSeeker {
		return authapimodels.AuthResponse{}, apperrors.Forbidden("учетная запись зарегистрирована с другой ролью")
	}
	return f.buildResponse("user-1", "Анна Смирнова", models.UserRoleJobSeeker)
}

func (f fakeAuthHandler) Me(userID string) (userapimodels.UserView, error) {
	return userapimodels.UserView{ID: userID, FullName: "Анна Смирнова"}, nil
}

func (f fakeAuthHandler) UpdateProfile(userID string, request userapimodels.ProfileUpdateRequest) error {
	return nil
}

func (f fakeAuthHandler) buildResponse(id, name string, role models.UserRole) (authapimodels.AuthResponse, error) {
	token, err := authutils.GetToken(id, name, role)
	if err != nil {
		return authapimodels.AuthResponse{}, err
	}
	return authapimodels.AuthResponse{
		User:        userapimodels.UserView{ID: id, FullName: name, Role: role},
		AccessToken: token,
	}, nil
}

type fakeJobHandler struct {
	lastFilter jobapimodels.JobFilter
}

func (f *fakeJobHandler) Create(userID string, data jobapimodels.JobData) (string, error) {
	return "job-1", nil
}

func (f *fakeJobHandler) GetByID(id string) (jobapimodels.JobView, error) {
	return jobapimodels.JobView{ID: id, Title: "Go разработчик"}, nil
}

func (f *fakeJobHandler) Update(id, userID string, data jobapimodels.JobData) error { return nil }
func (f *fakeJobHandler) Delete(id, userID string) error                            { return nil }

func (f *fakeJobHandler) List(filter jobapimodels.JobFilter) ([]jobapimodels.JobView, error) {
	f.lastFilter = filter
	return []jobapimodels.JobView{}, nil
}

func (f *fakeJobHandler) ListMy(userID string) ([]jobapimodels.JobView, error) {
	return []jobapimodels.JobView{}, nil
}

func newTestApp() (*fiber.App, *fakeJobHandler) {
	config.InitConfig()
	config.Conf.Auth.JWTSecret = "test-secret"
	config.Conf.Auth.JWTExpireInSec = 3600
	config.Conf.Auth.CookieName = "access_token"

	authhandler.Instance = fakeAuthHandler{}
	jobs := &fakeJobHandler{}
	jobhandler.Instance = jobs

	app := fiber.New()
	InitAuthApiRouters(app)
	InitJobApiRouters(app)
	return app, jobs
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, apimodels.Response) {
	t.Helper()
	resp, err := app.Test(req)
	require.Nil(t, err)
	body, err := io.ReadAll(resp.Body)
	require.Nil(t, err)
	var envelope apimodels.Response
	require.Nil(t, json.Unmarshal(body, &envelope))
	return resp, envelope
}

func authCookie(t *testing.T, role models.UserRole) *http.Cookie {
	t.Helper()
	token, err := authutils.GetToken("user-1", "Анна Смирнова", role)
	require.Nil(t, err)
	return &http.Cookie{Name: config.Conf.Auth.CookieName, Value: token}
}

func TestLoginApi(t *testing.T) {
	app, _ := newTestApp()

	t.Run(`успешный вход выставляет cookie сессии`, func(t *testing.T) {
		payload := `{"email": "anna@example.com", "password": "qwerty123", "role": "job_seeker"}`
		req := httptest.NewRequest(http.MethodPost, "/user/login", strings.NewReader(payload))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, envelope := doRequest(t, app, req)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, true, envelope.Success)

		cookie := resp.Header.Get(fiber.HeaderSetCookie)
		require.Equal(t, true, strings.Contains(cookie, config.Conf.Auth.CookieName+"="))
		require.Equal(t, true, strings.Contains(cookie, "HttpOnly"))
	})

	t.Run(`вход под чужой ролью`, func(t *testing.T) {
		payload := `{"email": "anna@example.com", "password": "qwerty123", "role": "recruiter"}`
		req := httptest.NewRequest(http.MethodPost, "/user/login", strings.NewReader(payload))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, envelope := doRequest(t, app, req)
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
		require.Equal(t, false, envelope.Success)
	})

	t.Run(`недопустимая роль отклоняется до обработчика`, func(t *testing.T) {
		payload := `{"email": "anna@example.com", "password": "qwerty123", "role": "admin"}`
		req := httptest.NewRequest(http.MethodPost, "/user/login", strings.NewReader(payload))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, _ := doRequest(t, app, req)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestAuthorization(t *testing.T) {
	app, _ := newTestApp()

	t.Run(`запрос без токена отклоняется`, func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
		resp, envelope := doRequest(t, app, req)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		require.Equal(t, false, envelope.Success)
	})

	t.Run(`токен из cookie открывает доступ`, func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
		req.AddCookie(authCookie(t, models.UserRoleJobSeeker))
		resp, envelope := doRequest(t, app, req)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, true, envelope.Success)
	})

	t.Run(`подделанный токен отклоняется`, func(t *testing.T) {
		cookie := authCookie(t, models.UserRoleJobSeeker)
		cookie.Value += "x"
		req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
		req.AddCookie(cookie)
		resp, _ := doRequest(t, app, req)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestRecruiterGate(t *testing.T) {
	app, _ := newTestApp()
	payload := `{"title": "Go разработчик", "description": "Разработка бэкенда", ` +
		`"location": "Москва", "job_type": "Full-time", "open_positions": 1}`

	t.Run(`соискатель не размещает вакансии`, func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/job/post", strings.NewReader(payload))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		req.AddCookie(authCookie(t, models.UserRoleJobSeeker))

		resp, envelope := doRequest(t, app, req)
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
		require.Equal(t, false, envelope.Success)
	})

	t.Run(`рекрутер размещает вакансию`, func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/job/post", strings.NewReader(payload))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		req.AddCookie(authCookie(t, models.UserRoleRecruiter))

		resp, envelope := doRequest(t, app, req)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, true, envelope.Success)
	})

	t.Run(`просмотр вакансий доступен обеим ролям`, func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/job/all", nil)
		req.AddCookie(authCookie(t, models.UserRoleJobSeeker))
		resp, _ := doRequest(t, app, req)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestJobSearchQuery(t *testing.T) {
	app, jobs := newTestApp()
	req := httptest.NewRequest(http.MethodGet, "/job/all?keyword=backend", nil)
	req.AddCookie(authCookie(t, models.UserRoleJobSeeker))

	resp, _ := doRequest(t, app, req)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "backend", jobs.lastFilter.Keyword)
}

func TestBodyParserRejectsInvalidJson(t *testing.T) {
	app, _ := newTestApp()
	req := httptest.NewRequest(http.MethodPost, "/user/login", bytes.NewReader([]byte("{broken")))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, envelope := doRequest(t, app, req)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, false, envelope.Success)
}
