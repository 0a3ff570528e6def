package gpthandler

import (
	"encoding/json"
	"fmt"
	"strings"

	apperrors "job-board-backend/lib/utils/app-errors"
	gptmodels "job-board-backend/models/api/gpt"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	GenerateJobDescription(request gptmodels.GenJobDescriptionRequest) (resp gptmodels.GenJobDescriptionResponse, err error)
	GenerateCoverLetter(request gptmodels.GenCoverLetterRequest) (resp gptmodels.GenCoverLetterResponse, err error)
}

// промты фиксированы, каждый вызов - независимый запрос без повторов и кэша
const (
	jobDescriptionPromt = "Ты - опытный рекрутер. Отвечай строго валидным JSON без пояснений " +
		"в формате {\"description\": string, \"requirements\": [string]}: " +
		"description - развернутое описание вакансии, requirements - список требований к кандидату."
	coverLetterPromt = "Ты - карьерный консультант. Напиши краткое сопроводительное письмо " +
		"от имени кандидата обычным текстом, без обращений в квадратных скобках и без markdown."
)

var Instance Provider

type ClientProvider interface {
	GenerateByPromtAndText(promt, text string) (generatedText string, err error)
}

func NewHandler(client ClientProvider) {
	Instance = impl{
		client: client,
	}
}

type impl struct {
	client ClientProvider
}

func (i impl) GenerateJobDescription(request gptmodels.GenJobDescriptionRequest) (resp gptmodels.GenJobDescriptionResponse, err error) {
	text := fmt.Sprintf("Сгенерируй описание вакансии. Название: %s. Требуемый уровень: %s. Навыки: %s.",
		request.Title, request.ExperienceLevel, strings.Join(request.Skills, ", "))
	if request.CompanyDescription != "" {
		text += fmt.Sprintf(" О компании: %s.", request.CompanyDescription)
	}
	generated, err := i.client.GenerateByPromtAndText(jobDescriptionPromt, text)
	if err != nil {
		log.WithError(err).Error("ошибка генерации описания вакансии")
		return resp, apperrors.Upstream(err, "сервис генерации текста недоступен")
	}
	err = json.Unmarshal([]byte(stripMarkdownFence(generated)), &resp)
	if err != nil {
		log.WithError(err).Error("ответ генерации описания вакансии не является валидным JSON")
		return resp, apperrors.Upstream(err, "не удалось разобрать сгенерированный текст")
	}
	if resp.Description == "" || len(resp.Requirements) == 0 {
		return resp, apperrors.Upstream(nil, "сгенерированный текст не содержит обязательных полей")
	}
	return resp, nil
}

func (i impl) GenerateCoverLetter(request gptmodels.GenCoverLetterRequest) (resp gptmodels.GenCoverLetterResponse, err error) {
	text := fmt.Sprintf("Напиши сопроводительное письмо на вакансию %q в компанию %q.",
		request.JobTitle, request.CompanyName)
	if len(request.Skills) > 0 {
		text += fmt.Sprintf(" Ключевые навыки кандидата: %s.", strings.Join(request.Skills, ", "))
	}
	if request.Experience != "" {
		text += fmt.Sprintf(" Опыт кандидата: %s.", request.Experience)
	}
	generated, err := i.client.GenerateByPromtAndText(coverLetterPromt, text)
	if err != nil {
		log.WithError(err).Error("ошибка генерации сопроводительного письма")
		return resp, apperrors.Upstream(err, "сервис генерации текста недоступен")
	}
	letter := strings.TrimSpace(generated)
	if letter == "" {
		return resp, apperrors.Upstream(nil, "сгенерированный текст пуст")
	}
	resp.CoverLetter = letter
	return resp, nil
}

// stripMarkdownFence убирает обрамление ```json ... ```,
// модель добавляет его несмотря на промт
func stripMarkdownFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
