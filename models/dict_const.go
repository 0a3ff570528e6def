package models

type JobStatus string

const (
	JobStatusOpen   JobStatus = "open"
	JobStatusClosed JobStatus = "closed"
)

var jobStatusHumanName = map[JobStatus]string{
	JobStatusOpen:   "Открыта",
	JobStatusClosed: "Закрыта",
}

func (s JobStatus) ToHuman() string {
	if human, exist := jobStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s JobStatus) IsValid() bool {
	_, exist := jobStatusHumanName[s]
	return exist
}

type JobType string

const (
	JobTypeFullTime   JobType = "Full-time"
	JobTypePartTime   JobType = "Part-time"
	JobTypeContract   JobType = "Contract"
	JobTypeInternship JobType = "Internship"
)

var jobTypeHumanName = map[JobType]string{
	JobTypeFullTime:   "Полная занятость",
	JobTypePartTime:   "Частичная занятость",
	JobTypeContract:   "Контракт",
	JobTypeInternship: "Стажировка",
}

func (t JobType) ToHuman() string {
	if human, exist := jobTypeHumanName[t]; exist {
		return human
	}
	return string(t)
}

func (t JobType) IsValid() bool {
	_, exist := jobTypeHumanName[t]
	return exist
}

type ApplicationStatus string

const (
	ApplicationStatusPending   ApplicationStatus = "pending"
	ApplicationStatusReviewing ApplicationStatus = "reviewing"
	ApplicationStatusAccepted  ApplicationStatus = "accepted"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
)

var applicationStatusHumanName = map[ApplicationStatus]string{
	ApplicationStatusPending:   "Новый отклик",
	ApplicationStatusReviewing: "На рассмотрении",
	ApplicationStatusAccepted:  "Принят",
	ApplicationStatusRejected:  "Отклонён",
}

func (s ApplicationStatus) ToHuman() string {
	if human, exist := applicationStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s ApplicationStatus) IsValid() bool {
	_, exist := applicationStatusHumanName[s]
	return exist
}
