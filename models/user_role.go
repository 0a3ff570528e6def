package models

type UserRole string

const (
	UserRoleJobSeeker UserRole = "job_seeker"
	UserRoleRecruiter UserRole = "recruiter"
)

var roleHumanName = map[UserRole]string{
	UserRoleJobSeeker: "Соискатель",
	UserRoleRecruiter: "Рекрутер",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsRecruiter() bool {
	return r == UserRoleRecruiter
}

func (r UserRole) IsValid() bool {
	_, exist := roleHumanName[r]
	return exist
}
