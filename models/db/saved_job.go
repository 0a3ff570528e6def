package dbmodels

type SavedJob struct {
	BaseModel
	JobID  string `gorm:"type:varchar(36);uniqueIndex:idx_user_job"`
	UserID string `gorm:"type:varchar(36);uniqueIndex:idx_user_job"`
}
