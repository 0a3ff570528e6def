package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "job-board-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры User")
	}
	if err := DB.AutoMigrate(&dbmodels.UserExperience{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры UserExperience")
	}
	if err := DB.AutoMigrate(&dbmodels.UserEducation{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры UserEducation")
	}
	if err := DB.AutoMigrate(&dbmodels.Job{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Job")
	}
	if err := DB.AutoMigrate(&dbmodels.Application{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Application")
	}
	if err := DB.AutoMigrate(&dbmodels.SavedJob{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры SavedJob")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
