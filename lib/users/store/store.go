package usersstore

import (
	dbmodels "job-board-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.User) (string, error)
	GetByID(userID string) (rec *dbmodels.User, err error)
	FindByEmail(email string) (rec *dbmodels.User, err error)
	ExistByEmail(email string) (bool, error)
	UpdateProfile(userID string, updMap map[string]interface{}, experience []dbmodels.UserExperience, education []dbmodels.UserEducation) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.User) (string, error) {
	err := i.db.
		Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(userID string) (rec *dbmodels.User, err error) {
	err = i.db.Model(dbmodels.User{}).
		Where("id = ?", userID).
		Preload(clause.Associations).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) FindByEmail(email string) (rec *dbmodels.User, err error) {
	err = i.db.Model(dbmodels.User{}).
		Where("email = ?", email).
		Preload(clause.Associations).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) ExistByEmail(email string) (bool, error) {
	err := i.db.
		Where("email = ?", email).
		First(&dbmodels.User{}).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (i impl) UpdateProfile(userID string, updMap map[string]interface{}, experience []dbmodels.UserExperience, education []dbmodels.UserEducation) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		if len(updMap) > 0 {
			result := tx.
				Model(&dbmodels.User{}).
				Where("id = ?", userID).
				Updates(updMap)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return errors.New("пользователь не найден")
			}
		}
		if err := tx.Where("user_id = ?", userID).Delete(&dbmodels.UserExperience{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&dbmodels.UserEducation{}).Error; err != nil {
			return err
		}
		for idx := range experience {
			experience[idx].UserID = userID
		}
		for idx := range education {
			education[idx].UserID = userID
		}
		if len(experience) > 0 {
			if err := tx.Create(&experience).Error; err != nil {
				return err
			}
		}
		if len(education) > 0 {
			if err := tx.Create(&education).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
