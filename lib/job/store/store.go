package jobstore

import (
	"strings"

	jobapimodels "job-board-backend/models/api/job"
	dbmodels "job-board-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Job) (id string, err error)
	GetByID(id string) (rec *dbmodels.Job, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	List(filter jobapimodels.JobFilter) (list []dbmodels.Job, err error)
	ListByRecruiter(recruiterID string) (list []dbmodels.Job, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Job) (id string, err error) {
	err = i.db.
		Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Job, error) {
	rec := dbmodels.Job{}
	err := i.db.
		Model(&dbmodels.Job{}).
		Where("id = ?", id).
		Preload(clause.Associations).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Job{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("запись не найдена")
	}
	return nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.Job{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	err := i.db.
		Delete(&rec).
		Error
	if err != nil {
		return err
	}
	return nil
}

// escapeLike экранирует спецсимволы шаблона LIKE,
// ключевое слово ищется как буквальная подстрока
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}

func (i impl) List(filter jobapimodels.JobFilter) (list []dbmodels.Job, err error) {
	list = []dbmodels.Job{}
	tx := i.db.
		Model(dbmodels.Job{})
	if filter.Keyword != "" {
		keyword := "%" + escapeLike(strings.ToLower(filter.Keyword)) + "%"
		tx = tx.Where("LOWER(title) like ? OR LOWER(description) like ?", keyword, keyword)
	}
	err = tx.
		Order("created_at desc").
		Preload(clause.Associations).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByRecruiter(recruiterID string) (list []dbmodels.Job, err error) {
	list = []dbmodels.Job{}
	err = i.db.
		Model(dbmodels.Job{}).
		Where("recruiter_id = ?", recruiterID).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
