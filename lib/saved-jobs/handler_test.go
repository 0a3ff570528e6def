package savedjobshandler

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	apperrors "job-board-backend/lib/utils/app-errors"
	"job-board-backend/models"
	jobapimodels "job-board-backend/models/api/job"
	dbmodels "job-board-backend/models/db"
)

type fakeJobStore struct {
	jobs map[string]dbmodels.Job
}

func (f *fakeJobStore) Create(rec dbmodels.Job) (string, error) {
	rec.ID = uuid.NewString()
	f.jobs[rec.ID] = rec
	return rec.ID, nil
}

func (f *fakeJobStore) GetByID(id string) (*dbmodels.Job, error) {
	rec, exist := f.jobs[id]
	if !exist {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeJobStore) Update(id string, updMap map[string]interface{}) error { return nil }
func (f *fakeJobStore) Delete(id string) error                               { return nil }

func (f *fakeJobStore) List(filter jobapimodels.JobFilter) ([]dbmodels.Job, error) {
	return nil, nil
}

func (f *fakeJobStore) ListByRecruiter(recruiterID string) ([]dbmodels.Job, error) {
	return nil, nil
}

type savedKey struct {
	userID string
	jobID  string
}

type fakeSavedJobsStore struct {
	jobStore *fakeJobStore
	saved    map[savedKey]dbmodels.SavedJob
	// имитация гонки: проверка существования не видит параллельную вставку
	skipExistCheck bool
}

func (f *fakeSavedJobsStore) Get(userID, jobID string) (*dbmodels.SavedJob, error) {
	if f.skipExistCheck {
		return nil, nil
	}
	rec, exist := f.saved[savedKey{userID: userID, jobID: jobID}]
	if !exist {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeSavedJobsStore) Create(userID, jobID string) error {
	key := savedKey{userID: userID, jobID: jobID}
	if _, exist := f.saved[key]; exist {
		return gorm.ErrDuplicatedKey
	}
	f.saved[key] = dbmodels.SavedJob{UserID: userID, JobID: jobID}
	return nil
}

func (f *fakeSavedJobsStore) Delete(userID, jobID string) error {
	delete(f.saved, savedKey{userID: userID, jobID: jobID})
	return nil
}

func (f *fakeSavedJobsStore) ListJobs(userID string) ([]dbmodels.Job, error) {
	list := []dbmodels.Job{}
	for key := range f.saved {
		if key.userID != userID {
			continue
		}
		if rec, exist := f.jobStore.jobs[key.jobID]; exist {
			list = append(list, rec)
		}
	}
	return list, nil
}

func newTestHandler() (impl, *fakeJobStore, *fakeSavedJobsStore) {
	jobs := &fakeJobStore{jobs: map[string]dbmodels.Job{}}
	store := &fakeSavedJobsStore{jobStore: jobs, saved: map[savedKey]dbmodels.SavedJob{}}
	return impl{store: store, jobStore: jobs}, jobs, store
}

func TestToggle(t *testing.T) {
	handler, jobs, store := newTestHandler()
	jobID, err := jobs.Create(dbmodels.Job{Title: "Go разработчик", Status: models.JobStatusOpen})
	require.Nil(t, err)

	t.Run(`повторное переключение возвращает исходное состояние`, func(t *testing.T) {
		saved, err := handler.Toggle("seeker-1", jobID)
		require.Nil(t, err)
		require.Equal(t, true, saved)

		saved, err = handler.IsSaved("seeker-1", jobID)
		require.Nil(t, err)
		require.Equal(t, true, saved)

		saved, err = handler.Toggle("seeker-1", jobID)
		require.Nil(t, err)
		require.Equal(t, false, saved)

		saved, err = handler.IsSaved("seeker-1", jobID)
		require.Nil(t, err)
		require.Equal(t, false, saved)
	})

	t.Run(`сохранения пользователей не пересекаются`, func(t *testing.T) {
		_, err := handler.Toggle("seeker-1", jobID)
		require.Nil(t, err)

		saved, err := handler.IsSaved("seeker-2", jobID)
		require.Nil(t, err)
		require.Equal(t, false, saved)
	})

	t.Run(`отсутствующая вакансия`, func(t *testing.T) {
		_, err := handler.Toggle("seeker-1", uuid.NewString())
		require.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	})

	t.Run(`гонка одновременных сохранений упирается в уникальный индекс`, func(t *testing.T) {
		store.skipExistCheck = true
		defer func() { store.skipExistCheck = false }()
		// параллельный запрос уже сохранил вакансию
		require.Nil(t, store.Create("seeker-3", jobID))

		saved, err := handler.Toggle("seeker-3", jobID)
		require.Nil(t, err)
		require.Equal(t, true, saved)
	})
}

func TestList(t *testing.T) {
	handler, jobs, _ := newTestHandler()
	jobID, err := jobs.Create(dbmodels.Job{Title: "Go разработчик", Status: models.JobStatusOpen})
	require.Nil(t, err)
	_, err = handler.Toggle("seeker-1", jobID)
	require.Nil(t, err)

	list, err := handler.List("seeker-1")
	require.Nil(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Go разработчик", list[0].Title)

	list, err = handler.List("seeker-2")
	require.Nil(t, err)
	require.Len(t, list, 0)
}
