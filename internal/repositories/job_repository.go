package repositories

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"alumni-connect/internal/models"
	"alumni-connect/internal/store"
)

// JobRepository keeps the per-college job board.
type JobRepository interface {
	List(college string) ([]models.Job, error)
	Post(college string, draft models.JobDraft) (models.Job, error)
}

type jobRepository struct {
	store store.Store
	now   func() time.Time
}

func NewJobRepository(s store.Store) JobRepository {
	return &jobRepository{store: s, now: time.Now}
}

func (r *jobRepository) List(college string) ([]models.Job, error) {
	return store.Load[models.Job](r.store, store.JobsKey(college))
}

// Post prepends a new posting to the college's board.
func (r *jobRepository) Post(college string, draft models.JobDraft) (models.Job, error) {
	jobs, err := r.List(college)
	if err != nil {
		return models.Job{}, err
	}

	job := models.Job{
		ID:              uuid.NewString(),
		Title:           draft.Title,
		Company:         draft.Company,
		Location:        draft.Location,
		Type:            draft.Type,
		Salary:          draft.Salary,
		Description:     draft.Description,
		Requirements:    draft.Requirements,
		PostedBy:        draft.PostedBy,
		PostedAt:        r.now(),
		ApplicationLink: draft.ApplicationLink,
	}
	if job.Requirements == nil {
		job.Requirements = []string{}
	}

	jobs = append([]models.Job{job}, jobs...)
	if err := store.Save(r.store, store.JobsKey(college), jobs); err != nil {
		return models.Job{}, err
	}
	return job, nil
}

// FilterJobs filters the board by free text over title, company and
// location, plus a job-type facet ("" means no facet). Pure; order preserved.
func FilterJobs(jobs []models.Job, query string, jobType models.JobType) []models.Job {
	q := strings.ToLower(query)
	out := make([]models.Job, 0, len(jobs))
	for _, j := range jobs {
		if query != "" && !matchesJob(j, q) {
			continue
		}
		if jobType != "" && j.Type != jobType {
			continue
		}
		out = append(out, j)
	}
	return out
}

func matchesJob(j models.Job, q string) bool {
	return strings.Contains(strings.ToLower(j.Title), q) ||
		strings.Contains(strings.ToLower(j.Company), q) ||
		strings.Contains(strings.ToLower(j.Location), q)
}
