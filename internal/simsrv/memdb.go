package simsrv

import (
	"sort"
	"sync"

	"github.com/talentflow-app/talentflow/internal/common"
	"github.com/talentflow-app/talentflow/internal/models"
)

// DB holds the backend's authoritative in-session tables. Data lives only for
// the lifetime of the process and is reseeded on the next start.
//
// A single RWMutex guards all three tables: handlers run concurrently and
// concurrent writes to the same record are resolved last-write-wins, which is
// exactly the contract the sync layer is written against.
type DB struct {
	mu          sync.RWMutex
	jobs        map[string]*models.Job
	candidates  map[string]*models.Candidate
	assessments map[string]*models.Assessment // keyed by assessment id
}

func NewDB() *DB {
	return &DB{
		jobs:        make(map[string]*models.Job),
		candidates:  make(map[string]*models.Candidate),
		assessments: make(map[string]*models.Assessment),
	}
}

// Jobs returns a copy of every job, sorted by createdAt descending (ties by
// id so the order is stable).
func (db *DB) Jobs() []models.Job {
	db.mu.RLock()
	defer db.mu.RUnlock()

	result := make([]models.Job, 0, len(db.jobs))
	for _, j := range db.jobs {
		result = append(result, *j)
	}
	sort.Slice(result, func(i, k int) bool {
		if result[i].CreatedAt.Equal(result[k].CreatedAt) {
			return result[i].ID < result[k].ID
		}
		return result[i].CreatedAt.After(result[k].CreatedAt)
	})
	return result
}

func (db *DB) JobByID(id string) (*models.Job, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	j, ok := db.jobs[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	copied := *j
	return &copied, nil
}

func (db *DB) InsertJob(j *models.Job) {
	db.mu.Lock()
	defer db.mu.Unlock()

	copied := *j
	db.jobs[j.ID] = &copied
}

// NextJobOrder returns one past the highest manual rank currently assigned.
func (db *DB) NextJobOrder() int {
	db.mu.RLock()
	defer db.mu.RUnlock()

	max := 0
	for _, j := range db.jobs {
		if j.Order > max {
			max = j.Order
		}
	}
	return max + 1
}

func (db *DB) UpdateJob(id string, patch *models.JobPatch) (*models.Job, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	j, ok := db.jobs[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	patch.Apply(j)
	copied := *j
	return &copied, nil
}

// ReorderJob moves a job from one manual rank to another, shifting every job
// between the two ranks one position toward the vacated slot.
func (db *DB) ReorderJob(id string, fromOrder, toOrder int) (*models.Job, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	j, ok := db.jobs[id]
	if !ok {
		return nil, common.ErrNotFound
	}

	if fromOrder != toOrder {
		for _, other := range db.jobs {
			if other.ID == id {
				continue
			}
			switch {
			case fromOrder < toOrder && other.Order > fromOrder && other.Order <= toOrder:
				other.Order--
			case fromOrder > toOrder && other.Order >= toOrder && other.Order < fromOrder:
				other.Order++
			}
		}
		j.Order = toOrder
	}

	copied := *j
	return &copied, nil
}

// Candidates returns a copy of every candidate in stable (seed) order.
func (db *DB) Candidates() []models.Candidate {
	db.mu.RLock()
	defer db.mu.RUnlock()

	result := make([]models.Candidate, 0, len(db.candidates))
	for _, c := range db.candidates {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, k int) bool {
		if result[i].AppliedAt.Equal(result[k].AppliedAt) {
			return result[i].ID < result[k].ID
		}
		return result[i].AppliedAt.After(result[k].AppliedAt)
	})
	return result
}

func (db *DB) CandidateByID(id string) (*models.Candidate, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	c, ok := db.candidates[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	copied := *c
	return &copied, nil
}

func (db *DB) InsertCandidate(c *models.Candidate) {
	db.mu.Lock()
	defer db.mu.Unlock()

	copied := *c
	db.candidates[c.ID] = &copied
}

func (db *DB) UpdateCandidate(id string, patch *models.CandidatePatch) (*models.Candidate, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	c, ok := db.candidates[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	patch.Apply(c)
	copied := *c
	return &copied, nil
}

// Assessments returns a copy of every assessment, ordered by job id for
// stable listings.
func (db *DB) Assessments() []models.Assessment {
	db.mu.RLock()
	defer db.mu.RUnlock()

	result := make([]models.Assessment, 0, len(db.assessments))
	for _, a := range db.assessments {
		result = append(result, *a)
	}
	sort.Slice(result, func(i, k int) bool { return result[i].JobID < result[k].JobID })
	return result
}

func (db *DB) AssessmentByJobID(jobID string) (*models.Assessment, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	for _, a := range db.assessments {
		if a.JobID == jobID {
			copied := *a
			return &copied, nil
		}
	}
	return nil, common.ErrNotFound
}

// UpsertAssessmentByJob replaces the whole assessment document for a job, or
// creates one when the job has none yet. The existing assessment id is kept
// on replace.
func (db *DB) UpsertAssessmentByJob(jobID string, doc *models.Assessment) *models.Assessment {
	db.mu.Lock()
	defer db.mu.Unlock()

	for id, a := range db.assessments {
		if a.JobID == jobID {
			doc.ID = id
			doc.JobID = jobID
			copied := *doc
			db.assessments[id] = &copied
			return doc
		}
	}

	doc.JobID = jobID
	copied := *doc
	db.assessments[doc.ID] = &copied
	return doc
}

// DeleteAssessment removes an assessment by id. Absent ids succeed silently,
// matching the endpoint's idempotent delete semantics.
func (db *DB) DeleteAssessment(id string) {
	db.mu.Lock()
	defer db.mu.Unlock()

	delete(db.assessments, id)
}
