package models

import "time"

// Stage is one step of the hiring pipeline.
type Stage string

const (
	StageApplied  Stage = "applied"
	StageScreen   Stage = "screen"
	StageTech     Stage = "tech"
	StageOffer    Stage = "offer"
	StageHired    Stage = "hired"
	StageRejected Stage = "rejected"
)

// Stages lists every pipeline stage in board order.
var Stages = []Stage{StageApplied, StageScreen, StageTech, StageOffer, StageHired, StageRejected}

func (s Stage) Valid() bool {
	for _, known := range Stages {
		if s == known {
			return true
		}
	}
	return false
}

// Candidate is a person moving through the pipeline. JobID is a weak
// reference: it should point at an existing Job but referential integrity is
// not enforced, and it may be empty.
type Candidate struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Avatar         string    `json:"avatar"`
	Stage          Stage     `json:"stage"`
	AppliedAt      time.Time `json:"appliedAt"`
	CurrentCompany string    `json:"currentCompany"`
	JobID          string    `json:"jobId"`
}

// CandidatePatch is a partial update; in practice the patched field is almost
// always Stage.
type CandidatePatch struct {
	Name           *string `json:"name"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	Avatar         *string `json:"avatar"`
	Stage          *Stage  `json:"stage"`
	CurrentCompany *string `json:"currentCompany"`
	JobID          *string `json:"jobId"`
}

func (p *CandidatePatch) Apply(c *Candidate) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Avatar != nil {
		c.Avatar = *p.Avatar
	}
	if p.Stage != nil {
		c.Stage = *p.Stage
	}
	if p.CurrentCompany != nil {
		c.CurrentCompany = *p.CurrentCompany
	}
	if p.JobID != nil {
		c.JobID = *p.JobID
	}
}
