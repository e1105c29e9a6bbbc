// Package models defines the wire-level entities shared by the simulated
// backend, the local store, and the sync client. JSON field names follow the
// hiring API's camelCase convention.
package models

import (
	"regexp"
	"strings"
	"time"
)

type JobStatus string

const (
	JobStatusActive   JobStatus = "active"
	JobStatusArchived JobStatus = "archived"
)

// Job is a posting in the hiring pipeline. The slug is derived from the title
// once at creation and never re-derived on update. Order is a manual rank
// used for sequencing in list views.
type Job struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Slug        string    `json:"slug"`
	Status      JobStatus `json:"status"`
	Tags        []string  `json:"tags"`
	Department  string    `json:"department"`
	Location    string    `json:"location"`
	SalaryRange string    `json:"salaryRange"`
	Experience  int       `json:"experience"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	Order       int       `json:"order"`
}

// JobPatch is a partial update. Nil fields are left untouched. Slug is
// deliberately absent.
type JobPatch struct {
	Title       *string    `json:"title"`
	Company     *string    `json:"company"`
	Status      *JobStatus `json:"status"`
	Tags        *[]string  `json:"tags"`
	Department  *string    `json:"department"`
	Location    *string    `json:"location"`
	SalaryRange *string    `json:"salaryRange"`
	Experience  *int       `json:"experience"`
	Description *string    `json:"description"`
	Order       *int       `json:"order"`
}

// Apply merges the set fields of p into j.
func (p *JobPatch) Apply(j *Job) {
	if p.Title != nil {
		j.Title = *p.Title
	}
	if p.Company != nil {
		j.Company = *p.Company
	}
	if p.Status != nil {
		j.Status = *p.Status
	}
	if p.Tags != nil {
		j.Tags = *p.Tags
	}
	if p.Department != nil {
		j.Department = *p.Department
	}
	if p.Location != nil {
		j.Location = *p.Location
	}
	if p.SalaryRange != nil {
		j.SalaryRange = *p.SalaryRange
	}
	if p.Experience != nil {
		j.Experience = *p.Experience
	}
	if p.Description != nil {
		j.Description = *p.Description
	}
	if p.Order != nil {
		j.Order = *p.Order
	}
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases a title and replaces every non-alphanumeric run with a
// single dash.
func Slugify(title string) string {
	s := slugStrip.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(s, "-")
}
