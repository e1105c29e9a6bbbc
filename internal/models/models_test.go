package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Senior Backend Developer", "senior-backend-developer"},
		{"C++ / Systems Engineer", "c-systems-engineer"},
		{"  Spaced   Out  ", "spaced-out"},
		{"ALLCAPS", "allcaps"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.title), tt.title)
	}
}

func TestJobPatch_ApplySkipsNilFields(t *testing.T) {
	job := Job{Title: "Old", Company: "Acme", Slug: "old", Status: JobStatusActive, Experience: 3}

	title := "New"
	status := JobStatusArchived
	patch := JobPatch{Title: &title, Status: &status}
	patch.Apply(&job)

	assert.Equal(t, "New", job.Title)
	assert.Equal(t, JobStatusArchived, job.Status)
	assert.Equal(t, "Acme", job.Company)
	assert.Equal(t, 3, job.Experience)
	assert.Equal(t, "old", job.Slug)
}

func TestCandidatePatch_Apply(t *testing.T) {
	c := Candidate{Name: "Ada", Stage: StageApplied, JobID: "j1"}

	stage := StageOffer
	patch := CandidatePatch{Stage: &stage}
	patch.Apply(&c)

	assert.Equal(t, StageOffer, c.Stage)
	assert.Equal(t, "Ada", c.Name)
	assert.Equal(t, "j1", c.JobID)
}

func TestStage_Valid(t *testing.T) {
	for _, s := range Stages {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, Stage("promoted").Valid())
	assert.False(t, Stage("").Valid())
}

func TestAssessment_QuestionCount(t *testing.T) {
	a := Assessment{Sections: []Section{
		{Questions: make([]Question, 3)},
		{Questions: make([]Question, 2)},
	}}
	assert.Equal(t, 5, a.QuestionCount())

	empty := Assessment{}
	assert.Equal(t, 0, empty.QuestionCount())
}
