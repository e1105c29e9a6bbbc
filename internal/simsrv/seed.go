package simsrv

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/talentflow-app/talentflow/internal/models"
)

// Default seed volumes, matching the demo dataset the UI was built against.
const (
	SeedJobCount       = 120
	SeedCandidateCount = 1000
)

var (
	jobTitles = []string{
		"Senior Software Engineer", "Frontend Developer", "Backend Developer",
		"Full Stack Developer", "DevOps Engineer", "Data Scientist",
		"Machine Learning Engineer", "Product Manager", "UX Designer",
		"UI Developer", "QA Engineer", "Technical Lead",
		"Cloud Architect", "Mobile Developer", "Systems Administrator",
		"Database Administrator", "Security Analyst", "Network Engineer",
		"Scrum Master", "Business Analyst", "Project Manager",
		"Technical Writer", "Support Engineer", "Solution Architect",
	}
	jobTags = []string{
		"remote", "hybrid", "onsite", "engineering", "development", "full-time",
		"part-time", "contract", "design", "marketing", "sales", "support",
		"management", "entry-level", "senior", "javascript", "react", "python",
		"java", "nodejs", "aws", "azure", "docker", "kubernetes", "sql",
	}
	departments = []string{
		"Engineering", "Product", "Design", "Marketing", "Sales",
		"Operations", "Support", "Finance", "HR",
	}
	locations = []string{
		"Remote", "New York, NY", "San Francisco, CA", "Austin, TX",
		"Chicago, IL", "Boston, MA", "Seattle, WA", "Los Angeles, CA",
		"London, UK", "Berlin, Germany", "Toronto, Canada",
	}
	salaryRanges = []string{
		"$80k - $120k", "$100k - $150k", "$120k - $180k",
		"$150k - $200k", "$60k - $90k", "$90k - $130k",
	}
	stages = []string{"applied", "screen", "tech", "offer", "hired", "rejected"}
	// fixed windows keep repeated runs byte-identical regardless of wall clock
	jobCreatedFrom     = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	jobCreatedTo       = time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	candidateApplyFrom = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	candidateApplyTo   = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
)

// Seed fills db with generated jobs and candidates plus a small set of
// authored assessments. The same seed always produces the same dataset.
func Seed(db *DB, seed int64, numJobs, numCandidates int) {
	f := gofakeit.New(uint64(seed))

	jobs := make([]models.Job, 0, numJobs)
	for i := 0; i < numJobs; i++ {
		title := f.RandomString(jobTitles)
		job := models.Job{
			ID:          f.UUID(),
			Title:       title,
			Company:     f.Company(),
			Slug:        models.Slugify(title),
			Status:      models.JobStatus(f.RandomString([]string{"active", "archived"})),
			Tags:        pickTags(f),
			Department:  f.RandomString(departments),
			Location:    f.RandomString(locations),
			SalaryRange: f.RandomString(salaryRanges),
			Experience:  f.Number(1, 10),
			Description: f.Paragraph(3, 4, 10, " "),
			CreatedAt:   f.DateRange(jobCreatedFrom, jobCreatedTo).UTC(),
			Order:       i + 1,
		}
		db.InsertJob(&job)
		jobs = append(jobs, job)
	}

	for i := 0; i < numCandidates; i++ {
		id := f.UUID()
		candidate := models.Candidate{
			ID:             id,
			Name:           f.Name(),
			Email:          f.Email(),
			Phone:          f.Phone(),
			Avatar:         fmt.Sprintf("https://i.pravatar.cc/150?u=%s", id),
			Stage:          models.Stage(f.RandomString(stages)),
			AppliedAt:      f.DateRange(candidateApplyFrom, candidateApplyTo).UTC(),
			CurrentCompany: f.Company(),
		}
		if len(jobs) > 0 {
			candidate.JobID = jobs[f.Number(0, len(jobs)-1)].ID
		}
		db.InsertCandidate(&candidate)
	}

	for i, a := range authoredAssessments() {
		if i >= len(jobs) {
			break
		}
		a.JobID = jobs[i].ID
		db.UpsertAssessmentByJob(a.JobID, &a)
	}
}

func pickTags(f *gofakeit.Faker) []string {
	pool := make([]string, len(jobTags))
	copy(pool, jobTags)
	f.ShuffleStrings(pool)
	return pool[:f.Number(2, 5)]
}

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

// authoredAssessments returns the fixed, fully written questionnaires used to
// exercise the assessment-taking flow. Job ids are bound during seeding.
func authoredAssessments() []models.Assessment {
	return []models.Assessment{
		{
			ID:          "asm-technical-screen",
			Title:       "Technical Screen",
			Description: "Baseline engineering screen covering experience and working preferences.",
			Sections: []models.Section{
				{
					ID:    "sec-background",
					Title: "Background",
					Questions: []models.Question{
						{
							ID: "q-years", Type: models.QuestionNumeric, Required: true,
							Text: "How many years of professional experience do you have?",
							Min:  fptr(0), Max: fptr(50),
						},
						{
							ID: "q-langs", Type: models.QuestionMultipleChoice, Required: true,
							Text:    "Which languages have you used in production?",
							Options: []string{"Go", "JavaScript", "Python", "Java", "Rust"},
						},
						{
							ID: "q-go-details", Type: models.QuestionTextLong,
							Text:      "Describe the largest Go system you have worked on.",
							MinLength: iptr(50), MaxLength: iptr(2000),
							DependsOn: &models.DependsOn{QuestionID: "q-langs", RequiredValue: "Go"},
						},
					},
				},
				{
					ID:    "sec-logistics",
					Title: "Logistics",
					Questions: []models.Question{
						{
							ID: "q-remote", Type: models.QuestionSingleChoice, Required: true,
							Text:    "What is your preferred working mode?",
							Options: []string{"Remote", "Hybrid", "Onsite"},
						},
						{
							ID: "q-notice", Type: models.QuestionTextShort,
							Text: "What is your notice period?", MaxLength: iptr(100),
						},
					},
				},
			},
		},
		{
			ID:          "asm-product-sense",
			Title:       "Product Sense",
			Description: "Product thinking exercise for product-facing roles.",
			Sections: []models.Section{
				{
					ID:    "sec-case",
					Title: "Case Study",
					Questions: []models.Question{
						{
							ID: "q-metric", Type: models.QuestionSingleChoice, Required: true,
							Text:    "Pick the single most important metric for a hiring pipeline.",
							Options: []string{"Time to hire", "Offer acceptance rate", "Pipeline conversion"},
						},
						{
							ID: "q-justify", Type: models.QuestionTextLong, Required: true,
							Text: "Justify your choice.", MinLength: iptr(100),
						},
						{
							ID: "q-deck", Type: models.QuestionFile,
							Text: "Optionally attach a short deck supporting your answer.",
						},
					},
				},
			},
		},
		{
			ID:          "asm-culture-add",
			Title:       "Culture Add",
			Description: "Short questionnaire about collaboration style.",
			Sections: []models.Section{
				{
					ID:    "sec-style",
					Title: "Working Style",
					Questions: []models.Question{
						{
							ID: "q-feedback", Type: models.QuestionSingleChoice, Required: true,
							Text:    "How do you prefer to receive feedback?",
							Options: []string{"Written", "1:1 conversation", "Group retro"},
						},
						{
							ID: "q-conflict", Type: models.QuestionTextShort, Required: true,
							Text: "Describe a disagreement you resolved recently.", MaxLength: iptr(300),
						},
					},
				},
			},
		},
	}
}
