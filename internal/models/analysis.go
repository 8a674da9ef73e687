package models

import (
	"encoding/json"
	"slices"
)

// AnalysisResult is one candidate profile as scored by the analysis backend.
// Scores are nominally 0..100; a missing score decodes as 0.
type AnalysisResult struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	Summary    string `json:"summary"`
	Experience string `json:"experience"`
	Education  string `json:"education"`

	Skills             []string `json:"skills"`
	Strengths          []string `json:"strengths"`
	Recommendations    []string `json:"recommendations"`
	InterviewQuestions []string `json:"interview_questions"`
	CareerPath         []string `json:"career_path"`
	MatchingSkills     []string `json:"matching_skills"`
	MissingSkills      []string `json:"missing_skills"`
	RedFlags           []string `json:"red_flags"`

	OverallScore    int `json:"overall_score"`
	SkillsScore     int `json:"skills_score"`
	ExperienceScore int `json:"experience_score"`
	EducationScore  int `json:"education_score"`
	SoftSkillsScore int `json:"soft_skills_score"`
	MatchPercentage int `json:"match_percentage"`

	SalaryRange string `json:"salary_range"`
}

// HasJobMatching reports whether the backend scored against a job
// description. The two scores double as the presence flag.
func (r *AnalysisResult) HasJobMatching() bool {
	if r == nil {
		return false
	}
	return r.OverallScore > 0 || r.MatchPercentage > 0
}

// Clone returns a deep copy of r.
func (r *AnalysisResult) Clone() *AnalysisResult {
	if r == nil {
		return nil
	}
	c := *r
	c.Skills = slices.Clone(r.Skills)
	c.Strengths = slices.Clone(r.Strengths)
	c.Recommendations = slices.Clone(r.Recommendations)
	c.InterviewQuestions = slices.Clone(r.InterviewQuestions)
	c.CareerPath = slices.Clone(r.CareerPath)
	c.MatchingSkills = slices.Clone(r.MatchingSkills)
	c.MissingSkills = slices.Clone(r.MissingSkills)
	c.RedFlags = slices.Clone(r.RedFlags)
	return &c
}

// BatchItem pairs a result with the file it came from. Error is set instead
// of Analysis when the backend could not process that file.
//
// Raw holds the item exactly as the backend sent it. The decoded fields are
// a lossy view (scores are truncated, unknown keys dropped), so the export
// sends Raw back instead.
type BatchItem struct {
	Filename string          `json:"filename"`
	Analysis *AnalysisResult `json:"analysis,omitempty"`
	Error    string          `json:"error,omitempty"`

	Raw json.RawMessage `json:"-"`
}

// WireJSON returns the backend's original bytes for the item, or an encoding
// of the decoded fields when the item was built locally.
func (b BatchItem) WireJSON() (json.RawMessage, error) {
	if len(b.Raw) > 0 {
		return b.Raw, nil
	}
	return json.Marshal(b)
}

func (b BatchItem) Clone() BatchItem {
	b.Analysis = b.Analysis.Clone()
	b.Raw = slices.Clone(b.Raw)
	return b
}

func (b BatchItem) OverallScore() int {
	if b.Analysis == nil {
		return 0
	}
	return b.Analysis.OverallScore
}

func (b BatchItem) MatchPercentage() int {
	if b.Analysis == nil {
		return 0
	}
	return b.Analysis.MatchPercentage
}

func (b BatchItem) Failed() bool {
	return b.Error != ""
}
