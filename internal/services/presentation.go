package services

import (
	"cmp"
	"slices"
	"unicode"
	"unicode/utf8"

	"github.com/thanhdanh14/CV-Analyzer/internal/i18n"
	"github.com/thanhdanh14/CV-Analyzer/internal/models"
)

// ScoreBand is the severity bucket of a score. Bands are ordered
// low < medium < high.
type ScoreBand int

const (
	BandLow ScoreBand = iota
	BandMedium
	BandHigh
)

func (b ScoreBand) String() string {
	switch b {
	case BandHigh:
		return "high"
	case BandMedium:
		return "medium"
	default:
		return "low"
	}
}

// TextClass is the CSS class used for score text.
func (b ScoreBand) TextClass() string {
	switch b {
	case BandHigh:
		return "text-green-600 dark:text-green-400"
	case BandMedium:
		return "text-yellow-600 dark:text-yellow-400"
	default:
		return "text-red-600 dark:text-red-400"
	}
}

// BarClass is the CSS class used for progress-bar fills.
func (b ScoreBand) BarClass() string {
	switch b {
	case BandHigh:
		return "bg-green-500"
	case BandMedium:
		return "bg-yellow-500"
	default:
		return "bg-red-500"
	}
}

// ClassifyScore buckets a score. Out-of-range scores are not clamped.
func ClassifyScore(score int) ScoreBand {
	switch {
	case score >= 80:
		return BandHigh
	case score >= 60:
		return BandMedium
	default:
		return BandLow
	}
}

// BarWidth is the fill percentage of a progress bar for score.
func BarWidth(score int) int {
	return min(max(score, 0), 100)
}

// SortByScore returns a copy of items ordered by descending overall score.
// Equal scores keep their original relative order; items is not modified.
func SortByScore(items []models.BatchItem) []models.BatchItem {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b models.BatchItem) int {
		return cmp.Compare(b.OverallScore(), a.OverallScore())
	})
	return sorted
}

type ScoreView struct {
	Value int
	Band  ScoreBand
	Width int
}

func NewScoreView(score int) ScoreView {
	return ScoreView{Value: score, Band: ClassifyScore(score), Width: BarWidth(score)}
}

type BreakdownRow struct {
	Label string
	Score ScoreView
}

// Scorecard is everything the result view renders for one analysis.
type Scorecard struct {
	HasJobMatching bool
	Overall        ScoreView
	Match          ScoreView
	Breakdown      []BreakdownRow

	MatchingSkills []string
	MissingSkills  []string
	RedFlags       []string

	DisplayName string
	Initial     string
	Email       string
	Phone       string
	Summary     string
	Experience  string
	Education   string
	SalaryRange string

	Skills             []SkillBadge
	Strengths          []string
	Recommendations    []string
	InterviewQuestions []string
	CareerPath         []string
}

// BuildScorecard derives the display values of a result. Missing text fields
// fall back to localized placeholders.
func BuildScorecard(cfg models.ViewConfig, r *models.AnalysisResult) *Scorecard {
	if r == nil {
		return nil
	}
	tr := i18n.Translator{Lang: cfg.Language}

	card := &Scorecard{
		HasJobMatching: r.HasJobMatching(),
		Overall:        NewScoreView(r.OverallScore),
		Match:          NewScoreView(r.MatchPercentage),
		Breakdown: []BreakdownRow{
			{Label: tr.T(i18n.KeySkillsScore), Score: NewScoreView(r.SkillsScore)},
			{Label: tr.T(i18n.KeyExperienceScore), Score: NewScoreView(r.ExperienceScore)},
			{Label: tr.T(i18n.KeyEducationScore), Score: NewScoreView(r.EducationScore)},
			{Label: tr.T(i18n.KeySoftSkillsScore), Score: NewScoreView(r.SoftSkillsScore)},
		},
		MatchingSkills:     r.MatchingSkills,
		MissingSkills:      r.MissingSkills,
		RedFlags:           r.RedFlags,
		DisplayName:        orDefault(r.Name, tr.T(i18n.KeyUnknown)),
		Initial:            initial(r.Name),
		Email:              r.Email,
		Phone:              r.Phone,
		Summary:            r.Summary,
		Experience:         orDefault(r.Experience, tr.T(i18n.KeyNoInfo)),
		Education:          orDefault(r.Education, tr.T(i18n.KeyNoInfo)),
		SalaryRange:        orDefault(r.SalaryRange, tr.T(i18n.KeyNoSalaryInfo)),
		Strengths:          r.Strengths,
		Recommendations:    r.Recommendations,
		InterviewQuestions: r.InterviewQuestions,
		CareerPath:         r.CareerPath,
	}

	for _, skill := range r.Skills {
		card.Skills = append(card.Skills, ResolveSkillBadge(skill))
	}

	return card
}

// BatchRow is one line of the ranked comparison table.
type BatchRow struct {
	Rank          int
	Name          string
	Filename      string
	Score         ScoreView
	Match         int
	TopSkills     []string
	ExtraSkills   int
	RedFlagCount  int
	RedFlagsLabel string
	Error         string
}

const batchTopSkills = 3

// BuildBatchRows ranks items and derives the table cells. The match cell
// shares the overall score's band.
func BuildBatchRows(cfg models.ViewConfig, items []models.BatchItem) []BatchRow {
	tr := i18n.Translator{Lang: cfg.Language}
	sorted := SortByScore(items)

	rows := make([]BatchRow, 0, len(sorted))
	for i, item := range sorted {
		analysis := item.Analysis
		if analysis == nil {
			analysis = &models.AnalysisResult{}
		}

		row := BatchRow{
			Rank:         i + 1,
			Name:         orDefault(analysis.Name, tr.T(i18n.KeyNotAvailable)),
			Filename:     item.Filename,
			Score:        NewScoreView(analysis.OverallScore),
			Match:        analysis.MatchPercentage,
			RedFlagCount: len(analysis.RedFlags),
			Error:        item.Error,
		}

		row.TopSkills = analysis.Skills
		if len(analysis.Skills) > batchTopSkills {
			row.TopSkills = analysis.Skills[:batchTopSkills]
			row.ExtraSkills = len(analysis.Skills) - batchTopSkills
		}

		if row.RedFlagCount > 0 {
			row.RedFlagsLabel = tr.Count(i18n.KeyFlags, row.RedFlagCount)
		} else {
			row.RedFlagsLabel = tr.T(i18n.KeyClean)
		}

		rows = append(rows, row)
	}

	return rows
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func initial(name string) string {
	if name == "" {
		return "?"
	}
	r, _ := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r))
}
