// Package assessment scores completed self-assessments and drives the
// section-by-section flow of taking one.
//
// The HTTP service only scores: clients submit a whole answer set and the
// server recomputes the breakdown. Attempt is the client-side flow and is
// exported for UI code embedding this package; no server route drives it.
package assessment

import (
	"fmt"

	"github.com/m04kA/coaching-scheduler/internal/domain"
)

// Score checks that answers are complete and computes the breakdown for test.
func Score(test *domain.Test, answers domain.AnswerSet) (*domain.ScoreBreakdown, error) {
	if err := CheckComplete(test, answers); err != nil {
		return nil, err
	}

	switch test.Type {
	case domain.TestStress:
		return scoreStress(test, answers), nil
	case domain.TestLiteracy:
		return scoreLiteracy(test, answers), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedTest, test.Type)
	}
}

// ratingValue returns the answer with reverse scoring applied (6 - v).
// Answers are validated before scoring.
func ratingValue(q *domain.Question, raw string) int {
	v, _ := parseRating(raw)
	if q.Reverse {
		return minRating + maxRating - v
	}
	return v
}

// ratingSum is the raw sum of a section's rating answers
func ratingSum(test *domain.Test, part, section int, answers domain.AnswerSet) int {
	questions := test.Parts[part].Sections[section].Questions
	sum := 0
	for q := range questions {
		key := domain.AnswerKey{Part: part, Section: section, Question: q}
		sum += ratingValue(&questions[q], answers[key])
	}
	return sum
}

// correctCount is the number of correct choice answers in a section
func correctCount(test *domain.Test, part, section int, answers domain.AnswerSet) int {
	questions := test.Parts[part].Sections[section].Questions
	correct := 0
	for q := range questions {
		key := domain.AnswerKey{Part: part, Section: section, Question: q}
		if answers[key] == questions[q].Answer {
			correct++
		}
	}
	return correct
}

// partRatings returns the sum of all section sums of a part and its question count
func partRatings(test *domain.Test, partKey string, answers domain.AnswerSet) (int, int) {
	part, idx := test.PartByKey(partKey)
	if part == nil {
		return 0, 0
	}
	sum := 0
	for s := range part.Sections {
		sum += ratingSum(test, idx, s, answers)
	}
	return sum, part.QuestionCount()
}

func mean(sum, count int) float64 {
	if count == 0 {
		return 0
	}
	return float64(sum) / float64(count)
}

func scoreStress(test *domain.Test, answers domain.AnswerSet) *domain.ScoreBreakdown {
	sectionScores := make(map[string]int)
	for p, part := range test.Parts {
		for s, section := range part.Sections {
			sectionScores[section.Key] = ratingSum(test, p, s, answers)
		}
	}

	sources := mean(partRatings(test, domain.PartSources, answers))
	impacts := mean(partRatings(test, domain.PartImpacts, answers))

	return &domain.ScoreBreakdown{
		TestType:     test.Type,
		Version:      test.Version,
		OverallScore: (sources + impacts) / 2,
		Stress: &domain.StressBreakdown{
			SectionScores: sectionScores,
			SourcesScore:  sources,
			ImpactsScore:  impacts,
		},
		// для стресс-теста рекомендаций нет
		Recommendations: []domain.Recommendation{},
	}
}

// HabitsScore normalizes a habits rating sum as sum / (count*4) * 100.
// All fives give 125; the result is not clamped.
func HabitsScore(sum, count int) float64 {
	if count == 0 {
		return 0
	}
	return float64(sum) / float64(count*4) * 100
}

func scoreLiteracy(test *domain.Test, answers domain.AnswerSet) *domain.ScoreBreakdown {
	habits := HabitsScore(partRatings(test, domain.PartHabits, answers))

	knowledgeScores := make(map[string]int)
	totalCorrect, totalQuestions := 0, 0
	if part, idx := test.PartByKey(domain.PartKnowledge); part != nil {
		for s, section := range part.Sections {
			correct := correctCount(test, idx, s, answers)
			knowledgeScores[section.Key] = correct
			totalCorrect += correct
			totalQuestions += len(section.Questions)
		}
	}
	knowledge := mean(totalCorrect, totalQuestions) * 100

	return &domain.ScoreBreakdown{
		TestType:     test.Type,
		Version:      test.Version,
		OverallScore: (habits + knowledge) / 2,
		Literacy: &domain.LiteracyBreakdown{
			HabitsScore:     habits,
			KnowledgeScore:  knowledge,
			KnowledgeScores: knowledgeScores,
		},
		Recommendations: Recommend(test, knowledgeScores, habits),
	}
}
