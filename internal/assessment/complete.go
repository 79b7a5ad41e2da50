package assessment

import (
	"fmt"

	"github.com/m04kA/coaching-scheduler/internal/domain"
)

const (
	minRating = 1
	maxRating = 5
)

// questionAt returns the question addressed by key, if the test has one
func questionAt(test *domain.Test, key domain.AnswerKey) (*domain.Question, bool) {
	if key.Part >= len(test.Parts) {
		return nil, false
	}
	part := &test.Parts[key.Part]
	if key.Section >= len(part.Sections) {
		return nil, false
	}
	section := &part.Sections[key.Section]
	if key.Question >= len(section.Questions) {
		return nil, false
	}
	return &section.Questions[key.Question], true
}

// Keys lists every question key of the test in display order
func Keys(test *domain.Test) []domain.AnswerKey {
	keys := make([]domain.AnswerKey, 0, test.QuestionCount())
	for p, part := range test.Parts {
		for s, section := range part.Sections {
			for q := range section.Questions {
				keys = append(keys, domain.AnswerKey{Part: p, Section: s, Question: q})
			}
		}
	}
	return keys
}

// Missing lists the keys without an answer, in display order
func Missing(test *domain.Test, answers domain.AnswerSet) []domain.AnswerKey {
	missing := make([]domain.AnswerKey, 0)
	for _, key := range Keys(test) {
		if v, ok := answers[key]; !ok || v == "" {
			missing = append(missing, key)
		}
	}
	return missing
}

// parseRating accepts exactly "1".."5"
func parseRating(raw string) (int, error) {
	if len(raw) != 1 || raw[0] < '0'+minRating || raw[0] > '0'+maxRating {
		return 0, fmt.Errorf("rating %q must be a single digit between %d and %d", raw, minRating, maxRating)
	}
	return int(raw[0] - '0'), nil
}

// ValidateAnswer checks one raw response against the question it answers
func ValidateAnswer(test *domain.Test, key domain.AnswerKey, raw string) error {
	q, ok := questionAt(test, key)
	if !ok {
		return fmt.Errorf("%w: %s is not a question of the %s test", ErrInvalidAnswer, key, test.Type)
	}

	switch q.Kind {
	case domain.QuestionRating:
		if _, err := parseRating(raw); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidAnswer, key, err)
		}
	case domain.QuestionChoice:
		if !q.HasOption(raw) {
			return fmt.Errorf("%w: %s: %q is not an option", ErrInvalidAnswer, key, raw)
		}
	default:
		return fmt.Errorf("%w: %s: unknown question kind %q", ErrInvalidAnswer, key, q.Kind)
	}

	return nil
}

// CheckComplete verifies that answers holds a valid response for every
// question of test and nothing else. A missing answer is never treated as zero.
func CheckComplete(test *domain.Test, answers domain.AnswerSet) error {
	if missing := Missing(test, answers); len(missing) > 0 {
		return fmt.Errorf("%w: %d of %d questions unanswered, first is %s",
			ErrIncompleteAnswers, len(missing), test.QuestionCount(), missing[0])
	}

	for key, raw := range answers {
		if err := ValidateAnswer(test, key, raw); err != nil {
			return err
		}
	}

	return nil
}
