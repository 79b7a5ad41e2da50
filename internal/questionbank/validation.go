package questionbank

import (
	"errors"
	"fmt"

	"github.com/m04kA/coaching-scheduler/internal/domain"
)

// requiredParts lists the parts scoring relies on, with the question kind each must contain
var requiredParts = map[domain.TestType]map[string]domain.QuestionKind{
	domain.TestStress: {
		domain.PartSources: domain.QuestionRating,
		domain.PartImpacts: domain.QuestionRating,
	},
	domain.TestLiteracy: {
		domain.PartHabits:    domain.QuestionRating,
		domain.PartKnowledge: domain.QuestionChoice,
	},
}

func validateTest(t *domain.Test) error {
	if !t.Type.Valid() {
		return fmt.Errorf("%w: unknown test type %q", ErrInvalidDefinition, t.Type)
	}
	if t.Version <= 0 {
		return fmt.Errorf("%w: %s: version must be positive", ErrInvalidDefinition, t.Type)
	}
	if len(t.Parts) == 0 {
		return fmt.Errorf("%w: %s: no parts", ErrInvalidDefinition, t.Type)
	}

	partKeys := make(map[string]bool)
	sectionKeys := make(map[string]bool)

	for pi, part := range t.Parts {
		if part.Key == "" {
			return fmt.Errorf("%w: %s: part %d has no key", ErrInvalidDefinition, t.Type, pi)
		}
		if partKeys[part.Key] {
			return fmt.Errorf("%w: %s: duplicate part %q", ErrInvalidDefinition, t.Type, part.Key)
		}
		partKeys[part.Key] = true

		if len(part.Sections) == 0 {
			return fmt.Errorf("%w: %s: part %q has no sections", ErrInvalidDefinition, t.Type, part.Key)
		}

		for si, section := range part.Sections {
			where := fmt.Sprintf("%s/%s/%d", t.Type, part.Key, si)
			if section.Key == "" {
				return fmt.Errorf("%w: %s: section has no key", ErrInvalidDefinition, where)
			}
			if sectionKeys[section.Key] {
				return fmt.Errorf("%w: %s: duplicate section %q", ErrInvalidDefinition, where, section.Key)
			}
			sectionKeys[section.Key] = true

			if len(section.Questions) == 0 {
				return fmt.Errorf("%w: %s: section %q is empty", ErrInvalidDefinition, where, section.Key)
			}

			for qi := range section.Questions {
				if err := validateQuestion(&section.Questions[qi]); err != nil {
					return fmt.Errorf("%w: %s: question %d: %v", ErrInvalidDefinition, where, qi, err)
				}
			}
		}
	}

	for key, kind := range requiredParts[t.Type] {
		part, _ := t.PartByKey(key)
		if part == nil {
			return fmt.Errorf("%w: %s: missing part %q", ErrInvalidDefinition, t.Type, key)
		}
		for _, section := range part.Sections {
			for _, q := range section.Questions {
				if q.Kind != kind {
					return fmt.Errorf("%w: %s: part %q must contain only %s questions",
						ErrInvalidDefinition, t.Type, key, kind)
				}
			}
		}
	}

	return nil
}

func validateQuestion(q *domain.Question) error {
	if q.Text == "" {
		return errors.New("empty text")
	}

	switch q.Kind {
	case domain.QuestionRating:
		return nil

	case domain.QuestionChoice:
		if len(q.Options) < 2 {
			return errors.New("choice question needs at least two options")
		}
		seen := make(map[string]bool, len(q.Options))
		for _, o := range q.Options {
			if o.Letter == "" {
				return errors.New("option without letter")
			}
			if seen[o.Letter] {
				return fmt.Errorf("duplicate option %q", o.Letter)
			}
			seen[o.Letter] = true
		}
		if !q.HasOption(q.Answer) {
			return fmt.Errorf("answer %q is not one of the options", q.Answer)
		}
		return nil

	default:
		return fmt.Errorf("unknown question kind %q", q.Kind)
	}
}
