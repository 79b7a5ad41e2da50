package assessment

import (
	"strconv"

	"github.com/m04kA/coaching-scheduler/internal/domain"
)

func rating(text string, reverse bool) domain.Question {
	return domain.Question{Kind: domain.QuestionRating, Text: text, Reverse: reverse}
}

func choice(text, answer string) domain.Question {
	return domain.Question{
		Kind: domain.QuestionChoice,
		Text: text,
		Options: []domain.Option{
			{Letter: "A", Text: "a"},
			{Letter: "B", Text: "b"},
			{Letter: "C", Text: "c"},
			{Letter: "D", Text: "d"},
		},
		Answer: answer,
	}
}

func fiveChoices(answer string) []domain.Question {
	qs := make([]domain.Question, 5)
	for i := range qs {
		qs[i] = choice("q"+strconv.Itoa(i), answer)
	}
	return qs
}

// stressTest: sources has one 4-question section with the last reversed, impacts one 2-question section
func stressTest() *domain.Test {
	return &domain.Test{
		Type:    domain.TestStress,
		Version: 1,
		Parts: []domain.Part{
			{
				Key:   domain.PartSources,
				Phase: "Sources",
				Sections: []domain.Section{
					{Key: "work", Title: "Work", Questions: []domain.Question{
						rating("w1", false), rating("w2", false), rating("w3", false), rating("w4", true),
					}},
				},
			},
			{
				Key:   domain.PartImpacts,
				Phase: "Impacts",
				Sections: []domain.Section{
					{Key: "body", Title: "Body", Questions: []domain.Question{
						rating("b1", false), rating("b2", false),
					}},
				},
			},
		},
	}
}

// literacyTest: five habits questions, two five-question knowledge sections whose answer is always "A"
func literacyTest() *domain.Test {
	return &domain.Test{
		Type:    domain.TestLiteracy,
		Version: 3,
		Parts: []domain.Part{
			{
				Key:   domain.PartHabits,
				Phase: "Current Habits",
				Sections: []domain.Section{
					{Key: "habits", Title: "Habits", Questions: []domain.Question{
						rating("h1", false), rating("h2", false), rating("h3", false), rating("h4", false), rating("h5", false),
					}},
				},
			},
			{
				Key:   domain.PartKnowledge,
				Phase: "Knowledge",
				Sections: []domain.Section{
					{Key: "spending", Title: "Spending", Questions: fiveChoices("A")},
					{Key: "debt", Title: "Debt", Questions: fiveChoices("A")},
				},
			},
		},
	}
}

// literacyAnswers builds a full literacy answer set with the given habits
// ratings and number of correct answers per knowledge section
func literacyAnswers(habits [5]int, spendingCorrect, debtCorrect int) domain.AnswerSet {
	answers := make(domain.AnswerSet)
	for q, v := range habits {
		answers[domain.AnswerKey{Part: 0, Section: 0, Question: q}] = strconv.Itoa(v)
	}
	for s, correct := range []int{spendingCorrect, debtCorrect} {
		for q := 0; q < 5; q++ {
			letter := "B"
			if q < correct {
				letter = "A"
			}
			answers[domain.AnswerKey{Part: 1, Section: s, Question: q}] = letter
		}
	}
	return answers
}

type fakeSource map[domain.TestType]*domain.Test

func (f fakeSource) Get(t domain.TestType) (*domain.Test, error) {
	test, ok := f[t]
	if !ok {
		return nil, ErrUnsupportedTest
	}
	return test, nil
}
