package assessment

import "github.com/m04kA/coaching-scheduler/internal/domain"

var (
	budgetingSession = domain.Recommendation{Name: "Budgeting Session", Link: "/services/budgeting-session"}

	// topicRecommendations maps a knowledge section key to the sessions suggested when it is weak
	topicRecommendations = map[string][]domain.Recommendation{
		"spending": {
			{Name: "Spending Habits Session", Link: "/services/spending-habits-session"},
			budgetingSession,
		},
		"saving": {
			{Name: "Savings Strategy Session", Link: "/services/savings-strategy-session"},
		},
		"credit": {
			{Name: "Credit Building Session", Link: "/services/credit-building-session"},
		},
		"investing": {
			{Name: "Investing Fundamentals Session", Link: "/services/investing-fundamentals-session"},
		},
		"debt": {
			{Name: "Debt Management Session", Link: "/services/debt-management-session"},
			budgetingSession,
		},
	}

	habitsRecommendation = domain.Recommendation{
		Name: "Improving Financial Habits Session",
		Link: "/services/improving-financial-habits-session",
	}
)

// Recommend derives the literacy recommendations.
//
// Knowledge sections are walked in test order and every section with fewer
// than KnowledgeWeakCorrect correct answers adds its topic's sessions; a habits
// score below HabitsWeakScore adds the habits session. Duplicates are dropped,
// keeping the first occurrence.
func Recommend(test *domain.Test, knowledgeScores map[string]int, habitsScore float64) []domain.Recommendation {
	recs := make([]domain.Recommendation, 0)

	if part, _ := test.PartByKey(domain.PartKnowledge); part != nil {
		for _, section := range part.Sections {
			correct, ok := knowledgeScores[section.Key]
			if !ok || correct >= domain.KnowledgeWeakCorrect {
				continue
			}
			recs = append(recs, topicRecommendations[section.Key]...)
		}
	}

	if habitsScore < domain.HabitsWeakScore {
		recs = append(recs, habitsRecommendation)
	}

	return dedupe(recs)
}

func dedupe(recs []domain.Recommendation) []domain.Recommendation {
	seen := make(map[domain.Recommendation]bool, len(recs))
	out := make([]domain.Recommendation, 0, len(recs))
	for _, r := range recs {
		if seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	return out
}
