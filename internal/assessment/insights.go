package assessment

import "github.com/m04kA/coaching-scheduler/internal/domain"

// Classify maps a section percentage to its results-view class
func Classify(percent float64) domain.InsightKind {
	switch {
	case percent >= domain.StrengthPercent:
		return domain.InsightStrength
	case percent < domain.OpportunityPercent:
		return domain.InsightOpportunity
	default:
		return domain.InsightNeutral
	}
}

// Insights classifies the sections of a literacy breakdown for the results view.
// Stress breakdowns have no insights: a high stress section is not a strength.
func Insights(test *domain.Test, breakdown *domain.ScoreBreakdown) []domain.SectionInsight {
	insights := make([]domain.SectionInsight, 0)
	if breakdown == nil || breakdown.Literacy == nil {
		return insights
	}

	if part, _ := test.PartByKey(domain.PartHabits); part != nil {
		insights = append(insights, domain.SectionInsight{
			SectionKey: domain.PartHabits,
			Title:      part.Phase,
			Percent:    breakdown.Literacy.HabitsScore,
			Kind:       Classify(breakdown.Literacy.HabitsScore),
		})
	}

	if part, _ := test.PartByKey(domain.PartKnowledge); part != nil {
		for _, section := range part.Sections {
			correct, ok := breakdown.Literacy.KnowledgeScores[section.Key]
			if !ok {
				continue
			}
			percent := mean(correct, len(section.Questions)) * 100
			insights = append(insights, domain.SectionInsight{
				SectionKey: section.Key,
				Title:      section.Title,
				Percent:    percent,
				Kind:       Classify(percent),
			})
		}
	}

	return insights
}
