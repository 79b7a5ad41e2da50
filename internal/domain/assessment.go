package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// TestType identifies one of the self-assessments
type TestType string

const (
	TestStress   TestType = "stress"
	TestLiteracy TestType = "literacy"
)

// Valid reports whether t is a known test type.
func (t TestType) Valid() bool {
	return t == TestStress || t == TestLiteracy
}

// Part keys used by the scoring rules
const (
	PartSources   = "sources"
	PartImpacts   = "impacts"
	PartHabits    = "habits"
	PartKnowledge = "knowledge"
)

// QuestionKind discriminates the question variants
type QuestionKind string

const (
	QuestionRating QuestionKind = "rating" // 1..5 Likert
	QuestionChoice QuestionKind = "choice" // single correct option letter
)

// Option is one answer of a choice question
type Option struct {
	Letter string `json:"letter"`
	Text   string `json:"text"`
}

// Question is either a rating question (Reverse is meaningful) or a choice
// question (Options and Answer are meaningful), as told by Kind.
type Question struct {
	Kind    QuestionKind `json:"kind"`
	Text    string       `json:"text"`
	Reverse bool         `json:"reverse,omitempty"`
	Options []Option     `json:"options,omitempty"`
	Answer  string       `json:"-"` // never sent to clients
}

// HasOption reports whether letter is one of the question's options
func (q *Question) HasOption(letter string) bool {
	for _, o := range q.Options {
		if o.Letter == letter {
			return true
		}
	}
	return false
}

// Section groups related questions
type Section struct {
	Key       string     `json:"key"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// Part groups sections under a phase ("Sources", "Impacts", "Current Habits", "Knowledge")
type Part struct {
	Key      string    `json:"key"`
	Phase    string    `json:"phase"`
	Sections []Section `json:"sections"`
}

// QuestionCount returns the number of questions across the part's sections
func (p *Part) QuestionCount() int {
	n := 0
	for _, s := range p.Sections {
		n += len(s.Questions)
	}
	return n
}

// Test is a static, versioned assessment definition
type Test struct {
	Type        TestType `json:"type"`
	Version     int      `json:"version"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Parts       []Part   `json:"parts"`
}

// QuestionCount returns the number of questions in the test
func (t *Test) QuestionCount() int {
	n := 0
	for i := range t.Parts {
		n += t.Parts[i].QuestionCount()
	}
	return n
}

// PartByKey returns the part with key and its index, or -1
func (t *Test) PartByKey(key string) (*Part, int) {
	for i := range t.Parts {
		if t.Parts[i].Key == key {
			return &t.Parts[i], i
		}
	}
	return nil, -1
}

// SectionRef addresses a section in the flattened section list
type SectionRef struct {
	Part    int
	Section int
}

// FlatSections lists every section in display order
func (t *Test) FlatSections() []SectionRef {
	refs := make([]SectionRef, 0)
	for p := range t.Parts {
		for s := range t.Parts[p].Sections {
			refs = append(refs, SectionRef{Part: p, Section: s})
		}
	}
	return refs
}

// AnswerKey addresses one question by (part, section within part, question within section)
type AnswerKey struct {
	Part     int
	Section  int
	Question int
}

// String renders the wire form "p-s-q"
func (k AnswerKey) String() string {
	return fmt.Sprintf("%d-%d-%d", k.Part, k.Section, k.Question)
}

// ParseAnswerKey parses the wire form "p-s-q"
func ParseAnswerKey(s string) (AnswerKey, error) {
	fields := strings.Split(s, "-")
	if len(fields) != 3 {
		return AnswerKey{}, fmt.Errorf("%w: answer key %q must look like p-s-q", ErrValidation, s)
	}

	nums := make([]int, 3)
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return AnswerKey{}, fmt.Errorf("%w: answer key %q has a bad index", ErrValidation, s)
		}
		nums[i] = n
	}

	key := AnswerKey{Part: nums[0], Section: nums[1], Question: nums[2]}
	// "00-0-0" and "+0-0-0" would otherwise alias "0-0-0"
	if key.String() != s {
		return AnswerKey{}, fmt.Errorf("%w: answer key %q is not canonical, want %q", ErrValidation, s, key.String())
	}

	return key, nil
}

// AnswerSet maps each question to the raw response ("1".."5" or an option letter)
type AnswerSet map[AnswerKey]string

// ParseAnswerSet converts wire answers into an AnswerSet
func ParseAnswerSet(raw map[string]string) (AnswerSet, error) {
	answers := make(AnswerSet, len(raw))
	for k, v := range raw {
		key, err := ParseAnswerKey(k)
		if err != nil {
			return nil, err
		}
		if _, ok := answers[key]; ok {
			return nil, fmt.Errorf("%w: answer key %s given twice", ErrValidation, key)
		}
		answers[key] = strings.TrimSpace(v)
	}
	return answers, nil
}

// Raw converts the set back to its wire form
func (a AnswerSet) Raw() map[string]string {
	raw := make(map[string]string, len(a))
	for k, v := range a {
		raw[k.String()] = v
	}
	return raw
}

// Recommendation is a suggested session with a link to it
type Recommendation struct {
	Name string `json:"name"`
	Link string `json:"link"`
}

// StressBreakdown holds raw section sums and per-part means (1..5)
type StressBreakdown struct {
	SectionScores map[string]int `json:"sectionScores"`
	SourcesScore  float64        `json:"sourcesScore"`
	ImpactsScore  float64        `json:"impactsScore"`
}

// LiteracyBreakdown holds the habits score (0..100 scale), per-topic correct counts and the knowledge percentage
type LiteracyBreakdown struct {
	HabitsScore     float64        `json:"habitsScore"`
	KnowledgeScore  float64        `json:"knowledgeScore"`
	KnowledgeScores map[string]int `json:"knowledgeScores"`
}

// ScoreBreakdown is the immutable result of one assessment attempt.
// Exactly one of Stress and Literacy is set, matching TestType.
type ScoreBreakdown struct {
	TestType        TestType           `json:"testType"`
	Version         int                `json:"version"`
	OverallScore    float64            `json:"overallScore"`
	Stress          *StressBreakdown   `json:"stress,omitempty"`
	Literacy        *LiteracyBreakdown `json:"literacy,omitempty"`
	Recommendations []Recommendation   `json:"recommendations"`
}

// InsightKind classifies a section in the results view
type InsightKind string

const (
	InsightStrength    InsightKind = "strength"
	InsightOpportunity InsightKind = "opportunity"
	InsightNeutral     InsightKind = "neutral"
)

// SectionInsight is a section's percentage and its classification
type SectionInsight struct {
	SectionKey string      `json:"sectionKey"`
	Title      string      `json:"title"`
	Percent    float64     `json:"percent"`
	Kind       InsightKind `json:"kind"`
}
