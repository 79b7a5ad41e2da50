package questionbank

import "github.com/m04kA/coaching-scheduler/internal/domain"

// YAML shape of a definition file

type testFile struct {
	Type        string     `yaml:"type"`
	Version     int        `yaml:"version"`
	Title       string     `yaml:"title"`
	Description string     `yaml:"description"`
	Parts       []partFile `yaml:"parts"`
}

type partFile struct {
	Key      string        `yaml:"key"`
	Phase    string        `yaml:"phase"`
	Sections []sectionFile `yaml:"sections"`
}

type sectionFile struct {
	Key       string         `yaml:"key"`
	Title     string         `yaml:"title"`
	Questions []questionFile `yaml:"questions"`
}

type questionFile struct {
	Kind    string       `yaml:"kind"`
	Text    string       `yaml:"text"`
	Reverse bool         `yaml:"reverse"`
	Options []optionFile `yaml:"options"`
	Answer  string       `yaml:"answer"`
}

type optionFile struct {
	Letter string `yaml:"letter"`
	Text   string `yaml:"text"`
}

func (f *testFile) toDomain() *domain.Test {
	test := &domain.Test{
		Type:        domain.TestType(f.Type),
		Version:     f.Version,
		Title:       f.Title,
		Description: f.Description,
		Parts:       make([]domain.Part, 0, len(f.Parts)),
	}

	for _, p := range f.Parts {
		part := domain.Part{
			Key:      p.Key,
			Phase:    p.Phase,
			Sections: make([]domain.Section, 0, len(p.Sections)),
		}
		for _, s := range p.Sections {
			section := domain.Section{
				Key:       s.Key,
				Title:     s.Title,
				Questions: make([]domain.Question, 0, len(s.Questions)),
			}
			for _, q := range s.Questions {
				section.Questions = append(section.Questions, q.toDomain())
			}
			part.Sections = append(part.Sections, section)
		}
		test.Parts = append(test.Parts, part)
	}

	return test
}

func (f *questionFile) toDomain() domain.Question {
	q := domain.Question{
		Kind: domain.QuestionKind(f.Kind),
		Text: f.Text,
	}

	switch q.Kind {
	case domain.QuestionRating:
		q.Reverse = f.Reverse
	case domain.QuestionChoice:
		q.Answer = f.Answer
		q.Options = make([]domain.Option, 0, len(f.Options))
		for _, o := range f.Options {
			q.Options = append(q.Options, domain.Option{Letter: o.Letter, Text: o.Text})
		}
	}

	return q
}
