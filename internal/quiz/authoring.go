package quiz

import "strings"

// Draft is one authored question row as entered in the maker form.
type Draft struct {
	Text       string
	LongAnswer bool
	Options    [OptionsPerQuestion]string
	// CorrectOption is 1-based as shown to the author; 0 means not provided.
	CorrectOption int
}

// BuildQuiz validates authored rows and assembles a quiz.
// Invalid rows are dropped without being reported individually; the build only fails
// when the title is empty or no valid question remains.
func BuildQuiz(title string, drafts []Draft) (Quiz, error) {
	q := Quiz{
		Title:     strings.TrimSpace(title),
		Questions: make([]Question, 0, len(drafts)),
	}

	for _, d := range drafts {
		if question, ok := d.toQuestion(); ok {
			q.Questions = append(q.Questions, question)
		}
	}

	if q.Title == "" || len(q.Questions) == 0 {
		return Quiz{}, ErrInvalidQuiz
	}
	return q, nil
}

func (d Draft) toQuestion() (Question, bool) {
	text := strings.TrimSpace(d.Text)
	if d.LongAnswer {
		if text == "" {
			return Question{}, false
		}
		return NewLongAnswer(text), true
	}

	options := make([]string, OptionsPerQuestion)
	for i, opt := range d.Options {
		options[i] = strings.TrimSpace(opt)
		if options[i] == "" {
			return Question{}, false
		}
	}

	correct := d.CorrectOption - 1
	if text == "" || correct < 0 || correct >= OptionsPerQuestion {
		return Question{}, false
	}
	return NewMultipleChoice(text, options, correct), true
}
