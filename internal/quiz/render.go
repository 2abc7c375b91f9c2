package quiz

// InputKind is the answer control rendered for a question.
type InputKind string

const (
	InputText   InputKind = "text"
	InputChoice InputKind = "choice"
)

// Block is the renderer-neutral view of one question in the player.
type Block struct {
	Index   int
	Number  int
	Text    string
	Input   InputKind
	Choices []string
}

// Blocks renders one block per question in quiz order.
func Blocks(q Quiz) []Block {
	blocks := make([]Block, 0, len(q.Questions))
	for i, question := range q.Questions {
		b := Block{
			Index:  i,
			Number: i + 1,
			Text:   question.Question,
			Input:  InputChoice,
		}
		if question.LongAnswer {
			b.Input = InputText
		} else {
			b.Choices = append([]string(nil), question.Options...)
		}
		blocks = append(blocks, b)
	}
	return blocks
}
