package terminal

import "fmt"

// PromptType identifies the type of information in the prompt.
type PromptType int

// List of prompt types.
const (
	// the per-instruction prompt. Offset is meaningful
	PromptTypeInstruction PromptType = iota

	// a yes/no question. Content is printed verbatim
	PromptTypeConfirm
)

// Prompt specifies the prompt text and the prompt style.
type Prompt struct {
	Type PromptType

	// the content. for instruction prompts this is empty and the prompt is
	// built from the Offset field
	Content string

	// the byte offset of the instruction being asked for
	Offset int
}

// String returns the prompt with "standard" decoration. terminal
// implementations with no graphical capabilities can use this directly.
func (p Prompt) String() string {
	switch p.Type {
	case PromptTypeInstruction:
		return fmt.Sprintf("%3d: ", p.Offset)
	case PromptTypeConfirm:
		return p.Content
	}
	return p.Content
}
