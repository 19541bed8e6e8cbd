package game

// RevealStage is the position in the end-screen gift flow.
type RevealStage int

const (
	RevealClosed   RevealStage = iota // Gift not opened yet
	RevealQuestion                    // Question shown, waiting for an answer
	RevealAnswered                    // Answer chosen
)

// Answer is one of the two ways to say yes.
type Answer int

const (
	AnswerYes Answer = iota
	AnswerOhYeah
)

// Question is asked once the gift is opened.
const Question = "will you be my valentine"

// Text returns what is shown after the answer is picked.
func (a Answer) Text() string {
	switch a {
	case AnswerOhYeah:
		return "Oh YEAH!!! ♥♥"
	default:
		return "YES!!! ♥"
	}
}

// Reveal is the gift -> question -> answer flow on the end screen.
// Every step needs an explicit user action.
type Reveal struct {
	stage  RevealStage
	answer Answer
}

// Stage returns the current stage.
func (r *Reveal) Stage() RevealStage {
	return r.stage
}

// Answer returns the chosen answer. Only meaningful once answered.
func (r *Reveal) Answer() Answer {
	return r.answer
}

// Open shows the question. Returns false if the gift was already opened.
func (r *Reveal) Open() bool {
	if r.stage != RevealClosed {
		return false
	}
	r.stage = RevealQuestion
	return true
}

// Choose records an answer. Returns false unless the question is showing.
func (r *Reveal) Choose(a Answer) bool {
	if r.stage != RevealQuestion {
		return false
	}
	r.answer = a
	r.stage = RevealAnswered
	return true
}

// Reset closes the gift again.
func (r *Reveal) Reset() {
	*r = Reveal{}
}
