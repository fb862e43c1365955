// Package game drives which screen is shown and applies player actions to the
// question bank and the current quiz session.
package game

// Screen is the closed set of screens. Exactly one is current at a time.
type Screen int

const (
	Welcome Screen = iota
	Menu
	Playing
	ShowLastScore
	Results
	AddQuestion
)

func (s Screen) String() string {
	switch s {
	case Welcome:
		return "welcome"
	case Menu:
		return "menu"
	case Playing:
		return "playing"
	case ShowLastScore:
		return "last-score"
	case Results:
		return "results"
	case AddQuestion:
		return "add-question"
	default:
		return "unknown"
	}
}

// Event names a player action.
type Event string

const (
	EventContinueWelcome   Event = "continue-welcome"
	EventStartGame         Event = "start-game"
	EventShowScore         Event = "show-score"
	EventGoBackToWelcome   Event = "go-back"
	EventOpenAddQuestion   Event = "open-add-question"
	EventSelectOption      Event = "select-option"
	EventContinueQuestion  Event = "continue-question"
	EventBackFromScore     Event = "back-from-score"
	EventReturnFromResults Event = "return-from-results"
	EventSubmitQuestion    Event = "submit-question"
	EventConfirmReplace    Event = "confirm-replace"
	EventCancelAdd         Event = "cancel-add"
)
