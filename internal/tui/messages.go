package tui

type startDoneMsg struct {
	err error
}

type guessDoneMsg struct {
	err error
}

type searchDoneMsg struct {
	err error
}

type copiedMsg struct {
	text string
}

type clearStatusMsg struct{}
