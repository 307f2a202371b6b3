package tui

type state int

const (
	loadingState state = iota
	errorState
	splashState
	archiveState
	searchState
	detailState
)
