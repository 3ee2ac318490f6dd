package game

import "errors"

// Action failures. None of them are fatal: each is reported through a Result
// with StateChanged = false.
var (
	ErrNotFound            = errors.New("not found")
	ErrAlreadyDefeated     = errors.New("character already defeated")
	ErrMissingBattleCard   = errors.New("character has no battle card")
	ErrProgressionGated    = errors.New("required items missing")
	ErrUnknownCommand      = errors.New("unknown command")
	ErrBattleAlreadyActive = errors.New("battle already in progress")
	ErrNoActiveBattle      = errors.New("no battle in progress")
	ErrNotYourTurn         = errors.New("not the player's turn")
	ErrAlreadyCarried      = errors.New("item already carried")
)
