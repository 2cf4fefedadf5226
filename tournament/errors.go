package tournament

import "errors"

// ErrNegativeScore indicates a DuelScore with a negative component reached a
// builder; scores count wins, goals or points and cannot go below zero.
var ErrNegativeScore = errors.New("tournament: negative duel score")
