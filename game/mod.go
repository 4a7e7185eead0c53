package game

// Player identifies a participant. Any game that wants to be searched by the
// minimax engine provides a player type implementing this interface.
type Player[P any] interface {
	// Equals reports whether other is the same participant
	Equals(other P) bool
	// IsFriendsWith reports whether other shares this participant's interest.
	// Must hold for Equals(other) == true.
	IsFriendsWith(other P) bool
}

// State should be immutable - Play always returns a new copy
type State[S any, M any, P any] interface {
	// Player returns the participant that moves next
	Player() P
	// LegalMoves returns the moves available to Player(), empty if the game is over
	LegalMoves() []M
	Play(move M) S
	// Evaluate scores the state from player's perspective, higher is better.
	// Wins and losses must dominate any heuristic value of unfinished games.
	Evaluate(player P) float64
}
