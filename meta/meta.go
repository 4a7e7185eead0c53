// meta/meta.go
package meta

// DefaultDepth is how many turns ahead an engine looks unless configured otherwise
const DefaultDepth = 3

// MaxTurns bounds the length of a game played by the local engine
const MaxTurns = 300

// GamesPerMatchUp is the default number of games played for each matchup
const GamesPerMatchUp = 10
