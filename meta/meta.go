// meta/meta.go
package meta

// SEARCH_DEPTH is the fixed minimax depth in plies for Connect 4.
const SEARCH_DEPTH = 6

// FRAME_RATE is the number of update passes per second driven by the host.
const FRAME_RATE = 60

// MAX_TURNS caps headless games that cannot terminate on their own (e.g. checkers shuffles).
const MAX_TURNS = 300

// NUM_GAMES is the default number of self-play games per matchup.
const NUM_GAMES = 10
