// meta/meta.go
package meta

// DEFAULT_WIDTH defines the number of columns of the bar.
const DEFAULT_WIDTH = 4

// DEFAULT_HEIGHT defines the number of rows of the bar.
const DEFAULT_HEIGHT = 3

// DEFAULT_ADDR defines where the agent server listens.
const DEFAULT_ADDR = ":8088"

// DEFAULT_MAX_CELLS defines the largest board the agent server will solve.
const DEFAULT_MAX_CELLS = 25

// DEFAULT_GAMES defines the number of self-play games per experiment.
const DEFAULT_GAMES = 10

// DEFAULT_OUT_DIR defines where experiment records are written.
const DEFAULT_OUT_DIR = "experiments"

const HUMAN = "human"
const COMPUTER = "computer"
