package meta

// MAX_ACTIONS caps the number of actions in a headless game.
const MAX_ACTIONS = 2000

// GAMES is the default number of games in a self-play run.
const GAMES = 100

// OUT_DIR is where experiment records are written.
const OUT_DIR = "experiments/results"
