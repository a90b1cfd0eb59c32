package searcher

// Hyperparameters for MCTS

const DefaultIterations = 100
const DefaultScale = 1.0  // Exploration constant
const DefaultCutoff = 10 // Max rollout plies

// Chance of descending greedily without trying to expand
const DescendThreshold = 0.5

// Reward for a won rollout, on top of the disc margin
const WinBonus = 100.0
