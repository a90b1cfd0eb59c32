package experiments

import (
	"fmt"
	"os"
	"reversi/experiments/metrics"
	"reversi/meta"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// Config describes an arena run. Every matchup lists the agent ids that
// play black and white in the first game; colors alternate afterwards.
//
//	name: cutoff
//	games: 20
//	agents:
//	  - {id: 1, kind: mcts, iterations: 100, cutoff: 10}
//	  - {id: 2, kind: random}
//	matchups:
//	  - [1, 2]
type Config struct {
	Name     string                `yaml:"name"`
	Games    int                   `yaml:"games"`
	Agents   []metrics.AgentConfig `yaml:"agents"`
	MatchUps [][2]int              `yaml:"matchups"`
}

// LoadConfig reads and validates a YAML arena config.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(data)
}

func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Games == 0 {
		cfg.Games = meta.GAMES
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("invalid config: missing name")
	}
	if c.Games < 0 {
		return fmt.Errorf("invalid config: games must be positive, got %d", c.Games)
	}

	agents := c.agentsByID()
	if len(agents) != len(c.Agents) {
		return fmt.Errorf("invalid config: duplicate agent ids")
	}
	for _, agent := range c.Agents {
		if agent.Kind != metrics.MCTSAgent && agent.Kind != metrics.RandomAgent {
			return fmt.Errorf("invalid config: agent %d has unknown kind %q", agent.ID, agent.Kind)
		}
	}

	if len(c.MatchUps) == 0 {
		return fmt.Errorf("invalid config: no matchups")
	}
	ids := make([]int, 0, len(agents))
	for id := range agents {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, matchup := range c.MatchUps {
		for _, id := range matchup {
			if _, ok := agents[id]; !ok {
				return fmt.Errorf("invalid config: matchup references agent %d, known agents are %v", id, ids)
			}
		}
	}
	return nil
}

func (c Config) agentsByID() map[int]metrics.AgentConfig {
	agents := make(map[int]metrics.AgentConfig, len(c.Agents))
	for _, agent := range c.Agents {
		agents[agent.ID] = agent
	}
	return agents
}
