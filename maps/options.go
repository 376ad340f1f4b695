package maps

import (
	"log/slog"
	"math/rand/v2"

	"github.com/amp-labs/amp-trees/logger"
)

const defaultName = "default"

// Option configures a tree at construction time.
type Option func(*config)

type config struct {
	name string
	log  *slog.Logger
	rand *rand.Rand
}

// WithName sets the label the tree uses in metrics and log lines.
// Trees that share a name share their metric series.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithLogger sets the logger the tree writes its debug lines to.
func WithLogger(log *slog.Logger) Option {
	return func(c *config) {
		c.log = log
	}
}

// WithRand sets the random source used by the search tree to pick a
// replacement node when deleting a node with two children. The red-black
// tree ignores it.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		c.rand = r
	}
}

// WithSeed is shorthand for WithRand with a PCG source seeded with seed.
// It makes search tree deletions reproducible.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed))) //nolint:gosec // not used for security
}

func newConfig(opts []Option) config {
	cfg := config{name: defaultName}

	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.name == "" {
		cfg.name = defaultName
	}

	if cfg.log == nil {
		cfg.log = logger.Get()
	}

	return cfg
}

// random returns the configured random source, creating a fresh PCG source
// seeded from the process generator when none was given.
func (c *config) random() *rand.Rand {
	if c.rand == nil {
		c.rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint:gosec // not used for security
	}

	return c.rand
}
