// Package dicttesting provides the shared context and deterministic
// workload generation for the bst and sorteddict tests.
package dicttesting

import (
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
)

type TestContext struct {
	Log logger.Logger
	G   *TestGenerator
	T   *testing.T
}

type TestConfig struct {
	// We seed the workload RNG with Seed. It is normal to force it to some
	// fixed value so that the generated keys and values are the same from
	// run to run.
	Seed int64
	// KeySpan bounds generated keys to [-KeySpan, KeySpan]. Keep it small
	// relative to the workload size so that duplicate keys, and hence the
	// overwrite path, actually occur. 0 defaults to DefaultKeySpan.
	KeySpan         int64
	TestLabelPrefix string
}

const DefaultKeySpan = 100

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	c := TestContext{
		T: t,
	}
	logger.New("NOOP")
	c.Log = logger.Sugar.WithServiceName(cfg.TestLabelPrefix)

	span := cfg.KeySpan
	if span == 0 {
		span = DefaultKeySpan
	}
	c.G = NewTestGenerator(t, cfg.Seed, span)

	return c
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }
