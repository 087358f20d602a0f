// Package idtesting generates reproducible commit identity fixtures for the
// go-idprefix test suites.
package idtesting

import (
	"math/rand"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-idprefix/objectid"
	"github.com/forestrie/go-idprefix/snapshot"
)

type TestContext struct {
	Log logger.Logger
	T   *testing.T
	Rng *rand.Rand
}

type TestConfig struct {
	// Seed fixes the RNG so that the generated records are the same from run
	// to run.
	Seed            int64
	TestLabelPrefix string
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	c := TestContext{
		T:   t,
		Rng: rand.New(rand.NewSource(cfg.Seed)),
	}
	logger.New("INFO")
	c.Log = logger.Sugar.WithServiceName(cfg.TestLabelPrefix)
	return c
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

// GenerateRecords produces count commit identity records from the seeded RNG.
//
// Every divergeEvery'th record reuses the previous record's change id,
// simulating a diverged change; every hideEvery'th record is marked hidden.
// A zero cadence disables the corresponding behaviour.
func (c *TestContext) GenerateRecords(count, divergeEvery, hideEvery int) []snapshot.Record {
	records := make([]snapshot.Record, 0, count)
	var lastChange objectid.ChangeID
	for i := range count {
		commit := make([]byte, objectid.CommitIDBytes)
		_, err := c.Rng.Read(commit)
		require.NoError(c.T, err)

		var change objectid.ChangeID
		if divergeEvery > 0 && i%divergeEvery == divergeEvery-1 && lastChange != "" {
			change = lastChange
		} else {
			u, err := uuid.NewRandomFromReader(c.Rng)
			require.NoError(c.T, err)
			change = objectid.NewChangeIDFromBytes(u[:])
		}
		lastChange = change

		records = append(records, snapshot.Record{
			CommitID: objectid.NewCommitID(commit),
			ChangeID: change,
			Hidden:   hideEvery > 0 && i%hideEvery == hideEvery-1,
		})
	}
	return records
}
