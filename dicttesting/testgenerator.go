package dicttesting

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-sorteddict/bst"
)

// TestGenerator produces deterministic key/value workloads for tree and
// dictionary tests. All randomness comes from the seeded Rng so a test
// failure reproduces from its seed alone.
type TestGenerator struct {
	T       *testing.T
	Rng     *rand.Rand
	KeySpan int64
}

func NewTestGenerator(t *testing.T, seed int64, keySpan int64) *TestGenerator {
	return &TestGenerator{
		T:       t,
		Rng:     rand.New(rand.NewSource(seed)),
		KeySpan: keySpan,
	}
}

// GenerateKeyValues returns count pairs in generation order, which is
// the order a test should apply them. Keys are drawn uniformly from
// [-KeySpan, KeySpan] so collisions are expected; values are fresh
// uuid strings so any two writes, including two writes to the same
// key, are distinguishable.
func (g *TestGenerator) GenerateKeyValues(count int) []bst.KeyValue {
	kvs := make([]bst.KeyValue, 0, count)
	for i := 0; i < count; i++ {
		kvs = append(kvs, bst.KeyValue{
			Key:   g.Rng.Int63n(2*g.KeySpan+1) - g.KeySpan,
			Value: uuid.NewString(),
		})
	}
	return kvs
}

// ShuffledKeys returns the distinct keys of kvs in a random order,
// typically a deletion order for teardown style tests.
func (g *TestGenerator) ShuffledKeys(kvs []bst.KeyValue) []int64 {
	seen := make(map[int64]bool, len(kvs))
	var keys []int64
	for _, kv := range kvs {
		if seen[kv.Key] {
			continue
		}
		seen[kv.Key] = true
		keys = append(keys, kv.Key)
	}
	g.Rng.Shuffle(len(keys), func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})
	return keys
}

// DedupeLastWrite reduces a workload to the entries a dictionary must
// hold after replaying it in order: one entry per key, carrying the
// value of the last write, sorted ascending by key.
func DedupeLastWrite(kvs []bst.KeyValue) []bst.KeyValue {
	byKey := ExpectedModel(kvs)

	keys := make([]int64, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	deduped := make([]bst.KeyValue, 0, len(keys))
	for _, k := range keys {
		deduped = append(deduped, bst.KeyValue{Key: k, Value: byKey[k]})
	}
	return deduped
}

// ExpectedModel replays kvs into a plain map, the reference model for
// last write wins comparisons.
func ExpectedModel(kvs []bst.KeyValue) map[int64]any {
	m := make(map[int64]any, len(kvs))
	for _, kv := range kvs {
		m[kv.Key] = kv.Value
	}
	return m
}

// RequireAscending fails the test unless keys are strictly ascending,
// which is also how it rejects duplicates.
func RequireAscending(t *testing.T, keys []int64) {
	t.Helper()
	for i := 1; i < len(keys); i++ {
		require.Less(t, keys[i-1], keys[i], "keys out of order at index %d", i)
	}
}
