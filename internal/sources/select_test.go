package sources

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobupdate/jobwire/internal/types"
)

type namedSource struct{ name string }

func (s namedSource) Name() string { return s.name }

func (s namedSource) Fetch(context.Context, int) ([]types.RawCandidate, error) {
	return nil, nil
}

func TestSelectSubset_ReturnsAllWhenKCoversEverything(t *testing.T) {
	srcs := []Source{namedSource{"a"}, namedSource{"b"}}

	got := SelectSubset(srcs, 5, nil)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Name())
	assert.Equal(t, "b", got[1].Name())
}

func TestSelectSubset_ZeroOrEmpty(t *testing.T) {
	assert.Nil(t, SelectSubset([]Source{namedSource{"a"}}, 0, nil))
	assert.Nil(t, SelectSubset(nil, 3, nil))
}

func TestSelectSubset_DeterministicWithSeededRand(t *testing.T) {
	srcs := []Source{
		namedSource{"a"}, namedSource{"b"}, namedSource{"c"},
		namedSource{"d"}, namedSource{"e"},
	}

	first := SelectSubset(srcs, 3, rand.New(rand.NewSource(42)))
	second := SelectSubset(srcs, 3, rand.New(rand.NewSource(42)))

	require.Len(t, first, 3)
	for i := range first {
		assert.Equal(t, first[i].Name(), second[i].Name())
	}
}

func TestSelectSubset_DoesNotMutateInput(t *testing.T) {
	srcs := []Source{namedSource{"a"}, namedSource{"b"}, namedSource{"c"}}

	_ = SelectSubset(srcs, 2, rand.New(rand.NewSource(1)))

	assert.Equal(t, "a", srcs[0].Name())
	assert.Equal(t, "b", srcs[1].Name())
	assert.Equal(t, "c", srcs[2].Name())
}

func TestRegistry_RegisterAndList(t *testing.T) {
	r := NewRegistry()
	r.Register(namedSource{"a"})
	r.Register(namedSource{"b"})

	assert.Equal(t, 2, r.Len())
	assert.Len(t, r.All(), 2)
}
