package filter

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/orchard/internal/domain"
)

func basket() []domain.Apple {
	return []domain.Apple{
		domain.NewApple(domain.ColorRed, 120),
		domain.NewApple(domain.ColorGreen, 150),
		domain.NewApple(domain.ColorRed, 170),
	}
}

func isRed(a domain.Apple) bool { return a.Color == domain.ColorRed }

func TestFilter_ByColor(t *testing.T) {
	got, err := Filter(basket(), isRed)
	require.NoError(t, err)
	assert.Equal(t, []domain.Apple{
		domain.NewApple(domain.ColorRed, 120),
		domain.NewApple(domain.ColorRed, 170),
	}, got)
}

func TestFilter_ByColorAndSize(t *testing.T) {
	heavy := func(a domain.Apple) bool { return a.Size > 150 }

	got, err := Filter(basket(), And(isRed, heavy))
	require.NoError(t, err)
	assert.Equal(t, []domain.Apple{domain.NewApple(domain.ColorRed, 170)}, got)
}

func TestFilter_AnonymousFunction(t *testing.T) {
	got, err := Filter(basket(), func(a domain.Apple) bool {
		return a.Size > 150
	})
	require.NoError(t, err)
	assert.Equal(t, []domain.Apple{domain.NewApple(domain.ColorRed, 170)}, got)
}

func TestFilter_EmptyInput(t *testing.T) {
	got, err := Filter([]domain.Apple{}, Always[domain.Apple]())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilter_NilArguments(t *testing.T) {
	_, err := Filter[int](nil, Always[int]())
	require.ErrorIs(t, err, ErrNilSequence)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Filter([]int{1}, nil)
	require.ErrorIs(t, err, ErrNilPredicate)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestFilter_PreservesOrderAndDuplicates(t *testing.T) {
	in := []int{3, 1, 3, 2, 3, 1}
	got, err := Filter(in, func(v int) bool { return v != 2 })
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 3, 3, 1}, got)
}

func TestFilter_EvaluatesEachElementOnce(t *testing.T) {
	in := []int{1, 2, 3, 4}
	calls := map[int]int{}
	_, err := Filter(in, func(v int) bool {
		calls[v]++
		return v%2 == 0
	})
	require.NoError(t, err)
	for _, v := range in {
		assert.Equal(t, 1, calls[v], "element %d", v)
	}
}

func TestFilter_DoesNotAliasInput(t *testing.T) {
	in := []int{1, 2, 3}
	got, err := Filter(in, Always[int]())
	require.NoError(t, err)
	got[0] = 99
	assert.Equal(t, 1, in[0])
}

func TestFilter_Properties(t *testing.T) {
	inputs := [][]int{
		{},
		{5},
		{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		{4, 4, 4, 1, 1, 9, 0, -3},
	}
	predicates := map[string]Predicate[int]{
		"even":     func(v int) bool { return v%2 == 0 },
		"positive": func(v int) bool { return v > 0 },
		"always":   Always[int](),
		"never":    Never[int](),
	}

	for _, in := range inputs {
		for name, p := range predicates {
			once, err := Filter(in, p)
			require.NoError(t, err, name)

			assert.True(t, isSubsequence(once, in), "%s: subsequence of %v", name, in)
			assert.LessOrEqual(t, len(once), len(in), name)

			twice, err := Filter(once, p)
			require.NoError(t, err, name)
			assert.Equal(t, once, twice, "%s: idempotent", name)
		}

		all, err := Filter(in, Always[int]())
		require.NoError(t, err)
		assert.Equal(t, in, all)

		none, err := Filter(in, Never[int]())
		require.NoError(t, err)
		assert.Len(t, none, 0)
	}
}

func TestFilter_ConcurrentCallsOnSharedInput(t *testing.T) {
	in := make([]int, 1000)
	for i := range in {
		in[i] = i
	}

	var wg sync.WaitGroup
	results := make([][]int, 8)
	for g := range results {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			out, err := Filter(in, func(v int) bool { return v%3 == 0 })
			if err == nil {
				results[g] = out
			}
		}(g)
	}
	wg.Wait()

	for _, r := range results {
		assert.Len(t, r, 334)
	}
}

func TestDiscard(t *testing.T) {
	got, err := Discard(basket(), isRed)
	require.NoError(t, err)
	assert.Equal(t, []domain.Apple{domain.NewApple(domain.ColorGreen, 150)}, got)

	_, err = Discard(basket(), nil)
	assert.ErrorIs(t, err, ErrNilPredicate)
}

func TestFilterE_StopsAtFirstError(t *testing.T) {
	boom := errors.New("boom")
	var seen []int

	got, err := FilterE([]int{1, 2, 3, 4}, func(v int) (bool, error) {
		seen = append(seen, v)
		if v == 3 {
			return false, boom
		}
		return true, nil
	})

	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "element 2")
	assert.Nil(t, got)
	assert.Equal(t, []int{1, 2, 3}, seen)
}

func TestFilterE_Lifted(t *testing.T) {
	got, err := FilterE(basket(), Lift(Predicate[domain.Apple](isRed)))
	require.NoError(t, err)
	assert.Len(t, got, 2)

	_, err = FilterE(basket(), Lift[domain.Apple](nil))
	assert.ErrorIs(t, err, ErrNilPredicate)

	_, err = FilterE[int](nil, Lift(Always[int]()))
	assert.ErrorIs(t, err, ErrNilSequence)
}

func TestDiscardE(t *testing.T) {
	got, err := DiscardE(basket(), Lift(Predicate[domain.Apple](isRed)))
	require.NoError(t, err)
	assert.Equal(t, []domain.Apple{domain.NewApple(domain.ColorGreen, 150)}, got)
}

type minSize struct{ grams int }

func (m minSize) Test(a domain.Apple) bool { return a.Size >= m.grams }

func TestFromTester(t *testing.T) {
	got, err := Filter(basket(), FromTester[domain.Apple](minSize{grams: 150}))
	require.NoError(t, err)
	assert.Equal(t, []domain.Apple{
		domain.NewApple(domain.ColorGreen, 150),
		domain.NewApple(domain.ColorRed, 170),
	}, got)

	// A Predicate is itself a Tester.
	var tester Tester[domain.Apple] = Predicate[domain.Apple](isRed)
	assert.True(t, FromTester(tester)(domain.NewApple(domain.ColorRed, 1)))

	assert.Nil(t, FromTester[domain.Apple](nil))
}

func isSubsequence(sub, full []int) bool {
	j := 0
	for i := 0; i < len(full) && j < len(sub); i++ {
		if full[i] == sub[j] {
			j++
		}
	}
	return j == len(sub)
}
