package checked

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podsmith/pod-common/errs"
)

// evenRule admits even ints and coerces digit strings for testing the
// algorithm independently of the registered rules.
func evenRule() *Type {
	return NewType("Even", func(value any) bool {
		n, ok := value.(int)

		return ok && n%2 == 0
	}, "must be an even integer")
}

func TestCheck_PredicateHolds_ValueUnchanged(t *testing.T) {
	t.Parallel()

	canonical, err := evenRule().Check(4)
	require.NoError(t, err)
	assert.Equal(t, 4, canonical)
}

func TestCheck_NoCoercionMatches_Rejects(t *testing.T) {
	t.Parallel()

	_, err := evenRule().Check("four")
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValidation)
	assert.Contains(t, err.Error(), "must be an even integer")
	assert.Contains(t, err.Error(), "four")
}

func TestCheck_CoercionProducesCanonicalValue(t *testing.T) {
	t.Parallel()

	rule := evenRule().WithCoercions(Coercion{
		Matches: func(value any) bool {
			_, ok := value.(float64)

			return ok
		},
		Transform: func(value any) any {
			return int(value.(float64))
		},
	})

	canonical, err := rule.Check(6.0)
	require.NoError(t, err)
	assert.Equal(t, 6, canonical)
}

func TestCheck_CoercionResultStillInvalid_Rejects(t *testing.T) {
	t.Parallel()

	rule := evenRule().WithCoercions(Coercion{
		Matches: func(value any) bool {
			_, ok := value.(float64)

			return ok
		},
		Transform: func(value any) any {
			return int(value.(float64))
		},
	})

	// Coerces to 7, which the predicate still rejects.
	_, err := rule.Check(7.0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestCheck_FirstMatchingCoercionWins(t *testing.T) {
	t.Parallel()

	rule := evenRule().WithCoercions(
		Coercion{
			Matches: func(value any) bool {
				_, ok := value.(float64)

				return ok
			},
			Transform: func(any) any {
				return 2
			},
		},
		Coercion{
			Matches: func(value any) bool {
				_, ok := value.(float64)

				return ok
			},
			Transform: func(any) any {
				return 100
			},
		},
	)

	canonical, err := rule.Check(1.5)
	require.NoError(t, err)
	assert.Equal(t, 2, canonical)
}

func TestWithCoercions_DoesNotMutateBase(t *testing.T) {
	t.Parallel()

	base := evenRule()
	extended := base.WithCoercions(Coercion{
		Matches: func(any) bool {
			return true
		},
		Transform: func(any) any {
			return 0
		},
	})

	// The base rule still rejects what only the extension coerces.
	_, err := base.Check("anything")
	assert.Error(t, err)

	canonical, err := extended.Check("anything")
	require.NoError(t, err)
	assert.Equal(t, 0, canonical)
}

func TestNamed_SharesPredicate(t *testing.T) {
	t.Parallel()

	renamed := evenRule().Named("AlsoEven")

	assert.Equal(t, "AlsoEven", renamed.Name())
	assert.Equal(t, "must be an even integer", renamed.Message())

	_, err := renamed.Check(3)
	require.Error(t, err)

	var failure *Failure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, "AlsoEven", failure.TypeName)
}

func TestFailure_CarriesContext(t *testing.T) {
	t.Parallel()

	_, err := evenRule().Check(3)
	require.Error(t, err)

	var failure *Failure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, "Even", failure.TypeName)
	assert.Equal(t, 3, failure.Value)
	assert.Equal(t, "must be an even integer", failure.Reason)
	assert.Equal(t, "Even: must be an even integer (given value is 3)", failure.Error())
}
