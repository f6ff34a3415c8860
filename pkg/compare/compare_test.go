package compare_test

import (
	"testing"

	"go.llib.dev/collkit/pkg/compare"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

func TestNumbers(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		A = let.Int(s)
		B = let.Int(s)
	)
	act := let.Act(func(t *testcase.T) int {
		return compare.Numbers(A.Get(t), B.Get(t))
	})

	s.When("A is equal to B", func(s *testcase.Spec) {
		A.LetValue(s, 42)
		B.LetValue(s, 42)

		s.Then("cmp is 0", func(t *testcase.T) {
			assert.Equal(t, 0, act(t))
		})

		s.Then("equality will be true", func(t *testcase.T) {
			assert.True(t, compare.IsEqual(act(t)))
		})

		s.Then("less will be false", func(t *testcase.T) {
			assert.False(t, compare.IsLess(act(t)))
		})

		s.Then("greater will be false", func(t *testcase.T) {
			assert.False(t, compare.IsGreater(act(t)))
		})
	})

	s.When("A is less than B", func(s *testcase.Spec) {
		A.LetValue(s, 1)
		B.LetValue(s, 42)

		s.Then("cmp is negative", func(t *testcase.T) {
			assert.True(t, act(t) < 0)
		})

		s.Then("less will be true", func(t *testcase.T) {
			assert.True(t, compare.IsLess(act(t)))
			assert.True(t, compare.IsLessOrEqual(act(t)))
		})

		s.Then("greater will be false", func(t *testcase.T) {
			assert.False(t, compare.IsGreater(act(t)))
			assert.False(t, compare.IsGreaterOrEqual(act(t)))
		})
	})

	s.When("A is greater than B", func(s *testcase.Spec) {
		A.LetValue(s, 42)
		B.LetValue(s, 1)

		s.Then("cmp is positive", func(t *testcase.T) {
			assert.True(t, 0 < act(t))
		})

		s.Then("greater will be true", func(t *testcase.T) {
			assert.True(t, compare.IsGreater(act(t)))
			assert.True(t, compare.IsGreaterOrEqual(act(t)))
		})

		s.Then("less will be false", func(t *testcase.T) {
			assert.False(t, compare.IsLess(act(t)))
			assert.False(t, compare.IsLessOrEqual(act(t)))
		})
	})
}

func TestStrings(t *testing.T) {
	assert.True(t, compare.IsLess(compare.Strings("a", "b")))
	assert.True(t, compare.IsEqual(compare.Strings("a", "a")))
	assert.True(t, compare.IsGreater(compare.Strings("b", "a")))
}

type myNumber int

func (n myNumber) Compare(oth myNumber) int {
	return compare.Numbers(n, oth)
}

func TestInterface(t *testing.T) {
	var _ compare.Interface[myNumber] = myNumber(42)
	assert.True(t, compare.IsLess(myNumber(1).Compare(2)))
	assert.True(t, compare.IsEqual(myNumber(2).Compare(2)))
	assert.True(t, compare.IsGreater(myNumber(3).Compare(2)))
}

func TestFunc(t *testing.T) {
	var cmp compare.Func[int] = compare.Numbers[int]
	assert.Equal(t, -1, cmp(1, 2))
	assert.Equal(t, 0, cmp(2, 2))
	assert.Equal(t, 1, cmp(3, 2))
}
