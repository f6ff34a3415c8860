package errorkit_test

import (
	"errors"
	"fmt"
	"testing"

	"go.llib.dev/collkit/pkg/errorkit"

	"go.llib.dev/testcase/assert"
)

const ErrExample errorkit.Error = "ErrExample"

func ExampleError() {
	const ErrSomething errorkit.Error = "something went wrong"
	_ = error(ErrSomething)
}

func TestError(t *testing.T) {
	t.Run("implements the error interface", func(t *testing.T) {
		assert.Equal(t, "ErrExample", ErrExample.Error())
	})
	t.Run("errors.Is works on the const value", func(t *testing.T) {
		assert.True(t, errors.Is(ErrExample, ErrExample))
	})
}

func TestError_F(t *testing.T) {
	err := ErrExample.F("index %d", 42)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrExample))
	assert.Contain(t, err.Error(), "index 42")
}

func TestError_Wrap(t *testing.T) {
	t.Run("happy", func(t *testing.T) {
		cause := fmt.Errorf("boom")
		err := ErrExample.Wrap(cause)
		assert.True(t, errors.Is(err, ErrExample))
		assert.True(t, errors.Is(err, cause))
	})
	t.Run("nil cause yields the const error itself", func(t *testing.T) {
		assert.Equal[error](t, ErrExample, ErrExample.Wrap(nil))
	})
}

func TestAs(t *testing.T) {
	t.Run("happy", func(t *testing.T) {
		err := ErrExample.F("with detail")
		got, ok := errorkit.As[errorkit.Error](err)
		assert.True(t, ok)
		assert.Equal(t, ErrExample, got)
	})
	t.Run("rainy", func(t *testing.T) {
		_, ok := errorkit.As[errorkit.Error](fmt.Errorf("boom"))
		assert.False(t, ok)
	})
}

func TestRecover(t *testing.T) {
	t.Run("panic with an error value", func(t *testing.T) {
		fn := func() (rErr error) {
			defer errorkit.Recover(&rErr)
			panic(ErrExample)
		}
		assert.True(t, errors.Is(fn(), ErrExample))
	})
	t.Run("panic with a non error value", func(t *testing.T) {
		fn := func() (rErr error) {
			defer errorkit.Recover(&rErr)
			panic("boom")
		}
		err := fn()
		assert.Error(t, err)
		assert.Contain(t, err.Error(), "boom")
	})
	t.Run("no panic", func(t *testing.T) {
		fn := func() (rErr error) {
			defer errorkit.Recover(&rErr)
			return nil
		}
		assert.NoError(t, fn())
	})
}

func TestMerge(t *testing.T) {
	t.Run("no error", func(t *testing.T) {
		assert.NoError(t, errorkit.Merge())
		assert.NoError(t, errorkit.Merge(nil, nil))
	})
	t.Run("single error", func(t *testing.T) {
		err := fmt.Errorf("boom")
		assert.Equal[error](t, err, errorkit.Merge(nil, err))
	})
	t.Run("multiple errors", func(t *testing.T) {
		err1 := fmt.Errorf("boom")
		err2 := ErrExample.F("detail")
		got := errorkit.Merge(err1, err2)
		assert.True(t, errors.Is(got, err1))
		assert.True(t, errors.Is(got, ErrExample))
	})
}
