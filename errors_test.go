package optics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errStage = errors.New("stage failed")

func TestMismatchError(t *testing.T) {
	cause := errors.New("boom")
	err := mismatch("field", cause)

	assert.EqualError(t, err, "optics: field: boom")
	assert.ErrorIs(t, err, ErrNoMatch)
	assert.ErrorIs(t, err, cause)

	assert.EqualError(t, mismatch("field", nil), "optics: field: focus not present")
}

func TestPassThrough(t *testing.T) {
	assert.Same(t, errStage, PassThrough(errStage))
}

func TestWrap(t *testing.T) {
	errConfig := errors.New("config")
	err := Wrap(errConfig)(errStage)

	assert.ErrorIs(t, err, errConfig)
	assert.ErrorIs(t, err, errStage)
	assert.EqualError(t, err, "config: stage failed")
}

func TestReplace(t *testing.T) {
	errConfig := errors.New("config")
	err := Replace(errConfig)(errStage)

	assert.Same(t, errConfig, err)
	assert.NotErrorIs(t, err, errStage)
}

func TestPrefix(t *testing.T) {
	err := Prefix("address")(errStage)
	assert.EqualError(t, err, "address: stage failed")
	assert.ErrorIs(t, err, errStage)
}

func TestMappersApplyPerStage(t *testing.T) {
	outer := NewPartialGetter(func(s string) (int, error) {
		if s == "" {
			return 0, errStage
		}
		return len(s), nil
	})
	inner := NewPartialGetter(positive)

	both := ComposePartialGetterWithPartialGetter(outer, inner, Prefix("outer"), Prefix("inner"))

	_, err := both.TryGet("")
	assert.EqualError(t, err, "outer: stage failed")

	v, err := both.TryGet("abc")
	assert.NoError(t, err)
	assert.Equal(t, 3, v)
}
