package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contentkit/richhtml/pkg/errors"
)

func TestNew(t *testing.T) {
	err := errors.New(errors.ErrNoRenderer, "no renderer found")
	assert.Equal(t, "[NO_RENDERER] no renderer found", err.Error())
	assert.Equal(t, errors.ErrNoRenderer, err.Code)
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrInvalidNode, "heading level %d out of range", 9)
	assert.Equal(t, "[INVALID_NODE] heading level 9 out of range", err.Error())
}

func TestWrap(t *testing.T) {
	inner := stderrors.New("boom")
	err := errors.Wrap(inner, errors.ErrRender, "rendering failed")

	assert.Equal(t, "[RENDER] rendering failed: boom", err.Error())
	assert.ErrorIs(t, err, inner)

	assert.Nil(t, errors.Wrap(nil, errors.ErrRender, "ignored"))
}

func TestWrapf_PreservesChain(t *testing.T) {
	inner := errors.New(errors.ErrInvalidNode, "bad node")
	outer := errors.Wrapf(inner, errors.ErrRender, "rendering node %d", 3)

	require.NotNil(t, outer)
	assert.Equal(t, errors.ErrRender, errors.GetErrorCode(outer))
	assert.Contains(t, outer.Error(), "bad node")
}

func TestIsErrorCode(t *testing.T) {
	err := errors.New(errors.ErrDecode, "bad JSON")
	assert.True(t, errors.IsErrorCode(err, errors.ErrDecode))
	assert.False(t, errors.IsErrorCode(err, errors.ErrRender))
	assert.False(t, errors.IsErrorCode(stderrors.New("plain"), errors.ErrDecode))

	wrapped := fmt.Errorf("context: %w", err)
	assert.True(t, errors.IsErrorCode(wrapped, errors.ErrDecode))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrConfigLoad, errors.GetErrorCode(errors.New(errors.ErrConfigLoad, "x")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrNoRenderer, "no match").WithDetail("nodeType", "table")
	assert.Equal(t, "table", err.Details["nodeType"])
}
