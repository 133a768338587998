package vitalwiki_test

import (
	"errors"
	"testing"

	"github.com/pwalen/vitalwiki"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := vitalwiki.Errorf(vitalwiki.ENOTFOUND, "category %q not found", "physics")

	assert.Equal(t, vitalwiki.ENOTFOUND, vitalwiki.ErrorCode(err))
	assert.Equal(t, "category \"physics\" not found", vitalwiki.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, vitalwiki.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, vitalwiki.EINTERNAL, vitalwiki.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, vitalwiki.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", vitalwiki.ErrorMessage(errors.New("boom")))
}
