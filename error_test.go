package ccqa_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fwojciec/ccqa"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := ccqa.Errorf(ccqa.ENOTFOUND, "record %q not found", "test")

	assert.Equal(t, ccqa.ENOTFOUND, ccqa.ErrorCode(err))
	assert.Equal(t, "record \"test\" not found", ccqa.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ccqa.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ccqa.EINTERNAL, ccqa.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ccqa.ErrorMessage(nil))
}
