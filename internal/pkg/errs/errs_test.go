//go:build unit

package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"storecredit-engine/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

var errSentinel = errs.New("sentinel")

func TestMark_SentinelMatchesWithStdErrorsIs(t *testing.T) {
	cause := errs.New("end datetime must be after start datetime")

	err := errs.Mark(cause, errSentinel)

	assert.ErrorIs(t, err, errSentinel)
	assert.ErrorIs(t, err, cause)
}

func TestMark_KeepsCauseMessage(t *testing.T) {
	cause := errs.New("boom")

	err := errs.Mark(cause, errSentinel)

	assert.Equal(t, "boom", err.Error())
	assert.Equal(t, "boom", fmt.Sprintf("%v", err))
}

func TestMark_NilCauseReturnsSentinel(t *testing.T) {
	assert.Equal(t, errSentinel, errs.Mark(nil, errSentinel))
}

func TestMark_WrappedCauseStillMatches(t *testing.T) {
	cause := errs.Wrap(errs.New("inner"), "outer")

	err := errs.Wrap(errs.Mark(cause, errSentinel), "handler layer")

	assert.True(t, errors.Is(err, errSentinel))
}
