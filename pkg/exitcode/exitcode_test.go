package exitcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromVerdicts(t *testing.T) {
	assert.Equal(t, Success, FromVerdicts(false, false))
	assert.Equal(t, ScanFailed, FromVerdicts(true, false))
	assert.Equal(t, ScanFailed, FromVerdicts(false, true))
	assert.Equal(t, ScanFailed, FromVerdicts(true, true))
}
