package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityRank_Ordering(t *testing.T) {
	assert.Greater(t, SeverityRank(SeverityError), SeverityRank(SeverityWarning))
	assert.Greater(t, SeverityRank(SeverityWarning), SeverityRank(SeverityInfo))
}

func TestSeverityRank_UnknownRanksAsInfo(t *testing.T) {
	assert.Equal(t, SeverityRank(SeverityInfo), SeverityRank(""))
	assert.Equal(t, SeverityRank(SeverityInfo), SeverityRank("bogus"))
}
