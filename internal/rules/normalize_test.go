package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_TypographicPunctuation(t *testing.T) {
	in := "“Don’t” – wait — ever…"
	assert.Equal(t, `"Don't" - wait - ever...`, Normalize(in))
}

func TestNormalize_IdempotentOnASCII(t *testing.T) {
	in := `plain "ascii" text - nothing to do...`
	assert.Equal(t, in, Normalize(in))
	assert.Equal(t, Normalize(in), Normalize(Normalize(in)))
}

func TestNormalize_LeavesOtherUnicodeAlone(t *testing.T) {
	in := "latência é importante"
	assert.Equal(t, in, Normalize(in))
}
