package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateByRunesKeepsMultibyte(t *testing.T) {
	assert.Equal(t, "Kas Kaz", TruncateByRunes("Kas Kazanma", 7))
	assert.Equal(t, "Dayanıklı", TruncateByRunes("Dayanıklılık", 9))
	assert.Equal(t, "", TruncateByRunes("abc", 0))
	assert.Equal(t, "abc", TruncateByRunes("abc", 10))
}

func TestTruncateForLog(t *testing.T) {
	assert.Equal(t, "short", TruncateForLog("short", 10))
	assert.Equal(t, "unlimited", TruncateForLog("unlimited", 0))
	assert.Equal(t, "abc...(truncated, 6 runes)", TruncateForLog("abcdef", 3))
}
