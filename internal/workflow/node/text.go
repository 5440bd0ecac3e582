package node

import (
	"fmt"
	"unicode/utf8"
)

// TruncateByRunes 按字符数截断，不会切开多字节字符
func TruncateByRunes(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	n := 0
	for i := range s {
		if n == maxRunes {
			return s[:i]
		}
		n++
	}
	return s
}

// TruncateForLog 截断模型原始输出用于日志，超长时附带原始长度
func TruncateForLog(s string, maxRunes int) string {
	total := utf8.RuneCountInString(s)
	if maxRunes <= 0 || total <= maxRunes {
		return s
	}
	return fmt.Sprintf("%s...(truncated, %d runes)", TruncateByRunes(s, maxRunes), total)
}
