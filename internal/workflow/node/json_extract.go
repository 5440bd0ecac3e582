package node

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// 提取失败原因
const (
	ReasonNoPayload   = "no payload found"
	ReasonDecodeError = "decode error"
	ReasonInvalidPlan = "invalid plan"
)

// ExtractionError 从模型输出中提取结构化载荷失败
type ExtractionError struct {
	Reason string
	Detail string
}

func (e *ExtractionError) Error() string {
	if e.Detail == "" {
		return e.Reason
	}
	return e.Reason + ": " + e.Detail
}

// IsExtractionError 判断错误是否为 ExtractionError，并返回原因
func IsExtractionError(err error) (string, bool) {
	var ee *ExtractionError
	if errors.As(err, &ee) {
		return ee.Reason, true
	}
	return "", false
}

// ScanMode 载荷定位方式
type ScanMode int

const (
	// ScanGreedy 首个 '{' 到最后一个 '}'，不感知嵌套；
	// 文本中存在多个花括号区域时可能多截取尾部无关内容。
	ScanGreedy ScanMode = iota
	// ScanBalanced 首个配平的 {...} 区域，忽略字符串内的花括号
	ScanBalanced
)

// ExtractJSONObject 从模型输出中截取 JSON 对象文本。
// 模型可能在 JSON 前后夹杂说明文字或 markdown 代码块。
func ExtractJSONObject(s string, mode ScanMode) (string, error) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", &ExtractionError{Reason: ReasonNoPayload}
	}

	var end int
	switch mode {
	case ScanBalanced:
		end = balancedEnd(s, start)
		if end < 0 {
			// 未配平时退回贪婪截取，让解码器给出具体错误
			end = strings.LastIndexByte(s, '}')
		}
	default:
		end = strings.LastIndexByte(s, '}')
	}
	if end < start {
		return "", &ExtractionError{Reason: ReasonNoPayload}
	}
	return s[start : end+1], nil
}

// DecodeJSONObject 定位并解码载荷到 v
func DecodeJSONObject(s string, mode ScanMode, v any) error {
	raw, err := ExtractJSONObject(s, mode)
	if err != nil {
		return err
	}
	return DecodePayload(raw, v)
}

// DecodePayload 解码已截取的载荷文本。
// 数字以 json.Number 保留原始字面量，载荷之后不允许再有其他内容。
func DecodePayload(raw string, v any) error {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return &ExtractionError{Reason: ReasonDecodeError, Detail: describeDecodeError(err)}
	}
	if _, err := dec.Token(); err != io.EOF {
		detail := "unexpected data after payload"
		if err != nil {
			detail = describeDecodeError(err)
		}
		return &ExtractionError{Reason: ReasonDecodeError, Detail: detail}
	}
	return nil
}

// balancedEnd 返回从 start 处 '{' 开始的配平区域结束位置，未配平返回 -1
func balancedEnd(s string, start int) int {
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func describeDecodeError(err error) string {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return fmt.Sprintf("%s (offset %d)", syntaxErr.Error(), syntaxErr.Offset)
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fmt.Sprintf("field %q: cannot use %s as %s", typeErr.Field, typeErr.Value, typeErr.Type)
	}
	return err.Error()
}
