package utils

import "strconv"

// FormatMoney renders an amount as a thousands-separated won string, e.g.
// 1234567 -> "1,234,567원". A nil amount renders the no-data sentinel so the
// prompt never shows a fabricated zero.
func FormatMoney(v *int64) string {
	if v == nil {
		return "데이터 없음"
	}
	return FormatWon(*v)
}

// FormatWon renders a known amount as a thousands-separated won string.
func FormatWon(v int64) string {
	s := strconv.FormatInt(v, 10)
	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}

	var out []byte
	for i, digit := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, digit)
	}
	if neg {
		out = append([]byte{'-'}, out...)
	}
	return string(out) + "원"
}

// FormatBool renders a tri-valued flag for the prompt: yes, no, or
// cannot-determine when the underlying rule was undefined.
func FormatBool(b *bool) string {
	if b == nil {
		return "판단 불가(데이터 없음)"
	}
	return FormatBoolValue(*b)
}

// FormatBoolValue renders a known boolean as the fixed two-valued label.
func FormatBoolValue(b bool) string {
	if b {
		return "예"
	}
	return "아니오"
}
