package parser

// NormalizeDate turns a YYYYMMDD... token into MM/DD/YYYY. Only the first
// eight bytes are looked at and they must all be digits. Month and day
// ranges are not checked.
func NormalizeDate(token string) (string, bool) {
	if len(token) < 8 {
		return "", false
	}
	for i := 0; i < 8; i++ {
		if token[i] < '0' || token[i] > '9' {
			return "", false
		}
	}
	return token[4:6] + "/" + token[6:8] + "/" + token[0:4], true
}

// postedDate never fails: when the token cannot be normalized the first
// eight bytes are kept, and shorter tokens are passed through as they are.
func postedDate(raw string) string {
	if d, ok := NormalizeDate(raw); ok {
		return d
	}
	if len(raw) < 8 {
		return raw
	}
	if d, ok := NormalizeDate(raw[:8]); ok {
		return d
	}
	return raw[:8]
}
