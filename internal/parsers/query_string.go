package parsers

import "strings"

// QueryString returns the query string of a log line: everything after the
// first '?'. Later '?' bytes are literal content of the query string.
// ok is false when the line has no '?' or when nothing follows it.
func QueryString(line string) (string, bool) {
	i := strings.IndexByte(line, '?')
	if i < 0 || i+1 >= len(line) {
		return "", false
	}
	return line[i+1:], true
}

// ParamValue returns the value of the first occurrence of key immediately
// followed by '='. The scan is positional, not segment aware: a key byte
// inside a longer parameter name (the 'o' in "xo=5") still matches. The
// value runs to the next '&' or to the end of the query string.
// ok is false when no occurrence exists.
func ParamValue(query string, key ParamKey) (string, bool) {
	for i := 0; i+1 < len(query); i++ {
		if query[i] != byte(key) || query[i+1] != '=' {
			continue
		}
		value := query[i+2:]
		if j := strings.IndexByte(value, '&'); j >= 0 {
			value = value[:j]
		}
		return value, true
	}
	return "", false
}
