// Package jsonc strips comments from comment-tolerant JSON so the
// result can be fed to encoding/json. The editor's settings file allows
// // and /* */ comments.
package jsonc

// Strip removes // line comments and /* */ block comments from data.
// The scan is string-aware: comment markers inside quoted strings are
// left untouched, and escaped quotes do not terminate a string. Byte
// offsets of remaining content shift, but line structure is preserved
// for line comments (the trailing newline stays).
func Strip(data []byte) []byte {
	out := make([]byte, 0, len(data))

	const (
		stateCode = iota
		stateString
		stateLineComment
		stateBlockComment
	)

	state := stateCode
	for i := 0; i < len(data); i++ {
		c := data[i]

		switch state {
		case stateCode:
			switch {
			case c == '"':
				state = stateString
				out = append(out, c)
			case c == '/' && i+1 < len(data) && data[i+1] == '/':
				state = stateLineComment
				i++
			case c == '/' && i+1 < len(data) && data[i+1] == '*':
				state = stateBlockComment
				i++
			default:
				out = append(out, c)
			}

		case stateString:
			out = append(out, c)
			switch c {
			case '\\':
				if i+1 < len(data) {
					out = append(out, data[i+1])
					i++
				}
			case '"':
				state = stateCode
			}

		case stateLineComment:
			if c == '\n' {
				state = stateCode
				out = append(out, c)
			}

		case stateBlockComment:
			if c == '*' && i+1 < len(data) && data[i+1] == '/' {
				state = stateCode
				i++
			}
		}
	}

	return out
}
