package javasrc

// lineScanner carries the two pieces of cross-line state needed to recognize
// top-level boundaries: the current brace nesting depth and whether the scan
// position is inside a /* */ block comment.
type lineScanner struct {
	depth          int
	inBlockComment bool
}

// mask returns line with string/char literals and comment text replaced by
// spaces, advancing the block-comment state across line ends. The masked text
// preserves byte offsets so header regexes still anchor correctly.
func (s *lineScanner) mask(line string) string {
	out := []byte(line)
	i := 0
	for i < len(line) {
		if s.inBlockComment {
			if line[i] == '*' && i+1 < len(line) && line[i+1] == '/' {
				out[i], out[i+1] = ' ', ' '
				s.inBlockComment = false
				i += 2
				continue
			}
			out[i] = ' '
			i++
			continue
		}
		switch line[i] {
		case '/':
			if i+1 < len(line) && line[i+1] == '/' {
				// Line comment: blank the rest.
				for j := i; j < len(line); j++ {
					out[j] = ' '
				}
				return string(out)
			}
			if i+1 < len(line) && line[i+1] == '*' {
				out[i], out[i+1] = ' ', ' '
				s.inBlockComment = true
				i += 2
				continue
			}
			i++
		case '"', '\'':
			i = maskLiteral(line, out, i)
		default:
			i++
		}
	}
	return string(out)
}

// count updates the brace depth from an already-masked line. The depth never
// goes negative; stray closers in malformed input clamp at zero.
func (s *lineScanner) count(masked string) {
	for i := 0; i < len(masked); i++ {
		switch masked[i] {
		case '{':
			s.depth++
		case '}':
			if s.depth > 0 {
				s.depth--
			}
		}
	}
}

// maskLiteral blanks a quoted literal starting at i (line[i] is the opening
// quote) and returns the index just past the closing quote. An unterminated
// literal masks to end of line; the state does not carry over.
func maskLiteral(line string, out []byte, i int) int {
	quote := line[i]
	out[i] = ' '
	i++
	for i < len(line) {
		c := line[i]
		out[i] = ' '
		if c == '\\' && i+1 < len(line) {
			out[i+1] = ' '
			i += 2
			continue
		}
		i++
		if c == quote {
			return i
		}
	}
	return i
}
