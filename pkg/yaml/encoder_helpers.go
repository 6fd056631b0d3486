package yaml

// appendEscapedString appends s escaped for a double-quoted scalar, without
// the surrounding quotes. Control characters without a short escape use
// \xHH.
func appendEscapedString(buf []byte, s string) []byte {
	const hex = "0123456789abcdef"
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		var esc byte
		switch c {
		case '"':
			esc = '"'
		case '\\':
			esc = '\\'
		case '\n':
			esc = 'n'
		case '\r':
			esc = 'r'
		case '\t':
			esc = 't'
		case 0:
			esc = '0'
		default:
			if c >= 0x20 && c != 0x7f {
				continue
			}
		}
		buf = append(buf, s[start:i]...)
		if esc != 0 {
			buf = append(buf, '\\', esc)
		} else {
			buf = append(buf, '\\', 'x', hex[c>>4], hex[c&0xf])
		}
		start = i + 1
	}
	buf = append(buf, s[start:]...)
	return buf
}

// needsQuoting reports whether s must be double-quoted to read back as the
// same string. Plain output is limited to ASCII words starting with a
// letter, so it can never be mistaken for a number, keyword or indicator.
func needsQuoting(s string) bool {
	if len(s) == 0 || !isASCIILetter(s[0]) || s[len(s)-1] == ' ' {
		return true
	}

	switch s {
	case "null", "Null", "NULL", "true", "True", "TRUE", "false", "False", "FALSE":
		return true
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isASCIILetter(c), c >= '0' && c <= '9':
		case c == ' ', c == '_', c == '.', c == '/':
		default:
			return true
		}
	}
	return false
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
