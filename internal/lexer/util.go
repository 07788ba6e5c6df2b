package lexer

// ===== Классификаторы =====

func isSpace(b byte) bool {
	return b == ' ' || b == '\n' || b == '\t' || b == '\r' || b == '\f'
}

// isWordEnd: байты, на которых заканчивается word. '/' отдельно: только перед '*'.
func isWordEnd(b byte) bool {
	switch b {
	case ' ', '\n', '\t', '\r', '\f',
		'(', ')', '{', '}', ':', ';', '@', '!', '\'', '"', '\\', '[', ']', '#':
		return true
	}
	return false
}

// isAtEnd: байты, на которых заканчивается at-word.
func isAtEnd(b byte) bool {
	switch b {
	case ' ', '\n', '\t', '\r', '\f', '{', '(', ')', '\'', '"', '\\', ';', '/':
		return true
	}
	return false
}

// badBracket: содержимое скобок, которое нельзя склеить в один brackets токен.
// Первый байт (сама '(') не проверяется.
func badBracket(content string) bool {
	for i := 1; i < len(content); i++ {
		switch content[i] {
		case '\\', '/', '(', '"', '\'', '\n':
			return true
		}
	}
	return false
}

// escapedAt reports whether the byte at off is preceded by an odd run of '\'.
func escapedAt(src string, off int) bool {
	escaped := false
	for i := off - 1; i >= 0 && src[i] == '\\'; i-- {
		escaped = !escaped
	}
	return escaped
}
