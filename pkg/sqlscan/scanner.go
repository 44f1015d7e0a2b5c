package sqlscan

// Scanner tokenizes SQL input.
type Scanner struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      byte // current char under examination
	line    int  // current line number (1-based)
	col     int  // current column number (1-based)
}

// New creates a Scanner over the given input.
func New(input string) *Scanner {
	s := &Scanner{
		input: input,
		line:  1,
		col:   0,
	}
	s.readChar()
	return s
}

// All scans the entire input and returns every token up to but excluding EOF.
func All(input string) []Token {
	s := New(input)
	var toks []Token
	for {
		tok := s.Next()
		if tok.Kind == EOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

// readChar advances to the next character.
func (s *Scanner) readChar() {
	if s.readPos >= len(s.input) {
		s.ch = 0 // ASCII NUL = EOF
	} else {
		s.ch = s.input[s.readPos]
	}
	s.pos = s.readPos
	s.readPos++

	if s.ch == '\n' {
		s.line++
		s.col = 0
	} else {
		s.col++
	}
}

// peekChar returns the next character without advancing.
func (s *Scanner) peekChar() byte {
	if s.readPos >= len(s.input) {
		return 0
	}
	return s.input[s.readPos]
}

// currentPos returns the current position.
func (s *Scanner) currentPos() Position {
	return Position{
		Line:   s.line,
		Column: s.col,
		Offset: s.pos,
	}
}

// Next returns the next token.
func (s *Scanner) Next() Token {
	s.skipWhitespaceAndComments()

	pos := s.currentPos()

	switch {
	case s.ch == 0:
		return Token{Kind: EOF, Pos: pos}
	case s.ch == '.':
		s.readChar()
		return Token{Kind: DOT, Literal: ".", Pos: pos}
	case s.ch == ',':
		s.readChar()
		return Token{Kind: COMMA, Literal: ",", Pos: pos}
	case s.ch == '(':
		s.readChar()
		return Token{Kind: LPAREN, Literal: "(", Pos: pos}
	case s.ch == ')':
		s.readChar()
		return Token{Kind: RPAREN, Literal: ")", Pos: pos}
	case s.ch == ';':
		s.readChar()
		return Token{Kind: SEMI, Literal: ";", Pos: pos}
	case s.ch == '\'':
		return s.readString(pos)
	case isIdentStart(s.ch):
		return s.readIdent(pos)
	case isDigit(s.ch):
		return s.readNumber(pos)
	default:
		lit := string(s.ch)
		s.readChar()
		return Token{Kind: OTHER, Literal: lit, Pos: pos}
	}
}

// skipWhitespaceAndComments consumes whitespace, -- line comments, and
// /* */ block comments. An unterminated block comment runs to EOF.
func (s *Scanner) skipWhitespaceAndComments() {
	for {
		switch {
		case s.ch == ' ' || s.ch == '\t' || s.ch == '\r' || s.ch == '\n':
			s.readChar()
		case s.ch == '-' && s.peekChar() == '-':
			for s.ch != '\n' && s.ch != 0 {
				s.readChar()
			}
		case s.ch == '/' && s.peekChar() == '*':
			s.readChar() // consume /
			s.readChar() // consume *
			for s.ch != 0 {
				if s.ch == '*' && s.peekChar() == '/' {
					s.readChar()
					s.readChar()
					break
				}
				s.readChar()
			}
		default:
			return
		}
	}
}

// readString consumes a single-quoted string literal. A doubled quote ''
// is the SQL escape for a literal quote. An unterminated string runs to EOF.
func (s *Scanner) readString(pos Position) Token {
	s.readChar() // consume opening quote
	start := s.pos
	for {
		if s.ch == 0 {
			return Token{Kind: STRING, Literal: s.input[start:s.pos], Pos: pos}
		}
		if s.ch == '\'' {
			if s.peekChar() == '\'' {
				s.readChar()
				s.readChar()
				continue
			}
			lit := s.input[start:s.pos]
			s.readChar() // consume closing quote
			return Token{Kind: STRING, Literal: lit, Pos: pos}
		}
		s.readChar()
	}
}

// readIdent consumes an identifier or keyword.
func (s *Scanner) readIdent(pos Position) Token {
	start := s.pos
	for isIdentPart(s.ch) {
		s.readChar()
	}
	return Token{Kind: IDENT, Literal: s.input[start:s.pos], Pos: pos}
}

// readNumber consumes a numeric literal (integers and simple decimals).
func (s *Scanner) readNumber(pos Position) Token {
	start := s.pos
	for isDigit(s.ch) || s.ch == '.' && isDigit(s.peekChar()) {
		s.readChar()
	}
	return Token{Kind: NUMBER, Literal: s.input[start:s.pos], Pos: pos}
}

func isIdentStart(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch == '_'
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch) || ch == '$'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
