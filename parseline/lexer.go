// Package parseline implements the parser collaborator the driver depends
// on: parse(lineText, lineNumber) -> (*ast.Stmt, error). The language's
// real front end is explicitly out of scope of the evaluation core this
// module implements; this is a minimal, hand-written recursive-descent
// parser standing in for it.
package parseline

import (
	"strconv"
	"strings"

	"github.com/ardnew/exl/evalerr"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokInt
	tokFloat
	tokIdent
	tokString
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokCaret
	tokLParen
	tokRParen
	tokLBrace
	tokRBrace
	tokComma
	tokArrow // "->"
	tokEquals
	tokVar
	tokOut
	tokPrint
	tokMap
	tokReduce
)

type token struct {
	kind tokenKind
	text string
	ival int64
	fval float64
	col  int
}

var keywords = map[string]tokenKind{
	"var":    tokVar,
	"out":    tokOut,
	"print":  tokPrint,
	"map":    tokMap,
	"reduce": tokReduce,
}

type lexer struct {
	line   int
	src    []rune
	pos    int
	tokens []token
}

func newLexer(line int, text string) *lexer {
	return &lexer{line: line, src: []rune(text)}
}

func (l *lexer) syntaxErr(col int, format string, args ...any) error {
	return evalerr.Newf(evalerr.KindSyntax, evalerr.AtCol(l.line, col), format, args...)
}

func (l *lexer) lex() ([]token, error) {
	for l.pos < len(l.src) {
		c := l.src[l.pos]

		switch {
		case c == ' ' || c == '\t' || c == '\r':
			l.pos++

		case c >= '0' && c <= '9':
			if err := l.lexNumber(); err != nil {
				return nil, err
			}

		case isIdentStart(c):
			l.lexIdent()

		case c == '"':
			if err := l.lexString(); err != nil {
				return nil, err
			}

		default:
			if err := l.lexPunct(); err != nil {
				return nil, err
			}
		}
	}

	l.tokens = append(l.tokens, token{kind: tokEOF, col: len(l.src)})

	return l.tokens, nil
}

func isIdentStart(c rune) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentCont(c rune) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func (l *lexer) lexNumber() error {
	start := l.pos

	for l.pos < len(l.src) && l.src[l.pos] >= '0' && l.src[l.pos] <= '9' {
		l.pos++
	}

	isFloat := false

	if l.pos < len(l.src) && l.src[l.pos] == '.' && l.pos+1 < len(l.src) && l.src[l.pos+1] >= '0' && l.src[l.pos+1] <= '9' {
		isFloat = true
		l.pos++

		for l.pos < len(l.src) && l.src[l.pos] >= '0' && l.src[l.pos] <= '9' {
			l.pos++
		}
	}

	text := string(l.src[start:l.pos])

	if isFloat {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return l.syntaxErr(start, "invalid float literal %q", text)
		}

		l.tokens = append(l.tokens, token{kind: tokFloat, text: text, fval: f, col: start})

		return nil
	}

	i, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return l.syntaxErr(start, "invalid integer literal %q", text)
	}

	l.tokens = append(l.tokens, token{kind: tokInt, text: text, ival: i, col: start})

	return nil
}

func (l *lexer) lexIdent() {
	start := l.pos

	for l.pos < len(l.src) && isIdentCont(l.src[l.pos]) {
		l.pos++
	}

	text := string(l.src[start:l.pos])

	if kw, ok := keywords[text]; ok {
		l.tokens = append(l.tokens, token{kind: kw, text: text, col: start})

		return
	}

	l.tokens = append(l.tokens, token{kind: tokIdent, text: text, col: start})
}

func (l *lexer) lexString() error {
	start := l.pos
	l.pos++ // opening quote

	var sb strings.Builder

	for {
		if l.pos >= len(l.src) {
			return l.syntaxErr(start, "unterminated string literal")
		}

		c := l.src[l.pos]

		if c == '"' {
			l.pos++

			break
		}

		if c == '\\' && l.pos+1 < len(l.src) {
			l.pos++

			switch l.src[l.pos] {
			case 'n':
				sb.WriteRune('\n')
			case 't':
				sb.WriteRune('\t')
			case '"':
				sb.WriteRune('"')
			case '\\':
				sb.WriteRune('\\')
			default:
				sb.WriteRune(l.src[l.pos])
			}

			l.pos++

			continue
		}

		sb.WriteRune(c)
		l.pos++
	}

	l.tokens = append(l.tokens, token{kind: tokString, text: sb.String(), col: start})

	return nil
}

func (l *lexer) lexPunct() error {
	start := l.pos
	c := l.src[l.pos]

	single := func(k tokenKind) error {
		l.tokens = append(l.tokens, token{kind: k, text: string(c), col: start})
		l.pos++

		return nil
	}

	switch c {
	case '+':
		return single(tokPlus)
	case '*':
		return single(tokStar)
	case '/':
		return single(tokSlash)
	case '^':
		return single(tokCaret)
	case '(':
		return single(tokLParen)
	case ')':
		return single(tokRParen)
	case '{':
		return single(tokLBrace)
	case '}':
		return single(tokRBrace)
	case ',':
		return single(tokComma)
	case '=':
		return single(tokEquals)
	case '-':
		if l.pos+1 < len(l.src) && l.src[l.pos+1] == '>' {
			l.tokens = append(l.tokens, token{kind: tokArrow, text: "->", col: start})
			l.pos += 2

			return nil
		}

		return single(tokMinus)
	default:
		return l.syntaxErr(start, "unexpected character %q", string(c))
	}
}
