package parseline

import (
	"github.com/ardnew/exl/ast"
	"github.com/ardnew/exl/evalerr"
)

type parser struct {
	line   int
	tokens []token
	pos    int
}

// Parse implements the parser collaborator's interface: parse(lineText,
// lineNumber) -> (Statement, error). A non-nil error is always a
// *evalerr.Error of KindSyntax.
func Parse(lineText string, lineNumber int) (*ast.Stmt, error) {
	toks, err := newLexer(lineNumber, lineText).lex()
	if err != nil {
		return nil, err
	}

	p := &parser{line: lineNumber, tokens: toks}

	stmt, err := p.parseStmt()
	if err != nil {
		return nil, err
	}

	if p.cur().kind != tokEOF {
		return nil, p.errorf(p.cur(), "unexpected trailing input %q", p.cur().text)
	}

	return stmt, nil
}

func (p *parser) cur() token  { return p.tokens[p.pos] }
func (p *parser) advance() token {
	t := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}

	return t
}

func (p *parser) errorf(at token, format string, args ...any) error {
	return evalerr.Newf(evalerr.KindSyntax, evalerr.AtCol(p.line, at.col), format, args...)
}

func (p *parser) expect(k tokenKind, what string) (token, error) {
	if p.cur().kind != k {
		return token{}, p.errorf(p.cur(), "expected %s", what)
	}

	return p.advance(), nil
}

func (p *parser) span(start token) evalerr.Span {
	return evalerr.AtCol(p.line, start.col)
}

func (p *parser) parseStmt() (*ast.Stmt, error) {
	start := p.cur()

	switch start.kind {
	case tokVar:
		p.advance()

		name, err := p.expect(tokIdent, "identifier after var")
		if err != nil {
			return nil, err
		}

		if _, err := p.expect(tokEquals, "'=' after variable name"); err != nil {
			return nil, err
		}

		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		return ast.NewVarStmt(p.span(start), name.text, expr), nil

	case tokOut:
		p.advance()

		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		return ast.NewOutStmt(p.span(start), expr), nil

	case tokPrint:
		p.advance()

		str, err := p.expect(tokString, "string literal after print")
		if err != nil {
			return nil, err
		}

		return ast.NewPrintStmt(p.span(start), str.text), nil

	default:
		return nil, p.errorf(start, "expected var, out, or print")
	}
}

// parseExpr parses the lowest-precedence level: +/-.
func (p *parser) parseExpr() (*ast.Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for {
		switch p.cur().kind {
		case tokPlus:
			op := p.advance()

			right, err := p.parseTerm()
			if err != nil {
				return nil, err
			}

			left = ast.NewBinary(ast.ExprAdd, p.span(op), left, right)

		case tokMinus:
			op := p.advance()

			right, err := p.parseTerm()
			if err != nil {
				return nil, err
			}

			left = ast.NewBinary(ast.ExprSub, p.span(op), left, right)

		default:
			return left, nil
		}
	}
}

// parseTerm parses * and /.
func (p *parser) parseTerm() (*ast.Expr, error) {
	left, err := p.parsePow()
	if err != nil {
		return nil, err
	}

	for {
		switch p.cur().kind {
		case tokStar:
			op := p.advance()

			right, err := p.parsePow()
			if err != nil {
				return nil, err
			}

			left = ast.NewBinary(ast.ExprMul, p.span(op), left, right)

		case tokSlash:
			op := p.advance()

			right, err := p.parsePow()
			if err != nil {
				return nil, err
			}

			left = ast.NewBinary(ast.ExprDiv, p.span(op), left, right)

		default:
			return left, nil
		}
	}
}

// parsePow parses ^, right-associative.
func (p *parser) parsePow() (*ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	if p.cur().kind == tokCaret {
		op := p.advance()

		right, err := p.parsePow()
		if err != nil {
			return nil, err
		}

		return ast.NewBinary(ast.ExprPow, p.span(op), left, right), nil
	}

	return left, nil
}

// parseUnary parses a leading unary minus by desugaring to 0 - expr.
func (p *parser) parseUnary() (*ast.Expr, error) {
	if p.cur().kind == tokMinus {
		op := p.advance()

		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		zero := ast.NewLiteral(p.span(op), zeroValue)

		return ast.NewBinary(ast.ExprSub, p.span(op), zero, operand), nil
	}

	return p.parsePrimary()
}

func (p *parser) parsePrimary() (*ast.Expr, error) {
	start := p.cur()

	switch start.kind {
	case tokInt:
		p.advance()

		return ast.NewLiteral(p.span(start), intValue(start.ival)), nil

	case tokFloat:
		p.advance()

		return ast.NewLiteral(p.span(start), floatValue(start.fval)), nil

	case tokIdent:
		p.advance()

		return ast.NewIdentifier(p.span(start), start.text), nil

	case tokLParen:
		p.advance()

		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		if _, err := p.expect(tokRParen, "closing ')'"); err != nil {
			return nil, err
		}

		return e, nil

	case tokLBrace:
		return p.parseRangeLiteral(start)

	case tokMap:
		return p.parseMap(start)

	case tokReduce:
		return p.parseReduce(start)

	default:
		return nil, p.errorf(start, "expected expression")
	}
}

// parseRangeLiteral parses `{a, b}`. A literal inverted range (b < a, both
// integer literals) is rejected here as a syntax error; a range whose
// bounds come from variables is validated at evaluation time instead (see
// value.NewRange).
func (p *parser) parseRangeLiteral(start token) (*ast.Expr, error) {
	p.advance() // '{'

	begin, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(tokComma, "',' in range literal"); err != nil {
		return nil, err
	}

	end, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(tokRBrace, "closing '}'"); err != nil {
		return nil, err
	}

	if begin.KindOf() == ast.ExprLiteral && end.KindOf() == ast.ExprLiteral {
		if end.Literal.AsInteger() < begin.Literal.AsInteger() {
			return nil, p.errorf(start, "inverted range literal: end is less than begin")
		}
	}

	return ast.NewBinary(ast.ExprRange, p.span(start), begin, end), nil
}

// parseMap parses `map(expr, name -> body)`.
func (p *parser) parseMap(start token) (*ast.Expr, error) {
	p.advance() // 'map'

	if _, err := p.expect(tokLParen, "'(' after map"); err != nil {
		return nil, err
	}

	input, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(tokComma, "',' after map input"); err != nil {
		return nil, err
	}

	param, err := p.expect(tokIdent, "lambda parameter name")
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(tokArrow, "'->' after lambda parameter"); err != nil {
		return nil, err
	}

	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(tokRParen, "closing ')'"); err != nil {
		return nil, err
	}

	return ast.NewMap(p.span(start), input, param.text, body), nil
}

// parseReduce parses `reduce(expr, seed, a b -> body)`.
func (p *parser) parseReduce(start token) (*ast.Expr, error) {
	p.advance() // 'reduce'

	if _, err := p.expect(tokLParen, "'(' after reduce"); err != nil {
		return nil, err
	}

	input, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(tokComma, "',' after reduce input"); err != nil {
		return nil, err
	}

	seed, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(tokComma, "',' after reduce seed"); err != nil {
		return nil, err
	}

	p1, err := p.expect(tokIdent, "first reduce parameter name")
	if err != nil {
		return nil, err
	}

	p2, err := p.expect(tokIdent, "second reduce parameter name")
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(tokArrow, "'->' after reduce parameters"); err != nil {
		return nil, err
	}

	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(tokRParen, "closing ')'"); err != nil {
		return nil, err
	}

	return ast.NewReduce(p.span(start), input, seed, p1.text, p2.text, body), nil
}
