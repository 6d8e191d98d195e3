package eval

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// The parser is deliberately closed: it recognizes integer literals, unary
// minus, the four arithmetic operators, and parentheses, and nothing else.
// The safety contract for free-text submissions depends on this totality,
// so no general-purpose expression package is used.

type nodeKind int8

const (
	literalNode nodeKind = iota
	negateNode
	addNode
	subNode
	mulNode
	divNode
	// badOpNode marks a structurally sound subexpression built around a
	// forbidden operator. Any tree containing one is rejected after the
	// parse, so it never reaches evaluation.
	badOpNode
)

type node struct {
	kind  nodeKind
	value int   // literalNode only
	left  *node // negateNode operand lives here
	right *node
}

type tokenKind int8

const (
	tokNumber tokenKind = iota
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokLParen
	tokRParen
	tokBadOp
	tokEOF
)

type token struct {
	kind   tokenKind
	value  int
	pos    int
	detail string // tokBadOp only
}

type parser struct {
	toks []token
	idx  int
	// disallowed records the leftmost forbidden operator. It is only
	// reported once the whole expression parses, so malformed input is
	// always a syntax error first.
	disallowed *Error
}

func tokenize(text string) ([]token, *Error) {
	toks := []token{}
	runes := []rune(text)
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r >= '0' && r <= '9':
			start := i
			for i < len(runes) && runes[i] >= '0' && runes[i] <= '9' {
				i++
			}
			if i < len(runes) && runes[i] == '.' {
				return nil, disallowedf("floating point numbers are not allowed")
			}
			n, err := strconv.Atoi(string(runes[start:i]))
			if err != nil {
				return nil, syntaxErrorf("bad number %q", string(runes[start:i]))
			}
			toks = append(toks, token{kind: tokNumber, value: n, pos: start})
		case r == '+':
			toks = append(toks, token{kind: tokPlus, pos: i})
			i++
		case r == '-':
			toks = append(toks, token{kind: tokMinus, pos: i})
			i++
		case r == '*':
			if i+1 < len(runes) && runes[i+1] == '*' {
				toks = append(toks, token{kind: tokBadOp, pos: i,
					detail: "operator not allowed: **"})
				i += 2
				continue
			}
			toks = append(toks, token{kind: tokStar, pos: i})
			i++
		case r == '/':
			if i+1 < len(runes) && runes[i+1] == '/' {
				toks = append(toks, token{kind: tokBadOp, pos: i,
					detail: "operator not allowed: //"})
				i += 2
				continue
			}
			toks = append(toks, token{kind: tokSlash, pos: i})
			i++
		case r == '(':
			toks = append(toks, token{kind: tokLParen, pos: i})
			i++
		case r == ')':
			toks = append(toks, token{kind: tokRParen, pos: i})
			i++
		case r == '%' || r == '^' || r == '<' || r == '>' || r == '=' ||
			r == '!' || r == '&' || r == '|' || r == '~':
			toks = append(toks, token{kind: tokBadOp, pos: i,
				detail: fmt.Sprintf("operator not allowed: %c", r)})
			i++
		case unicode.IsLetter(r) || r == '_':
			return nil, disallowedf("names are not allowed in expressions")
		default:
			return nil, syntaxErrorf("unexpected character %q at position %d", r, i)
		}
	}
	toks = append(toks, token{kind: tokEOF, pos: len(runes)})
	return toks, nil
}

// parse builds an expression tree. The grammar, lowest precedence first:
//
//	expr    := term (('+' | '-') term)*
//	term    := unary (('*' | '/' | BADOP) unary)*
//	unary   := ('-' | BADOP) unary | primary
//	primary := NUMBER | '(' expr ')'
//
// BADOP covers the recognizable forbidden operators; the grammar admits
// them so that structural errors are diagnosed first, then rejects any
// tree that used one.
func parse(text string) (*node, *Error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, syntaxErrorf("empty expression")
	}
	toks, perr := tokenize(text)
	if perr != nil {
		return nil, perr
	}
	p := &parser{toks: toks}
	root, perr := p.expr()
	if perr != nil {
		return nil, perr
	}
	if p.peek().kind != tokEOF {
		return nil, syntaxErrorf("unexpected input at position %d", p.peek().pos)
	}
	if p.disallowed != nil {
		return nil, p.disallowed
	}
	return root, nil
}

func (p *parser) noteDisallowed(t token) {
	if p.disallowed == nil {
		p.disallowed = disallowedf("%s", t.detail)
	}
}

func (p *parser) peek() token {
	return p.toks[p.idx]
}

func (p *parser) next() token {
	t := p.toks[p.idx]
	if t.kind != tokEOF {
		p.idx++
	}
	return t
}

func (p *parser) expr() (*node, *Error) {
	left, perr := p.term()
	if perr != nil {
		return nil, perr
	}
	for {
		switch p.peek().kind {
		case tokPlus:
			p.next()
			right, perr := p.term()
			if perr != nil {
				return nil, perr
			}
			left = &node{kind: addNode, left: left, right: right}
		case tokMinus:
			p.next()
			right, perr := p.term()
			if perr != nil {
				return nil, perr
			}
			left = &node{kind: subNode, left: left, right: right}
		default:
			return left, nil
		}
	}
}

func (p *parser) term() (*node, *Error) {
	left, perr := p.unary()
	if perr != nil {
		return nil, perr
	}
	for {
		switch p.peek().kind {
		case tokStar:
			p.next()
			right, perr := p.unary()
			if perr != nil {
				return nil, perr
			}
			left = &node{kind: mulNode, left: left, right: right}
		case tokSlash:
			p.next()
			right, perr := p.unary()
			if perr != nil {
				return nil, perr
			}
			left = &node{kind: divNode, left: left, right: right}
		case tokBadOp:
			p.noteDisallowed(p.next())
			right, perr := p.unary()
			if perr != nil {
				return nil, perr
			}
			left = &node{kind: badOpNode, left: left, right: right}
		default:
			return left, nil
		}
	}
}

func (p *parser) unary() (*node, *Error) {
	switch p.peek().kind {
	case tokMinus:
		p.next()
		operand, perr := p.unary()
		if perr != nil {
			return nil, perr
		}
		return &node{kind: negateNode, left: operand}, nil
	case tokBadOp:
		p.noteDisallowed(p.next())
		operand, perr := p.unary()
		if perr != nil {
			return nil, perr
		}
		return &node{kind: badOpNode, left: operand}, nil
	}
	return p.primary()
}

func (p *parser) primary() (*node, *Error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		return &node{kind: literalNode, value: t.value}, nil
	case tokLParen:
		inner, perr := p.expr()
		if perr != nil {
			return nil, perr
		}
		if p.peek().kind != tokRParen {
			return nil, syntaxErrorf("expected ')' at position %d", p.peek().pos)
		}
		p.next()
		return inner, nil
	case tokEOF:
		return nil, syntaxErrorf("unexpected end of expression")
	default:
		return nil, syntaxErrorf("unexpected token at position %d", t.pos)
	}
}
