package logic

import (
	"io"
	"text/scanner"

	"github.com/pkg/errors"
)

// Parse reads a formula from r. Operators, from lowest to highest priority:
//
//   - "=" equivalence
//   - "->" implication
//   - "|" disjunction
//   - "&" conjunction
//   - "^" negation (unary)
//
// Binary operators associate to the right; parentheses group subformulas;
// any other token is a variable name.
func Parse(r io.Reader) (Proposition, error) {
	p := &parser{}
	p.s.Init(r)
	p.next()
	f, err := p.parseBin(0)
	if err != nil {
		return nil, err
	}
	if !p.eof {
		return nil, errors.Errorf("unexpected token %q at %s", p.tok, p.s.Pos())
	}
	return f, nil
}

type parser struct {
	s   scanner.Scanner
	eof bool
	tok string
}

func (p *parser) next() {
	if p.eof {
		return
	}
	p.eof = p.s.Scan() == scanner.EOF
	p.tok = p.s.TokenText()
}

var binLevels = []struct {
	tok   string
	build func(f, g Proposition) Proposition
}{
	{"=", Eq},
	{"->", Implies},
	{"|", func(f, g Proposition) Proposition { return Or(f, g) }},
	{"&", func(f, g Proposition) Proposition { return And(f, g) }},
}

func isOperator(tok string) bool {
	return tok == "=" || tok == "-" || tok == ">" || tok == "|" || tok == "&"
}

func (p *parser) parseBin(level int) (Proposition, error) {
	if level == len(binLevels) {
		return p.parseUnary()
	}
	f, err := p.parseBin(level + 1)
	if err != nil {
		return nil, err
	}
	if p.eof {
		return f, nil
	}
	lv := binLevels[level]
	switch {
	case lv.tok == "->" && p.tok == "-":
		p.next()
		if p.eof || p.tok != ">" {
			return nil, errors.Errorf("invalid token %q at %s", "-"+p.tok, p.s.Pos())
		}
	case p.tok == lv.tok:
	default:
		return f, nil
	}
	p.next()
	if p.eof {
		return nil, errors.New("unexpected EOF")
	}
	g, err := p.parseBin(level)
	if err != nil {
		return nil, err
	}
	return lv.build(f, g), nil
}

func (p *parser) parseUnary() (Proposition, error) {
	if p.eof {
		return nil, errors.Errorf("expected expression, found EOF at %s", p.s.Pos())
	}
	if p.tok == "^" {
		p.next()
		f, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return Not(f), nil
	}
	return p.parseBasic()
}

func (p *parser) parseBasic() (Proposition, error) {
	if p.eof {
		return nil, errors.Errorf("expected expression, found EOF at %s", p.s.Pos())
	}
	if isOperator(p.tok) || p.tok == ")" {
		return nil, errors.Errorf("unexpected token %q at %s", p.tok, p.s.Pos())
	}
	if p.tok == "(" {
		p.next()
		f, err := p.parseBin(0)
		if err != nil {
			return nil, err
		}
		if p.eof || p.tok != ")" {
			return nil, errors.Errorf("expected closing parenthesis at %s", p.s.Pos())
		}
		p.next()
		return f, nil
	}
	f := Var(p.tok)
	p.next()
	return f, nil
}
