package eval

import (
	"fmt"
	"strconv"

	"nickandperla.net/fifth/internal/scanner"
	"nickandperla.net/fifth/internal/token"
	"nickandperla.net/fifth/internal/word"
)

// resolver compiles a token stream into an executable node tree, matching
// nested control words and binding names to dictionary entries as it goes.
// A nil self means a top-level structure rather than a definition body.
type resolver struct {
	dict      *Dictionary
	scan      *scanner.Scanner
	self      *word.Word // word being defined; lets a body call itself
	loopDepth int
}

// parseLiteral attempts the number interpretation of a token. Decimal only,
// signed 64-bit; fifth has no BASE word, matching its ancestry.
func parseLiteral(text string) (word.Cell, bool) {
	n, err := strconv.ParseInt(text, 10, 64)
	return word.Cell(n), err == nil
}

// compileDefinition handles ": NAME ... ;" after the ":" has been consumed.
// The body is fully resolved here: names bind to dictionary entries by
// identity, and the name being defined binds to the new word itself so
// definitions can recurse. Nothing is registered unless resolution
// succeeds.
func (e *Evaluator) compileDefinition(scan *scanner.Scanner, line int) error {
	item, err := scan.Next()
	if err != nil {
		return err
	}
	if item == nil {
		return &CompileError{Word: token.Define, Line: line, Detail: "missing name after :"}
	}
	name := token.Normalize(item.Text)
	if _, ok := parseLiteral(item.Text); ok || token.IsStructural(name) {
		return &CompileError{Word: item.Text, Line: item.Line,
			Detail: fmt.Sprintf("%s cannot name a definition", item.Text)}
	}

	w := &word.Word{Name: name}
	r := &resolver{dict: e.dict, scan: scan, self: w}
	body, _, err := r.compileBody(token.Define, line, token.EndDefine)
	if err != nil {
		return err
	}
	w.Body = body
	e.dict.Define(name, w)
	log.Debugf("defined %s: %s", name, word.Render(body))
	return nil
}

// compileBody consumes tokens until one of the stop words, returning the
// resolved nodes and the stop word that ended them. Running out of input
// first is a compile error naming the opener.
func (r *resolver) compileBody(opener string, openLine int, stops ...string) ([]word.Node, string, error) {
	var nodes []word.Node
	for {
		item, err := r.scan.Next()
		if err != nil {
			return nil, "", err
		}
		if item == nil {
			return nil, "", &CompileError{Word: opener, Line: openLine,
				Detail: fmt.Sprintf("unterminated %s starting at line %d", opener, openLine)}
		}

		name := token.Normalize(item.Text)
		for _, stop := range stops {
			if name == stop {
				return nodes, name, nil
			}
		}

		node, err := r.compileToken(item, name)
		if err != nil {
			return nil, "", err
		}
		if node != nil {
			nodes = append(nodes, node)
		}
	}
}

// compileToken resolves one token into a node. Closers and ELSE reaching
// here did not match the innermost open structure, which is exactly the
// counting discipline: every opener must be closed before an outer closer
// can see past it.
func (r *resolver) compileToken(item *scanner.Item, name string) (word.Node, error) {
	if v, ok := parseLiteral(item.Text); ok {
		return word.Push{Value: v}, nil
	}

	switch {
	case name == token.Comment:
		return nil, skipComment(r.scan, item.Line)

	case name == token.Define:
		return nil, &CompileError{Word: name, Line: item.Line, Detail: ": inside a definition body"}

	case name == token.EndDefine:
		return nil, &CompileError{Word: name, Line: item.Line, Detail: "; without :"}

	case name == token.Else || token.IsCloser(name):
		return nil, &CompileError{Word: name, Line: item.Line, Detail: name + " without matching opener"}

	case token.IsOpener(name):
		return r.compileStructure(name, item.Line)

	case name == token.Index:
		if r.loopDepth == 0 {
			return nil, &CompileError{Word: name, Line: item.Line, Detail: "I outside DO ... LOOP"}
		}
		return word.Index{}, nil
	}

	if r.self != nil && name == r.self.Name {
		return word.Call{Word: r.self}, nil
	}
	if w := r.dict.Lookup(name); w != nil {
		return word.Call{Word: w}, nil
	}
	return nil, &UnknownWordError{Name: item.Text}
}

// compileStructure resolves one control structure from its opener through
// the matching closer.
func (r *resolver) compileStructure(name string, line int) (word.Node, error) {
	switch name {
	case token.If:
		thenNodes, stop, err := r.compileBody(token.If, line, token.Else, token.Then)
		if err != nil {
			return nil, err
		}
		var elseNodes []word.Node
		if stop == token.Else {
			elseNodes, _, err = r.compileBody(token.Else, line, token.Then)
			if err != nil {
				return nil, err
			}
		}
		return word.If{Then: thenNodes, Else: elseNodes}, nil

	case token.Begin:
		body, _, err := r.compileBody(token.Begin, line, token.Until)
		if err != nil {
			return nil, err
		}
		return word.Until{Body: body}, nil

	default: // token.Do
		r.loopDepth++
		body, _, err := r.compileBody(token.Do, line, token.Loop)
		r.loopDepth--
		if err != nil {
			return nil, err
		}
		return word.Loop{Body: body}, nil
	}
}

// skipComment consumes tokens through the closing ")".
func skipComment(scan *scanner.Scanner, line int) error {
	for {
		item, err := scan.Next()
		if err != nil {
			return err
		}
		if item == nil {
			return &CompileError{Word: token.Comment, Line: line, Detail: "unterminated ( comment"}
		}
		if item.Text == token.EndComment {
			return nil
		}
	}
}
