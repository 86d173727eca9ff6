package eval

import (
	"errors"
	"testing"
)

func checkCompileError(t *testing.T, err error, wantWord string) *CompileError {
	t.Helper()
	var ce *CompileError
	if !errors.As(err, &ce) {
		t.Fatalf("expected CompileError, got %v", err)
	}
	if wantWord != "" && ce.Word != wantWord {
		t.Errorf("expected offending word %q, got %q", wantWord, ce.Word)
	}
	return ce
}

func TestIfThen(t *testing.T) {
	e := New()
	mustEval(t, e, "1 IF 42 THEN")
	checkStack(t, e, 42)

	e = New()
	mustEval(t, e, "0 IF 42 THEN")
	checkStack(t, e)
}

func TestIfElseThen(t *testing.T) {
	e := New()
	mustEval(t, e, "1 IF 10 ELSE 20 THEN")
	checkStack(t, e, 10)

	e = New()
	mustEval(t, e, "0 IF 10 ELSE 20 THEN")
	checkStack(t, e, 20)
}

func TestNonzeroIsTrue(t *testing.T) {
	e := New()
	mustEval(t, e, "-1 IF 7 THEN 5 IF 8 THEN")
	checkStack(t, e, 7, 8)
}

func TestNestedIf(t *testing.T) {
	e := New()
	mustEval(t, e, "1 1 IF IF 7 THEN THEN")
	checkStack(t, e, 7)

	// ELSE binds to the innermost open IF.
	e = New()
	mustEval(t, e, ": SIGN DUP 0 > IF DROP 1 ELSE DUP 0 < IF DROP -1 ELSE DROP 0 THEN THEN ;")
	mustEval(t, e, "5 SIGN -5 SIGN 0 SIGN")
	checkStack(t, e, 1, -1, 0)
}

func TestBeginUntil(t *testing.T) {
	e := New()
	out := mustEval(t, e, "5 BEGIN DUP . 1 - DUP 0 = UNTIL DROP")
	if out != "5 4 3 2 1 " {
		t.Errorf("expected %q, got %q", "5 4 3 2 1 ", out)
	}
	checkStack(t, e)
}

func TestBeginUntilRunsBodyAtLeastOnce(t *testing.T) {
	e := New()
	mustEval(t, e, "BEGIN 7 1 UNTIL")
	checkStack(t, e, 7)
}

func TestDoLoop(t *testing.T) {
	// DO pops the limit, then the start: 0 5 DO runs indices 0..4.
	e := New()
	out := mustEval(t, e, "0 5 DO I . LOOP")
	if out != "0 1 2 3 4 " {
		t.Errorf("expected %q, got %q", "0 1 2 3 4 ", out)
	}
	checkStack(t, e)
}

func TestDoLoopZeroIterations(t *testing.T) {
	e := New()
	mustEval(t, e, "3 3 DO 99 LOOP")
	checkStack(t, e)

	e = New()
	mustEval(t, e, "5 3 DO 99 LOOP")
	checkStack(t, e)
}

func TestNestedDoLoopsExposeInnermostIndex(t *testing.T) {
	e := New()
	out := mustEval(t, e, "0 2 DO 0 2 DO I . LOOP LOOP")
	if out != "0 1 0 1 " {
		t.Errorf("expected %q, got %q", "0 1 0 1 ", out)
	}
}

func TestDoLoopInDefinition(t *testing.T) {
	e := New()
	mustEval(t, e, ": SUM-BELOW 0 SWAP 0 SWAP DO I + LOOP ;")
	mustEval(t, e, "5 SUM-BELOW")
	checkStack(t, e, 10) // 0+1+2+3+4
}

func TestLoneThen(t *testing.T) {
	e := New()
	_, err := e.Eval("THEN")
	checkCompileError(t, err, "THEN")
	checkStack(t, e)
}

func TestLoneCloserKeepsPriorEffects(t *testing.T) {
	e := New()
	_, err := e.Eval("1 2 THEN")
	checkCompileError(t, err, "THEN")
	// Pushes before the offending word already committed.
	checkStack(t, e, 1, 2)
}

func TestElseWithoutIf(t *testing.T) {
	e := New()
	_, err := e.Eval("ELSE")
	checkCompileError(t, err, "ELSE")
}

func TestSemicolonWithoutColon(t *testing.T) {
	e := New()
	_, err := e.Eval(";")
	checkCompileError(t, err, ";")
}

func TestUnterminatedIfAtEndOfInput(t *testing.T) {
	e := New()
	_, err := e.Eval("1 IF 42")
	ce := checkCompileError(t, err, "IF")
	if ce.Line != 1 {
		t.Errorf("expected line 1, got %d", ce.Line)
	}
}

func TestUnterminatedDefinition(t *testing.T) {
	e := New()
	_, err := e.Eval(": BROKEN DUP *")
	checkCompileError(t, err, ":")
	if e.Dictionary().Lookup("BROKEN") != nil {
		t.Error("a failed definition must not be registered")
	}
}

func TestFailedDefinitionHasNoStackEffect(t *testing.T) {
	e := New()
	_, err := e.Eval(": BROKEN 1 2 3 THEN ;")
	checkCompileError(t, err, "THEN")
	checkStack(t, e)
	if e.Dictionary().Lookup("BROKEN") != nil {
		t.Error("a failed definition must not be registered")
	}
}

func TestNestedDefinitionRejected(t *testing.T) {
	e := New()
	_, err := e.Eval(": OUTER : INNER ; ;")
	checkCompileError(t, err, ":")
}

func TestDefinitionNameCannotBeNumber(t *testing.T) {
	e := New()
	_, err := e.Eval(": 5 DUP ;")
	checkCompileError(t, err, "5")
}

func TestDefinitionNameCannotBeStructural(t *testing.T) {
	e := New()
	_, err := e.Eval(": IF DUP ;")
	checkCompileError(t, err, "IF")
}

func TestMissingDefinitionName(t *testing.T) {
	e := New()
	_, err := e.Eval(":")
	checkCompileError(t, err, ":")
}

func TestIndexOutsideLoop(t *testing.T) {
	e := New()
	_, err := e.Eval("I")
	checkCompileError(t, err, "I")

	e = New()
	_, err = e.Eval(": W I ;")
	checkCompileError(t, err, "I")
	if e.Dictionary().Lookup("W") != nil {
		t.Error("a failed definition must not be registered")
	}
}

func TestUnknownWordInBodyFailsAtDefinitionTime(t *testing.T) {
	e := New()
	_, err := e.Eval(": W NOPE ;")
	var uw *UnknownWordError
	if !errors.As(err, &uw) {
		t.Fatalf("expected UnknownWordError, got %v", err)
	}
	if e.Dictionary().Lookup("W") != nil {
		t.Error("a failed definition must not be registered")
	}
}

func TestCompileErrorReportsLine(t *testing.T) {
	e := New()
	_, err := e.Eval("1 2 +\nTHEN")
	ce := checkCompileError(t, err, "THEN")
	if ce.Line != 2 {
		t.Errorf("expected line 2, got %d", ce.Line)
	}
}

func TestCommentInsideDefinition(t *testing.T) {
	e := New()
	mustEval(t, e, ": SQUARE ( n -- n*n ) DUP * ;")
	mustEval(t, e, "3 SQUARE")
	checkStack(t, e, 9)
}

func TestUnterminatedComment(t *testing.T) {
	e := New()
	_, err := e.Eval("( never closed")
	checkCompileError(t, err, "(")
}

func TestControlFlowInsideDefinitionBody(t *testing.T) {
	e := New()
	mustEval(t, e, ": COUNT-TO 0 SWAP DO I . LOOP ;")
	out := mustEval(t, e, "3 COUNT-TO")
	if out != "0 1 2 " {
		t.Errorf("expected %q, got %q", "0 1 2 ", out)
	}
}
