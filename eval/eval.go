// Package eval parses and verifies numbers-round arithmetic. Submitted
// expressions are adversarial free text: the parser admits only integer
// literals, unary minus, the four binary operators, and parentheses, and
// evaluation is integer-exact (division must leave no remainder).
package eval

import (
	"fmt"
	"strings"
)

// A Verification is the outcome of checking one submitted expression.
// Exactly one of Result (with Valid true) or Err (with Valid false) is
// meaningful.
type Verification struct {
	Valid  bool
	Result int
	Err    *Error
}

// Verify checks a submitted expression against the round's available
// numbers. Checks run in a fixed order so error reporting is
// deterministic: syntax and disallowed constructs first, then operand
// allocation against the available multiset, then arithmetic legality.
// Negative intermediate results are legal.
func Verify(text string, available []int) Verification {
	text = normalize(text)

	root, perr := parse(text)
	if perr != nil {
		return Verification{Err: perr}
	}

	if perr := checkAllocation(collectLiterals(root), available); perr != nil {
		return Verification{Err: perr}
	}

	result, perr := evaluate(root)
	if perr != nil {
		return Verification{Err: perr}
	}
	return Verification{Valid: true, Result: result}
}

// normalize maps the unicode multiply/divide signs that on-screen keyboards
// produce onto their ASCII operators.
func normalize(text string) string {
	text = strings.ReplaceAll(text, "×", "*")
	text = strings.ReplaceAll(text, "÷", "/")
	return strings.TrimSpace(text)
}

// collectLiterals walks the tree and returns every literal used, with
// repetition, in left-to-right source order.
func collectLiterals(n *node) []int {
	switch n.kind {
	case literalNode:
		return []int{n.value}
	case negateNode:
		return collectLiterals(n.left)
	default:
		return append(collectLiterals(n.left), collectLiterals(n.right)...)
	}
}

// checkAllocation verifies the used-literal multiset is a sub-multiset of
// the available numbers. The first literal (in source order) to exceed its
// allocation is reported.
func checkAllocation(used, available []int) *Error {
	avail := map[int]int{}
	for _, n := range available {
		avail[n]++
	}
	counts := map[int]int{}
	for _, n := range used {
		counts[n]++
	}
	checked := map[int]bool{}
	for _, n := range used {
		if checked[n] {
			continue
		}
		checked[n] = true
		if counts[n] > avail[n] {
			return &Error{
				Kind: OverAllocatedNumber,
				Detail: fmt.Sprintf("number %d used %d time(s) but only %d available",
					n, counts[n], avail[n]),
			}
		}
	}
	return nil
}

func evaluate(n *node) (int, *Error) {
	switch n.kind {
	case literalNode:
		return n.value, nil
	case negateNode:
		v, perr := evaluate(n.left)
		if perr != nil {
			return 0, perr
		}
		return -v, nil
	}

	left, perr := evaluate(n.left)
	if perr != nil {
		return 0, perr
	}
	right, perr := evaluate(n.right)
	if perr != nil {
		return 0, perr
	}
	switch n.kind {
	case addNode:
		return left + right, nil
	case subNode:
		return left - right, nil
	case mulNode:
		return left * right, nil
	case divNode:
		if right == 0 {
			return 0, &Error{Kind: DivisionByZero, Detail: "division by zero"}
		}
		if left%right != 0 {
			return 0, &Error{
				Kind:   NonIntegerDivision,
				Detail: fmt.Sprintf("%d / %d is not an integer", left, right),
			}
		}
		return left / right, nil
	}
	// The node variant is closed; nothing else can be constructed.
	return 0, &Error{Kind: DisallowedOperator, Detail: "unknown expression node"}
}
