package eval

import (
	"testing"

	"github.com/matryer/is"
)

func TestVerifyValid(t *testing.T) {
	available := []int{2, 3, 4, 5, 6, 7}
	cases := []struct {
		expr   string
		result int
	}{
		{"4*6", 24},
		{"4 * 6", 24},
		{"(2+3)*4", 20},
		{"7*6*5", 210},
		{"6/3", 2},
		{"6/-3", -2},
		{"-4+6", 2},
		{"2-7", -5}, // negative intermediates are legal
		{"(2-7)*3+6", -9},
		{"4×6", 24}, // unicode operators from on-screen keyboards
		{"6÷2", 3},
		{"((((5))))", 5},
	}
	for _, tc := range cases {
		t.Run(tc.expr, func(t *testing.T) {
			is := is.New(t)
			v := Verify(tc.expr, available)
			is.True(v.Valid)
			is.Equal(v.Result, tc.result)
		})
	}
}

func TestVerifyRejects(t *testing.T) {
	available := []int{2, 3, 4, 5, 6, 7}
	cases := []struct {
		name string
		expr string
		kind ErrorKind
	}{
		{"empty", "", SyntaxError},
		{"unbalanced", "(2+3", SyntaxError},
		{"trailing op", "2+", SyntaxError},
		{"bare op", "*", SyntaxError},
		{"junk char", "2 # 3", SyntaxError},
		{"adjacent numbers", "2 3", SyntaxError},
		{"power", "2**3", DisallowedOperator},
		{"modulo", "7%2", DisallowedOperator},
		{"comparison", "2<3", DisallowedOperator},
		{"name", "x+2", DisallowedOperator},
		{"call-ish", "abs(2)", DisallowedOperator},
		{"float", "2.5*2", DisallowedOperator},
		{"overallocated", "6*6", OverAllocatedNumber},
		{"unavailable", "25*4", OverAllocatedNumber},
		{"div by zero", "2/(7-3-4)", DivisionByZero},
		{"non-integer division", "5/2", NonIntegerDivision},
		{"non-integer nested", "3*(7/2)", NonIntegerDivision},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			is := is.New(t)
			v := Verify(tc.expr, available)
			is.True(!v.Valid)
			is.Equal(v.Err.Kind, tc.kind)
		})
	}
}

// An expression that is both malformed and uses a forbidden operator is
// reported as malformed: structure is checked before operator legality.
func TestSyntaxBeforeDisallowed(t *testing.T) {
	cases := []struct {
		name string
		expr string
	}{
		{"unbalanced power", "(2**3"},
		{"dangling power", "2**"},
		{"dangling modulo", "7%"},
		{"bare comparison", "<"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			is := is.New(t)
			v := Verify(tc.expr, []int{2, 3, 7})
			is.True(!v.Valid)
			is.Equal(v.Err.Kind, SyntaxError)
		})
	}
}

// Allocation is checked before arithmetic, so an expression that both
// over-allocates and divides unevenly reports the allocation error.
func TestCheckOrdering(t *testing.T) {
	is := is.New(t)
	v := Verify("5/2 + 5", []int{5, 2})
	is.True(!v.Valid)
	is.Equal(v.Err.Kind, OverAllocatedNumber)

	v = Verify("5/2", []int{5, 2})
	is.True(!v.Valid)
	is.Equal(v.Err.Kind, NonIntegerDivision)
}

func TestOverAllocationDetail(t *testing.T) {
	is := is.New(t)
	v := Verify("3*3*3", []int{3, 3, 5})
	is.True(!v.Valid)
	is.Equal(v.Err.Kind, OverAllocatedNumber)
	is.Equal(v.Err.Detail, "number 3 used 3 time(s) but only 2 available")
}

func TestRepeatedTileIsFine(t *testing.T) {
	is := is.New(t)
	// The small deck holds duplicates; using both copies is legal.
	v := Verify("6*6", []int{6, 6, 1, 2, 3, 4})
	is.True(v.Valid)
	is.Equal(v.Result, 36)
}

func TestUnaryMinusChains(t *testing.T) {
	is := is.New(t)
	v := Verify("--5", []int{5})
	is.True(v.Valid)
	is.Equal(v.Result, 5)
}
