package parser_test

import (
	"testing"

	"github.com/metaphox/kaleido-lang/parser"
)

// TestOpTable_Defaults verifies the seeded operator set and its relative
// binding powers.
func TestOpTable_Defaults(t *testing.T) {
	ops := parser.DefaultOps()

	want := map[byte]int{'<': 10, '+': 20, '-': 20, '*': 40}
	for op, prec := range want {
		got, ok := ops.Precedence(op)
		if !ok {
			t.Errorf("Precedence(%q): not registered", op)
			continue
		}
		if got != prec {
			t.Errorf("Precedence(%q): got %d, want %d", op, got, prec)
		}
	}
	if _, ok := ops.Precedence('/'); ok {
		t.Error("'/' should not be registered by default")
	}
}

// TestOpTable_NonPositiveMeansAbsent checks that an entry mapped to ≤ 0 is
// reported as not-an-operator, matching the table's contract.
func TestOpTable_NonPositiveMeansAbsent(t *testing.T) {
	ops := parser.OpTable{'~': 0, '^': -3}
	for _, op := range []byte{'~', '^'} {
		if _, ok := ops.Precedence(op); ok {
			t.Errorf("Precedence(%q): non-positive entry reported as operator", op)
		}
	}
}

// TestOpTable_Register covers both accepted and rejected registrations.
func TestOpTable_Register(t *testing.T) {
	cases := []struct {
		name   string
		op     byte
		prec   int
		wantOK bool
	}{
		{"new symbol", '/', 40, true},
		{"reweight existing", '+', 25, true},
		{"low precedence", '|', 1, true},
		{"letter", 'x', 20, false},
		{"digit", '7', 20, false},
		{"structural paren", '(', 20, false},
		{"structural comma", ',', 20, false},
		{"structural comment", '#', 20, false},
		{"structural semicolon", ';', 20, false},
		{"space", ' ', 20, false},
		{"non-printable", 0x01, 20, false},
		{"zero precedence", '%', 0, false},
		{"precedence too high", '%', 100, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ops := parser.DefaultOps()
			err := ops.Register(tc.op, tc.prec)
			if tc.wantOK && err != nil {
				t.Fatalf("Register(%q, %d): %v", tc.op, tc.prec, err)
			}
			if !tc.wantOK {
				if err == nil {
					t.Fatalf("Register(%q, %d): expected error", tc.op, tc.prec)
				}
				return
			}
			got, ok := ops.Precedence(tc.op)
			if !ok || got != tc.prec {
				t.Fatalf("after Register: Precedence(%q) = %d, %v; want %d, true", tc.op, got, ok, tc.prec)
			}
		})
	}
}

// TestOpTable_Clone verifies that a clone is independent of its source.
func TestOpTable_Clone(t *testing.T) {
	ops := parser.DefaultOps()
	clone := ops.Clone()
	if err := clone.Register('/', 40); err != nil {
		t.Fatalf("Register on clone: %v", err)
	}
	if _, ok := ops.Precedence('/'); ok {
		t.Error("registering on the clone leaked into the source table")
	}
}
