package assembunny

import (
	"errors"
	"testing"

	"aoc/internal/core"
)

const sample = `cpy 41 a
inc a
inc a
dec a
jnz a 2
dec a
`

func TestExecSample(t *testing.T) {
	prog, err := Parse(sample)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(prog) != 6 {
		t.Fatalf("decoded %d instructions, want 6", len(prog))
	}
	regs := prog.Exec(Registers{})
	if regs[0] != 42 {
		t.Fatalf("a = %d, want 42", regs[0])
	}
}

func TestRunUsesRegisterC(t *testing.T) {
	// a = 1 when c starts at 0, otherwise a = 7.
	const prog = `cpy 1 a
jnz c 2
jnz 1 2
cpy 7 a
`
	factory, ok := core.Solutions()[core.ID{Year: 2016, Day: 12}]
	if !ok {
		t.Fatal("2016/12 not registered")
	}
	sol := factory()
	if err := sol.Parse(prog); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	a, b := sol.Run()
	if a != 1 || b != 7 {
		t.Fatalf("Run = (%d, %d), want (1, 7)", a, b)
	}
}

func TestLoopCopiesRegister(t *testing.T) {
	const prog = `cpy 5 b
inc a
dec b
jnz b -2
cpy a d
`
	p, err := Parse(prog)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	regs := p.Exec(Registers{})
	if regs != (Registers{5, 0, 0, 5}) {
		t.Fatalf("registers = %v", regs)
	}
}

func TestParseErrors(t *testing.T) {
	for _, bad := range []string{
		"mul a b",
		"inc 3",
		"inc",
		"cpy 1 2",
		"cpy a",
		"jnz a x",
		"dec e",
	} {
		if _, err := Parse(bad); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("Parse(%q) = %v, want ErrInvalidInput", bad, err)
		}
	}
}
