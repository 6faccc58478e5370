package assembunny

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"aoc/internal/core"
)

// ErrInvalidInput marks malformed programs.
var ErrInvalidInput = errors.New("invalid input")

// Op enumerates the instruction set.
type Op uint8

const (
	OpCpy Op = iota
	OpInc
	OpDec
	OpJnz
)

var opNames = map[string]Op{"cpy": OpCpy, "inc": OpInc, "dec": OpDec, "jnz": OpJnz}

// Operand is either a register reference or an immediate value.
type Operand struct {
	Reg   int
	Value int
	IsReg bool
}

func (o Operand) eval(regs *Registers) int {
	if o.IsReg {
		return regs[o.Reg]
	}
	return o.Value
}

// Instruction is one decoded program line.
type Instruction struct {
	Op   Op
	X, Y Operand
}

// Registers holds a through d.
type Registers [4]int

// Program is a decoded assembunny listing.
type Program []Instruction

// Parse decodes one instruction per line. Blank lines are skipped.
func Parse(input string) (Program, error) {
	var prog Program
	for i, line := range strings.Split(input, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		ins, err := decode(fields)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %q: %v", ErrInvalidInput, i+1, strings.TrimSpace(line), err)
		}
		prog = append(prog, ins)
	}
	return prog, nil
}

func decode(fields []string) (Instruction, error) {
	op, ok := opNames[fields[0]]
	if !ok {
		return Instruction{}, fmt.Errorf("unknown op %q", fields[0])
	}
	ins := Instruction{Op: op}

	want := 2
	if op == OpCpy || op == OpJnz {
		want = 3
	}
	if len(fields) != want {
		return Instruction{}, fmt.Errorf("%s takes %d operands", fields[0], want-1)
	}

	x, err := parseOperand(fields[1])
	if err != nil {
		return Instruction{}, err
	}
	ins.X = x
	if want == 3 {
		y, err := parseOperand(fields[2])
		if err != nil {
			return Instruction{}, err
		}
		ins.Y = y
	}

	switch op {
	case OpInc, OpDec:
		if !ins.X.IsReg {
			return Instruction{}, fmt.Errorf("%s needs a register", fields[0])
		}
	case OpCpy:
		if !ins.Y.IsReg {
			return Instruction{}, errors.New("cpy needs a destination register")
		}
	}
	return ins, nil
}

func parseOperand(s string) (Operand, error) {
	if len(s) == 1 && s[0] >= 'a' && s[0] <= 'd' {
		return Operand{Reg: int(s[0] - 'a'), IsReg: true}, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return Operand{}, fmt.Errorf("bad operand %q", s)
	}
	return Operand{Value: v}, nil
}

// Exec runs the program from the first instruction until the program
// counter leaves the listing, and returns the final registers.
func (p Program) Exec(regs Registers) Registers {
	for pc := 0; pc >= 0 && pc < len(p); {
		ins := p[pc]
		switch ins.Op {
		case OpCpy:
			regs[ins.Y.Reg] = ins.X.eval(&regs)
		case OpInc:
			regs[ins.X.Reg]++
		case OpDec:
			regs[ins.X.Reg]--
		case OpJnz:
			if ins.X.eval(&regs) != 0 {
				pc += ins.Y.eval(&regs)
				continue
			}
		}
		pc++
	}
	return regs
}

// Solution answers 2016 day 12.
type Solution struct {
	prog Program
}

// Parse decodes the program.
func (s *Solution) Parse(input string) error {
	prog, err := Parse(input)
	if err != nil {
		return err
	}
	s.prog = prog
	return nil
}

// Run returns register a with c starting at 0 and at 1.
func (s *Solution) Run() (int, int) {
	first := s.prog.Exec(Registers{})
	second := s.prog.Exec(Registers{2: 1})
	return first[0], second[0]
}

func init() {
	core.Register(core.ID{Year: 2016, Day: 12}, func() core.Solution { return &Solution{} })
}
