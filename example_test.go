package turing_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/rules"
)

// ExampleConfig_Build demonstrates the configure, build, run sequence with
// a machine that replaces every 'a' by 'b'.
func ExampleConfig_Build() {
	cfg := turing.NewConfig()
	if err := cfg.AddState(0, rules.Table{
		domain.Sym('a'): {Write: domain.Writes(domain.Sym('b')), Move: domain.Right, Next: 0},
		domain.Sym('b'): {Move: domain.Right, Next: 0},
		domain.Blank:    {Next: 1},
	}); err != nil {
		log.Fatal(err)
	}
	cfg.SetAccept(1)
	cfg.SetReject(2)
	cfg.LoadTape("abba")

	m, err := cfg.Build()
	if err != nil {
		log.Fatal(err)
	}
	res, err := m.Run(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(res.Outcome, res.Steps, res.Tape)
	// Output: accepted 5 bbbb
}
