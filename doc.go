/*
Package turing simulates single-tape, deterministic Turing machines.

A machine is a set of states, each bound to a transition rule that reads the
symbol under the head, optionally writes and moves, and names the next
state. Running starts in state 0 and stops when the accept or reject state
is produced.

# Concept

Configuration and execution are separate. A Config collects rules, the two
terminal states and the initial tape. Build validates it and returns a
read-only Machine that can Run exactly once. Run returns a Result value with
the outcome and the final tape; nothing is printed.

# Usage

	cfg := turing.NewConfig()
	a := domain.Sym('a')
	_ = cfg.AddState(0, rules.Table{a: {Move: domain.Right, Next: 1}, domain.Blank: {Next: 3}})
	_ = cfg.AddState(1, rules.Table{a: {Move: domain.Right, Next: 2}, domain.Blank: {Next: 4}})
	_ = cfg.AddState(2, rules.Table{a: {Move: domain.Right, Next: 0}, domain.Blank: {Next: 4}})
	cfg.SetAccept(3)
	cfg.SetReject(4)
	cfg.LoadTape("aaa")

	m, err := cfg.Build()
	if err != nil {
		log.Fatal(err)
	}
	res, err := m.Run(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(res.Outcome) // accepted

Errors raised during a run (undefined state, unhandled symbol, exhausted
step budget) are returned together with a non-nil Result, and match the
sentinels in package domain with errors.Is.
*/
package turing
