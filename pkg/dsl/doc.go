/*
Package dsl provides a fluent Go builder for lookup-table Turing machines.

It is a thin layer over turing.Config: each state becomes a rules.Table and
the builder records registration errors until Build, so definitions read
top to bottom without error checks on every line.

Example usage:

	b := dsl.New("length-mod-3").Accept(3).Reject(4).Alphabet('a')

	b.State(0).On('a').Right().Go(1)
	b.State(0).OnBlank().GoAccept()
	b.State(1).On('a').Right().Go(2)
	b.State(1).OnBlank().GoReject()
	b.State(2).On('a').Right().Go(0)
	b.State(2).OnBlank().GoReject()

	cfg, err := b.Build()
	// cfg.LoadTape("aaa"); m, err := cfg.Build(); m.Run(ctx)
*/
package dsl
