/*
Package domain contains the core vocabulary of the Turing machine engine.

It defines the values every other package agrees on: tape symbols, state
identifiers, head directions, table actions, run outcomes and the lifecycle
events emitted during a run. The package is kept free of I/O and of any
dependency on the tape or the run loop.

# Key Entities

  - Symbol: the content of one tape cell, or Blank when nothing was written.
  - StateID: identifies a state; 0 is always the initial state.
  - Action: a write/move/next triple used by lookup-table rules.
  - Outcome: how a run ended (accepted, rejected, or stopped early).
  - LifecycleHooks: optional callbacks for observing a run.
  - RunRecord: the stored summary of a finished run.
*/
package domain
