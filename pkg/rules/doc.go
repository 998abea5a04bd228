/*
Package rules defines the transition rule contract and its two stock variants.

A TransitionRule is bound to one state. Given the symbol under the head it
returns the next state and may write to or move the tape first. Rules are
either code (RuleFunc) or data (Table, a symbol-to-Action lookup that can be
serialized and checked for totality before a run).
*/
package rules
