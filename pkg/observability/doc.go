/*
Package observability turns machine lifecycle events into Prometheus metrics.

Metrics are collected through domain.LifecycleHooks, so any machine built with
turing.WithLifecycleHooks can be observed without changes to the run loop.
*/
package observability
