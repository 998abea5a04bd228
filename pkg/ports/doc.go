/*
Package ports defines the driven ports (interfaces) of the Turing machine
service.

These interfaces decouple run execution from storage, so the HTTP API and the
CLI can keep run results in memory or in Redis without code changes.

# Key Interfaces

  - ResultStore: persists finished run records and lists their ids.
*/
package ports
