/*
Package tape implements the single read/write tape of the machine.

The tape is unbounded in both directions. Cells are stored in one slice and
addressed by a signed position relative to the origin, the cell where
loading started. Moving past either end materializes a blank cell, so
movement never fails and no index can underflow.
*/
package tape
