// Package ktlex implements the hand-written scanner a Kotlin-style grammar
// consults at the points where the grammar alone cannot decide which token
// to emit: automatic semicolon insertion, the safe navigation operator,
// import list termination and class header recognition.
//
// The host grammar engine owns tokenization. At a conflict point it calls
// Scan with the set of externally scanned kinds valid at the current parse
// position, and the scanner answers with at most one recognized kind, or
// declines so the grammar's alternative productions apply. Decisions may
// depend on lookahead across whitespace and comments, on whether a line
// break was crossed, and on two booleans of state carried between calls:
// whether a class header was just opened, and whether its signature closed
// on the same line. That state serializes to two bytes so the host can
// checkpoint and restore it across incremental reparse boundaries.
package ktlex
