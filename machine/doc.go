// Package machine implements the key-driven core of the P101
// calculating machine.
//
// A Machine consumes one key at a time. Most keys take their meaning
// from the key processed immediately before it: digits extend or begin
// the entry in the keyboard register M, the print and exchange keys act
// on whichever register the previous key selected, and the undo key
// rewinds that one piece of context without touching any register.
// Arithmetic always combines M with the accumulator A, leaving integer
// remainders and full products in R.
//
// Every condition the machine can report is recoverable; a Machine
// never stops accepting keys.
package machine
