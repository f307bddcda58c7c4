// Package register implements the fixed-capacity decimal registers of
// the P101 calculating machine.
//
// Every register holds 22 decimal digit slots, least significant slot
// first, with the decimal point position and sign tracked in their own
// fields rather than packed into the digit array. Values move in and
// out as exact decimals: reads rebuild the signed value from the slots,
// writes truncate the fractional part to the configured display
// decimals and reject values wider than the register.
//
// The Bank groups the machine's eight named registers: M the keyboard
// operand, A the accumulator, R the remainder register, and B through F
// general storage.
package register
