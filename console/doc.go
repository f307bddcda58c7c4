// Package console drives a machine from line-oriented token input,
// the way a script file or an interactive terminal feeds keys.
package console
