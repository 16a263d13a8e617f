// Package domain holds the core vocabulary of the shell: the status
// message protocol commands report their outcomes with, the record and
// dataset types produced by the line parser, and the sentinel errors
// shared across the parsing layers.
package domain
