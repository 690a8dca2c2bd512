// Package kat holds the known-answer test vectors for the AES modes and the
// model of a suite run.
package kat
