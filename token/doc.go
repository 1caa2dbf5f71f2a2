// Package token tokenizes JSON text and classifies numeric literals from
// their exact source bytes, before that text is discarded.
//
// The classifier is the authority on numeric kind: a literal is a float
// iff it contains a decimal point or exponent marker, and integers are
// assigned the minimal signed/unsigned width covering their value. This
// happens here, on source text, so a later stage never has to guess from
// a rounded runtime value.
package token
