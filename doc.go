// Package listenrechner implements an integer calculator which evaluates an
// expression by repeatedly reducing a mutable list of tokens.
//
// Input is a sequence of whitespace-separated tokens: integers, the operators
// + - * /, and parentheses, ended by "=". "2 + 3 * 4 =" is 14, and
// "( 2 + 3 ) * 4 =" is 20. Parenthesized groups are resolved first, right-most
// group first, then * and / from left to right, then + and - from left to
// right. Every single reduction produces a step, the rendering of the whole
// list at that point, so a caller can show how the term shrinks:
//
//	(5)*4
//	20
//
// Division truncates toward zero. Division by zero leaves the dividend as it
// is unless the StrictDivision option is used.
//
package listenrechner
