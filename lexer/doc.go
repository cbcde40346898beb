// Package lexer turns arithmetic expression source into a stream of
// classified tokens. The supported alphabet is small:
//   - Numeric literals: a run of digits, optionally followed by `.` and
//     another run of digits (`12`, `12.34`, `12.`).
//   - Variables: a run of ASCII letters. Digits never extend a variable, so
//     `x1` is the variable `x` followed by the literal `1`.
//   - Operators: `+ - * / ^ ~ ( ) =` and the compound assignments
//     `+= -= *= /=`.
//
// Spaces, carriage returns, and line feeds separate tokens and are otherwise
// ignored. A Lexer supports arbitrary lookahead through Peek and records
// every offset at which each variable occurs.
package lexer
