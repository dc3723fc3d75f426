// Package dispatch provides rules for calls to the generated exhaustive
// dispatch helpers.
//
// Rules in this package:
//   - DP01: Switch or Map call does not handle every item or variant
package dispatch
