// Package pricing implements the counter's price arithmetic: the biased
// nickel rounding applied to 3D-printing costs, two-decimal currency
// formatting, and the per-job cost formulas.
//
// # Rounding policy
//
// Prices round down to the nearest nickel. A raw cost is first rounded
// half-up to cents, then the cent digit is pulled down within its nickel
// band: 1–4 become 0 and 6–9 become 5, so 1.23 charges as 1.20 and 1.27 as
// 1.25. Amounts already on a nickel boundary (which includes every amount
// with a single decimal digit) pass through unchanged.
//
// The nickel rule applies only to 3D-printing costs. Sublimation totals are
// charged exactly as computed.
package pricing
