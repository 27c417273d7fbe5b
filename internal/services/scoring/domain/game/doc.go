// Package game models a Binokel score sheet: a game of four named players in
// two fixed teams, its ordered rounds, and the settlement arithmetic that
// turns a round's bid, melds, and trick points into per-team results and
// cumulative totals.
package game
