// Package findprogvar selects the progress variable that best tracks
// temperature across a set of flamelet solutions.
//
// Each file is interpolated at the stoichiometric mixture fraction, every
// non-empty sum of the test species is evaluated for every file, the results
// are sorted by temperature, and the candidates are classified by strict
// monotonicity. Several monotonic candidates are split by a maximum slope test;
// none at all falls back to the least non-monotonic one. Exactly one candidate
// is selected, or the run fails.
package findprogvar
