// Package conjugation derives the inflected forms of a Japanese verb from
// its dictionary-form kana reading and morphological class.
//
// The engine is a pure function of its inputs: no state, no I/O, and
// byte-identical output for identical input. Ichidan verbs conjugate by
// dropping the final る and appending fixed suffixes. Godan verbs derive
// stems from the euphonic rule row selected by their final u-row mora.
// する and くる are table-driven; 行く carries a lexical exception on its
// te and ta stems.
package conjugation
