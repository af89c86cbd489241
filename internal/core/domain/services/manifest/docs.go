// Package manifest renders batches of orders into the CSV import files of each carrier's
// label printing software (Sagawa e-Hiden II, Yamato B2 Cloud, Fukuyama, Japan Post Yu-Pack).
//
// Each carrier is a FieldMapper registered in a Registry; the Generator looks the mapper up,
// maps and encodes rows concurrently and reassembles them in input order. Files are always
// Shift_JIS (CP932), every field is quoted and records end with "\n".
package manifest
