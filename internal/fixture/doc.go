// Package fixture loads the tabular age-to-classification fixture used by
// data-driven tests and by the "padron table" command.
//
// # Table Format
//
// The table is CSV with two columns, an integer age and the expected label:
//
//	# age,expected
//	age,expected
//	0,minor
//	18,adult
//	65,senior adult
//	-1,error
//
// The header row is optional. Lines starting with # are comments. The label
// "error" means Classify must reject the age.
package fixture
