// Package returnunit implements the Return Unit use case.
//
// A returned unit raises the available count of its item, capped at the unit total, and then
// exactly one assignment is attempted. The attempt happens even when the count was already at the cap,
// since an earlier state may have left a unit unassigned.
package returnunit
