// Package assignment decides which waiting hold, if any, receives an available unit.
//
// Decide is a pure function over an item and its queue. TryAssign applies its decision to a core.State,
// marking the selected hold fulfilled and consuming exactly one unit in the same step.
//
// Every triggering event (a returned unit, an unfrozen hold) calls TryAssign once. It never loops to hand
// out more than one unit; remaining units wait for the next event.
package assignment
