// Package placehold implements the Place Hold use case.
//
// A requester joins the queue of an item and receives the next position, which never changes afterwards.
// Placing a hold never fulfills anything, even when units are available; only returned units
// and unfrozen holds trigger an assignment attempt.
package placehold
