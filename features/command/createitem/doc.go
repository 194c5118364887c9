// Package createitem implements the Create Item use case.
//
// An item is a lendable title with a fixed number of units. Creating one assigns the next
// item id and makes all units available. No queue is touched.
package createitem
