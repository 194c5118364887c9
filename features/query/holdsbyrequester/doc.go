// Package holdsbyrequester implements the Holds By Requester query use case.
//
// It returns all holds of one requester across items, ordered by item id and then position.
package holdsbyrequester
