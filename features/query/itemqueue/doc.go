// Package itemqueue implements the Item Queue query use case.
//
// It returns every hold of an item in position order, including frozen and fulfilled ones.
// Nothing is filtered, so the result is the full history of the queue.
package itemqueue
