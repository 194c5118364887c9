// Package listitems implements the List Items query use case.
package listitems
