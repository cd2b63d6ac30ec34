// Package textutil holds small generic helpers for choosing between values.
package textutil
