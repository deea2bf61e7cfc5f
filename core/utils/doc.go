// Package utils provides common helpers for turning loosely-typed registry values
// into the plain strings the reconciliation records use.
package utils
