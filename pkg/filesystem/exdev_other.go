//go:build !unix

package filesystem

func isEXDEV(err error) bool { return false }
