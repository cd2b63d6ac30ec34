//go:build !unix

package preflight

// Windows ACLs are not expressible as mode bits; the stat in
// CheckDirectoryAccess is the only check performed there.
func checkAccess(string) error {
	return nil
}
