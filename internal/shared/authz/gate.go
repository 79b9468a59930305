// Package authz provides the ownership decision used before every mutating
// pet operation.
package authz

// CanAct reports whether the acting session's user may mutate a resource
// owned by resourceOwnerID. Allow iff both ids are present and equal.
//
// A missing session is a separate condition handled before this check: the
// action layer redirects to login instead of returning a permission error.
func CanAct(sessionUserID, resourceOwnerID uint) bool {
	if sessionUserID == 0 || resourceOwnerID == 0 {
		return false
	}
	return sessionUserID == resourceOwnerID
}
