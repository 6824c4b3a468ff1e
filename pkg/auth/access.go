package auth

// HasRole reports whether role is in the allow-list.
func HasRole(role Role, allowed ...Role) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

// CanManage reports whether p may manage a library whose librarian set is librarians.
// Admins always can.
func CanManage(p Principal, librarians []string) bool {
	switch p.Role {
	case RoleAdmin:
		return true
	case RoleLibrarian:
		for _, id := range librarians {
			if id == p.UserID {
				return true
			}
		}
	}
	return false
}
