package constants

import "fmt"

// Role yang dikenal sistem. Set-nya fixed, tidak bisa dibuat lewat API.
const (
	RoleAdmin  = "admin"
	RolePlayer = "player"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess  = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyPlayersCanAccess = "❌ Hanya player yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorPlayer(feature string) string {
	return fmt.Sprintf(ErrOnlyPlayersCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RolePlayer,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	PlayerAndAbove = []string{
		RolePlayer,
		RoleAdmin,
	}
)
