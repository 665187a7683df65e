package access

import (
	"testing"

	"eyetrends-pos/internal/models"

	"github.com/stretchr/testify/assert"
)

func staffWith(pages ...string) models.User {
	return models.User{
		Role:        models.RoleStaff,
		Permissions: models.UserPermissions{AccessiblePages: pages},
	}
}

func TestCanAccessPage_Staff(t *testing.T) {
	u := staffWith("dashboard", "inventory")

	assert.True(t, CanAccessPage(u, "dashboard"))
	assert.True(t, CanAccessPage(u, "inventory"))
	assert.False(t, CanAccessPage(u, "sales"), "not in the permission set")
	assert.False(t, CanAccessPage(u, "users"), "admin-only")
	assert.False(t, CanAccessPage(u, "audit-logs"), "admin-only")
	assert.False(t, CanAccessPage(u, "no-such-page"))
}

func TestCanAccessPage_AdminOnlyPagesNeedBothRoleAndMembership(t *testing.T) {
	// STAFF with the page listed still may not open it.
	staff := staffWith("dashboard", "users")
	assert.False(t, CanAccessPage(staff, "users"))

	// ADMIN without the page listed may not open it either.
	admin := models.User{Role: models.RoleAdmin, Permissions: models.UserPermissions{AccessiblePages: []string{"dashboard"}}}
	assert.False(t, CanAccessPage(admin, "users"))

	admin.Permissions.AccessiblePages = append(admin.Permissions.AccessiblePages, "users")
	assert.True(t, CanAccessPage(admin, "users"))
}

func TestVisiblePages_FiltersMenu(t *testing.T) {
	u := staffWith("dashboard", "inventory", "users") // users is admin-only

	var ids []string
	for _, p := range VisiblePages(u) {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"dashboard", "inventory"}, ids)
}

func TestResolvePage_FallsBackToDashboard(t *testing.T) {
	u := staffWith("dashboard", "inventory")

	assert.Equal(t, "inventory", ResolvePage(u, "inventory"))
	assert.Equal(t, "dashboard", ResolvePage(u, "audit-logs"))
	assert.Equal(t, "dashboard", ResolvePage(u, "users"))
	assert.Equal(t, "dashboard", ResolvePage(u, "garbage"))
}

func TestCanAddInventory(t *testing.T) {
	u := staffWith("inventory")
	assert.False(t, CanAddInventory(u))

	u.Permissions.CanAddInventory = true
	assert.True(t, CanAddInventory(u))
}

func TestCanDelete_AdminOnly(t *testing.T) {
	assert.False(t, CanDelete(staffWith("inventory")))
	assert.True(t, CanDelete(models.User{Role: models.RoleAdmin}))
}
