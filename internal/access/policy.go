// Package access is the permission policy: pure functions over the User
// record, no side effects. The same rules gate both what the console
// renders and what the API accepts.
package access

import (
	"eyetrends-pos/internal/models"
)

// PageDashboard is the landing page every account can reach.
const PageDashboard = "dashboard"

// Page is one top-level console screen.
type Page struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	AdminOnly bool   `json:"adminOnly,omitempty"`
}

// Pages is the full screen registry, in menu order.
var Pages = []Page{
	{ID: PageDashboard, Label: "Dashboard"},
	{ID: "inventory", Label: "Inventory"},
	{ID: "sales", Label: "Sales & Billing"},
	{ID: "reports", Label: "Reports"},
	{ID: "users", Label: "Employees", AdminOnly: true},
	{ID: "audit-logs", Label: "Audit Logs", AdminOnly: true},
	{ID: "settings", Label: "Settings"},
}

func pageByID(id string) (Page, bool) {
	for _, p := range Pages {
		if p.ID == id {
			return p, true
		}
	}
	return Page{}, false
}

// CanAccessPage reports whether the user may open the page: it must be in
// the user's accessible-pages set, and admin-only pages additionally
// require the ADMIN role.
func CanAccessPage(u models.User, pageID string) bool {
	page, ok := pageByID(pageID)
	if !ok {
		return false
	}
	if page.AdminOnly && u.Role != models.RoleAdmin {
		return false
	}
	for _, id := range u.Permissions.AccessiblePages {
		if id == pageID {
			return true
		}
	}
	return false
}

// VisiblePages returns the menu entries the user may navigate to.
func VisiblePages(u models.User) []Page {
	var visible []Page
	for _, p := range Pages {
		if CanAccessPage(u, p.ID) {
			visible = append(visible, p)
		}
	}
	return visible
}

// ResolvePage validates a requested page id and falls back to the
// dashboard when the user may not open it.
func ResolvePage(u models.User, requested string) string {
	if CanAccessPage(u, requested) {
		return requested
	}
	return PageDashboard
}

// CanAddInventory reports whether inventory create/edit is allowed.
func CanAddInventory(u models.User) bool {
	return u.Permissions.CanAddInventory
}

// CanDelete reports whether destructive product/user deletion is offered.
func CanDelete(u models.User) bool {
	return u.Role == models.RoleAdmin
}
