package access

type RoleResponse struct {
	Role               Role     `json:"role"`
	DefaultPermissions []string `json:"default_permissions"`
}

type AccessSummaryResponse struct {
	Authenticated bool      `json:"authenticated"`
	Identity      *Identity `json:"identity,omitempty"`
	Permissions   []string  `json:"permissions"`
	AllowedMenus  []string  `json:"allowed_menus"`
	AllowedPlants []string  `json:"allowed_plants"`
}

// Summary renders what the current session may see.
func (c Checker) Summary() AccessSummaryResponse {
	return AccessSummaryResponse{
		Authenticated: c.Authenticated(),
		Identity:      c.Identity(),
		Permissions:   c.Permissions(),
		AllowedMenus:  c.AllowedMenus(),
		AllowedPlants: c.AllowedPlants(),
	}
}
