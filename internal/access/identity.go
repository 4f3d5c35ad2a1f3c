package access

// Identity is the last-known snapshot of an authenticated account.
type Identity struct {
	Username      string   `json:"username"`
	FullName      string   `json:"full_name"`
	Role          Role     `json:"role"`
	IsActive      bool     `json:"is_active"`
	Permissions   []string `json:"permissions"`
	AllowedMenus  []string `json:"allowed_menus"`
	AllowedPlants []string `json:"allowed_plants"`
}

// Clone returns a deep copy so callers can't mutate a cached snapshot.
func (i *Identity) Clone() *Identity {
	if i == nil {
		return nil
	}
	cp := *i
	cp.Permissions = cloneSet(i.Permissions)
	cp.AllowedMenus = cloneSet(i.AllowedMenus)
	cp.AllowedPlants = cloneSet(i.AllowedPlants)
	return &cp
}

func cloneSet(v []string) []string {
	out := make([]string, len(v))
	copy(out, v)
	return out
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// NormalizeSet trims entries, drops blanks and duplicates, keeps first-seen order.
func NormalizeSet(v []string) []string {
	out := make([]string, 0, len(v))
	seen := make(map[string]struct{}, len(v))
	for _, s := range v {
		s = trimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
