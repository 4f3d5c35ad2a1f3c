package access

import (
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const defaultsModel = `[request_definition]
r = sub, obj

[policy_definition]
p = sub, obj

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj
`

// Defaults holds the seed permission bundle of each role. Bundles are copied
// into an account at creation time only; later checks never consult them.
type Defaults struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
}

// NewDefaults builds the role bundles; admin receives every catalog tag.
func NewDefaults(catalogTags []string) (*Defaults, error) {
	m, err := model.NewModelFromString(defaultsModel)
	if err != nil {
		return nil, err
	}
	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	d := &Defaults{enforcer: e}
	if err := d.Reload(catalogTags); err != nil {
		return nil, err
	}
	return d, nil
}

// Reload replaces every policy. Called again when the catalog changes.
func (d *Defaults) Reload(catalogTags []string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.enforcer.ClearPolicy()

	if len(catalogTags) == 0 {
		catalogTags = tagsOf(SeedCatalog())
	}
	bundles := map[Role][]string{
		RoleAdmin:      catalogTags,
		RoleSupervisor: {PermViewMasterData, PermViewRecords, PermCreateRecords, PermUpdateRecords},
		RoleQCField:    {PermViewRecords, PermCreateRecords},
		RoleManajer:    {PermViewMasterData, PermViewRecords, PermViewReports},
	}

	for _, role := range roles {
		for _, tag := range NormalizeSet(bundles[role]) {
			if _, err := d.enforcer.AddPolicy(string(role), tag); err != nil {
				return err
			}
		}
	}
	return nil
}

// Bundle returns the default permission tags for role; empty for unknown roles.
func (d *Defaults) Bundle(role Role) []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := []string{}
	if !role.Valid() {
		return out
	}
	rules, err := d.enforcer.GetPermissionsForUser(string(role))
	if err != nil {
		return out
	}
	for _, rule := range rules {
		if len(rule) > 1 {
			out = append(out, rule[1])
		}
	}
	return out
}

// Includes reports whether tag is part of role's default bundle.
func (d *Defaults) Includes(role Role, tag string) (bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.enforcer.Enforce(string(role), tag)
}
