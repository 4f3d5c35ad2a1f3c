package access

import (
	"context"
	"strings"
)

// Checker answers capability questions about an optional identity. Every
// method is total: a nil identity simply has no capabilities.
type Checker struct {
	identity *Identity
}

func NewChecker(identity *Identity) Checker {
	return Checker{identity: identity}
}

// FromContext builds a Checker over the identity carried by ctx.
func FromContext(ctx context.Context) Checker {
	return NewChecker(IdentityFromContext(ctx))
}

func (c Checker) Authenticated() bool {
	return c.identity != nil
}

// Identity returns a copy of the underlying identity, or nil.
func (c Checker) Identity() *Identity {
	return c.identity.Clone()
}

func (c Checker) Username() string {
	if c.identity == nil {
		return ""
	}
	return c.identity.Username
}

func (c Checker) HasPermission(tag string) bool {
	if c.identity == nil {
		return false
	}
	return contains(c.identity.Permissions, tag)
}

// HasAnyPermission is true when at least one tag is granted.
func (c Checker) HasAnyPermission(tags ...string) bool {
	for _, tag := range tags {
		if c.HasPermission(tag) {
			return true
		}
	}
	return false
}

func (c Checker) HasMenuAccess(menuID string) bool {
	if c.identity == nil {
		return false
	}
	return contains(c.identity.AllowedMenus, menuID)
}

func (c Checker) HasPlantAccess(plantID string) bool {
	if c.identity == nil {
		return false
	}
	return contains(c.identity.AllowedPlants, plantID)
}

func (c Checker) Permissions() []string {
	if c.identity == nil {
		return []string{}
	}
	return cloneSet(c.identity.Permissions)
}

func (c Checker) AllowedMenus() []string {
	if c.identity == nil {
		return []string{}
	}
	return cloneSet(c.identity.AllowedMenus)
}

func (c Checker) AllowedPlants() []string {
	if c.identity == nil {
		return []string{}
	}
	return cloneSet(c.identity.AllowedPlants)
}

func trimSpace(s string) string {
	return strings.TrimSpace(s)
}
