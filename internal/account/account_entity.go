package account

import (
	"time"

	"go-inspecta/internal/access"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Account struct {
	ID            uuid.UUID           `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Username      string              `gorm:"column:username;type:varchar(64);not null;uniqueIndex:uq_accounts_username"`
	FullName      string              `gorm:"column:full_name;type:varchar(255);not null"`
	PasswordHash  string              `gorm:"column:password_hash;type:text;not null"`
	Role          string              `gorm:"column:role;type:varchar(32);not null;index"`
	IsActive      bool                `gorm:"column:is_active;not null"`
	AllowedMenus  pq.StringArray      `gorm:"column:allowed_menus;type:text[];not null;default:'{}'"`
	AllowedPlants pq.StringArray      `gorm:"column:allowed_plants;type:text[];not null;default:'{}'"`
	CreatedAt     time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time           `gorm:"column:updated_at;autoUpdateTime"`
	Permissions   []AccountPermission `gorm:"foreignKey:AccountID;references:ID;constraint:OnDelete:CASCADE"`
}

// AccountPermission is one granted tag. Tags are kept as free strings so
// grants survive catalog changes.
type AccountPermission struct {
	AccountID  uuid.UUID `gorm:"column:account_id;type:uuid;primaryKey"`
	Permission string    `gorm:"column:permission;type:varchar(64);primaryKey"`
}

func (AccountPermission) TableName() string {
	return "account_permissions"
}

func (a Account) PermissionTags() []string {
	tags := make([]string, 0, len(a.Permissions))
	for _, p := range a.Permissions {
		tags = append(tags, p.Permission)
	}
	return access.NormalizeSet(tags)
}

// Identity builds the session snapshot for this account.
func (a Account) Identity() access.Identity {
	return access.Identity{
		Username:      a.Username,
		FullName:      a.FullName,
		Role:          access.Role(a.Role),
		IsActive:      a.IsActive,
		Permissions:   a.PermissionTags(),
		AllowedMenus:  access.NormalizeSet(a.AllowedMenus),
		AllowedPlants: access.NormalizeSet(a.AllowedPlants),
	}
}

func permissionRows(accountID uuid.UUID, tags []string) []AccountPermission {
	rows := make([]AccountPermission, 0, len(tags))
	for _, t := range tags {
		rows = append(rows, AccountPermission{AccountID: accountID, Permission: t})
	}
	return rows
}
