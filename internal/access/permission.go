package access

const (
	PermViewAdminPanel   = "view_admin_panel"
	PermManageUsers      = "manage_users"
	PermImportUsers      = "import_users"
	PermManageMasterData = "manage_master_data"
	PermViewMasterData   = "view_master_data"
	PermViewRecords      = "view_records"
	PermCreateRecords    = "create_records"
	PermUpdateRecords    = "update_records"
	PermDeleteRecords    = "delete_records"
	PermViewReports      = "view_reports"
)

// Permission is one catalog row.
type Permission struct {
	Tag      string `gorm:"column:tag;primaryKey;type:varchar(100)" json:"tag"`
	Label    string `gorm:"column:label;type:varchar(255);not null" json:"label"`
	Category string `gorm:"column:category;type:varchar(100);not null;index" json:"category"`
}

func (Permission) TableName() string {
	return "permissions"
}

type PermissionGroup struct {
	Category    string       `json:"category"`
	Permissions []Permission `json:"permissions"`
}

// SeedCatalog is written by the migrate command on a fresh database.
func SeedCatalog() []Permission {
	return []Permission{
		{Tag: PermViewAdminPanel, Label: "Akses Panel Admin", Category: "admin"},
		{Tag: PermManageUsers, Label: "Kelola Pengguna", Category: "admin"},
		{Tag: PermImportUsers, Label: "Import Pengguna (CSV)", Category: "admin"},
		{Tag: PermManageMasterData, Label: "Kelola Master Data", Category: "master_data"},
		{Tag: PermViewMasterData, Label: "Lihat Master Data", Category: "master_data"},
		{Tag: PermViewRecords, Label: "Lihat Data QC", Category: "records"},
		{Tag: PermCreateRecords, Label: "Input Data QC", Category: "records"},
		{Tag: PermUpdateRecords, Label: "Ubah Data QC", Category: "records"},
		{Tag: PermDeleteRecords, Label: "Hapus Data QC", Category: "records"},
		{Tag: PermViewReports, Label: "Lihat Laporan", Category: "reports"},
	}
}

func tagsOf(perms []Permission) []string {
	out := make([]string, len(perms))
	for i, p := range perms {
		out[i] = p.Tag
	}
	return out
}

// GroupByCategory keeps the first-seen order of categories and of entries.
func GroupByCategory(perms []Permission) []PermissionGroup {
	groups := make([]PermissionGroup, 0)
	index := make(map[string]int)
	for _, p := range perms {
		i, ok := index[p.Category]
		if !ok {
			i = len(groups)
			index[p.Category] = i
			groups = append(groups, PermissionGroup{Category: p.Category})
		}
		groups[i].Permissions = append(groups[i].Permissions, p)
	}
	return groups
}
