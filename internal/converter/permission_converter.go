package converter

import (
	"medicit-backend/internal/delivery/dto"
	"medicit-backend/internal/domain/entity"
)

// PermissionToRow converts a Permission entity to its raw wire row.
func PermissionToRow(permission *entity.Permission) *dto.PermissionRow {
	if permission == nil {
		return nil
	}
	return &dto.PermissionRow{
		ID:         permission.ID,
		RoleID:     permission.RoleID,
		ModuleID:   permission.ModuleID,
		ModuleName: permission.Module.Name,
		View:       permission.CanView,
		Create:     permission.CanCreate,
		Edit:       permission.CanEdit,
		Delete:     permission.CanDelete,
		Download:   permission.CanDownload,
	}
}

// PermissionsToRows converts a slice of permission rows.
func PermissionsToRows(permissions []entity.Permission) []dto.PermissionRow {
	rows := make([]dto.PermissionRow, 0, len(permissions))
	for i := range permissions {
		rows = append(rows, *PermissionToRow(&permissions[i]))
	}
	return rows
}

// PermissionsToCatalog folds permission rows into the module-name keyed
// capability map of the consolidated profile. Rows must arrive in id order;
// when a role carries duplicate rows for one module the later row silently
// replaces the earlier one (last-write-wins, an inherited contract callers
// depend on).
func PermissionsToCatalog(permissions []entity.Permission) map[string]dto.PermissionFlags {
	catalog := make(map[string]dto.PermissionFlags, len(permissions))
	for _, p := range permissions {
		catalog[p.Module.Name] = dto.PermissionFlags{
			View:     p.CanView,
			Create:   p.CanCreate,
			Edit:     p.CanEdit,
			Delete:   p.CanDelete,
			Download: p.CanDownload,
		}
	}
	return catalog
}
