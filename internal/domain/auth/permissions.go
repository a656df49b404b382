package auth

import (
	"slices"

	"motorph/internal/domain/employee"
)

const (
	PermSelfRead       = "self.read"
	PermEmployeesRead  = "employees.read"
	PermEmployeesWrite = "employees.write"
	PermPayrollRead    = "payroll.read"
	PermPayrollExport  = "payroll.export"
	PermPasswordReset  = "password.reset"
)

var DefaultPermissions = []string{
	PermSelfRead,
	PermEmployeesRead,
	PermEmployeesWrite,
	PermPayrollRead,
	PermPayrollExport,
	PermPasswordReset,
}

// profileGrants maps each permission profile flag to the permissions it grants.
var profileGrants = []struct {
	granted func(employee.PermissionProfile) bool
	perms   []string
}{
	{func(p employee.PermissionProfile) bool { return p.CanManageEmployees }, []string{PermEmployeesRead, PermEmployeesWrite}},
	{func(p employee.PermissionProfile) bool { return p.CanProcessPayroll }, []string{PermPayrollRead, PermPayrollExport}},
	{func(p employee.PermissionProfile) bool { return p.CanResetPassword }, []string{PermPasswordReset}},
}

// PermissionsFor lists the permissions of a profile. Every employee may read
// their own record.
func PermissionsFor(profile employee.PermissionProfile) []string {
	perms := []string{PermSelfRead}
	for _, grant := range profileGrants {
		if grant.granted(profile) {
			perms = append(perms, grant.perms...)
		}
	}
	return perms
}

func HasPermission(perms []string, perm string) bool {
	return slices.Contains(perms, perm)
}
