package employee

import "strings"

type Department string

const (
	DepartmentHR         Department = "HR"
	DepartmentFinance    Department = "Finance"
	DepartmentIT         Department = "IT"
	DepartmentOperations Department = "Operations"
)

var Departments = []Department{
	DepartmentHR,
	DepartmentFinance,
	DepartmentIT,
	DepartmentOperations,
}

// PermissionProfile is the capability set granted by a department.
type PermissionProfile struct {
	CanManageEmployees bool `json:"canManageEmployees"`
	CanProcessPayroll  bool `json:"canProcessPayroll"`
	CanResetPassword   bool `json:"canResetPassword"`
}

var departmentProfiles = map[Department]PermissionProfile{
	DepartmentHR:         {CanManageEmployees: true},
	DepartmentFinance:    {CanProcessPayroll: true},
	DepartmentIT:         {CanResetPassword: true},
	DepartmentOperations: {},
}

// DeriveDepartment classifies a position title. Rules are checked in order
// and matched case-insensitively as substrings.
func DeriveDepartment(position string) Department {
	p := strings.ToLower(position)
	switch {
	case strings.Contains(p, "hr"):
		return DepartmentHR
	case strings.Contains(p, "account"), strings.Contains(p, "finance"):
		return DepartmentFinance
	case strings.Contains(p, "it"):
		return DepartmentIT
	default:
		return DepartmentOperations
	}
}

// ProfileFor returns the department's profile. Unknown departments get the
// Operations profile.
func ProfileFor(d Department) PermissionProfile {
	if profile, ok := departmentProfiles[d]; ok {
		return profile
	}
	return departmentProfiles[DepartmentOperations]
}
