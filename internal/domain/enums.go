package domain

// Department - закрытый набор подразделений
type Department string

const (
	DepartmentHR          Department = "HR"
	DepartmentEngineering Department = "Engineering"
	DepartmentSales       Department = "Sales"
	DepartmentMarketing   Department = "Marketing"
	DepartmentFinance     Department = "Finance"
	DepartmentOperations  Department = "Operations"
)

var departmentLabels = map[Department]string{
	DepartmentHR:          "Human Resources",
	DepartmentEngineering: "Engineering",
	DepartmentSales:       "Sales",
	DepartmentMarketing:   "Marketing",
	DepartmentFinance:     "Finance",
	DepartmentOperations:  "Operations",
}

// Valid проверяет, входит ли значение в набор подразделений
func (d Department) Valid() bool {
	_, ok := departmentLabels[d]
	return ok
}

// Label возвращает отображаемое название подразделения
func (d Department) Label() string {
	return departmentLabels[d]
}

// Role - закрытый набор должностей
type Role string

const (
	RoleManager   Role = "Manager"
	RoleDeveloper Role = "Developer"
	RoleAnalyst   Role = "Analyst"
	RoleDesigner  Role = "Designer"
	RoleLead      Role = "Lead"
	RoleIntern    Role = "Intern"
)

var roleLabels = map[Role]string{
	RoleManager:   "Manager",
	RoleDeveloper: "Developer",
	RoleAnalyst:   "Analyst",
	RoleDesigner:  "Designer",
	RoleLead:      "Team Lead",
	RoleIntern:    "Intern",
}

// Valid проверяет, входит ли значение в набор должностей
func (r Role) Valid() bool {
	_, ok := roleLabels[r]
	return ok
}

// Label возвращает отображаемое название должности
func (r Role) Label() string {
	return roleLabels[r]
}
