package profile

type CreateProfileRequest struct {
	UserID                string  `json:"userId" binding:"required,uuid"`
	EmployeeID            string  `json:"employeeId" binding:"omitempty,max=50"`
	FirstName             string  `json:"firstName" binding:"required,max=100"`
	LastName              string  `json:"lastName" binding:"required,max=100"`
	Department            string  `json:"department" binding:"max=100"`
	Position              string  `json:"position" binding:"max=100"`
	HireDate              string  `json:"hireDate"`
	Phone                 string  `json:"phone" binding:"max=30"`
	Address               string  `json:"address"`
	EmergencyContactName  string  `json:"emergencyContactName" binding:"max=100"`
	EmergencyContactPhone string  `json:"emergencyContactPhone" binding:"max=30"`
	ManagerID             *string `json:"managerId"`
}

// UpdateProfileRequest replaces every mutable field. ManagerID nil leaves
// the manager unchanged and is only honored for managers.
type UpdateProfileRequest struct {
	FirstName             string  `json:"firstName" binding:"required,max=100"`
	LastName              string  `json:"lastName" binding:"required,max=100"`
	Department            string  `json:"department" binding:"max=100"`
	Position              string  `json:"position" binding:"max=100"`
	HireDate              string  `json:"hireDate"`
	Phone                 string  `json:"phone" binding:"max=30"`
	Address               string  `json:"address"`
	EmergencyContactName  string  `json:"emergencyContactName" binding:"max=100"`
	EmergencyContactPhone string  `json:"emergencyContactPhone" binding:"max=30"`
	ManagerID             *string `json:"managerId"`
}

type BasicProfileResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"userId"`
	EmployeeID  string  `json:"employeeId"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Department  string  `json:"department"`
	Position    string  `json:"position"`
	ManagerID   *string `json:"managerId,omitempty"`
	ManagerName string  `json:"managerName,omitempty"`
}

type DetailedProfileResponse struct {
	BasicProfileResponse
	HireDate              *string `json:"hireDate,omitempty"`
	Phone                 string  `json:"phone"`
	Address               string  `json:"address"`
	EmergencyContactName  string  `json:"emergencyContactName"`
	EmergencyContactPhone string  `json:"emergencyContactPhone"`
	CreatedAt             string  `json:"createdAt"`
	UpdatedAt             string  `json:"updatedAt"`
}
