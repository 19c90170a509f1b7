package dto

type CreateEmployeeRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=120"`
	Surname string `json:"surname" binding:"required,min=1,max=120"`
	Age     *int   `json:"age" binding:"required,gte=0,lte=150"`
	Gender  string `json:"gender" binding:"required,oneof=male female other"`
}

// Pointer fields: nil = leave as is, value = set.
type UpdateEmployeeRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1,max=120"`
	Surname *string `json:"surname" binding:"omitempty,min=1,max=120"`
	Age     *int    `json:"age" binding:"omitempty,gte=0,lte=150"`
	Gender  *string `json:"gender" binding:"omitempty,oneof=male female other"`
}

type EmployeeResponse struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Age     int    `json:"age"`
	Gender  string `json:"gender"`
}

type ListEmployeesResponse struct {
	Items []EmployeeResponse `json:"items"`
	Count int                `json:"count"`
}

type DeleteEmployeeResponse struct {
	Deleted string `json:"deleted"`
}

type DeleteAllResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}
