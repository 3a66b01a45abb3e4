package response

import "github.com/google/uuid"

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	EmployeeID  uuid.UUID `json:"employee_id"`
	Role        string    `json:"role"`
}
