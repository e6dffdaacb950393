package models

type StaffUser struct {
	ID    string `json:"_id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

type LoginResult struct {
	Token string    `json:"token"`
	User  StaffUser `json:"user"`
}
