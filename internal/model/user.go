package model

// User represents an application user record as stored in the
// `fashion_user` table.  PasswordHash holds a bcrypt hash and is never
// serialised; handlers expose users through their own response types.
//
// Fields:
//  ID           – primary key identifier (user_id).
//  Username     – unique login name.
//  Email        – unique email address.
//  PasswordHash – bcrypt hashed password.
//  DesignerName – optional label of the designer the user works for.
//  Address      – postal address.
//  Phone        – phone number.
//  Role         – role name (USER, ANALYST, DESIGNER or ADMIN).
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	DesignerName string `json:"designer_name"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	Role         string `json:"role"`
}

// Role names understood by the permission policy.
const (
	RoleUser     = "USER"
	RoleAnalyst  = "ANALYST"
	RoleDesigner = "DESIGNER"
	RoleAdmin    = "ADMIN"
)
