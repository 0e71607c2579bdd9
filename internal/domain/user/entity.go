package user

import "time"

type Role string

const (
	RoleRep     Role = "rep"
	RoleManager Role = "manager"
)

type User struct {
	ID           string
	FullName     string
	Email        string
	Phone        *string
	PasswordHash string
	Role         Role
	ManagerID    *string
	Region       *string
	PhotoURL     *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
