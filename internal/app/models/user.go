package models

import "care4u-service/internal/pkg/constvars"

type User struct {
	ID        string `bson:"_id,omitempty"`
	Email     string `bson:"email"`
	Username  string `bson:"username"`
	Password  string `bson:"password"`
	Phone     string `bson:"phone,omitempty"`
	Role      string `bson:"role"`
	DoctorID  string `bson:"doctorId,omitempty"`
	TimeModel `bson:",inline"`
}

func (u *User) IsDoctor() bool {
	return u.Role == constvars.RoleDoctor
}

func (u *User) IsAdmin() bool {
	return u.Role == constvars.RoleAdmin
}
