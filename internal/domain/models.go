package domain

import (
	"time"
)

// Employee представляет сотрудника
type Employee struct {
	ID         int64       `json:"id" gorm:"primaryKey;autoIncrement"`
	Name       string      `json:"name" gorm:"type:varchar(255);not null"`
	Email      string      `json:"email" gorm:"type:varchar(254);not null;uniqueIndex:idx_employee_email"`
	Department *Department `json:"department" gorm:"type:varchar(100);index:idx_employee_dept"`
	Role       *Role       `json:"role" gorm:"type:varchar(100);index:idx_employee_role"`
	DateJoined time.Time   `json:"date_joined" gorm:"type:date;not null;index:idx_employee_date"`
}

// TableName задаёт имя таблицы для GORM
func (Employee) TableName() string {
	return "employees"
}

// User представляет учётную запись для доступа к API
type User struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string    `json:"username" gorm:"type:varchar(150);not null;uniqueIndex:idx_user_username"`
	Email        string    `json:"email" gorm:"type:varchar(254);not null;uniqueIndex:idx_user_email"`
	PasswordHash string    `json:"-" gorm:"type:varchar(60);not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName задаёт имя таблицы для GORM
func (User) TableName() string {
	return "users"
}
