package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/employee-directory-api/internal/domain"
	"gorm.io/gorm"
)

// OrderBy - одно поле сортировки выборки
type OrderBy struct {
	Field string
	Desc  bool
}

// ListEmployeesParams - нормализованные параметры выборки сотрудников.
// Предикаты применяются в фиксированном порядке: фильтры, поиск,
// сортировка, срез страницы.
type ListEmployeesParams struct {
	Department string
	Role       string
	Search     string
	Order      []OrderBy
	Offset     int
	Limit      int
}

// EmployeeRepository определяет интерфейс для работы с сотрудниками
type EmployeeRepository interface {
	Create(ctx context.Context, emp *domain.Employee) error
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	List(ctx context.Context, params ListEmployeesParams) ([]domain.Employee, int64, error)
	EmailExists(ctx context.Context, email string, excludeID int64) (bool, error)
	Update(ctx context.Context, emp *domain.Employee) error
	Delete(ctx context.Context, id int64) error
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository создаёт новый экземпляр репозитория
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	err := r.db.WithContext(ctx).Create(emp).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateEmail
	}
	return err
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	var emp domain.Employee
	err := r.db.WithContext(ctx).First(&emp, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepository) List(ctx context.Context, params ListEmployeesParams) ([]domain.Employee, int64, error) {
	query := r.db.WithContext(ctx).Model(&domain.Employee{})

	if params.Department != "" {
		query = query.Where("department = ?", params.Department)
	}
	if params.Role != "" {
		query = query.Where("role = ?", params.Role)
	}
	if params.Search != "" {
		pattern := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", pattern, pattern)
	}

	// Session позволяет переиспользовать накопленные условия
	// для подсчёта и для выборки страницы
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Поля сортировки приходят только из белого списка сервиса
	for _, order := range params.Order {
		direction := "ASC"
		if order.Desc {
			direction = "DESC"
		}
		query = query.Order(order.Field + " " + direction)
	}

	var employees []domain.Employee
	err := query.Offset(params.Offset).Limit(params.Limit).Find(&employees).Error
	if err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

func (r *employeeRepository) EmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	query := r.db.WithContext(ctx).Model(&domain.Employee{}).Where("email = ?", email)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *employeeRepository) Update(ctx context.Context, emp *domain.Employee) error {
	err := r.db.WithContext(ctx).Save(emp).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateEmail
	}
	return err
}

func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Employee{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}
