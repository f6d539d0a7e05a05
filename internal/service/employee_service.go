package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/employee-directory-api/internal/domain"
	"github.com/employee-directory-api/internal/dto"
	"github.com/employee-directory-api/internal/repository"
	"github.com/go-playground/validator/v10"
)

// Потолок размера страницы; большие значения молча срезаются
const maxPageSize = 100

// Поля, допустимые в параметре ordering
var orderableFields = map[string]bool{
	"name":        true,
	"email":       true,
	"date_joined": true,
}

// EmployeeService определяет интерфейс бизнес-логики для сотрудников
type EmployeeService interface {
	Create(ctx context.Context, req *dto.EmployeeRequest) (*domain.Employee, error)
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	List(ctx context.Context, query *dto.ListEmployeesQuery) ([]domain.Employee, int64, error)
	Update(ctx context.Context, id int64, req *dto.EmployeeRequest, partial bool) (*domain.Employee, error)
	Delete(ctx context.Context, id int64) error
}

type employeeService struct {
	empRepo   repository.EmployeeRepository
	validator *validator.Validate
}

// NewEmployeeService создаёт новый экземпляр сервиса
func NewEmployeeService(empRepo repository.EmployeeRepository) EmployeeService {
	return &employeeService{
		empRepo:   empRepo,
		validator: validator.New(),
	}
}

// employeeFields - нормализованный набор полей после валидации.
// Флаги фиксируют, было ли поле передано в запросе.
type employeeFields struct {
	name          *string
	email         *string
	department    *domain.Department
	departmentSet bool
	role          *domain.Role
	roleSet       bool
}

func (s *employeeService) Create(ctx context.Context, req *dto.EmployeeRequest) (*domain.Employee, error) {
	fields, err := s.validateEmployee(ctx, req, 0, false)
	if err != nil {
		return nil, err
	}

	emp := &domain.Employee{
		Name:       *fields.name,
		Email:      *fields.email,
		Department: fields.department,
		Role:       fields.role,
		DateJoined: time.Now().UTC(),
	}

	if err := s.empRepo.Create(ctx, emp); err != nil {
		return nil, s.mapDuplicateEmail(err)
	}

	return emp, nil
}

func (s *employeeService) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	return s.empRepo.GetByID(ctx, id)
}

func (s *employeeService) List(ctx context.Context, query *dto.ListEmployeesQuery) ([]domain.Employee, int64, error) {
	params, err := normalizeListQuery(query)
	if err != nil {
		return nil, 0, err
	}
	return s.empRepo.List(ctx, params)
}

func (s *employeeService) Update(ctx context.Context, id int64, req *dto.EmployeeRequest, partial bool) (*domain.Employee, error) {
	emp, err := s.empRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fields, err := s.validateEmployee(ctx, req, emp.ID, partial)
	if err != nil {
		return nil, err
	}

	if fields.name != nil {
		emp.Name = *fields.name
	}
	if fields.email != nil {
		emp.Email = *fields.email
	}
	if fields.departmentSet {
		emp.Department = fields.department
	}
	if fields.roleSet {
		emp.Role = fields.role
	}

	// DateJoined не изменяется после создания записи
	if err := s.empRepo.Update(ctx, emp); err != nil {
		return nil, s.mapDuplicateEmail(err)
	}

	return emp, nil
}

func (s *employeeService) Delete(ctx context.Context, id int64) error {
	return s.empRepo.Delete(ctx, id)
}

// validateEmployee проверяет набор полей и возвращает нормализованные
// значения либо ошибки по всем полям сразу. При частичном обновлении
// отсутствующие поля пропускаются, при полном - обязательные поля
// должны присутствовать.
func (s *employeeService) validateEmployee(ctx context.Context, req *dto.EmployeeRequest, excludeID int64, partial bool) (*employeeFields, error) {
	ve := &domain.ValidationError{}
	fields := &employeeFields{}

	s.validateName(ve, fields, req.Name, partial)
	if err := s.validateEmail(ctx, ve, fields, req.Email, excludeID, partial); err != nil {
		return nil, err
	}
	s.validateDepartment(ve, fields, req.Department, partial)
	s.validateRole(ve, fields, req.Role, partial)
	s.crossFieldRules(fields, ve)

	if !ve.Empty() {
		return nil, ve
	}
	return fields, nil
}

func (s *employeeService) validateName(ve *domain.ValidationError, fields *employeeFields, name *string, partial bool) {
	if name == nil {
		if !partial {
			ve.Add("name", "This field is required.")
		}
		return
	}

	trimmed := strings.TrimSpace(*name)
	if trimmed == "" {
		ve.Add("name", "Name cannot be empty or contain only whitespace.")
		return
	}
	if utf8.RuneCountInString(trimmed) > 255 {
		ve.Add("name", "Ensure this field has no more than 255 characters.")
		return
	}

	fields.name = &trimmed
}

func (s *employeeService) validateEmail(ctx context.Context, ve *domain.ValidationError, fields *employeeFields, email *string, excludeID int64, partial bool) error {
	if email == nil {
		if !partial {
			ve.Add("email", "This field is required.")
		}
		return nil
	}

	normalized := NormalizeEmail(*email)
	if normalized == "" {
		ve.Add("email", "Email is required.")
		return nil
	}
	if utf8.RuneCountInString(normalized) > 254 {
		ve.Add("email", "Ensure this field has no more than 254 characters.")
		return nil
	}
	if err := s.validator.Var(normalized, "email"); err != nil {
		ve.Add("email", "Enter a valid email address.")
		return nil
	}

	// Проверка уникальности исключает обновляемую запись,
	// чтобы собственный email не считался дубликатом
	exists, err := s.empRepo.EmailExists(ctx, normalized, excludeID)
	if err != nil {
		return err
	}
	if exists {
		ve.Add("email", "An employee with this email already exists.")
		return nil
	}

	fields.email = &normalized
	return nil
}

func (s *employeeService) validateDepartment(ve *domain.ValidationError, fields *employeeFields, department *string, partial bool) {
	if department == nil {
		// При полном обновлении отсутствующее необязательное поле сбрасывается
		fields.departmentSet = !partial
		return
	}

	fields.departmentSet = true
	value := strings.TrimSpace(*department)
	if value == "" {
		return
	}

	dept := domain.Department(value)
	if !dept.Valid() {
		ve.Add("department", "Invalid department. Choose from: HR, Engineering, Sales, Marketing, Finance, Operations.")
		return
	}
	fields.department = &dept
}

func (s *employeeService) validateRole(ve *domain.ValidationError, fields *employeeFields, role *string, partial bool) {
	if role == nil {
		fields.roleSet = !partial
		return
	}

	fields.roleSet = true
	value := strings.TrimSpace(*role)
	if value == "" {
		return
	}

	r := domain.Role(value)
	if !r.Valid() {
		ve.Add("role", "Invalid role. Choose from: Manager, Developer, Analyst, Designer, Lead, Intern.")
		return
	}
	fields.role = &r
}

// crossFieldRules - точка расширения для перекрёстных проверок полей.
// Правил пока не определено.
func (s *employeeService) crossFieldRules(fields *employeeFields, ve *domain.ValidationError) {
}

// mapDuplicateEmail переводит нарушение уникальности на уровне хранилища
// в обычную ошибку валидации поля email: для клиента проигранная гонка
// неотличима от предварительной проверки
func (s *employeeService) mapDuplicateEmail(err error) error {
	if errors.Is(err, domain.ErrDuplicateEmail) {
		ve := &domain.ValidationError{}
		ve.Add("email", "An employee with this email already exists.")
		return ve
	}
	return err
}

// NormalizeEmail приводит email к каноническому виду
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// normalizeListQuery приводит параметры списка к нормализованному виду:
// страница по умолчанию 1, размер страницы по умолчанию 10 с потолком 100,
// сортировка только по полям из белого списка
func normalizeListQuery(query *dto.ListEmployeesQuery) (repository.ListEmployeesParams, error) {
	if query.PageSize <= 0 {
		ve := &domain.ValidationError{}
		ve.Add("page_size", "Ensure this value is greater than or equal to 1.")
		return repository.ListEmployeesParams{}, ve
	}

	pageSize := query.PageSize
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	page := query.Page
	if page < 1 {
		page = 1
	}

	// По умолчанию - сначала новые записи, при равной дате по имени
	order := []repository.OrderBy{
		{Field: "date_joined", Desc: true},
		{Field: "name"},
	}
	if ordering := strings.TrimSpace(query.Ordering); ordering != "" {
		field := strings.TrimPrefix(ordering, "-")
		if orderableFields[field] {
			order = []repository.OrderBy{{Field: field, Desc: strings.HasPrefix(ordering, "-")}}
		}
	}

	return repository.ListEmployeesParams{
		Department: query.Department,
		Role:       query.Role,
		Search:     query.Search,
		Order:      order,
		Offset:     (page - 1) * pageSize,
		Limit:      pageSize,
	}, nil
}
