package dto

// EmployeeRequest - тело запроса на создание или обновление сотрудника.
// Поля-указатели позволяют отличить отсутствующее поле от пустого
// при частичном обновлении.
type EmployeeRequest struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Department *string `json:"department"`
	Role       *string `json:"role"`
}

// EmployeeResponse - ответ с данными сотрудника
type EmployeeResponse struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	Department        *string `json:"department"`
	DepartmentDisplay string  `json:"department_display"`
	Role              *string `json:"role"`
	RoleDisplay       string  `json:"role_display"`
	DateJoined        string  `json:"date_joined"`
}

// ListEmployeesQuery - параметры запроса списка сотрудников
type ListEmployeesQuery struct {
	Department string
	Role       string
	Search     string
	Ordering   string
	Page       int
	PageSize   int
}

// PaginatedEmployeesResponse - постраничный ответ со списком сотрудников
type PaginatedEmployeesResponse struct {
	Count    int64              `json:"count"`
	Next     *string            `json:"next"`
	Previous *string            `json:"previous"`
	Results  []EmployeeResponse `json:"results"`
}

// RegisterRequest - запрос на регистрацию учётной записи
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=1,max=150"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// LoginRequest - запрос на получение пары токенов
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest - запрос на обновление access-токена
type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

// UserResponse - ответ с данными учётной записи
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// TokenPairResponse - пара токенов доступа
type TokenPairResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// AccessTokenResponse - обновлённый access-токен
type AccessTokenResponse struct {
	Access string `json:"access"`
}

// DetailResponse - ответ с одним сообщением (404, 401 и т.п.)
type DetailResponse struct {
	Detail string `json:"detail"`
}

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
