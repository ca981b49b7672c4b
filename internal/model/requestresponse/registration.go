package requestresponse

// RegisterUserRequest : тело запроса на регистрацию пользователя
type RegisterUserRequest struct {
	Email      string `json:"email" validate:"required,email" example:"user@example.com"`
	FirstName  string `json:"firstName" validate:"required" example:"Ivan"`
	LastName   string `json:"lastName" validate:"required" example:"Petrov"`
	Password   string `json:"password" validate:"required" example:"P@ssw0rd123"`
	Address    string `json:"address" validate:"required" example:"Moscow"`
	Gender     string `json:"gender" validate:"required" example:"male"`
	UserAvatar string `json:"userAvatar,omitempty" example:"iVBORw0KGgoAAAANSUhEUg..."`
}

// CreateRoleRequest : тело запроса на создание роли
type CreateRoleRequest struct {
	RoleName string `json:"roleName" validate:"required" example:"Administrator"`
}

// AssignRoleToUserRequest : тело запроса на назначение роли пользователю
type AssignRoleToUserRequest struct {
	Email    string `json:"email" validate:"required,email" example:"user@example.com"`
	RoleName string `json:"roleName" validate:"required" example:"Administrator"`
}
