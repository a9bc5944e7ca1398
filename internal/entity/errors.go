package entity

import "errors"

var (
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrNotFound             = errors.New("not found")
	ErrAlreadyExists        = errors.New("already exists")
	ErrIncorrectRequestBody = errors.New("incorrect request body")
	ErrValidationFailed     = errors.New("validation failed")
	ErrUserInactive         = errors.New("user is deactivated")
	ErrUserHasDependencies  = errors.New("user has dependent records")
	ErrDuplicateEmail       = errors.New("email already exists")
	ErrInvalidEmail         = errors.New("invalid email format")
	ErrPrimaryAssignment    = errors.New("user already has an active primary assignment")
	ErrDepartmentCycle      = errors.New("department parent graph contains a cycle")
	ErrIdentifierExhausted  = errors.New("identifier namespace exhausted")
	ErrProjectArchived      = errors.New("project is archived")
)

const (
	ErrMsgInternal     = "Внутренняя ошибка сервера"
	ErrMsgBadRequest   = "Некорректный запрос"
	ErrMsgValidation   = "Ошибка валидации"
	ErrMsgUnauthorized = "Требуется аутентификация"
	ErrMsgForbidden    = "Недостаточно прав"
	ErrMsgNotFound     = "Запись не найдена"
	ErrMsgConflict     = "Запись уже существует"
	ErrMsgEmailTaken   = "Email уже занят"
)
