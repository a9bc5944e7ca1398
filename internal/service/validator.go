package service

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/samandr77/stroika/internal/entity"
	"github.com/shopspring/decimal"
)

const (
	maxTitleLen    = 500
	minPasswordLen = 8
)

func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: empty title", entity.ErrValidationFailed)
	}

	if len(title) > maxTitleLen {
		return fmt.Errorf("%w: title too long", entity.ErrValidationFailed)
	}

	return nil
}

func ValidateCreateTaskParams(params CreateTaskParams) error {
	err := ValidateTitle(params.Title)
	if err != nil {
		return err
	}

	if params.StatusID.IsNil() || params.PriorityID.IsNil() {
		return fmt.Errorf("%w: status and priority are required", entity.ErrIncorrectRequestBody)
	}

	for _, sub := range params.Subtasks {
		err = ValidateTitle(sub.Title)
		if err != nil {
			return err
		}
	}

	return nil
}

func ValidateCreateProjectParams(params CreateProjectParams) (decimal.Decimal, error) {
	err := ValidateTitle(params.Name)
	if err != nil {
		return decimal.Decimal{}, err
	}

	if params.StatusID.IsNil() || params.PriorityID.IsNil() || params.LeadID.IsNil() {
		return decimal.Decimal{}, fmt.Errorf("%w: status, priority and lead are required", entity.ErrIncorrectRequestBody)
	}

	contractValue, err := decimal.NewFromString(params.ContractValue)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: contract value: %s", entity.ErrValidationFailed, err)
	}

	if contractValue.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: negative contract value", entity.ErrValidationFailed)
	}

	if params.StartDate != nil && params.EndDate != nil && params.EndDate.Before(*params.StartDate) {
		return decimal.Decimal{}, fmt.Errorf("%w: end date before start date", entity.ErrValidationFailed)
	}

	return contractValue, nil
}

func ValidateProvisionUserParams(params ProvisionUserParams) error {
	if strings.TrimSpace(params.Name) == "" {
		return fmt.Errorf("%w: empty name", entity.ErrValidationFailed)
	}

	_, err := mail.ParseAddress(params.Email)
	if err != nil {
		return fmt.Errorf("%w: %s", entity.ErrInvalidEmail, params.Email)
	}

	if len(params.Password) < minPasswordLen {
		return fmt.Errorf("%w: password shorter than %d characters", entity.ErrValidationFailed, minPasswordLen)
	}

	if params.RoleID.IsNil() {
		return fmt.Errorf("%w: role is required", entity.ErrIncorrectRequestBody)
	}

	return nil
}

func ValidateDepartmentParams(name, displayName string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(displayName) == "" {
		return fmt.Errorf("%w: name and display name are required", entity.ErrValidationFailed)
	}

	return nil
}

func ValidateFileName(fileName string) error {
	if strings.TrimSpace(fileName) == "" {
		return fmt.Errorf("%w: empty file name", entity.ErrValidationFailed)
	}

	if strings.ContainsAny(fileName, "/\\") {
		return fmt.Errorf("%w: file name contains path separators", entity.ErrValidationFailed)
	}

	return nil
}
