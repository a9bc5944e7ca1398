package service_test

import (
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"github.com/samandr77/stroika/internal/entity"
	"github.com/samandr77/stroika/internal/service"
)

func TestValidateTitle(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	r.NoError(service.ValidateTitle("Заливка фундамента"))
	r.ErrorIs(service.ValidateTitle(""), entity.ErrValidationFailed)
	r.ErrorIs(service.ValidateTitle("   "), entity.ErrValidationFailed)
	r.ErrorIs(service.ValidateTitle(strings.Repeat("a", 501)), entity.ErrValidationFailed)
}

func TestValidateCreateProjectParams(t *testing.T) {
	t.Parallel()

	valid := service.CreateProjectParams{
		Name:          "ЖК Северный",
		StatusID:      uuid.Must(uuid.NewV4()),
		PriorityID:    uuid.Must(uuid.NewV4()),
		LeadID:        uuid.Must(uuid.NewV4()),
		ContractValue: "1500000.50",
	}

	tests := []struct {
		name    string
		mutate  func(p *service.CreateProjectParams)
		wantErr error
	}{
		{
			name:   "valid",
			mutate: func(*service.CreateProjectParams) {},
		},
		{
			name:    "empty name",
			mutate:  func(p *service.CreateProjectParams) { p.Name = " " },
			wantErr: entity.ErrValidationFailed,
		},
		{
			name:    "missing lead",
			mutate:  func(p *service.CreateProjectParams) { p.LeadID = uuid.Nil },
			wantErr: entity.ErrIncorrectRequestBody,
		},
		{
			name:    "unparseable contract value",
			mutate:  func(p *service.CreateProjectParams) { p.ContractValue = "дорого" },
			wantErr: entity.ErrValidationFailed,
		},
		{
			name:    "negative contract value",
			mutate:  func(p *service.CreateProjectParams) { p.ContractValue = "-1" },
			wantErr: entity.ErrValidationFailed,
		},
		{
			name: "end date before start date",
			mutate: func(p *service.CreateProjectParams) {
				start := time.Now()
				end := start.Add(-time.Hour)
				p.StartDate = &start
				p.EndDate = &end
			},
			wantErr: entity.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			params := valid
			tt.mutate(&params)

			contractValue, err := service.ValidateCreateProjectParams(params)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, "1500000.5", contractValue.String())
		})
	}
}

func TestValidateProvisionUserParams(t *testing.T) {
	t.Parallel()

	valid := service.ProvisionUserParams{
		Name:     "Иван Петров",
		Email:    "ivan@stroika.ru",
		Password: "secret-password",
		RoleID:   uuid.Must(uuid.NewV4()),
	}

	tests := []struct {
		name    string
		mutate  func(p *service.ProvisionUserParams)
		wantErr error
	}{
		{
			name:   "valid",
			mutate: func(*service.ProvisionUserParams) {},
		},
		{
			name:    "empty name",
			mutate:  func(p *service.ProvisionUserParams) { p.Name = "" },
			wantErr: entity.ErrValidationFailed,
		},
		{
			name:    "bad email",
			mutate:  func(p *service.ProvisionUserParams) { p.Email = "not-an-email" },
			wantErr: entity.ErrInvalidEmail,
		},
		{
			name:    "short password",
			mutate:  func(p *service.ProvisionUserParams) { p.Password = "1234567" },
			wantErr: entity.ErrValidationFailed,
		},
		{
			name:    "missing role",
			mutate:  func(p *service.ProvisionUserParams) { p.RoleID = uuid.Nil },
			wantErr: entity.ErrIncorrectRequestBody,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			params := valid
			tt.mutate(&params)

			err := service.ValidateProvisionUserParams(params)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestValidateFileName(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	r.NoError(service.ValidateFileName("смета.pdf"))
	r.ErrorIs(service.ValidateFileName(""), entity.ErrValidationFailed)
	r.ErrorIs(service.ValidateFileName("a/b.pdf"), entity.ErrValidationFailed)
	r.ErrorIs(service.ValidateFileName(`a\b.pdf`), entity.ErrValidationFailed)
}

func TestValidateDepartmentParams(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	r.NoError(service.ValidateDepartmentParams("site_a", "Участок А"))
	r.ErrorIs(service.ValidateDepartmentParams("", "Участок А"), entity.ErrValidationFailed)
	r.ErrorIs(service.ValidateDepartmentParams("site_a", "  "), entity.ErrValidationFailed)
}
