package mappers

import (
	"gorm.io/datatypes"

	"github.com/beaconhq/beacon/internal/domain/intake"
	"github.com/beaconhq/beacon/internal/infrastructure/persistence/models"
)

func IntakeToModel(i *intake.Intake) *models.IntakeModel {
	return &models.IntakeModel{
		ID:        i.ID(),
		CompanyID: i.CompanyID(),
		RomaData:  datatypes.JSON(i.RomaData()),
		CreatedAt: i.CreatedAt(),
		UpdatedAt: i.UpdatedAt(),
	}
}

func IntakeToDomain(m *models.IntakeModel) *intake.Intake {
	return intake.ReconstructIntake(m.ID, m.CompanyID, []byte(m.RomaData), m.CreatedAt, m.UpdatedAt)
}
