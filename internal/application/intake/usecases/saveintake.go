package usecases

import (
	"context"
	"fmt"

	"github.com/beaconhq/beacon/internal/domain/company"
	"github.com/beaconhq/beacon/internal/domain/intake"
	apperrors "github.com/beaconhq/beacon/internal/shared/errors"
	"github.com/beaconhq/beacon/internal/shared/logger"
)

type SaveIntakeCommand struct {
	OrganizationID string
	CompanyID      string
	RomaData       []byte
}

type SaveIntakeResult struct {
	Intake  *intake.Intake
	Created bool
}

// SaveIntakeUseCase stores the raw capture document for a company. The
// document is kept verbatim; reconciliation happens in a separate ingest
// step so a save can never corrupt materialized data.
type SaveIntakeUseCase struct {
	companyRepo company.Repository
	intakeRepo  intake.Repository
	logger      logger.Interface
}

func NewSaveIntakeUseCase(companyRepo company.Repository, intakeRepo intake.Repository, logger logger.Interface) *SaveIntakeUseCase {
	return &SaveIntakeUseCase{
		companyRepo: companyRepo,
		intakeRepo:  intakeRepo,
		logger:      logger,
	}
}

func (uc *SaveIntakeUseCase) Execute(ctx context.Context, cmd SaveIntakeCommand) (*SaveIntakeResult, error) {
	c, err := uc.companyRepo.GetByID(ctx, cmd.OrganizationID, cmd.CompanyID)
	if err != nil {
		return nil, err
	}

	existing, err := uc.intakeRepo.GetByCompanyID(ctx, c.ID())
	if err != nil && !apperrors.IsNotFound(err) {
		uc.logger.Errorw("failed to load intake", "error", err, "company_id", c.ID())
		return nil, fmt.Errorf("failed to load intake: %w", err)
	}

	created := false
	var in *intake.Intake
	if existing != nil {
		if err := existing.Replace(cmd.RomaData); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		in = existing
	} else {
		in, err = intake.NewIntake(c.ID(), cmd.RomaData)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		created = true
	}

	if err := uc.intakeRepo.Upsert(ctx, in); err != nil {
		uc.logger.Errorw("failed to save intake", "error", err, "company_id", c.ID())
		return nil, fmt.Errorf("failed to save intake: %w", err)
	}

	uc.logger.Infow("intake saved", "company_id", c.ID(), "created", created, "bytes", len(cmd.RomaData))

	return &SaveIntakeResult{Intake: in, Created: created}, nil
}
