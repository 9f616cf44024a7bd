package intake

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/beaconhq/beacon/internal/shared/biztime"
)

// Intake is the stored ROMA document, owned 1:1 by a company. The raw JSON
// is kept verbatim; re-pasting replaces it wholesale.
type Intake struct {
	id        string
	companyID string
	romaData  []byte
	createdAt time.Time
	updatedAt time.Time
}

func NewIntake(companyID string, romaData []byte) (*Intake, error) {
	if companyID == "" {
		return nil, fmt.Errorf("company ID is required")
	}
	if _, err := ParseDocument(romaData); err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	return &Intake{
		id:        uuid.NewString(),
		companyID: companyID,
		romaData:  romaData,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Replace swaps in a newly pasted document.
func (i *Intake) Replace(romaData []byte) error {
	if _, err := ParseDocument(romaData); err != nil {
		return err
	}
	i.romaData = romaData
	i.updatedAt = biztime.NowUTC()
	return nil
}

// Document parses the stored JSON.
func (i *Intake) Document() (Document, error) {
	return ParseDocument(i.romaData)
}

func (i *Intake) ID() string           { return i.id }
func (i *Intake) CompanyID() string    { return i.companyID }
func (i *Intake) RomaData() []byte     { return i.romaData }
func (i *Intake) CreatedAt() time.Time { return i.createdAt }
func (i *Intake) UpdatedAt() time.Time { return i.updatedAt }

// ReconstructIntake rehydrates an intake from persistence.
func ReconstructIntake(id, companyID string, romaData []byte, createdAt, updatedAt time.Time) *Intake {
	return &Intake{
		id:        id,
		companyID: companyID,
		romaData:  romaData,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}
