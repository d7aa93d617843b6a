// Package catalog exposes the location hierarchy used during onboarding
// and validates district/village selections against it.
package catalog

import (
	"errors"

	"leaguehub/internal/domain/locations"
)

var (
	// ErrUnknownDistrict indicates a district id outside the catalog.
	ErrUnknownDistrict = errors.New("unknown district")
	// ErrVillageRequired indicates a selection with no village chosen.
	ErrVillageRequired = errors.New("village selection required")
	// ErrUnknownVillage indicates a village id outside the catalog.
	ErrUnknownVillage = errors.New("unknown village")
	// ErrVillageOutsideDistrict indicates a village that exists but belongs
	// to a different district than the one selected.
	ErrVillageOutsideDistrict = errors.New("village not in selected district")
)

// Service answers location lookups. The catalog is static, so the service
// holds no state; it exists to give the app facade a uniform seam.
type Service struct{}

// NewService constructs the catalog service.
func NewService() *Service {
	return &Service{}
}

// States lists the supported states.
func (s *Service) States() []locations.State {
	return locations.States()
}

// Districts lists the districts of the supported state.
func (s *Service) Districts() []locations.District {
	return locations.Districts()
}

// VillagesIn lists the villages registered under a district. Districts
// without registered villages return an empty list, not an error.
func (s *Service) VillagesIn(districtID string) []locations.Village {
	return locations.VillagesIn(districtID)
}

// ValidateSelection checks an onboarding location choice. Both the district
// and the village must be chosen from the catalog, and the village must
// belong to the district.
func (s *Service) ValidateSelection(districtID, villageID string) error {
	if _, ok := locations.DistrictByID(districtID); !ok {
		return ErrUnknownDistrict
	}
	if villageID == "" {
		return ErrVillageRequired
	}
	v, ok := locations.VillageByID(villageID)
	if !ok {
		return ErrUnknownVillage
	}
	if v.DistrictID != districtID {
		return ErrVillageOutsideDistrict
	}
	return nil
}
