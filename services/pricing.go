package services

import (
	"encoding/json"
	"net/url"

	"lafamilia/models"

	"go.uber.org/zap"
)

type PricingService struct {
	packages []models.AdPackage
	log      *zap.Logger
}

func NewPricingService(packages []models.AdPackage, log *zap.Logger) *PricingService {
	return &PricingService{packages: packages, log: log}
}

func (s *PricingService) Packages() []models.AdPackage {
	return s.packages
}

func (s *PricingService) Package(adType string) (models.AdPackage, error) {
	for _, p := range s.packages {
		if p.Type == adType {
			return p, nil
		}
	}
	return models.AdPackage{}, models.NewNotFoundError("ad package", adType)
}

// Quote is basePrice × runtime multiplier × detail price factor. An unknown
// duration or level yields 0, which callers treat as an invalid selection.
func (s *PricingService) Quote(pkg models.AdPackage, duration, level string) float64 {
	var runtime *models.AdRuntime
	for i := range pkg.Runtime {
		if pkg.Runtime[i].Duration == duration {
			runtime = &pkg.Runtime[i]
			break
		}
	}
	var detail *models.AdDetailLevel
	for i := range pkg.Details {
		if pkg.Details[i].Level == level {
			detail = &pkg.Details[i]
			break
		}
	}

	if runtime == nil || detail == nil {
		s.log.Warn("invalid runtime or detail level selected for price calculation",
			zap.String("type", pkg.Type),
			zap.String("runtime", duration),
			zap.String("detailsLevel", level),
		)
		return 0
	}
	return pkg.BasePrice * runtime.Multiplier * detail.PriceFactor
}

// DecodePackageDescriptor parses the URL-encoded JSON package handed over
// from the advertise listing.
func DecodePackageDescriptor(raw string) (models.AdPackage, error) {
	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		decoded = raw
	}

	var pkg models.AdPackage
	if err := json.Unmarshal([]byte(decoded), &pkg); err != nil {
		return models.AdPackage{}, models.NewValidationError("Could not load ad package details. Please select a package from the Advertise page.")
	}
	if pkg.Type == "" || len(pkg.Runtime) == 0 || len(pkg.Details) == 0 {
		return models.AdPackage{}, models.NewValidationError("Ad package descriptor is missing its pricing tables.")
	}
	return pkg, nil
}
