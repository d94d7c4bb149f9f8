package repositories

import (
	"errors"
	"fmt"
	"os"

	"lafamilia/models"

	"gopkg.in/yaml.v3"
)

type adPackagesFile struct {
	Packages []models.AdPackage `yaml:"packages"`
}

// LoadAdPackages reads the pricing tables from a YAML file. A missing file
// yields the built-in tables.
func LoadAdPackages(path string) ([]models.AdPackage, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultAdPackages(), nil
	}
	if err != nil {
		return nil, models.NewLoadError(path, err)
	}

	var file adPackagesFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, models.NewLoadError(path, err)
	}
	if len(file.Packages) == 0 {
		return nil, models.NewLoadError(path, errors.New("no packages defined"))
	}
	for _, p := range file.Packages {
		if p.Type == "" || p.BasePrice <= 0 || len(p.Runtime) == 0 || len(p.Details) == 0 {
			return nil, models.NewLoadError(path, fmt.Errorf("package %q is incomplete", p.Type))
		}
	}
	return file.Packages, nil
}

func DefaultAdPackages() []models.AdPackage {
	return []models.AdPackage{
		{
			Type:        "Banner Ad",
			Description: "Prominent display banner on category pages. High visibility.",
			Details: []models.AdDetailLevel{
				{Level: "Basic", Features: []string{"Small banner (300x100)", "Static image"}, PriceFactor: 1.0},
				{Level: "Standard", Features: []string{"Medium banner (600x150)", "Animated GIF/Small video", "Click tracking"}, PriceFactor: 1.5},
				{Level: "Premium", Features: []string{"Large banner (900x200)", "Interactive elements", "A/B testing", "Dedicated support"}, PriceFactor: 2.0},
			},
			Runtime: []models.AdRuntime{
				{Duration: "1 Week", Multiplier: 1.0},
				{Duration: "2 Weeks", Multiplier: 1.8},
				{Duration: "1 Month", Multiplier: 3.0},
				{Duration: "3 Months", Multiplier: 8.0},
			},
			BasePrice: 50,
		},
		{
			Type:        "Featured Product",
			Description: "Showcase your product directly on the La Familia Chambers homepage or top category sections.",
			Details: []models.AdDetailLevel{
				{Level: "Basic", Features: []string{"Single product highlight", "Standard product card"}, PriceFactor: 1.2},
				{Level: "Standard", Features: []string{"Multiple product highlights", "Enhanced product card", "Priority placement"}, PriceFactor: 1.8},
				{Level: "Premium", Features: []string{"Homepage carousel slot", "Customizable product display", "Dedicated landing page"}, PriceFactor: 2.5},
			},
			Runtime: []models.AdRuntime{
				{Duration: "1 Week", Multiplier: 1.0},
				{Duration: "2 Weeks", Multiplier: 1.9},
				{Duration: "1 Month", Multiplier: 3.5},
				{Duration: "3 Months", Multiplier: 9.5},
			},
			BasePrice: 80,
		},
		{
			Type:        "Sponsored Content",
			Description: "Integrate your brand story or product review into our blog or guides.",
			Details: []models.AdDetailLevel{
				{Level: "Basic", Features: []string{"Short article (500 words)", "1 image", "Basic SEO"}, PriceFactor: 1.5},
				{Level: "Standard", Features: []string{"Medium article (1000 words)", "3 images/1 video", "Advanced SEO", "Social media share"}, PriceFactor: 2.2},
				{Level: "Premium", Features: []string{"Long-form article (1500+ words)", "Rich media integration", "Full SEO audit", "Newsletter feature"}, PriceFactor: 3.0},
			},
			Runtime: []models.AdRuntime{
				{Duration: "1 Month", Multiplier: 1.0},
				{Duration: "3 Months", Multiplier: 2.8},
				{Duration: "6 Months", Multiplier: 5.0},
				{Duration: "1 Year", Multiplier: 9.0},
			},
			BasePrice: 150,
		},
	}
}
