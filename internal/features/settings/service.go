package settings

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// CompanySettings is the fixed shape exposed to the admin UI.
type CompanySettings struct {
	Name        string `json:"name"`
	Logo        string `json:"logo"`
	Description string `json:"description"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
}

func defaultSettings() CompanySettings {
	return CompanySettings{
		Name:        "FrameShop",
		Logo:        "F",
		Description: "Premium photo frames and art frames",
		Email:       "contact@frameshop.com",
		Phone:       "+91 98765 43210",
		Address:     "123 Frame Street, Art District, Mumbai 400001",
	}
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type SettingsService interface {
	GetSettings(ctx context.Context) (*CompanySettings, error)
	UpdateSettings(ctx context.Context, s CompanySettings) (*CompanySettings, error)
	ResetSettings(ctx context.Context) (*CompanySettings, error)
}

type SettingsServiceImpl struct {
	Repo SettingsRepository
}

func NewSettingsService(repo SettingsRepository) SettingsService {
	return &SettingsServiceImpl{Repo: repo}
}

func (s *SettingsServiceImpl) GetSettings(ctx context.Context) (*CompanySettings, error) {
	stored, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	// Defaults overlaid with whatever is stored
	settings := defaultSettings()
	if v, ok := stored["company_name"]; ok {
		settings.Name = v
	}
	if v, ok := stored["company_logo"]; ok {
		settings.Logo = v
	}
	if v, ok := stored["company_description"]; ok {
		settings.Description = v
	}
	if v, ok := stored["company_email"]; ok {
		settings.Email = v
	}
	if v, ok := stored["company_phone"]; ok {
		settings.Phone = v
	}
	if v, ok := stored["company_address"]; ok {
		settings.Address = v
	}
	return &settings, nil
}

func (s *SettingsServiceImpl) UpdateSettings(ctx context.Context, in CompanySettings) (*CompanySettings, error) {
	var missing []string
	if in.Name == "" {
		missing = append(missing, "name")
	}
	if in.Description == "" {
		missing = append(missing, "description")
	}
	if in.Email == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}
	if !emailPattern.MatchString(in.Email) {
		return nil, fmt.Errorf("invalid email format")
	}

	if in.Logo == "" {
		in.Logo = "F"
	}

	err := s.Repo.UpdateMany(ctx, map[string]string{
		"company_name":        in.Name,
		"company_logo":        in.Logo,
		"company_description": in.Description,
		"company_email":       in.Email,
		"company_phone":       in.Phone,
		"company_address":     in.Address,
	})
	if err != nil {
		return nil, err
	}
	return &in, nil
}

func (s *SettingsServiceImpl) ResetSettings(ctx context.Context) (*CompanySettings, error) {
	defaults := defaultSettings()
	err := s.Repo.UpdateMany(ctx, map[string]string{
		"company_name":        defaults.Name,
		"company_logo":        defaults.Logo,
		"company_description": defaults.Description,
		"company_email":       defaults.Email,
		"company_phone":       defaults.Phone,
		"company_address":     defaults.Address,
	})
	if err != nil {
		return nil, err
	}
	return &defaults, nil
}
