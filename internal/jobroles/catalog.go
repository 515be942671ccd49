package jobroles

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

var validate = validator.New()

type catalogFile struct {
	Roles []JobRole `yaml:"roles"`
}

// DefaultCatalog returns the embedded seed roles.
func DefaultCatalog() ([]JobRole, error) {
	return ParseCatalog(defaultCatalog)
}

// LoadCatalog reads roles from path, or the embedded seed when path is empty.
func LoadCatalog(path string) ([]JobRole, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultCatalog()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read job roles %s: %w", path, err)
	}
	return ParseCatalog(raw)
}

// ParseCatalog decodes and validates a YAML catalog. Every role needs a
// unique title and at least one required skill.
func ParseCatalog(raw []byte) ([]JobRole, error) {
	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse job roles: %w", err)
	}
	if len(file.Roles) == 0 {
		return nil, fmt.Errorf("job roles: catalog is empty")
	}
	seen := make(map[string]struct{}, len(file.Roles))
	roles := make([]JobRole, 0, len(file.Roles))
	for i, role := range file.Roles {
		role.Title = strings.TrimSpace(role.Title)
		if err := validate.Struct(role); err != nil {
			return nil, fmt.Errorf("job roles[%d] %q: %w", i, role.Title, err)
		}
		if _, dup := seen[role.Title]; dup {
			return nil, fmt.Errorf("job roles: duplicate title %q", role.Title)
		}
		seen[role.Title] = struct{}{}
		role.ID = RoleID(role.Title)
		roles = append(roles, role)
	}
	return roles, nil
}
