package catalog

import (
	"fmt"
	"os"
	"sort"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// Catalog is the loaded, validated role configuration.
type Catalog struct {
	Roles map[Role]RoleConfig
}

// rawRole mirrors one roles.yaml entry.
type rawRole struct {
	Managerial bool `yaml:"managerial"`
	PerStar    struct {
		Efficiency             float64 `yaml:"efficiency"`
		SalesBonusPct          float64 `yaml:"sales_bonus_pct"`
		TaxReductionPct        float64 `yaml:"tax_reduction_pct"`
		ExpenseReductionPct    float64 `yaml:"expense_reduction_pct"`
		ReputationBonus        float64 `yaml:"reputation_bonus"`
		StaffProductivityBonus float64 `yaml:"staff_productivity_bonus"`
	} `yaml:"per_star"`
	EnergyCost  float64 `yaml:"energy_cost"`
	MoodEffect  float64 `yaml:"mood_effect"`
	SkillGrowth float64 `yaml:"skill_growth"`
	SalaryMin   int64   `yaml:"salary_min"`
	SalaryMax   int64   `yaml:"salary_max"`
}

type rawCatalog struct {
	Roles map[string]rawRole `yaml:"roles"`
}

// Load reads and validates the role catalog. Any schema violation, unknown
// role name, or missing role is an error — the caller is expected to treat
// it as fatal.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read role catalog: %w", err)
	}

	// Validate the generic document against the schema first, so a
	// malformed table fails loudly instead of decoding to zero values.
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse role catalog: %w", err)
	}
	schema, err := jsonschema.CompileString("roles.schema.json", rolesSchema)
	if err != nil {
		return nil, fmt.Errorf("compile roles schema: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("role catalog %s: %w", path, err)
	}

	var raw rawCatalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode role catalog: %w", err)
	}

	c := &Catalog{Roles: make(map[Role]RoleConfig, len(raw.Roles))}
	for name, rr := range raw.Roles {
		role := Role(name)
		if !role.Valid() {
			return nil, fmt.Errorf("role catalog %s: unknown role %q", path, name)
		}
		if rr.SalaryMax < rr.SalaryMin {
			return nil, fmt.Errorf("role catalog %s: role %q salary band inverted", path, name)
		}
		c.Roles[role] = RoleConfig{
			Role:       role,
			Managerial: rr.Managerial,
			PerStar: Impact{
				Efficiency:             rr.PerStar.Efficiency,
				SalesBonusPct:          rr.PerStar.SalesBonusPct,
				TaxReductionPct:        rr.PerStar.TaxReductionPct,
				ExpenseReductionPct:    rr.PerStar.ExpenseReductionPct,
				ReputationBonus:        rr.PerStar.ReputationBonus,
				StaffProductivityBonus: rr.PerStar.StaffProductivityBonus,
			},
			EnergyCost:  rr.EnergyCost,
			MoodEffect:  rr.MoodEffect,
			SkillGrowth: rr.SkillGrowth,
			SalaryMin:   rr.SalaryMin,
			SalaryMax:   rr.SalaryMax,
		}
	}

	// Every enumerated role must be configured; a partial table would make
	// role lookups silently contribute nothing.
	var missing []string
	for _, role := range AllRoles {
		if _, ok := c.Roles[role]; !ok {
			missing = append(missing, string(role))
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("role catalog %s: missing roles %v", path, missing)
	}

	return c, nil
}

// Get returns the configuration for a role. The second return is false for
// unknown roles; callers treat that as a zero contribution, not an error.
func (c *Catalog) Get(role Role) (RoleConfig, bool) {
	rc, ok := c.Roles[role]
	return rc, ok
}
