// Package seeder loads plant reference data (areas, operations, scrap
// taxonomy, workers, orders) from a YAML file into the database.
package seeder

import (
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/heartmarshall/laborcard-backend/internal/domain"
)

// Plant is the layout of a reference data file.
type Plant struct {
	Areas      []Area      `yaml:"areas"`
	ScrapTypes []ScrapType `yaml:"scrap_types"`
	Workers    []Worker    `yaml:"workers"`
	Orders     []Order     `yaml:"orders"`
}

type Area struct {
	Code       string      `yaml:"code"`
	Name       string      `yaml:"name"`
	Inactive   bool        `yaml:"inactive"`
	Operations []Operation `yaml:"operations"`
}

type Operation struct {
	Code     string    `yaml:"code"`
	Name     string    `yaml:"name"`
	Inactive bool      `yaml:"inactive"`
	Subtypes []Subtype `yaml:"subtypes"`
}

type Subtype struct {
	Code     string `yaml:"code"`
	Name     string `yaml:"name"`
	Inactive bool   `yaml:"inactive"`
}

type ScrapType struct {
	Code        string `yaml:"code"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Inactive    bool   `yaml:"inactive"`
}

type Worker struct {
	PersonalID string `yaml:"personal_id"`
	FirstName  string `yaml:"first_name"`
	LastName   string `yaml:"last_name"`
	Inactive   bool   `yaml:"inactive"`
}

type Order struct {
	Number     string `yaml:"order_number"`
	ItemNumber string `yaml:"item_number"`
	PlannedQty int    `yaml:"planned_qty"`
	Status     string `yaml:"status"`
}

// LoadPlant reads and validates a reference data file.
func LoadPlant(path string) (*Plant, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("seeder: plant file %s: %w", path, err)
	}

	var p Plant
	if err := cleanenv.ReadConfig(path, &p); err != nil {
		return nil, fmt.Errorf("seeder: read %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks required fields and code uniqueness within each level.
// Field paths follow the file layout, e.g. "areas[1].operations[0].code".
func (p *Plant) Validate() error {
	var errs []domain.FieldError
	add := func(field, msg string) {
		errs = append(errs, domain.FieldError{Field: field, Message: msg})
	}
	required := func(field, value string) {
		if strings.TrimSpace(value) == "" {
			add(field, "required")
		}
	}
	unique := func(seen map[string]bool, field, value string) {
		if strings.TrimSpace(value) == "" {
			return
		}
		if seen[value] {
			add(field, "duplicate")
		}
		seen[value] = true
	}

	areaCodes := make(map[string]bool)
	for i, a := range p.Areas {
		path := fmt.Sprintf("areas[%d]", i)
		required(path+".code", a.Code)
		required(path+".name", a.Name)
		unique(areaCodes, path+".code", a.Code)

		opCodes := make(map[string]bool)
		for j, op := range a.Operations {
			opPath := fmt.Sprintf("%s.operations[%d]", path, j)
			required(opPath+".code", op.Code)
			required(opPath+".name", op.Name)
			unique(opCodes, opPath+".code", op.Code)

			subCodes := make(map[string]bool)
			for k, sub := range op.Subtypes {
				subPath := fmt.Sprintf("%s.subtypes[%d]", opPath, k)
				required(subPath+".code", sub.Code)
				required(subPath+".name", sub.Name)
				unique(subCodes, subPath+".code", sub.Code)
			}
		}
	}

	scrapCodes := make(map[string]bool)
	for i, st := range p.ScrapTypes {
		path := fmt.Sprintf("scrap_types[%d]", i)
		required(path+".code", st.Code)
		required(path+".name", st.Name)
		unique(scrapCodes, path+".code", st.Code)
	}

	personalIDs := make(map[string]bool)
	for i, w := range p.Workers {
		path := fmt.Sprintf("workers[%d]", i)
		required(path+".personal_id", w.PersonalID)
		required(path+".first_name", w.FirstName)
		required(path+".last_name", w.LastName)
		unique(personalIDs, path+".personal_id", w.PersonalID)
	}

	orderNumbers := make(map[string]bool)
	for i, o := range p.Orders {
		path := fmt.Sprintf("orders[%d]", i)
		required(path+".order_number", o.Number)
		unique(orderNumbers, path+".order_number", o.Number)
		if o.PlannedQty < 0 {
			add(path+".planned_qty", "must not be negative")
		}
		if o.Status != "" && !domain.OrderStatus(o.Status).IsValid() {
			add(path+".status", "must be active, completed or cancelled")
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
