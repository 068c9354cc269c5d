package mkp

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"k8s.io/apimachinery/pkg/util/validation/field"
	"k8s.io/klog/v2"
	"sigs.k8s.io/yaml"
)

// Instance names a benchmark instance file, following the
// KP_p-<objectives>_n-<items>_ins-<number> convention.
type Instance string

const (
	P2N20Ins1  Instance = "KP_p-2_n-20_ins-1.json"
	P2N100Ins1 Instance = "KP_p-2_n-100_ins-1.json"
	P3N100Ins1 Instance = "KP_p-3_n-100_ins-1.json"
	P4N40Ins10 Instance = "KP_p-4_n-40_ins-10.json"
	P5N20Ins10 Instance = "KP_p-5_n-20_ins-10.json"
)

// Instances returns every known benchmark instance.
func Instances() []Instance {
	return []Instance{P2N20Ins1, P2N100Ins1, P3N100Ins1, P4N40Ins10, P5N20Ins10}
}

// Path returns the location of the instance inside dir.
func (i Instance) Path(dir string) string {
	return filepath.Join(dir, string(i))
}

// Name is the instance file name without its extension.
func (i Instance) Name() string {
	return strings.TrimSuffix(string(i), filepath.Ext(string(i)))
}

// document is the on-disk record. Pointers and nil slices tell a missing
// field apart from a zero value.
type document struct {
	NumberOfObjectives *int       `json:"number_of_obj"`
	NumberOfItems      *int       `json:"number_of_items"`
	Capacity           *uint64    `json:"capacity"`
	Profit             [][]uint64 `json:"profit"`
	Weight             []uint64   `json:"weight"`
}

// LoadInstance reads a named benchmark instance from dir.
func LoadInstance(dir string, inst Instance) (*MKP, error) {
	p, err := LoadFile(inst.Path(dir))
	if err != nil {
		return nil, err
	}
	p.name = inst.Name()
	return p, nil
}

// LoadFile reads an instance from a JSON (or YAML) file.
func LoadFile(path string) (*MKP, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading knapsack instance: %w", err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	p, err := Parse(name, data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	klog.V(4).InfoS("Loaded knapsack instance", "path", path,
		"objectives", p.NumberOfObjectives, "items", p.NumberOfItems, "capacity", p.Capacity)
	return p, nil
}

// Parse decodes an instance record. Missing fields, malformed values and
// tables whose shape disagrees with the declared counts are errors.
func Parse(name string, data []byte) (*MKP, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding knapsack instance: %w", err)
	}

	var errs field.ErrorList
	if doc.NumberOfObjectives == nil {
		errs = append(errs, field.Required(field.NewPath("number_of_obj"), ""))
	}
	if doc.NumberOfItems == nil {
		errs = append(errs, field.Required(field.NewPath("number_of_items"), ""))
	}
	if doc.Capacity == nil {
		errs = append(errs, field.Required(field.NewPath("capacity"), ""))
	}
	if doc.Profit == nil {
		errs = append(errs, field.Required(field.NewPath("profit"), ""))
	}
	if doc.Weight == nil {
		errs = append(errs, field.Required(field.NewPath("weight"), ""))
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid knapsack instance %q: %w", name, errs.ToAggregate())
	}

	p := &MKP{
		name:               name,
		NumberOfObjectives: *doc.NumberOfObjectives,
		NumberOfItems:      *doc.NumberOfItems,
		Capacity:           *doc.Capacity,
		Profit:             doc.Profit,
		Weight:             doc.Weight,
	}
	if errs := p.validate(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid knapsack instance %q: %w", name, errs.ToAggregate())
	}
	return p, nil
}
