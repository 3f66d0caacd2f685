package board

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/db47h/socgen"
)

// wire format, mapped to Desc after decoding.

type boardYAML struct {
	Name     string            `yaml:"name"`
	RefClock refClockYAML      `yaml:"ref_clock"`
	ResetPin string            `yaml:"reset_pin"`
	Pins     map[string]string `yaml:"pins"`
	PLL      pllYAML           `yaml:"pll"`
	Regions  []regionYAML      `yaml:"regions"`
	Ethernet *ethernetYAML     `yaml:"ethernet"`
}

type refClockYAML struct {
	Pin  string `yaml:"pin"`
	Freq uint64 `yaml:"freq"`
}

type pllYAML struct {
	Primitive string          `yaml:"primitive"`
	Family    string          `yaml:"family"`
	Outputs   []pllOutputYAML `yaml:"outputs"`
}

type pllOutputYAML struct {
	Domain string `yaml:"domain"`
	Mul    int    `yaml:"mul"`
	Div    int    `yaml:"div"`
	Phase  int64  `yaml:"phase_ps"`
}

type regionYAML struct {
	Name  string `yaml:"name"`
	Base  uint64 `yaml:"base"`
	Size  uint64 `yaml:"size"`
	Kind  string `yaml:"kind"`
	Clock string `yaml:"clock"`
}

type ethernetYAML struct {
	Freq   uint64     `yaml:"clock_freq"`
	Pins   []string   `yaml:"pins"`
	Region regionYAML `yaml:"region"`
}

// Load reads and parses the board description file at path.
//
func Load(path string) (*Desc, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "load board description")
	}
	d, err := Parse(b)
	return d, errors.Wrap(err, path)
}

// Parse parses a board description. Unknown fields are rejected: a typo in
// a board file must not silently drop a constraint.
//
func Parse(b []byte) (*Desc, error) {
	var dto boardYAML
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&dto); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "parse board description")
	}
	return mapDesc(&dto)
}

func mapDesc(dto *boardYAML) (*Desc, error) {
	if dto.Name == "" {
		return nil, errors.New("board description has no name")
	}
	if dto.RefClock.Pin == "" || dto.RefClock.Freq == 0 {
		return nil, errors.New("board description has no reference clock")
	}
	if len(dto.PLL.Outputs) == 0 {
		return nil, errors.New("board description has no clock outputs")
	}
	d := &Desc{
		Name:     dto.Name,
		RefClock: RefClock{Pin: dto.RefClock.Pin, Freq: socgen.Freq(dto.RefClock.Freq)},
		ResetPin: dto.ResetPin,
		Pins:     make(map[string]Pin, len(dto.Pins)),
		PLL: PLL{
			Primitive: dto.PLL.Primitive,
			Family:    dto.PLL.Family,
		},
	}
	for name, loc := range dto.Pins {
		d.Pins[name] = Pin{Name: name, Location: loc}
	}
	for _, o := range dto.PLL.Outputs {
		if o.Domain == "" {
			return nil, errors.New("clock output has no domain name")
		}
		d.PLL.Outputs = append(d.PLL.Outputs, PLLOutput{
			Domain: o.Domain,
			Mul:    o.Mul,
			Div:    o.Div,
			Phase:  socgen.Phase(o.Phase),
		})
	}
	for _, r := range dto.Regions {
		spec, err := mapRegion(r)
		if err != nil {
			return nil, err
		}
		d.Regions = append(d.Regions, spec)
	}
	if dto.Ethernet != nil {
		spec, err := mapRegion(dto.Ethernet.Region)
		if err != nil {
			return nil, err
		}
		d.Ethernet = &Ethernet{
			Freq:   socgen.Freq(dto.Ethernet.Freq),
			Pins:   dto.Ethernet.Pins,
			Region: spec,
		}
	}
	return d, nil
}

func mapRegion(r regionYAML) (socgen.RegionSpec, error) {
	var kind socgen.Kind
	switch r.Kind {
	case "memory", "":
		kind = socgen.Memory
	case "io":
		kind = socgen.IO
	default:
		return socgen.RegionSpec{}, errors.Errorf("region %q: unknown kind %q", r.Name, r.Kind)
	}
	return socgen.RegionSpec{
		Name:  r.Name,
		Base:  r.Base,
		Size:  r.Size,
		Kind:  kind,
		Clock: r.Clock,
	}, nil
}
