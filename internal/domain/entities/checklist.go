package entities

// ChecklistSection identifies one of the eight fixed equipment categories
// inspected during a preventive-maintenance visit.
type ChecklistSection string

const (
	SectionCompressors        ChecklistSection = "compressors"
	SectionCondenser          ChecklistSection = "condenser"
	SectionEvaporator         ChecklistSection = "evaporator"
	SectionRefrigerantCircuit ChecklistSection = "refrigerantCircuit"
	SectionFanFanDrives       ChecklistSection = "fanFanDrives"
	SectionHeatingNaturalGas  ChecklistSection = "heatingNaturalGas"
	SectionOther              ChecklistSection = "other"
	SectionElectricalControls ChecklistSection = "electricalControls"
)

// ChecklistSections lists every section in display order. Iteration over the
// checklist goes through this slice, never through map keys.
var ChecklistSections = []ChecklistSection{
	SectionCompressors,
	SectionCondenser,
	SectionEvaporator,
	SectionRefrigerantCircuit,
	SectionFanFanDrives,
	SectionHeatingNaturalGas,
	SectionOther,
	SectionElectricalControls,
}

// SectionTitles maps sections to the headings used on the printed form.
var SectionTitles = map[ChecklistSection]string{
	SectionCompressors:        "Compressors",
	SectionCondenser:          "Condenser",
	SectionEvaporator:         "Evaporator",
	SectionRefrigerantCircuit: "Refrigerant Circuit",
	SectionFanFanDrives:       "Fan / Fan Drives",
	SectionHeatingNaturalGas:  "Heating / Natural Gas",
	SectionOther:              "Other",
	SectionElectricalControls: "Electrical Controls",
}

// ChecklistItem is one inspection line. The label comes from the fixed
// template; only the two booleans are mutable.
type ChecklistItem struct {
	Label             string `json:"label"`
	OK                bool   `json:"ok"`
	RequiresAttention bool   `json:"requiresAttention"`
}

// Checklist is the fixed mapping from the eight sections to their ordered
// inspection items. Every field is always present and non-empty; order is
// preserved from the template.
type Checklist struct {
	Compressors        []ChecklistItem `json:"compressors"`
	Condenser          []ChecklistItem `json:"condenser"`
	Evaporator         []ChecklistItem `json:"evaporator"`
	RefrigerantCircuit []ChecklistItem `json:"refrigerantCircuit"`
	FanFanDrives       []ChecklistItem `json:"fanFanDrives"`
	HeatingNaturalGas  []ChecklistItem `json:"heatingNaturalGas"`
	Other              []ChecklistItem `json:"other"`
	ElectricalControls []ChecklistItem `json:"electricalControls"`
}

// checklistTemplate is the seed for every new work order. Labels match the
// paper PMA form.
var checklistTemplate = map[ChecklistSection][]string{
	SectionCompressors: {
		"Condition & operation",
		"Voltage & amperage",
		"Oil heater operation",
		"Unloaders & staging",
	},
	SectionCondenser: {
		"Coil condition",
		"Contactor & disconnect",
		"Fan bearings",
	},
	SectionEvaporator: {
		"Coil condition",
		"Condensate pan",
		"Condensate traps",
		"Condition of insulation",
		"Operation of controls",
	},
	SectionRefrigerantCircuit: {
		"Oil & refrigerant charge",
		"Operation of controls",
		"Condition of insulation",
	},
	SectionFanFanDrives: {
		"Lubricate fan & motor bearings",
		"Drive & pully alignment",
		"Condition of motor",
		"Fan wheel housing",
	},
	SectionHeatingNaturalGas: {
		"Burner condition",
		"Heat exchanger condition",
		"Sheet metal flue piping",
		"Air adjustment & controls",
	},
	SectionOther: {
		"Thermostat operation",
		"Operation of pressure switch",
		"Starter & contact pts.",
		"Check & adjust belts",
	},
	SectionElectricalControls: {
		"Starter & contact pts.",
		"Operation of pressure switch",
		"Thermostat operation",
		"Damper motor",
		"Relay & contactor operation",
	},
}

// NewChecklist returns a checklist seeded from the template: every section
// present, both booleans false on every item.
func NewChecklist() Checklist {
	var c Checklist
	for _, section := range ChecklistSections {
		items := make([]ChecklistItem, 0, len(checklistTemplate[section]))
		for _, label := range checklistTemplate[section] {
			items = append(items, ChecklistItem{Label: label})
		}
		*c.section(section) = items
	}
	return c
}

// Section returns the ordered items of one section, or nil for an unknown
// section name.
func (c *Checklist) Section(section ChecklistSection) []ChecklistItem {
	if s := c.section(section); s != nil {
		return *s
	}
	return nil
}

func (c *Checklist) section(section ChecklistSection) *[]ChecklistItem {
	switch section {
	case SectionCompressors:
		return &c.Compressors
	case SectionCondenser:
		return &c.Condenser
	case SectionEvaporator:
		return &c.Evaporator
	case SectionRefrigerantCircuit:
		return &c.RefrigerantCircuit
	case SectionFanFanDrives:
		return &c.FanFanDrives
	case SectionHeatingNaturalGas:
		return &c.HeatingNaturalGas
	case SectionOther:
		return &c.Other
	case SectionElectricalControls:
		return &c.ElectricalControls
	default:
		return nil
	}
}

// ToggleOK flips the ok flag of one item. RequiresAttention is untouched.
func (c *Checklist) ToggleOK(section ChecklistSection, index int) error {
	item, err := c.item(section, index)
	if err != nil {
		return err
	}
	item.OK = !item.OK
	return nil
}

// ToggleRequiresAttention flips the requires-attention flag of one item. The
// two flags are independent; both may be set at once.
func (c *Checklist) ToggleRequiresAttention(section ChecklistSection, index int) error {
	item, err := c.item(section, index)
	if err != nil {
		return err
	}
	item.RequiresAttention = !item.RequiresAttention
	return nil
}

func (c *Checklist) item(section ChecklistSection, index int) (*ChecklistItem, error) {
	s := c.section(section)
	if s == nil {
		return nil, ErrUnknownChecklistSection
	}
	if index < 0 || index >= len(*s) {
		return nil, ErrChecklistIndexOutOfRange
	}
	return &(*s)[index], nil
}

// Totals counts items marked ok and items flagged for attention across every
// section. Shown on the detail view as a visit summary.
func (c *Checklist) Totals() (ok, attention int) {
	for _, section := range ChecklistSections {
		for _, item := range c.Section(section) {
			if item.OK {
				ok++
			}
			if item.RequiresAttention {
				attention++
			}
		}
	}
	return ok, attention
}
