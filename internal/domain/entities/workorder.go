package entities

import (
	"errors"
	"time"
)

var (
	ErrUnknownChecklistSection  = errors.New("unknown checklist section")
	ErrChecklistIndexOutOfRange = errors.New("checklist item index out of range")
	ErrEntryIndexOutOfRange     = errors.New("entry index out of range")
	ErrInvalidOverallCondition  = errors.New("invalid overall condition")
	ErrInvalidIndoorAirQuality  = errors.New("invalid indoor air quality finding")
)

// OverallCondition rates the equipment at the end of the visit.
type OverallCondition string

const (
	ConditionPoor OverallCondition = "Poor"
	ConditionFair OverallCondition = "Fair"
	ConditionGood OverallCondition = "Good"
)

// IndoorAirQuality is one of the three fixed findings from the paper form,
// or empty when none applies. The form presents them as checkboxes but at
// most one may be active.
type IndoorAirQuality string

const (
	IAQNone             IndoorAirQuality = ""
	IAQGrowthObserved   IndoorAirQuality = "Presence of suspected biological growth observed"
	IAQCustomerNotified IndoorAirQuality = "Customer notified that suspected biological growth was observed"
	IAQNoGrowthObserved IndoorAirQuality = "No suspected biological growth observed during PM"
)

// DefaultPMAType is the service-agreement label pre-filled on new drafts.
const DefaultPMAType = "Preventive Maintenance Agreement"

// SiteConditions records rooftop/site observations made during the visit.
type SiteConditions struct {
	GarbageRemoval     bool   `json:"garbageRemoval"`
	RoofCondition      bool   `json:"roofCondition"`
	GuardRailsRequired bool   `json:"guardRailsRequired"`
	Other              string `json:"other"`
}

// SafetyInfo records the safety outcome of the visit.
type SafetyInfo struct {
	SafetyConsidered        bool `json:"safetyConsidered"`
	RedTagIssued            bool `json:"redTagIssued"`
	RefrigerantLeakDetected bool `json:"refrigerantLeakDetected"`
}

// MaterialEntry is one materials/miscellaneous line. Append/remove only.
type MaterialEntry struct {
	Source      string `json:"source"`
	Qty         int    `json:"qty"`
	Description string `json:"description"`
	PO          string `json:"po"`
}

// HoursEntry is one technician hours line. Append/remove only.
type HoursEntry struct {
	Date    string `json:"date"`
	Hours   int    `json:"hours"`
	OT      int    `json:"ot"`
	RT      int    `json:"rt"`
	Parking int    `json:"parking"`
	Tech    string `json:"tech"`
	Initial string `json:"initial"`
}

// WorkOrder is one record of a single preventive-maintenance visit.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (owner_id-index): owner_id, range key created_at
//
// ID, OwnerID and the timestamps are assigned by the persistence adapter;
// everything else is filled through the form. Signatures are opaque strings
// (data URI or an external reference) and are never interpreted here.
type WorkOrder struct {
	ID               string           `json:"id"`
	WorkOrderID      string           `json:"workOrderId"`
	CustomerID       string           `json:"customerId"`
	CustomerName     string           `json:"customerName"`
	Address          string           `json:"address"`
	PMAType          string           `json:"pmaType"`
	Date             string           `json:"date"`
	IndoorAirQuality IndoorAirQuality `json:"indoorAirQuality"`
	Checklist        Checklist        `json:"checklist"`
	OverallCondition OverallCondition `json:"overallCondition"`
	SiteConditions   SiteConditions   `json:"siteConditions"`
	SafetyInfo       SafetyInfo       `json:"safetyInfo"`

	Comments                   string `json:"comments"`
	Recommendations            string `json:"recommendations"`
	ImmediateAttentionRequired bool   `json:"immediateAttentionRequired"`
	RecommendationToFollow     bool   `json:"recommendationToFollow"`

	Materials []MaterialEntry `json:"materials"`
	Hours     []HoursEntry    `json:"hours"`

	AuthorizedBy        string `json:"authorizedBy"`
	SpokeWith           string `json:"spokeWith"`
	PO                  string `json:"po"`
	CustomerSignature   string `json:"customerSignature"`
	TechnicianSignature string `json:"technicianSignature"`

	OwnerID   string    `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewDraft returns a fully-populated default work order so the form never
// operates on partial data: template-seeded checklist, today's date, the
// standard PMA type and air-quality finding, empty collections.
func NewDraft(now time.Time) WorkOrder {
	return WorkOrder{
		PMAType:          DefaultPMAType,
		Date:             now.Format("2006-01-02"),
		IndoorAirQuality: IAQNoGrowthObserved,
		Checklist:        NewChecklist(),
		OverallCondition: ConditionFair,
		Materials:        []MaterialEntry{},
		Hours:            []HoursEntry{},
	}
}

// SetOverallCondition sets the condition rating. Exactly one of the three
// values is active at any time.
func (w *WorkOrder) SetOverallCondition(c OverallCondition) error {
	switch c {
	case ConditionPoor, ConditionFair, ConditionGood:
		w.OverallCondition = c
		return nil
	default:
		return ErrInvalidOverallCondition
	}
}

// SetIndoorAirQuality sets the air-quality finding. Selecting a finding
// clears any previous one; IAQNone clears the selection entirely.
func (w *WorkOrder) SetIndoorAirQuality(q IndoorAirQuality) error {
	switch q {
	case IAQNone, IAQGrowthObserved, IAQCustomerNotified, IAQNoGrowthObserved:
		w.IndoorAirQuality = q
		return nil
	default:
		return ErrInvalidIndoorAirQuality
	}
}

// AppendMaterial adds one materials line at the end.
func (w *WorkOrder) AppendMaterial(m MaterialEntry) {
	w.Materials = append(w.Materials, m)
}

// RemoveMaterial deletes the materials line at index, preserving the order
// of the remaining lines.
func (w *WorkOrder) RemoveMaterial(index int) error {
	if index < 0 || index >= len(w.Materials) {
		return ErrEntryIndexOutOfRange
	}
	w.Materials = append(w.Materials[:index], w.Materials[index+1:]...)
	return nil
}

// AppendHours adds one hours line at the end.
func (w *WorkOrder) AppendHours(h HoursEntry) {
	w.Hours = append(w.Hours, h)
}

// RemoveHours deletes the hours line at index.
func (w *WorkOrder) RemoveHours(index int) error {
	if index < 0 || index >= len(w.Hours) {
		return ErrEntryIndexOutOfRange
	}
	w.Hours = append(w.Hours[:index], w.Hours[index+1:]...)
	return nil
}
