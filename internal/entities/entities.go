// Package entities defines the declarative input schema accepted at the
// analysis boundary (spec §6): nodes, members, supports and loads keyed
// by string id, plus the project settings that parameterize the
// combination and code-check stages.
package entities

// AssemblyKind marks whether a node behaves as a rigid frame joint or as
// a hinge (moment release) on the members that meet there.
type AssemblyKind string

const (
	Rigid AssemblyKind = "Rigid"
	Hinge AssemblyKind = "Hinge"
)

// Coord is a resolved 2D point in meters.
type Coord struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NodeInput is a user-declared node.
type NodeInput struct {
	X        float64      `json:"x"`
	Y        float64      `json:"y"`
	Assembly AssemblyKind `json:"assembly"`
}

// MemberType is the structural material family of a Member.
type MemberType string

const (
	Steel   MemberType = "Steel"
	Wood    MemberType = "Wood"
	Masonry MemberType = "Masonry"
)

// WoodSize carries the rectangular solid/glulam cross-section in mm.
type WoodSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// MemberProps is the declarative material/serviceability descriptor for
// one Member, as received from the entity-set editor.
type MemberProps struct {
	Type MemberType `json:"type"`
	Name string     `json:"name"`

	// Steel
	SteelProfile  string `json:"steelProfile,omitempty"`
	SteelStrength string `json:"steelStrength,omitempty"`

	// Wood
	WoodType string    `json:"woodType,omitempty"`
	WoodSize *WoodSize `json:"woodSize,omitempty"`

	// Masonry. Thickness and wall height are not part of the distilled
	// boundary schema but are required by the EC6 Ritter/concentrated-load
	// checks (spec.md §4.8, scenario F); supplemented here per
	// SPEC_FULL.md (see DESIGN.md).
	MurType       string  `json:"murtype,omitempty"`
	MurThickness  float64 `json:"murThickness,omitempty"`
	MurWallHeight float64 `json:"murWallHeight,omitempty"`

	DeflectionRequirement              *float64 `json:"deflectionRequirement,omitempty"`
	DeflectionIsLocal                  bool     `json:"deflectionIsLocal"`
	DeflectionRequirementFinished      *float64 `json:"deflectionRequirementFinished,omitempty"`
	DeflectionRequirementInstantSnow   *float64 `json:"deflectionRequirementInstantSnow,omitempty"`
	DeflectionRequirementInstantWind   *float64 `json:"deflectionRequirementInstantWind,omitempty"`
	DeflectionRequirementInstantLive   *float64 `json:"deflectionRequirementInstantLive,omitempty"`

	SelfWeightEnabled bool `json:"selfWeightEnabled"`
}

// MemberInput is a declared structural member spanning two nodes, with
// the set of dependant entity ids (loads/supports/nodes) lying on it.
type MemberInput struct {
	Node1ID    string      `json:"node1Id"`
	Node2ID    string      `json:"node2Id"`
	Dependants []string    `json:"dependants"`
	Props      MemberProps `json:"memberprop"`
}

// SupportType is the restraint kind at a support.
type SupportType string

const (
	Fixed  SupportType = "Fixed"
	Pinned SupportType = "Pinned"
	Roller SupportType = "Roller"
)

// SupportInput is a declared support at a resolved coordinate.
type SupportInput struct {
	Resolved Coord       `json:"resolved"`
	Type     SupportType `json:"type"`
	Angle    float64     `json:"angle"` // Roller only, degrees
}

// LoadType is the action category used throughout the combination
// engine. Declared loads carry the boundary vocabulary (Standard, Dead,
// Live, Snow, Wind); Temperaturlast and Egenlast/selfweight only ever
// appear as an internal LoadCategory (see package combination).
type LoadType string

const (
	TypeStandard LoadType = "Standard"
	TypeDead     LoadType = "Dead"
	TypeLive     LoadType = "Live"
	TypeSnow     LoadType = "Snow"
	TypeWind     LoadType = "Wind"
)

// PointLoadInput is a concentrated force at a resolved coordinate, given
// as a magnitude and angle (degrees from +x, CCW) to be decomposed into
// global Fx, Fy per spec.md §9 resolved Open Question 2:
// Fx = -|F|*cos(theta), Fy = -|F|*sin(theta).
type PointLoadInput struct {
	Resolved Coord    `json:"resolved"`
	Magnitude float64 `json:"magnitude"`
	Angle     float64 `json:"angle"`
	Type      LoadType `json:"type"`
}

// DistributedLoadInput is a line load between two resolved points, given
// as start/end magnitudes and angle, with an optional flip for wind loads
// modeled as suction vs. pressure.
type DistributedLoadInput struct {
	Resolved struct {
		Point1 Coord `json:"point1"`
		Point2 Coord `json:"point2"`
	} `json:"resolved"`
	Magnitude1 float64  `json:"magnitude1"`
	Magnitude2 float64  `json:"magnitude2"`
	Angle      float64  `json:"angle"`
	WindFlip   bool     `json:"windFlip"`
	Type       LoadType `json:"type"`
}

// MomentLoadInput is a concentrated moment at a resolved coordinate.
type MomentLoadInput struct {
	Resolved  Coord    `json:"resolved"`
	Magnitude float64  `json:"magnitude"`
	Type      LoadType `json:"type"`
}

// EntitySet is the full declarative input to the analysis pipeline.
type EntitySet struct {
	Nodes             map[string]NodeInput             `json:"nodes"`
	Members           map[string]MemberInput            `json:"members"`
	Supports          map[string]SupportInput           `json:"supports"`
	PointLoads        map[string]PointLoadInput         `json:"pointLoads"`
	DistributedLoads  map[string]DistributedLoadInput   `json:"distributedLoads"`
	MomentLoads       map[string]MomentLoadInput        `json:"momentLoads"`
}

// ConsequenceClass is the Eurocode consequence class (EN 1990 Annex B),
// driving the KFi factor applied to variable actions.
type ConsequenceClass string

const (
	CC1 ConsequenceClass = "CC1"
	CC2 ConsequenceClass = "CC2"
	CC3 ConsequenceClass = "CC3"
)

// Settings is the per-project configuration that parameterizes the
// combination engine and the code checkers.
type Settings struct {
	ProjectNumber     string           `json:"projectNumber"`
	CC                ConsequenceClass `json:"cc"`
	SelfweightOnOff   bool             `json:"selfweightOnOff"`
	NLevelsAbove      int              `json:"nLevelsAbove"`
	RobustFactorOnOff bool             `json:"robustFactorOnOff"`
	DefCritSteel      int              `json:"defCritSteel"`
	DefCritWood1      int              `json:"defCritWood1"`
	DefCritWood2      int              `json:"defCritWood2"`
}
