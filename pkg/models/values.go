package models

// ConfigKey names one of the configuration fields collected from the operator
type ConfigKey string

const (
	KeyProjectName ConfigKey = "projectName"
	KeyCompanyName ConfigKey = "companyName"
	KeyAPIPath     ConfigKey = "apiPath"
	KeyPort        ConfigKey = "port"
	KeyAppPrefix   ConfigKey = "appPrefix"
)

// ValueSet maps template placeholder names to primitive values
type ValueSet map[string]interface{}

// Clone returns a shallow copy of the value set
func (v ValueSet) Clone() ValueSet {
	out := make(ValueSet, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Catalog holds the two pre-supplied value sets
type Catalog struct {
	DefaultValues ValueSet
	TestValues    ValueSet
}

// Mode selects how a run obtains its values
type Mode int

const (
	ModeInteractive Mode = iota
	ModeAutomated
)

func (m Mode) String() string {
	if m == ModeAutomated {
		return "automated"
	}
	return "interactive"
}
