package model

// FilingStatus is the federal filing status used to pick brackets and the
// standard deduction.
type FilingStatus string

const (
	FilingSingle          FilingStatus = "single"
	FilingMarriedJoint    FilingStatus = "married_joint"
	FilingHeadOfHousehold FilingStatus = "head_of_household"
)

// FilingStatuses lists every status the API accepts. Keep in sync with the
// `oneof` binding on the request models.
var FilingStatuses = []FilingStatus{FilingSingle, FilingMarriedJoint, FilingHeadOfHousehold}

func (s FilingStatus) Valid() bool {
	for _, fs := range FilingStatuses {
		if s == fs {
			return true
		}
	}
	return false
}
