package domain

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// Employee is looked up, updated and deleted by Name. Nothing enforces
// uniqueness at the store level: the create path checks for an existing
// document first, and with duplicates the first match wins.
type Employee struct {
	Name    string
	Surname string
	Age     int
	Gender  Gender
}
