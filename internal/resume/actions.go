package resume

// ScalarField names one of the free-text profile fields. Keeping this a
// closed enumeration prevents callers from injecting unknown keys.
type ScalarField string

// The scalar profile fields addressable by UpdatePersonalInfo.
const (
	FieldFullName ScalarField = "fullName"
	FieldEmail    ScalarField = "email"
	FieldPhone    ScalarField = "phone"
	FieldLocation ScalarField = "location"
	FieldWebsite  ScalarField = "website"
	FieldSummary  ScalarField = "summary"
)

// Valid reports whether f names a known scalar field.
func (f ScalarField) Valid() bool {
	switch f {
	case FieldFullName, FieldEmail, FieldPhone, FieldLocation, FieldWebsite, FieldSummary:
		return true
	}
	return false
}

// Action is one edit applied to a State. The set of actions is closed:
// only the types in this file implement it.
type Action interface {
	isAction()
}

// SetResume replaces the state wholesale. Collections missing from the
// payload are normalized to empty.
type SetResume struct {
	Payload State
}

// UpdatePersonalInfo sets a single scalar profile field.
type UpdatePersonalInfo struct {
	Field ScalarField
	Value string
}

// UpdateSummary sets the professional summary.
type UpdateSummary struct {
	Value string
}

// SetSkills replaces the skill list. Dedup and trimming are the edit
// surface's responsibility before dispatch.
type SetSkills struct {
	Skills []string
}

// AddWorkExperience appends an entry.
type AddWorkExperience struct{ Entry WorkExperience }

// UpdateWorkExperience replaces the entry at Index.
type UpdateWorkExperience struct {
	Index int
	Entry WorkExperience
}

// RemoveWorkExperience deletes the entry at Index.
type RemoveWorkExperience struct{ Index int }

// AddEducation appends an entry.
type AddEducation struct{ Entry Education }

// UpdateEducation replaces the entry at Index.
type UpdateEducation struct {
	Index int
	Entry Education
}

// RemoveEducation deletes the entry at Index.
type RemoveEducation struct{ Index int }

// AddProject appends an entry.
type AddProject struct{ Entry Project }

// UpdateProject replaces the entry at Index.
type UpdateProject struct {
	Index int
	Entry Project
}

// RemoveProject deletes the entry at Index.
type RemoveProject struct{ Index int }

// AddCertification appends an entry.
type AddCertification struct{ Entry Certification }

// UpdateCertification replaces the entry at Index.
type UpdateCertification struct {
	Index int
	Entry Certification
}

// RemoveCertification deletes the entry at Index.
type RemoveCertification struct{ Index int }

// AddVolunteerWork appends an entry.
type AddVolunteerWork struct{ Entry VolunteerEntry }

// UpdateVolunteerWork replaces the entry at Index.
type UpdateVolunteerWork struct {
	Index int
	Entry VolunteerEntry
}

// RemoveVolunteerWork deletes the entry at Index.
type RemoveVolunteerWork struct{ Index int }

func (SetResume) isAction()            {}
func (UpdatePersonalInfo) isAction()   {}
func (UpdateSummary) isAction()        {}
func (SetSkills) isAction()            {}
func (AddWorkExperience) isAction()    {}
func (UpdateWorkExperience) isAction() {}
func (RemoveWorkExperience) isAction() {}
func (AddEducation) isAction()         {}
func (UpdateEducation) isAction()      {}
func (RemoveEducation) isAction()      {}
func (AddProject) isAction()           {}
func (UpdateProject) isAction()        {}
func (RemoveProject) isAction()        {}
func (AddCertification) isAction()     {}
func (UpdateCertification) isAction()  {}
func (RemoveCertification) isAction()  {}
func (AddVolunteerWork) isAction()     {}
func (UpdateVolunteerWork) isAction()  {}
func (RemoveVolunteerWork) isAction()  {}
