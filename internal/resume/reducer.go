package resume

// Reduce computes the next state from the current state and one action. It
// is a total function: it never fails, performs no I/O, and leaves the input
// untouched. Unknown actions and out-of-range indices return the state
// unchanged. Every transition preserves the relative order of untouched
// elements; adds always append.
func Reduce(s State, a Action) State {
	switch act := a.(type) {
	case SetResume:
		next := act.Payload
		next.Normalize()
		return next

	case UpdatePersonalInfo:
		return setScalar(s, act.Field, act.Value)

	case UpdateSummary:
		s.Summary = act.Value
		return s

	case SetSkills:
		s.Skills = append([]string{}, act.Skills...)
		return s

	case AddWorkExperience:
		s.WorkExperience = appendEntry(s.WorkExperience, act.Entry)
		return s
	case UpdateWorkExperience:
		s.WorkExperience = replaceAt(s.WorkExperience, act.Index, act.Entry)
		return s
	case RemoveWorkExperience:
		s.WorkExperience = removeAt(s.WorkExperience, act.Index)
		return s

	case AddEducation:
		s.Education = appendEntry(s.Education, act.Entry)
		return s
	case UpdateEducation:
		s.Education = replaceAt(s.Education, act.Index, act.Entry)
		return s
	case RemoveEducation:
		s.Education = removeAt(s.Education, act.Index)
		return s

	case AddProject:
		s.Projects = appendEntry(s.Projects, act.Entry)
		return s
	case UpdateProject:
		s.Projects = replaceAt(s.Projects, act.Index, act.Entry)
		return s
	case RemoveProject:
		s.Projects = removeAt(s.Projects, act.Index)
		return s

	case AddCertification:
		s.Certifications = appendEntry(s.Certifications, act.Entry)
		return s
	case UpdateCertification:
		s.Certifications = replaceAt(s.Certifications, act.Index, act.Entry)
		return s
	case RemoveCertification:
		s.Certifications = removeAt(s.Certifications, act.Index)
		return s

	case AddVolunteerWork:
		s.VolunteerWork = appendEntry(s.VolunteerWork, act.Entry)
		return s
	case UpdateVolunteerWork:
		s.VolunteerWork = replaceAt(s.VolunteerWork, act.Index, act.Entry)
		return s
	case RemoveVolunteerWork:
		s.VolunteerWork = removeAt(s.VolunteerWork, act.Index)
		return s
	}

	// Unrecognized actions are a no-op, not an error.
	return s
}

func setScalar(s State, field ScalarField, value string) State {
	switch field {
	case FieldFullName:
		s.FullName = value
	case FieldEmail:
		s.Email = value
	case FieldPhone:
		s.Phone = value
	case FieldLocation:
		s.Location = value
	case FieldWebsite:
		s.Website = value
	case FieldSummary:
		s.Summary = value
	}
	return s
}

// The helpers below copy the affected collection so the caller's slice is
// never mutated in place.

func appendEntry[T any](xs []T, x T) []T {
	out := make([]T, len(xs), len(xs)+1)
	copy(out, xs)
	return append(out, x)
}

func replaceAt[T any](xs []T, i int, x T) []T {
	if i < 0 || i >= len(xs) {
		return xs
	}
	out := make([]T, len(xs))
	copy(out, xs)
	out[i] = x
	return out
}

func removeAt[T any](xs []T, i int) []T {
	if i < 0 || i >= len(xs) {
		return xs
	}
	out := make([]T, 0, len(xs)-1)
	out = append(out, xs[:i]...)
	return append(out, xs[i+1:]...)
}
