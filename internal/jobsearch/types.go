package jobsearch

// DatePostedWindow restricts how recently a listing was posted.
type DatePostedWindow string

// Supported posted-within windows. WindowAll disables the filter.
const (
	WindowAll      DatePostedWindow = "all"
	WindowToday    DatePostedWindow = "today"
	WindowThreeDay DatePostedWindow = "3days"
	WindowWeek     DatePostedWindow = "week"
	WindowMonth    DatePostedWindow = "month"
)

// Valid reports whether w is one of the supported windows.
func (w DatePostedWindow) Valid() bool {
	switch w {
	case WindowAll, WindowToday, WindowThreeDay, WindowWeek, WindowMonth:
		return true
	}
	return false
}

// Filters describes a single job search request.
type Filters struct {
	Query           string           `json:"query"`
	Location        string           `json:"location"`
	DatePosted      DatePostedWindow `json:"datePosted"`
	WorkFromHome    bool             `json:"workFromHome"`
	EmploymentTypes []string         `json:"employmentTypes"` // e.g. "FULLTIME", "PARTTIME"
}

// Listing is one job result from the search provider. The JSON field names
// follow the provider's wire format because listings are cached verbatim in
// the resume's job feed column.
type Listing struct {
	JobID                string  `json:"job_id"`
	EmployerName         string  `json:"employer_name"`
	JobTitle             string  `json:"job_title"`
	JobCountry           *string `json:"job_country"`
	JobCity              *string `json:"job_city"`
	JobApplyLink         *string `json:"job_apply_link"`
	JobDescription       *string `json:"job_description"`
	JobEmploymentType    *string `json:"job_employment_type"`
	JobIsRemote          *bool   `json:"job_is_remote"`
	JobPostedAt          *string `json:"job_posted_at"`
	JobPostedAtTimestamp *int64  `json:"job_posted_at_timestamp"`
}
