package domain

// Subjects is the fixed, closed list of subjects assignments are bucketed
// under. Submissions never carry any other label except UnknownSubject.
var Subjects = []string{
	"Networking",
	"Operating Systems",
	"Databases",
	"Software Engineering",
	"Mathematics",
}

// UnknownSubject is the sentinel used when a submission cannot be matched
// to a subject.
const UnknownSubject = "Unknown Subject"

// IsSubject reports whether s is a member of the fixed subject list.
// Matching is exact; dialog buttons carry the canonical labels.
func IsSubject(s string) bool {
	for _, subj := range Subjects {
		if s == subj {
			return true
		}
	}
	return false
}
