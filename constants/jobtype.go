package constants

// JobType is the canonical job category for a logged job.
type JobType string

const (
	JobTypeAddKey  JobType = "add_key"
	JobTypeAKL     JobType = "akl"
	JobTypeRemote  JobType = "remote"
	JobTypeBlade   JobType = "blade"
	JobTypeRekey   JobType = "rekey"
	JobTypeLockout JobType = "lockout"
	JobTypeSafe    JobType = "safe"
	JobTypeOther   JobType = "other"
)

var allJobTypes = []JobType{
	JobTypeAddKey,
	JobTypeAKL,
	JobTypeRemote,
	JobTypeBlade,
	JobTypeRekey,
	JobTypeLockout,
	JobTypeSafe,
	JobTypeOther,
}

// jobTypeAliases maps canonical-key spellings to job types. Keys must be in
// CanonicalKey form (lowercase, no separators).
var jobTypeAliases = map[string]JobType{
	"addkey":            JobTypeAddKey,
	"addakey":           JobTypeAddKey,
	"sparekey":          JobTypeAddKey,
	"duplicatekey":      JobTypeAddKey,
	"keycopy":           JobTypeAddKey,
	"akl":               JobTypeAKL,
	"allkeyslost":       JobTypeAKL,
	"allkeylost":        JobTypeAKL,
	"remote":            JobTypeRemote,
	"fob":               JobTypeRemote,
	"keyfob":            JobTypeRemote,
	"remoteprogramming": JobTypeRemote,
	"blade":             JobTypeBlade,
	"keyblade":          JobTypeBlade,
	"cutkey":            JobTypeBlade,
	"keycut":            JobTypeBlade,
	"rekey":             JobTypeRekey,
	"lockout":           JobTypeLockout,
	"lockedout":         JobTypeLockout,
	"unlock":            JobTypeLockout,
	"safe":              JobTypeSafe,
	"safeopening":       JobTypeSafe,
	"other":             JobTypeOther,
	"misc":              JobTypeOther,
}

// jobTypeLabels are the human-facing names used in confirmations and exports.
var jobTypeLabels = map[JobType]string{
	JobTypeAddKey:  "Add Key",
	JobTypeAKL:     "All Keys Lost",
	JobTypeRemote:  "Remote",
	JobTypeBlade:   "Blade",
	JobTypeRekey:   "Rekey",
	JobTypeLockout: "Lockout",
	JobTypeSafe:    "Safe",
	JobTypeOther:   "Other",
}

func JobTypesAsStrings() []string {
	result := make([]string, len(allJobTypes))
	for i, jt := range allJobTypes {
		result[i] = string(jt)
	}
	return result
}

// CanonicalizeJobType narrows arbitrary input into the JobType enum.
// Unknown values map to JobTypeOther; the second return reports whether the
// input was recognized.
func CanonicalizeJobType(input string) (JobType, bool) {
	key := CanonicalKey(input)
	if key == "" {
		return JobTypeOther, false
	}
	if jt, ok := jobTypeAliases[key]; ok {
		return jt, true
	}
	return JobTypeOther, false
}

// Label returns the display name for a job type.
func (jt JobType) Label() string {
	if l, ok := jobTypeLabels[jt]; ok {
		return l
	}
	return jobTypeLabels[JobTypeOther]
}
