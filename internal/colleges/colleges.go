// Package colleges holds the fixed college and post-tag vocabularies the
// rest of the system references by id.
package colleges

// College identifies an institution and its department list.
type College struct {
	ID          string
	Name        string
	Domain      string
	Departments []string
}

// Tag is an entry in the post tag vocabulary.
type Tag struct {
	ID    string
	Label string
}

// All is the supported college list.
var All = []College{
	{
		ID:          "mit",
		Name:        "Massachusetts Institute of Technology",
		Domain:      "mit.edu",
		Departments: []string{"Computer Science", "Electrical Engineering", "Mechanical Engineering", "Physics", "Mathematics", "Biology", "Chemistry", "Economics", "Management"},
	},
	{
		ID:          "stanford",
		Name:        "Stanford University",
		Domain:      "stanford.edu",
		Departments: []string{"Computer Science", "Engineering", "Business", "Medicine", "Law", "Education", "Humanities", "Social Sciences"},
	},
	{
		ID:          "harvard",
		Name:        "Harvard University",
		Domain:      "harvard.edu",
		Departments: []string{"Computer Science", "Engineering", "Business", "Medicine", "Law", "Arts & Sciences", "Education", "Public Health"},
	},
	{
		ID:          "berkeley",
		Name:        "UC Berkeley",
		Domain:      "berkeley.edu",
		Departments: []string{"EECS", "Engineering", "Business", "Letters & Science", "Chemistry", "Physics", "Mathematics", "Biology"},
	},
	{
		ID:          "cmu",
		Name:        "Carnegie Mellon University",
		Domain:      "cmu.edu",
		Departments: []string{"Computer Science", "Engineering", "Business", "Fine Arts", "Humanities", "Public Policy", "Science"},
	},
}

// PostTags is the fixed tag vocabulary posts reference by id.
var PostTags = []Tag{
	{ID: "jobs", Label: "Jobs"},
	{ID: "advice", Label: "Advice"},
	{ID: "memories", Label: "Memories"},
	{ID: "networking", Label: "Networking"},
	{ID: "events", Label: "Events"},
	{ID: "academics", Label: "Academics"},
	{ID: "internships", Label: "Internships"},
	{ID: "general", Label: "General"},
}

// Find returns the college with the given id.
func Find(id string) (College, bool) {
	for _, c := range All {
		if c.ID == id {
			return c, true
		}
	}
	return College{}, false
}

// TagLabel resolves a tag id to its display label, falling back to the raw id
// for tags outside the vocabulary.
func TagLabel(id string) string {
	for _, t := range PostTags {
		if t.ID == id {
			return t.Label
		}
	}
	return id
}

// ValidTag reports whether id is part of the vocabulary.
func ValidTag(id string) bool {
	for _, t := range PostTags {
		if t.ID == id {
			return true
		}
	}
	return false
}
