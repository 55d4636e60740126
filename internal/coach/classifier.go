package coach

import (
	"regexp"
	"strings"
)

// Components is the objective completeness signal for a
// self-introduction: a presence test over the candidate's accumulated
// answer text, not a correctness test.
type Components struct {
	HasName      bool `json:"hasName"`
	HasEducation bool `json:"hasEducation"`
	HasSkills    bool `json:"hasSkills"`
	HasProjects  bool `json:"hasProjects"`
	HasGoals     bool `json:"hasGoals"`
}

func (c Components) Complete() bool {
	return c.HasName && c.HasEducation && c.HasSkills && c.HasProjects && c.HasGoals
}

// Missing names the absent components, in the order a coach would ask
// for them.
func (c Components) Missing() []string {
	var out []string
	if !c.HasName {
		out = append(out, "your name")
	}
	if !c.HasEducation {
		out = append(out, "your education")
	}
	if !c.HasSkills {
		out = append(out, "your key skills")
	}
	if !c.HasProjects {
		out = append(out, "a project you've worked on")
	}
	if !c.HasGoals {
		out = append(out, "your career goals")
	}
	return out
}

// Keyword vocabularies, one per component. Matching is lowercase
// substring presence. Deliberately coarse.
var (
	nameMarkers = []string{
		"my name is", "i'm ", "i am ", "this is ", "call me", "myself ",
	}
	educationMarkers = []string{
		"degree", "graduate", "graduated", "university", "college",
		"bachelor", "master", "b.tech", "btech", "mba", "studied",
		"studying", "cgpa", "gpa",
	}
	skillsMarkers = []string{
		"skill", "proficient", "experienced in", "familiar with",
		"technologies", "tech stack", "python", "java", "javascript",
		"typescript", "react", "node", "golang", "c++", "sql", "html",
	}
	projectsMarkers = []string{
		"project", "built", "developed", "created", "worked on",
		"implemented", "e-commerce",
	}
	goalsMarkers = []string{
		"goal", "aspire", "ambition", "aim to", "looking to", "hope to",
		"want to", "plan to", "career", "join", "become", "5 years",
		"five years",
	}
)

func containsAny(text string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}

// ClassifyComponents inspects everything the candidate has said under
// the current question for the five self-introduction components.
func ClassifyComponents(text string) Components {
	lower := strings.ToLower(text)
	return Components{
		HasName:      containsAny(lower, nameMarkers),
		HasEducation: containsAny(lower, educationMarkers),
		HasSkills:    containsAny(lower, skillsMarkers),
		HasProjects:  containsAny(lower, projectsMarkers),
		HasGoals:     containsAny(lower, goalsMarkers),
	}
}

var introPattern = regexp.MustCompile(`(?i)tell (?:me|us) about yourself|introduce yourself|walk me through your background`)

// IsIntroductoryQuestion reports whether a question text is a
// "tell me about yourself" opener. Only these questions get the
// objective component check.
func IsIntroductoryQuestion(text string) bool {
	return introPattern.MatchString(text)
}
