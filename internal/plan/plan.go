// Package plan defines the structured test plan produced by the analysis
// stage. Decoding is deliberately lenient: the model is asked for this shape
// but not guaranteed to produce it, so unknown fields are ignored and missing
// fields stay zero. Cross-references between sections (a step naming a
// keyword, a keyword naming a page) are carried as data, not validated.
package plan

import (
	"encoding/json"
	"fmt"
)

// Plan mirrors the JSON object the analysis prompt asks for.
type Plan struct {
	ApplicationSummary     string          `json:"application_summary"`
	FolderStructure        FolderStructure `json:"folder_structure"`
	Pages                  []Page          `json:"pages"`
	Keywords               []Keyword       `json:"keywords"`
	TestScenarios          []Scenario      `json:"test_scenarios"`
	Resources              []Resource      `json:"resources"`
	RequiredLibraries      []string        `json:"required_libraries"`
	SetupInstructionsNotes string          `json:"setup_instructions_notes"`
}

// FolderStructure names the directories the generated suite is organized
// into. Empty entries fall back to the conventional layout.
type FolderStructure struct {
	PagesDirectory     string `json:"pages_directory"`
	KeywordsDirectory  string `json:"keywords_directory"`
	TestsDirectory     string `json:"tests_directory"`
	ResourcesDirectory string `json:"resources_directory"`
	VariablesDirectory string `json:"variables_directory"`
}

// Page is one identified page object and its key UI elements.
type Page struct {
	Name     string    `json:"name"`
	Path     string    `json:"path"`
	Elements []Element `json:"elements"`
}

// Element is a UI element with candidate Selenium locators.
type Element struct {
	Name              string   `json:"name"`
	PotentialLocators []string `json:"potential_locators"`
}

// Keyword describes an action keyword and the page it operates on.
type Keyword struct {
	Name           string   `json:"name"`
	Path           string   `json:"path"`
	Implementation string   `json:"implementation"`
	AssociatedPage string   `json:"associated_page"`
	ElementsUsed   []string `json:"elements_used"`
}

// Scenario is a planned test case expressed as a keyword sequence.
type Scenario struct {
	Name      string `json:"name"`
	SuitePath string `json:"suite_path"`
	Steps     []Step `json:"steps"`
}

// Step is one keyword invocation within a scenario.
type Step struct {
	Keyword string   `json:"keyword"`
	Args    []string `json:"args"`
}

// Resource is a shared resource file the plan calls for.
type Resource struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Purpose string `json:"purpose"`
}

// Decode parses raw JSON into a Plan and fills folder-structure defaults.
func Decode(raw json.RawMessage) (*Plan, error) {
	var p Plan
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decoding plan: %w", err)
	}
	p.FolderStructure = p.FolderStructure.withDefaults()
	return &p, nil
}

func (f FolderStructure) withDefaults() FolderStructure {
	if f.PagesDirectory == "" {
		f.PagesDirectory = "pages"
	}
	if f.KeywordsDirectory == "" {
		f.KeywordsDirectory = "keywords"
	}
	if f.TestsDirectory == "" {
		f.TestsDirectory = "tests"
	}
	if f.ResourcesDirectory == "" {
		f.ResourcesDirectory = "resources"
	}
	if f.VariablesDirectory == "" {
		f.VariablesDirectory = "variables"
	}
	return f
}

// Counts reports how many pages, keywords, and test scenarios the plan
// contains, for stage summaries.
func (p *Plan) Counts() (pages, keywords, scenarios int) {
	return len(p.Pages), len(p.Keywords), len(p.TestScenarios)
}
