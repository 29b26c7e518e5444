// Package prompt builds the three stage prompts. Templates are package
// consts with ${VAR} placeholders; dynamic content is injected by
// expansion over an explicit map, never from the process environment.
package prompt

import (
	"fmt"
	"os"
	"strings"

	"github.com/jorge-barreto/robogen/internal/fileset"
)

// Analysis builds the planning prompt over the rendered application
// context.
func Analysis(appContext, userContext string) string {
	return expand(analysisTemplate, map[string]string{
		"APP_CONTEXT":  appContext,
		"USER_CONTEXT": contextBlock(userContext, analysisGuidance),
	})
}

// Generation builds the suite-generation prompt from the plan JSON.
func Generation(planJSON, userContext string) string {
	return expand(generationTemplate, map[string]string{
		"PLAN_JSON":    planJSON,
		"USER_CONTEXT": contextBlock(userContext, generationGuidance),
	})
}

// Validation builds the review prompt over the plan and the generated
// files.
func Validation(planJSON string, files *fileset.Set, userContext string) string {
	return expand(validationTemplate, map[string]string{
		"PLAN_JSON":    planJSON,
		"FILES":        RenderFiles(files),
		"USER_CONTEXT": contextBlock(userContext, validationGuidance),
	})
}

// RenderFiles lays a set out in the same marker format the generator is
// asked to emit, one section per file.
func RenderFiles(files *fileset.Set) string {
	var b strings.Builder
	for _, p := range files.Paths() {
		body, _ := files.Get(p)
		fmt.Fprintf(&b, "\n--- File: %s ---\n%s\n", p, body)
	}
	return b.String()
}

// expand substitutes ${VAR} references from vars. Unknown references
// are reproduced verbatim: template text and injected content may show
// Robot Framework variables like ${USERNAME_FIELD}, and those must
// reach the model untouched. Mapped values are not re-scanned.
func expand(template string, vars map[string]string) string {
	return os.Expand(template, func(key string) string {
		if v, ok := vars[key]; ok {
			return v
		}
		return "${" + key + "}"
	})
}

// contextBlock renders the optional user context section shared by all
// three prompts. guidance is the stage-specific closing instruction.
func contextBlock(userContext, guidance string) string {
	if strings.TrimSpace(userContext) == "" {
		return ""
	}
	return "\nIMPORTANT User Context/Overrides:\n---\n" + userContext + "\n---\n" + guidance + "\n"
}
