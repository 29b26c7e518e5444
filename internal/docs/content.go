package docs

var topics = []Topic{
	{
		Name:    "quickstart",
		Title:   "Quick Start",
		Summary: "Getting started with robogen",
		Content: topicQuickstart,
	},
	{
		Name:    "config",
		Title:   "Configuration Reference",
		Summary: "Config file schema, fields, and defaults",
		Content: topicConfig,
	},
	{
		Name:    "pipeline",
		Title:   "Pipeline Stages",
		Summary: "Analysis, generation, validation, and store stage details",
		Content: topicPipeline,
	},
	{
		Name:    "plan",
		Title:   "Test Plan and Suite Layout",
		Summary: "The analysis plan schema and the generated POM structure",
		Content: topicPlan,
	},
	{
		Name:    "artifacts",
		Title:   "Run Artifacts",
		Summary: "Structure of .robogen/artifacts/ and what gets saved",
		Content: topicArtifacts,
	},
}

const topicQuickstart = `Quick Start
===========

1. Initialize a project:

    cd your-project
    robogen init

   This creates .robogen/config.yaml with the default settings.

2. Export your Gemini API key:

    export GEMINI_API_KEY=...

   The variable name is configurable via api-key-env in config.yaml.
   The --api-key flag overrides the environment.

3. Preview the stage plan without calling the API:

    robogen run ./my-app --dry-run

4. Generate a suite for real:

    robogen run ./my-app

   The suite lands in robot_tests/ (configurable via output-dir).

5. Inspect the latest run:

    robogen status

CLI Flags
---------

  robogen run <app-path>                     Generate a Robot Framework suite
  robogen run <app-path> -c "..."            Add user context to every prompt
  robogen run <app-path> -o DIR              Override the output directory
  robogen run <app-path> --clear-output      Remove the output directory first
  robogen run <app-path> --skip-validation   Skip the review stage
  robogen run <app-path> --model NAME        Override the Gemini model
  robogen run <app-path> --api-key KEY       Pass the API key explicitly
  robogen run <app-path> --dry-run           Preview the stage plan
  robogen status                             Show the latest run
  robogen doctor                             Diagnose the latest failed run
  robogen init                               Scaffold .robogen/config.yaml
  robogen docs                               List documentation topics
  robogen docs <topic>                       Show a documentation topic
`

const topicConfig = `Configuration Reference
=======================

Settings live in .robogen/config.yaml at the project root. Every field
is optional; a missing file means pure defaults, so robogen works in
projects that never ran init.

Fields
------

  model               string   Gemini model name.
                               Default: gemini-2.0-flash-001.
  api-key-env         string   Environment variable read for the API key
                               when --api-key is not passed.
                               Default: GEMINI_API_KEY.
  output-dir          string   Where the generated suite is written,
                               relative to the project root unless
                               absolute. Default: robot_tests.
  ignore              list     Gitignore-syntax patterns excluded from
                               the analysis context. Replaces the
                               default list when set.
  prose-extensions    list     File extensions treated as prose when
                               parsing generated files: their bodies
                               keep embedded code fences verbatim.
                               Default: [.md, .markdown].
  max-file-bytes      int      Per-file cap when gathering application
                               source. Larger files are truncated.
                               Default: 65536. Zero means unlimited.
  max-context-bytes   int      Total cap on the gathered application
                               context. Default: 2097152. Zero means
                               unlimited.
  request-timeout     int      Minutes allowed per Gemini request.
                               Default: 4. Zero disables the timeout.

Ignore Patterns
---------------

Three sources of patterns are merged for the analysis walk:

  1. The ignore list from config.yaml (or the built-in defaults).
  2. The application's own .gitignore, if present.
  3. The basename of output-dir, always — a previous run's output must
     never feed the next run's prompt.

The defaults cover dependency and build directories (node_modules,
dist, build, venv), VCS and CI metadata, lockfiles, logs, images, and
other binary formats. Setting ignore in config.yaml replaces the
default list entirely; include the defaults you still want.

Binary files are skipped regardless of patterns, detected by a NUL
probe of the first 8000 bytes.

Example Config
--------------

  model: gemini-2.0-flash-001
  api-key-env: GEMINI_API_KEY
  output-dir: robot_tests
  request-timeout: 4
  prose-extensions:
    - .md
  ignore:
    - .git/
    - node_modules
    - dist
    - "*.log"
`

const topicPipeline = `Pipeline Stages
===============

robogen runs a fixed four-stage pipeline. Each stage saves its prompt
and reply under the run's artifacts directory before and after the
Gemini request, so a failed run always leaves enough context for
robogen doctor.

analysis
--------

Walks the application source tree (honoring the ignore patterns),
renders every kept file into one context document, and asks Gemini for
a structured test plan as JSON. The reply is parsed leniently: a
fenced block, a bare JSON object, or JSON buried in explanation text
all work. The plan is saved to plan.json.

The stage fails when no readable source files are found or when the
reply contains no parseable JSON object.

generation
----------

Sends the plan back to Gemini and asks for the complete suite in one
reply, file by file, each introduced by a boundary marker:

  --- File: pages/LoginPage.robot ---

Code fence lines around file bodies are stripped; files whose
extension is listed in prose-extensions keep their bodies verbatim.
The stage fails when the reply contains no file markers.

validation
----------

Sends the plan and the generated files back for review. The reply
carries a JSON report and, when issues were found, corrected versions
of the offending files in the same marker format.

Validation is advisory. A failed request or an unusable reply demotes
to a warning and the run proceeds with the unvalidated files.
Corrected files are merged over the generated set only when the
report's issues_found flag is true and at least one corrected file was
returned. A merge never removes a file: corrected bodies overwrite,
new files extend, untouched files carry over.

Skip this stage entirely with --skip-validation.

store
-----

Writes the final file set beneath the output directory. Paths are
sandboxed: absolute paths, parent references, and symlink escapes are
skipped with a reason rather than written. With --clear-output the
directory is removed first. The stage fails when nothing was written.

Interruption
------------

Ctrl+C cancels the in-flight request, saves the run with status
"interrupted", and flushes timing. A fresh robogen run starts over;
runs are not resumable.
`

const topicPlan = `Test Plan and Suite Layout
==========================

The analysis stage produces a JSON plan that drives the rest of the
pipeline. The generation prompt embeds it verbatim, so fields beyond
the known schema still reach the model.

Plan Schema
-----------

  application_summary       string   What the application does.
  folder_structure          object   Directory names for the suite:
                                     pages_directory, keywords_directory,
                                     tests_directory, resources_directory,
                                     variables_directory. Missing entries
                                     fall back to the conventional names.
  pages                     list     Identified page objects, each with a
                                     name, a target path, and elements
                                     carrying potential_locators.
  keywords                  list     Action keywords, each naming its
                                     associated_page and elements_used.
  test_scenarios            list     Planned test cases as keyword
                                     sequences (keyword plus args).
  resources                 list     Shared resource files with a purpose.
  required_libraries        list     Robot Framework libraries the suite
                                     imports, e.g. SeleniumLibrary.
  setup_instructions_notes  string   Anything a human should know before
                                     running the suite.

Suite Layout
------------

The generated suite follows the Page Object Model:

  robot_tests/
  ├── pages/          One .robot file per page: locator variables and
  │                   low-level element interactions.
  ├── keywords/       Higher-level action keywords composed from page
  │                   keywords (Login With Credentials, Add To Cart).
  ├── tests/          Test suites that only call high-level keywords.
  ├── resources/      Common imports and shared setup/teardown.
  ├── variables/      Environment configuration (base URL, browser).
  └── README.md       Setup and execution instructions.

Tests never touch locators directly; pages never contain test logic.
The validation stage reviews exactly this separation, along with
syntax, import correctness, and coverage of the planned scenarios.
`

const topicArtifacts = `Run Artifacts
=============

Every run gets its own directory under .robogen/artifacts/, named by
the run ID. Artifacts are the primary diagnostic surface: robogen
status renders them and robogen doctor feeds them back to Gemini.

Directory Structure
-------------------

  .robogen/artifacts/<run-id>/
  ├── state.json                 Run record: stage, status, error
  ├── timing.json                Start/end timestamps per stage
  ├── plan.json                  The analysis plan, pretty-printed
  ├── validation_report.json     The validation report, when one arrived
  ├── outcome.json               What the store stage wrote and skipped
  ├── prompts/
  │   ├── analysis.md            Exact prompt sent per stage
  │   ├── generation.md
  │   └── validation.md
  └── replies/
      ├── analysis.txt           Raw reply received per stage
      ├── generation.txt
      └── validation.txt

state.json
----------

The run record: ID, application path, output directory, the stage the
run is in, its status (running, completed, failed, interrupted), and
the failure message when there is one. Written atomically at every
stage transition.

timing.json
-----------

Start and end timestamps per stage with a formatted duration. An entry
without an end marks the stage that was in flight when the run stopped.

prompts/ and replies/
---------------------

The exact text sent to and received from Gemini, per stage. The prompt
is saved before the request, so even a run that dies mid-request keeps
it. These are what robogen doctor reads.

Selecting a Run
---------------

robogen status and robogen doctor operate on the most recent run,
selected by directory modification time. Older runs are kept; remove
them by deleting their directories.
`
