package prompt

const (
	analysisGuidance   = "Please take the above context into account during your analysis and planning. It may contain specific instructions, overrides, or focus areas."
	generationGuidance = "Please take the above context into account when generating the code. It may contain specific instructions, style preferences, or details not fully captured in the JSON plan. Apply these overrides where applicable."
	validationGuidance = "Please take the above context into account during your validation. It may contain specific instructions or focus areas."
)

const analysisTemplate = `
Analyze the following web application source code and structure:

${APP_CONTEXT}
${USER_CONTEXT}
Based on this analysis (and considering the user context if provided), generate a structured JSON plan for creating Robot Framework tests using the Page Object Model (POM).

Instructions for JSON Output:
1.  **Root Object:** The output MUST be a single JSON object. Do NOT include any text before or after the JSON object. Do not use markdown code fences (` + "```json ... ```" + `).
2.  **"application_summary" (String):** A brief description of the application's purpose.
3.  **"folder_structure" (Object):** Define the exact folder structure to use:
    *   "pages_directory" (String): Directory for page objects (e.g., "pages")
    *   "keywords_directory" (String): Directory for keyword files (e.g., "keywords")
    *   "tests_directory" (String): Directory for test files (e.g., "tests")
    *   "resources_directory" (String): Directory for resource files (e.g., "resources")
    *   "variables_directory" (String): Directory for variable files (e.g., "variables")
4.  **"pages" (Array of Objects):** List the distinct pages identified. Each page object should have:
    *   "name" (String): A suitable CamelCase name for the page object (e.g., "LoginPage", "ProductDetailsPage").
    *   "path" (String): The suggested relative path for the page object file (MUST be in the pages directory, e.g., "pages/LoginPage.robot").
    *   "elements" (Array of Objects): Key UI elements on the page. Each element object should have:
        *   "name" (String): A descriptive name for the element (e.g., "Username Field", "AddToCart Button").
        *   "potential_locators" (Array of Strings): Suggest 1-3 potential Selenium locators (e.g., "id=username", "css=.login-form input[name='password']", "xpath=//button[contains(text(), 'Submit')]"). Prioritize robust locators like IDs or unique names/attributes.
5.  **"keywords" (Array of Objects):** Define keywords that implement page actions. Each keyword object should have:
    *   "name" (String): A descriptive name for the keyword (e.g., "Input Username", "Click Login Button")
    *   "path" (String): The relative path for the keyword file (MUST be in the keywords directory, e.g., "keywords/LoginKeywords.robot")
    *   "implementation" (String): Brief pseudo-code or description of how this keyword would be implemented
    *   "associated_page" (String): The page this keyword interacts with (must match a page name defined above)
    *   "elements_used" (Array of Strings): References to elements used in this keyword (must exactly match element names defined above)
6.  **"test_scenarios" (Array of Objects):** Describe potential test cases. Each scenario object should have:
    *   "name" (String): A descriptive name for the test case (e.g., "Valid Login", "Add Item to Cart").
    *   "suite_path" (String): The suggested relative path for the test suite file where this test might reside (MUST be in the tests directory, e.g., "tests/LoginTests.robot").
    *   "steps" (Array of Objects): A sequence of keywords describing the test flow. Each step object should have:
        *   "keyword" (String): The keyword to call (must exactly match a keyword name)
        *   "args" (Array of Strings): Any arguments to pass to the keyword, if applicable
7.  **"resources" (Array of Objects):** Define resource files containing common keywords or variables. Each resource object should have:
    *   "name" (String): A descriptive name for the resource file (e.g., "CommonResources", "BrowserSetup")
    *   "path" (String): The suggested relative path for the resource file (MUST be in the resources directory, e.g., "resources/CommonResources.robot")
    *   "purpose" (String): Brief description of what this resource file provides
8.  **"required_libraries" (Array of Strings):** List any Robot Framework libraries likely needed besides the standard "BuiltIn" and "SeleniumLibrary" (e.g., "DataDriver", "RequestsLibrary"). If none, provide an empty array [].
9.  **"setup_instructions_notes" (String):** Brief notes for setting up the test environment (e.g., "Requires Chrome WebDriver", "Needs environment variables X and Y").

Generate ONLY the JSON object representing this plan. Be extremely precise about naming consistency between elements, keywords, and test steps to ensure proper traceability.
`

const generationTemplate = `
Based on the following JSON analysis plan:

` + "```json" + `
${PLAN_JSON}
` + "```" + `

${USER_CONTEXT}
Generate the complete Robot Framework test suite using a strict Page Object Model (POM) structure and SeleniumLibrary, following the plan and considering the user context.

IMPORTANT: Follow this strict POM structure:
1. **Page Objects** (in the pages directory): ONLY contain element locators and page-specific variables
2. **Keywords** (in the keywords directory): Implement all actions and operations, using elements from page objects
3. **Test Cases** (in the tests directory): ONLY call keywords from keyword files, never directly access page elements
4. **Resources** (in the resources directory): Common setup, teardown, and utility code
5. **Variables** (if needed, in variables directory): Global variables and configuration

Instructions:
1. **File Generation:** Create files in the exact directories specified in the "folder_structure" section:
   * Page objects MUST go in the pages directory
   * Keywords MUST go in the keywords directory
   * Tests MUST go in the tests directory
   * Common resources MUST go in the resources directory

2. **Imports:** Each file MUST include the correct imports:
   * Page files import SeleniumLibrary and any needed resources
   * Keyword files import their associated page objects
   * Test files import keyword files they use
   * Set explicit relative paths in imports using the "../" notation as needed

3. **Elements vs. Keywords:**
   * Page files ONLY define element locators as variables - NO keyword implementations
   * All action implementations MUST be in keyword files, not page files
   * Each keyword file MUST correctly reference elements from its associated page file

4. **Variables:**
   * Use standard Robot Framework variable conventions
   * All locators MUST be defined as variables, e.g., ${USERNAME_FIELD}=    id=username
   * NO hardcoded locators in keyword implementations

5. **Resource Files:**
   * Create common resource files for setup/teardown and utility functions
   * Implement proper Suite Setup/Teardown in test files that handle browser instances

6. **Output Files Format:**
   * requirements.txt: Python packages needed beyond robotframework and robotframework-seleniumlibrary
   * README.md: Explanation, setup instructions, and usage details
   * Robot files with proper Robot Framework syntax and structure

7. **Response Formatting:** Mark each file with the exact path, e.g., "--- File: pages/LoginPage.robot ---"

Generate the complete Robot Framework code now based strictly on the provided JSON plan and properly separated POM structure.
`

const validationTemplate = `
As a Robot Framework expert specializing in Page Object Model (POM) implementation, perform a rigorous validation of the following generated test files:

1. The original analysis plan:
` + "```json" + `
${PLAN_JSON}
` + "```" + `

2. The generated test files:
${FILES}

${USER_CONTEXT}

Your task is to conduct an extremely thorough validation of the code against strict POM standards and Robot Framework best practices. You MUST check for and fix all of the following issues:

1. **Critical POM Structure Validation:**
   * VERIFY all page files ONLY contain element locators and variables, NOT keyword implementations
   * VERIFY all keywords are implemented in the keywords directory, NOT in page files
   * VERIFY test files ONLY call keywords from keyword files, never directly interact with page elements
   * VERIFY directory structure is correct with pages, keywords, tests, and resources properly separated

2. **File Organization:**
   * VERIFY each file is in its correct directory as specified in the analysis plan
   * VERIFY imports use correct relative paths between files (../pages/, ../keywords/, etc.)
   * VERIFY no implementation logic is in the wrong file type

3. **Element and Keyword Validation:**
   * VERIFY all elements mentioned in the analysis plan are properly defined as variables
   * VERIFY all keywords mentioned in test cases are properly implemented
   * VERIFY no hardcoded locators in keyword implementations

4. **Import and Resource Validation:**
   * VERIFY all necessary imports are present in each file
   * VERIFY correct library imports (SeleniumLibrary, etc.) in appropriate files
   * VERIFY resource files are imported where needed with correct paths

5. **Robot Framework Syntax:**
   * VERIFY proper Robot Framework syntax, indentation, and structure
   * VERIFY proper variable naming conventions
   * VERIFY proper keyword naming and arguments

6. **Test Completeness:**
   * VERIFY test cases include all steps from the analysis plan
   * VERIFY proper setup and teardown implementation
   * VERIFY all required libraries are properly used

7. **Critical Fix Requirements:**
   * CREATE missing files if needed to complete the POM structure
   * RELOCATE code to correct files if found in wrong locations
   * RESOLVE import issues with correct paths
   * IMPLEMENT missing keywords required by tests
   * SPLIT files that inappropriately mix different POM concerns

Instructions for your response:
1. First, provide a detailed JSON validation report with these fields:
   * "issues_found" (boolean): Whether issues were found
   * "critical_pom_violations" (array): List of violations of POM structure
   * "missing_implementations" (array): Missing keywords or elements
   * "incorrect_file_organization" (array): Code in wrong files/directories
   * "syntax_errors" (array): Robot Framework syntax issues
   * "import_errors" (array): Missing or incorrect imports
   * "recommended_fixes" (array): Specific fixes needed

2. Then, provide ALL fixed files, regardless of whether they needed changes or not:
   * Include the full file path with the format "--- File: path/to/file ---"
   * Provide the COMPLETE fixed content for the file
   * If creating new files, mark them as "--- File: path/to/new/file (NEW) ---"

Review the code extremely carefully, focusing especially on proper POM structure separation between pages, keywords, and tests.
`
