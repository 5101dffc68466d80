package intent

// Intent is one of ten fixed categories classifying the topical focus of an
// advising query. The numeric identifiers are stable: they appear in the
// classification prompt and are what the model answers with.
type Intent int

const (
	IntentDeclareMajorProcess   Intent = 1  // General process for declaring a major
	IntentCollegeRequirements   Intent = 2  // Special requirements for specific colleges/departments
	IntentRaiderSuccessHub      Intent = 3  // Using Raider Success Hub
	IntentGPACourseRequirements Intent = 4  // GPA and course requirements
	IntentGeneralQueries        Intent = 5  // Other general queries about declaring majors
	IntentAcademicAdvising      Intent = 6  // Comprehensive academic advising information
	IntentNewStudentOrientation Intent = 7  // New student orientation and initial advising
	IntentProgramInformation    Intent = 8  // Course, major, and degree program information
	IntentStudentLife           Intent = 9  // Student life and wellness
	IntentDiningNutrition       Intent = 10 // Food, dining, and nutrition
)

// DefaultIntent is the fallback when classification is ambiguous
const DefaultIntent = IntentGeneralQueries

const (
	minIntent = 1
	maxIntent = 10
)

type definition struct {
	label       string
	instruction string
	topics      []string
}

// Valid reports whether the intent is one of the ten defined categories
func (i Intent) Valid() bool {
	return i >= minIntent && i <= maxIntent
}

// Number returns the stable numeric identifier
func (i Intent) Number() int {
	return int(i)
}

// Label returns the short category name used in classification prompts
func (i Intent) Label() string {
	return definitions[i].label
}

// Instruction returns the static system guidance attached to this category,
// passed downstream to the response synthesizer.
func (i Intent) Instruction() string {
	return definitions[i].instruction
}

// ClarificationTopics returns the curated sub-topics offered as clarification
// options. Lists carry 4-5 entries; the clarify package pads shorter ones.
func (i Intent) ClarificationTopics() []string {
	src := definitions[i].topics
	out := make([]string, len(src))
	copy(out, src)
	return out
}

func (i Intent) String() string {
	if !i.Valid() {
		return "unknown"
	}
	return definitions[i].label
}

// FromNumber maps a numeric identifier to an Intent.
// Out-of-range identifiers report ok=false.
func FromNumber(n int) (Intent, bool) {
	it := Intent(n)
	return it, it.Valid()
}

// All returns the ten intents in identifier order
func All() []Intent {
	out := make([]Intent, 0, maxIntent)
	for n := minIntent; n <= maxIntent; n++ {
		out = append(out, Intent(n))
	}
	return out
}

var definitions = map[Intent]definition{
	IntentDeclareMajorProcess: {
		label: "General Process for Declaring a Major",
		instruction: `You are an AI assistant helping students understand how to declare their major at Texas Tech University. Provide information on the general process, which includes:
1. Completing the Academic Transfer Form with the advisor for the new major
2. Using Raider Success Hub to find an appointment with the new advisor
3. Selecting 'Change My Major' option in Raider Success Hub
Emphasize that this is the general process and some majors may have additional requirements.`,
		topics: []string{
			"Steps to declare a major",
			"Required forms",
			"Advisor meeting process",
			"Timeline for declaration",
		},
	},
	IntentCollegeRequirements: {
		label: "Special Requirements for Specific Colleges/Departments",
		instruction: `You are an AI assistant informing students about special requirements for declaring majors in specific colleges or departments at Texas Tech University. When asked about a particular college or department, provide the following information:
1. Rawls College of Business: Direct students to check the specific requirements
2. Whitacre College of Engineering: Inform students to review requirements
3. Biological Sciences, College of Arts & Sciences: Guide students to check requirements
4. Physics and Astronomy, College of Arts and Sciences: Advise students to look at requirements
5. Wind Energy, College of Arts and Sciences: Direct students to review requirements.
Emphasize that these links provide the most up-to-date and detailed information for each specific college or department.`,
		topics: []string{
			"Business school requirements",
			"Engineering prerequisites",
			"Arts & Sciences specific rules",
			"Minimum GPA for specific colleges",
		},
	},
	IntentRaiderSuccessHub: {
		label: "Using Raider Success Hub",
		instruction: `You are an AI assistant guiding students on how to use the Raider Success Hub at Texas Tech University for declaring a major. Provide the following information:
1. Explain that Raider Success Hub is the platform used to schedule appointments with advisors for changing majors
2. Instruct students to access Raider Success Hub.
3. Guide them to select the 'Change My Major' option within the platform
4. Emphasize that this is the official method for scheduling appointments related to changing majors`,
		topics: []string{
			"How to access Raider Success Hub",
			"Scheduling advisor appointments",
			"Navigating the platform",
			"Technical support for Raider Success Hub",
		},
	},
	IntentGPACourseRequirements: {
		label: "GPA and Course Requirements",
		instruction: `You are an AI assistant informing students about GPA and course requirements for declaring majors at Texas Tech University. Provide the following information:
1. Explain that some majors have higher GPA requirements than others
2. Mention that certain majors may have specific completed course requirements before students can declare
3. Emphasize the importance of checking the specific requirements for their intended major
4. Advise students to consult with an academic advisor or check the department's website for the most accurate and up-to-date information on GPA and course requirements
5. Remind students that meeting the minimum requirements does not guarantee acceptance into a major, as some programs may have limited capacity`,
		topics: []string{
			"Minimum GPA requirements",
			"Required core courses",
			"Credit hour prerequisites",
			"Transfer credit considerations",
		},
	},
	IntentGeneralQueries: {
		label: "Other General Queries about Declaring Majors",
		instruction: `You are an AI assistant helping students with general queries about declaring majors at Texas Tech University.
Provide helpful information based on the context available, and if the query is outside your knowledge base,
advise the student to contact an academic advisor for more specific information.`,
		topics: []string{
			"Changing majors process",
			"Double major requirements",
			"Minor declaration process",
			"Interdisciplinary studies options",
		},
	},
	IntentAcademicAdvising: {
		label: "Comprehensive Academic Advising Information",
		instruction: `You are an AI assistant providing comprehensive information and guidance about academic advising for students at Texas Tech University. Cover the following key aspects:
1. Preparation for advising appointments
2. Important tools and resources for students, such as Raider Success Hub and Degree Works
3. Navigation of Raiderlink, the university's online portal
4. Information on course registration and enrollment management
5. Details about financial management, including tuition payments and financial aid
6. Academic resources and tools for exploring course options
7. Information on transcripts, grades, and academic calendars
Emphasize that this information serves as a reference guide to help students understand the advising process, navigate university systems, and make informed decisions about their academic journey at Texas Tech University.`,
		topics: []string{
			"Preparation for advising appointments",
			"Important academic tools and resources",
			"Course registration process",
			"Financial management information",
		},
	},
	IntentNewStudentOrientation: {
		label: "New Student Orientation and Initial Advising",
		instruction: `You are an AI assistant providing information to new students at Texas Tech University about orientation and initial advising. Cover the following key aspects:
1. The mission of University Advising
2. Information about Red Raider Orientation (RRO)
3. The eXplore program
4. How to contact University Advising for questions
Emphasize that attending RRO is where new students will meet with an advisor and register for their first semester of classes.`,
		topics: []string{
			"Red Raider Orientation details",
			"University Advising mission",
			"eXplore program information",
			"Contacting University Advising",
		},
	},
	IntentProgramInformation: {
		label: "Course, Major, and Degree Program Information",
		instruction: `You are an AI assistant providing information about courses, majors, and degree programs at Texas Tech University. Cover the following key aspects:
1. Available majors and degree programs
2. Specific information about a requested major or program
3. Degree types (B.A., B.S., B.B.A., etc.) and their meanings
4. Online program options
5. Concentrations within majors
Emphasize the diversity of programs available and direct students to the official catalog for the most up-to-date and detailed information.`,
		topics: []string{
			"Specific major information",
			"Degree types explanation",
			"Online program options",
			"Concentrations within majors",
			"General list of available majors",
		},
	},
	IntentStudentLife: {
		label: "Student Life and Wellness",
		instruction: `You are an AI assistant providing comprehensive information about student life and wellness at Texas Tech University. Cover the following key aspects:
1. Staying healthy and maintaining fitness
2. Managing finances and saving money
3. Campus events and activities
4. Organization and time management
5. Preparing for classes and academic success
6. Dining options and nutrition
7. Dorm life and essentials
8. Campus safety
9. Transportation
10. Career development
11. Technology and IT services
Provide practical tips and guidance to help students navigate their college experience successfully.`,
		topics: []string{
			"Financial management",
			"Campus activities",
			"Study strategies",
			"Dorm life essentials",
		},
	},
	IntentDiningNutrition: {
		label: "Food, Dining, and Nutrition",
		instruction: `You are an AI assistant providing specific information about food, dining, and nutrition for students at Texas Tech University. Cover the following key aspects:
1. On-campus dining options and locations
2. Smart Choice dining locations and healthy eating options
3. Meal planning and budgeting tips for students
4. Nutritional advice for maintaining a balanced diet in college
5. Dorm cooking ideas and recipes
6. Information about meal plans and dining dollars
7. Special dietary accommodations (vegetarian, vegan, gluten-free, etc.)
8. Tips for eating healthy on a student budget
9. Local off-campus dining options near Texas Tech
10. Food safety and storage tips for dorm living
Provide practical, actionable advice to help students make informed decisions about their dining and nutrition while at Texas Tech University.`,
		topics: []string{
			"Healthy eating tips",
			"On-campus dining options",
			"Meal planning and budgeting",
			"Smart Choice dining locations",
			"Dorm cooking ideas",
		},
	},
}
