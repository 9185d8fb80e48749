package intent

// Keyword tables for the classification cascade. The lists deliberately
// overlap across rules and topic groups; cascade order, not score,
// resolves the overlap.

var greetings = []string{
	"hi", "hello", "hey", "good morning", "good afternoon",
	"good evening", "how are you", "what's up",
}

var interrogativeMarkers = []string{
	"tell me", "what", "who", "where", "when", "how", "about",
}

var scheduleKeywords = []string{
	"schedule", "book", "meeting", "call", "appointment", "google meet",
	"teams", "zoom", "video call", "set up a meeting", "arrange", "calendar",
}

var resumeKeywords = []string{
	"resume", "cv", "curriculum vitae", "send me his", "share his",
	"get his resume", "download resume",
}

var askKeywords = []string{
	// general question openers
	"who is", "what does", "tell me about", "tell me", "what is",
	"who are", "what are", "can you tell", "can you share",
	"i want to know", "i would like to know", "i need to know",
	"inform me", "share with me", "describe", "explain",

	// background
	"background", "bio", "biography", "about", "story", "introduction",
	"overview", "summary", "who is he", "what is he", "what does he do",
	"what is his", "who is his", "what are his", "tell me about him",

	// education
	"education", "academics", "academic", "school", "college",
	"university", "degree", "degrees", "gpa", "studies", "qualification",
	"qualifications", "educated", "graduated", "graduation", "masters",
	"bachelors", "bachelor", "master", "phd", "diploma", "certificate",
	"coursework", "courses", "studied", "where did he study",
	"where did he go to school", "what did he study", "his education",
	"his academics", "his degree", "his degrees", "his gpa",
	"his university",

	// experience
	"experience", "work", "job", "jobs", "company", "companies",
	"employment", "career", "careers", "worked", "working", "works at",
	"works for", "employed", "employer", "employers",
	"where does he work", "what does he do for work", "his work",
	"his experience", "his job", "his jobs", "his career",
	"his employment", "work history", "employment history",
	"professional experience", "work background",

	// projects
	"projects", "project", "built", "developed", "created", "made",
	"designed", "portfolio", "work samples", "showcase",
	"what has he built", "what has he created", "what has he developed",
	"his projects", "his creations", "his developments",

	// skills
	"skills", "skill", "expertise", "technologies", "technology", "tech",
	"tools", "tool", "programming", "languages", "language", "frameworks",
	"framework", "libraries", "library", "what can he do",
	"what is he good at", "what does he know", "what technologies",
	"his skills", "his expertise", "his technologies", "his tech stack",
	"what he knows", "proficient", "proficiency", "competent", "capable",

	// achievements
	"achievements", "achievement", "awards", "award", "certifications",
	"certification", "certified", "recognition", "recognitions", "honors",
	"honor", "accomplishments", "accomplishment", "what has he achieved",
	"what awards", "his achievements", "his awards", "his certifications",
	"his recognition", "certificates",

	// contact
	"contact", "email", "phone", "number", "address", "location",
	"where is he", "where does he live", "how to contact",
	"how can i reach", "his contact", "his email", "his phone",
	"his location", "linkedin", "github", "social media", "social",
	"website", "portfolio site",

	// goals and interests
	"goals", "goal", "aspirations", "aspiration", "objectives",
	"objective", "aims", "aim", "interests", "interest", "hobbies",
	"hobby", "likes", "like", "passions", "passion", "what are his goals",
	"what are his interests", "his goals", "his interests", "his hobbies",

	// personality and misc
	"personality", "character", "traits", "trait", "values", "value",
	"principles", "principle", "age", "birthday", "birth date", "from",
	"origin", "nationality", "where is he from", "years of experience",
	"how long", "how many years", "experience level",

	// third-person pronouns
	"he", "his", "him", "himself",
}

type topicGroup struct {
	topic    Topic
	keywords []string
}

// topicGroups is evaluated in order; the first group with a hit wins.
var topicGroups = []topicGroup{
	{TopicEducation, []string{
		"education", "academics", "academic", "school", "college",
		"university", "degree", "degrees", "gpa", "studies",
		"qualification", "qualifications", "educated", "graduated",
		"graduation", "masters", "bachelors", "bachelor", "master",
		"coursework", "courses", "studied", "where did he study",
		"where did he go to school", "what did he study",
	}},
	{TopicExperience, []string{
		"experience", "work", "job", "jobs", "company", "companies",
		"employment", "career", "careers", "worked", "working",
		"works at", "works for", "employed", "employer",
		"where does he work", "work history", "employment history",
		"professional experience",
	}},
	{TopicProjects, []string{
		"projects", "project", "built", "developed", "created", "made",
		"designed", "portfolio", "work samples", "showcase",
		"what has he built", "what has he created",
		"what has he developed",
	}},
	{TopicSkills, []string{
		"skills", "skill", "expertise", "technologies", "technology",
		"tech", "tools", "tool", "programming", "languages", "language",
		"frameworks", "framework", "libraries", "library",
		"what can he do", "what is he good at", "what does he know",
		"what technologies", "tech stack", "proficient", "proficiency",
	}},
	{TopicAchievements, []string{
		"achievements", "achievement", "awards", "award",
		"certifications", "certification", "certified", "recognition",
		"recognitions", "honors", "honor", "accomplishments",
		"accomplishment", "certificates", "certificate",
	}},
	{TopicBackground, []string{
		"background", "bio", "biography", "about", "story",
		"introduction", "overview", "summary", "who is he",
	}},
	{TopicGoals, []string{
		"goals", "goal", "aspirations", "aspiration", "objectives",
		"objective", "aims", "aim",
	}},
	{TopicInterests, []string{
		"interests", "interest", "hobbies", "hobby", "likes", "like",
		"passions", "passion",
	}},
	{TopicContact, []string{
		"contact", "email", "phone", "number", "address", "location",
		"where is he", "where does he live", "how to contact",
		"how can i reach", "linkedin", "github", "social media", "social",
		"website",
	}},
}
