package tracker

// Keyword tables driving classification. All matching is substring
// search over the lower-cased subject and content.

var applicationKeywords = []string{
	"application", "job", "position", "career", "vacancy", "applied",
	"opportunity", "employment", "recruiting", "talent", "candidate",
	"resume", "cv", "cover letter", "hiring", "developer", "engineer",
}

var rejectionKeywords = []string{
	"regret", "unfortunately", "not moving forward", "not selected",
	"unable to proceed", "not a match", "not the right fit",
	"other candidates", "no longer", "will not", "cannot",
}

var interviewKeywords = []string{
	"progress your application", "video interview", "happy to invite",
	"excited to move forward", "i'm excited",
}

var jobTitles = []string{
	"software developer", "software engineer", "web developer",
	"full stack developer", "backend developer", "frontend developer",
	"data engineer", "data scientist", "machine learning engineer",
	"devops engineer", "cloud engineer", "mobile developer",
	"ios developer", "android developer", "security engineer",
	"game developer", "qa engineer", "product manager",
}

// freeMailDomains never identify an employer.
var freeMailDomains = []string{"gmail", "hotmail", "outlook", "yahoo", "aol", "mail"}

const (
	defaultPosition = "Software Developer"
	unknownCompany  = "Unknown Company"
)
