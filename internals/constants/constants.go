package constants

// Fallback identities. Submissions without a known user are attributed to the
// demo user; history queries without a userId read as the anonymous identity.
// Kept as explicit sentinels so the fallback is visible at every call site.
const (
	DemoUserID      = "demo-user"
	AnonymousUserID = "anonymous"
	DemoUserName    = "Demo User"
	DemoEmailDomain = "example.com"
)

// Aptitude quiz flow
const (
	QuizCategoryAptitude       = "APTITUDE"
	DefaultTargetLevel         = "CLASS_12"
	QuestionTypeMultipleChoice = "MULTIPLE_CHOICE"
	QuestionsPerQuiz           = 5
)

// Topic keys accepted by the question source. "Random" is a topic of its own
// on the source side, not a meta-selector.
var QuizTopics = []string{
	"Random",
	"MixtureAndAlligation",
	"ProfitAndLoss",
	"PipesAndCistern",
	"Age",
	"PermutationAndCombination",
	"SpeedTimeDistance",
	"SimpleInterest",
	"Calendar",
}
