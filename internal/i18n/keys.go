package i18n

// Key names one UI string. Nested groups use dot-separated names.
type Key string

const (
	KeyTitle    Key = "title"
	KeySubtitle Key = "subtitle"

	KeyFeaturesFast     Key = "features.fast"
	KeyFeaturesAccurate Key = "features.accurate"
	KeyFeaturesFree     Key = "features.free"

	KeyBatchAnalysis Key = "batchAnalysis"
	KeyBackToSingle  Key = "backToSingle"

	KeySelectModel Key = "selectModel"

	KeyJobDescription            Key = "jobDescription"
	KeyJobDescriptionSub         Key = "jobDescriptionSub"
	KeyJobDescriptionEntered     Key = "jobDescriptionEntered"
	KeyJobDescriptionLabel       Key = "jobDescriptionLabel"
	KeyJobDescriptionPlaceholder Key = "jobDescriptionPlaceholder"
	KeyJobDescriptionInfo        Key = "jobDescriptionInfo"
	KeyDeleteJD                  Key = "deleteJD"

	KeyUploadCV        Key = "uploadCV"
	KeyDropHere        Key = "dropHere"
	KeySupportedFormat Key = "supportedFormats"
	KeyAnalyzing       Key = "analyzing"
	KeyPleaseWait      Key = "pleaseWait"
	KeyAIProcessing    Key = "aiProcessing"

	KeyAnalyzeNewCV Key = "analyzeNewCV"
	KeyAnalyzeAll   Key = "analyzeAll"
	KeyExportExcel  Key = "exportExcel"

	KeyScoringTitle Key = "scoringTitle"
	KeyOverallScore Key = "overallScore"
	KeyMatchWithJD  Key = "matchWithJD"
	KeyMatchRate    Key = "matchRate"

	KeySkillsScore     Key = "skillsScore"
	KeyExperienceScore Key = "experienceScore"
	KeyEducationScore  Key = "educationScore"
	KeySoftSkillsScore Key = "softSkillsScore"

	KeyMatchingSkills Key = "matchingSkills"
	KeyMissingSkills  Key = "missingSkills"
	KeyRedFlags       Key = "redFlags"

	KeySkills          Key = "skills"
	KeyExperience      Key = "experience"
	KeyEducation       Key = "education"
	KeyStrengths       Key = "strengths"
	KeyRecommendations Key = "recommendations"
	KeyNoInfo          Key = "noInfo"
	KeyUnknown         Key = "unknown"
	KeyNotAvailable    Key = "notAvailable"

	KeyAISuggestions        Key = "aiSuggestions"
	KeyAISuggestionsDesc    Key = "aiSuggestionsDesc"
	KeyInterviewQuestions   Key = "interviewQuestions"
	KeySalaryRecommendation Key = "salaryRecommendation"
	KeyNoSalaryInfo         Key = "noSalaryInfo"
	KeyCareerPath           Key = "careerPath"

	KeyBatchTitle          Key = "batchTitle"
	KeyBatchSubtitle       Key = "batchSubtitle"
	KeySelectMultipleFiles Key = "selectMultipleFiles"
	KeyFilesSelected       Key = "filesSelected"
	KeyResults             Key = "results"

	KeyRank          Key = "rank"
	KeyName          Key = "name"
	KeyScore         Key = "score"
	KeyMatch         Key = "match"
	KeySkillsLabel   Key = "skillsLabel"
	KeyRedFlagsLabel Key = "redFlagsLabel"
	KeyClean         Key = "clean"
	KeyFlags         Key = "flags"

	KeySuccessMessage    Key = "successMessage"
	KeySuccessSubMessage Key = "successSubMessage"
	KeyErrorMessage      Key = "errorMessage"
	KeySelectAtLeastOne  Key = "selectAtLeastOne"
	KeyBatchError        Key = "batchError"
	KeyExportError       Key = "exportError"
	KeyUnsupportedFile   Key = "unsupportedFile"
	KeyFileTooLarge      Key = "fileTooLarge"
)

// Keys lists every key; each language table must define all of them.
var Keys = []Key{
	KeyTitle, KeySubtitle,
	KeyFeaturesFast, KeyFeaturesAccurate, KeyFeaturesFree,
	KeyBatchAnalysis, KeyBackToSingle,
	KeySelectModel,
	KeyJobDescription, KeyJobDescriptionSub, KeyJobDescriptionEntered,
	KeyJobDescriptionLabel, KeyJobDescriptionPlaceholder, KeyJobDescriptionInfo, KeyDeleteJD,
	KeyUploadCV, KeyDropHere, KeySupportedFormat, KeyAnalyzing, KeyPleaseWait, KeyAIProcessing,
	KeyAnalyzeNewCV, KeyAnalyzeAll, KeyExportExcel,
	KeyScoringTitle, KeyOverallScore, KeyMatchWithJD, KeyMatchRate,
	KeySkillsScore, KeyExperienceScore, KeyEducationScore, KeySoftSkillsScore,
	KeyMatchingSkills, KeyMissingSkills, KeyRedFlags,
	KeySkills, KeyExperience, KeyEducation, KeyStrengths, KeyRecommendations,
	KeyNoInfo, KeyUnknown, KeyNotAvailable,
	KeyAISuggestions, KeyAISuggestionsDesc, KeyInterviewQuestions,
	KeySalaryRecommendation, KeyNoSalaryInfo, KeyCareerPath,
	KeyBatchTitle, KeyBatchSubtitle, KeySelectMultipleFiles, KeyFilesSelected, KeyResults,
	KeyRank, KeyName, KeyScore, KeyMatch, KeySkillsLabel, KeyRedFlagsLabel, KeyClean, KeyFlags,
	KeySuccessMessage, KeySuccessSubMessage, KeyErrorMessage, KeySelectAtLeastOne,
	KeyBatchError, KeyExportError, KeyUnsupportedFile, KeyFileTooLarge,
}
