package describe

import "regexp"

// Section labels, from most to least specific. Classification walks the rule
// table in order and the first matching rule wins, so narrow labels must sit
// above the broad catch-alls that would otherwise swallow their headings
// ("Required Skills" is REQUIRED, not QUALIFICATIONS).
const (
	LabelTravel           = "TRAVEL"
	LabelNotice           = "NOTICE"
	LabelProcess          = "PROCESS"
	LabelCompensation     = "COMPENSATION"
	LabelCompany          = "COMPANY"
	LabelClassification   = "CLASSIFICATION"
	LabelEligibility      = "ELIGIBILITY"
	LabelIdentifier       = "IDENTIFIER"
	LabelModel            = "MODEL"
	LabelEnvironment      = "ENVIRONMENT"
	LabelPreferred        = "PREFERRED"
	LabelRequired         = "REQUIRED"
	LabelQualifications   = "QUALIFICATIONS"
	LabelResponsibilities = "RESPONSIBILITIES"
	LabelDescription      = "DESCRIPTION"
	LabelTitle            = "TITLE"
	LabelDetails          = "DETAILS"
	LabelLocation         = "LOCATION"
	LabelDate             = "DATE"
	LabelNotes            = "NOTES"
	LabelLink             = "LINK"
)

type rule struct {
	label string
	re    *regexp.Regexp
}

var rules = []rule{
	{LabelTravel, regexp.MustCompile(`(?i)\b(?:travel|work flexibility)\b`)},
	{LabelNotice, regexp.MustCompile(`(?i)\b(?:equal (?:opportunit(?:y|ies)|employ(?:ment|ee))|eeoc?|eoe|accommodations?|accessibility|candidate data|privacy polic(?:y|ies)|notices?|discl(?:aimer|osure)s?|(?:our|culture) commitment|commit(?:ted|ment)(?: to)|disabilit(?:y|ies)|discrimination|veterans?|inclusi(?:ve|on)|diversity|recruit(?:ing|ment|ers)|unsolicited|agencies|fair chance|los angeles county|county of los angeles|drug|your rights?|fraud(?:ulent)|statements|recent awards)\b`)},
	{LabelProcess, regexp.MustCompile(`(?i)\b(?:appl(?:y(?:ing)?|ication)|interview|expression of interest|(?:u\.s\.|multiple|number of) positions)\b`)},
	{LabelCompensation, regexp.MustCompile(`(?i)\$|\b(?:salary|pay|compensation|benefits?|perks?|rewards?|we offer|in it for you|retirement|pto|stipend|time[-\s]off|company vehicle|relocat(?:e|ion)|you(?:'ed|'ll| will) (?:love|like))\b`)},
	{LabelCompany, regexp.MustCompile(`(?i)\b(?:nyse|nasdaq|about (?:(?:the|our) (?:company|team|organization|group)|us)|our (?:values|culture|purpose)|who we are|why join|join us|company overview|team description)\b`)},
	{LabelClassification, regexp.MustCompile(`(?i)(?:^(?:job|business|career|functional) (?:area|family|level|segment|unit|stream)|\b(?:(?:sub)?category|reports? to|division))\b`)},
	{LabelEligibility, regexp.MustCompile(`(?i)\b(?:eligibility|screenings?|clearances?|citizenship|(?:work|employment) authorization|ead|visa|sponsorship|(?:eligibility|special) requirements?|itar|export control(?:led)?|conditions of (?:employ|appoint)ment|e-verify|foreign national)\b`)},
	{LabelIdentifier, regexp.MustCompile(`(?i)\b(?:(?:job|req(?:uisition)?|position) (?:id|code|number)|#.+)\b`)},
	{LabelModel, regexp.MustCompile(`(?i)\b(?:remote(?:ly)?|(?:work(?:place)?|job) (?:model|mode|schedules?|arrangement|options?)|flexible working|schedule for this position|workplace type|hybrid|onsite|commute|type|shift|duration|hour(?:s|ly)|flsa)\b`)},
	{LabelEnvironment, regexp.MustCompile(`(?i)\b(?:work(?:ing)? environment|work(?:ing) conditions|physical demands)\b`)},
	{LabelPreferred, regexp.MustCompile(`(?i)\b(?:prefer(?:red|ences?)?|desir(?:ed|able)|(?:nice|good)(?:[-\s]?to[-\s]?| if you )haves?|(?:to|you) stand out|sets? you apart|bonus|extra credit|accelerators|competitive edge|even better|keywords)\b`)},
	{LabelRequired, regexp.MustCompile(`(?i)\b(?:require(?:d|ments?)|qualifications?|must[-\s]?haves?|need to (?:see|have|succeed)|you(?:'ll| will)? (?:bring|need|have)|must have|compentenc(?:y|ies)|mandatory|minimum|basic)\b|\bmin\.\s`)},
	{LabelQualifications, regexp.MustCompile(`(?i)\b(?:skills?|abilit(?:y|ies)?|knowledge|background|credentials?|academic|education|certifications?|experience|expertise|proficienc(?:y|ies)|we(?:'re| are)? (?:look(?:ing)? for|seeking)|who you are|the person|tech stack|collaboration|we value|competencies|ideal candidate)\b`)},
	{LabelResponsibilities, regexp.MustCompile(`(?i)\b(?:(?:responsib|accountab)(?:le|ility|ilities)|duties|you will|will you do|you'll .*?(?:do(?:ing)?|work(?:ing)? on|build(?:ing)?|achieve|get to|gain|grow|learn)|impact|your mission|day in the life|(?:essential|job) functions|\d0 days|purpose|the challenge|percentage of time|projects?)\b`)},
	{LabelDescription, regexp.MustCompile(`(?i)\b(?:description|summary|overview|introduction|role|opportunity|position)\b`)},
	{LabelTitle, regexp.MustCompile(`(?i)\b(?:title|develop(?:er|ment)|engineer(?:ing))\b`)},
	{LabelDetails, regexp.MustCompile(`(?i)\b(?:(?:other|additional|general)(?: important)? information|details|logistics|recruiter)\b`)},
	{LabelCompany, regexp.MustCompile(`(?i)\b(?:about \w+|compan(?:y|ies)|department|team|organization|employer|program|missions?|culture|values|who (?:are we|we are|will you)|our (?:vision|people)|working with us|learn more|what we(?: do|'re doing))\b`)},
	{LabelLocation, regexp.MustCompile(`(?i)\b(?:locations?|city|state|province|, [A-Z]{2})\b`)},
	{LabelDescription, regexp.MustCompile(`(?i)\b(?:job|work)\b`)},
	{LabelDate, regexp.MustCompile(`(?i)\b(?:date|posted on)\b`)},
	{LabelNotes, regexp.MustCompile(`(?i)\b(?:notes?)\b`)},
	{LabelLink, regexp.MustCompile(`(?i)\b(?:https?|www)\b`)},
}

// Classify maps a section heading to its label, or "" when no rule matches.
func Classify(heading string) string {
	for _, r := range rules {
		if r.re.MatchString(heading) {
			return r.label
		}
	}
	return ""
}
