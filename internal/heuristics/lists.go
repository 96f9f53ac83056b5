// Package heuristics provides pure text-mining functions that classify job
// text and extract structured fields from it. Every extractor tolerates empty
// input and returns a documented default instead of an error or empty value,
// so downstream code never branches on absence.
//
// Keyword dictionaries are passed in as a Lists value rather than read from
// package state, so tests can substitute small fixtures.
package heuristics

// Defaults returned by extractors when nothing matches.
const (
	DefaultOrganization  = "Unknown Organization"
	DefaultPostName      = "Various Posts"
	DefaultVacancies     = "Check Notice"
	DefaultQualification = "See Notification"
	DefaultSalary        = "Best in Industry"
	DefaultLocation      = "All India"
	DefaultExperience    = "Freshers / Experienced"
	DefaultSummary       = "Check details."
	DefaultITRole        = "Software Engineer"
)

// Summarization tuning. Sentences shorter than SummaryMinSentenceLen are
// ignored; at most SummaryMaxSentences qualifying sentences are kept.
const (
	SummaryMinSentenceLen = 25
	SummaryMaxSentences   = 3
)

// Lists holds every keyword dictionary the extractors consult.
type Lists struct {
	// Relevance filtering
	JobKeywords  []string
	DenyKeywords []string

	// Category scoring
	ITKeywords       []string
	GovtKeywords     []string
	BankKeywords     []string
	RailwayKeywords  []string
	PoliceKeywords   []string
	TeachingKeywords []string
	PSUKeywords      []string

	// Title noise stripped before organization extraction
	TitleNoise []string

	// Field extraction
	Qualifications map[string]string // lowercase keyword -> canonical label
	Regions        []string          // states and major cities, canonical casing
	RegionAliases  map[string]string // alias -> canonical (Bengaluru -> Bangalore)
	Skills         []string          // canonical skill names
	Organizations  map[string]string // lowercase company substring -> canonical name
}

// DefaultLists returns the production keyword dictionaries.
func DefaultLists() Lists {
	return Lists{
		JobKeywords: []string{
			"recruitment", "vacancy", "hiring", "apply", "admit", "result",
			"notification", "jobs", "posts", "career", "opening",
		},
		DenyKeywords: []string{
			"modi", "gandhi", "politics", "election", "viral", "opinion",
			"arrest", "dead", "death", "accident", "ipl", "cricket",
			"bollywood", "movie", "killed", "protest", "strike", "murder",
			"scam", "fraud", "hoax", "rumor", "entertainment", "celebrity",
			"gossip", "lifestyle", "fashion", "recipe",
		},
		ITKeywords: []string{
			"software", "developer", "engineer", "programmer", "react",
			"angular", "node", "java", "python", "php", "devops", "aws",
			"cloud", "azure", "kubernetes", "docker", "data analyst",
			"machine learning", "artificial intelligence", "frontend",
			"backend", "fullstack", "full stack", "tech lead", "architect",
			"cybersecurity", "database", "sql", "mongodb", "saas", "fintech",
			"typescript", "javascript", "golang", "rust", "scala", "api",
		},
		GovtKeywords: []string{
			"ssc", "upsc", "rrb", "ibps", "ministry", "department", "psc",
			"kpsc", "mpsc", "uppsc", "bpsc", "rpsc", "gpsc", "wbpsc", "tnpsc",
			"notification", "recruitment board", "central government",
			"state government", "govt", "commissioner", "collector",
			"district", "public service commission",
		},
		BankKeywords: []string{
			"bank", "po", "clerk", "rbi", "sbi", "ibps", "nabard", "sidbi",
			"bank of india", "bank of baroda", "canara bank", "pnb",
			"axis bank", "hdfc bank", "icici bank", "kotak", "yes bank",
			"idbi", "uco bank", "indian bank", "union bank", "banking",
			"probationary officer", "specialist officer",
		},
		RailwayKeywords: []string{
			"railway", "rrb", "ntpc", "alp", "group d", "loco pilot",
			"technician", "rpf", "irctc", "indian railways", "station master",
			"ticket collector", "northern railway", "southern railway",
			"eastern railway", "western railway", "central railway",
			"metro", "dmrc",
		},
		PoliceKeywords: []string{
			"police", "constable", "sub inspector", "head constable",
			"inspector", "crpf", "bsf", "cisf", "itbp", "ssb",
			"paramilitary", "defence", "army", "navy", "air force",
			"coast guard", "nda", "cds", "afcat", "capf", "home guard",
		},
		TeachingKeywords: []string{
			"teacher", "faculty", "professor", "lecturer", "tgt", "pgt",
			"prt", "assistant professor", "kvs", "nvs",
			"kendriya vidyalaya", "navodaya", "ctet", "tet", "stet",
			"university", "college", "school", "principal", "headmaster",
			"educator", "academic",
		},
		PSUKeywords: []string{
			"psu", "public sector", "ntpc", "ongc", "iocl", "bpcl", "hpcl",
			"gail", "bhel", "bel", "hal", "sail", "coal india", "power grid",
			"nhpc", "oil india", "drdo", "isro", "barc", "npcil", "nmdc",
			"nalco", "beml",
		},
		TitleNoise: []string{
			"Latest", "New", "Urgent", "Breaking", "Notification",
			"Recruitment", "Vacancy", "Hiring", "Apply Online", "Result",
			"Admit Card",
		},
		Qualifications: map[string]string{
			"btech": "B.Tech", "mtech": "M.Tech", "graduate": "Any Graduate",
			"degree": "Any Degree", "post graduate": "Post Graduate",
			"10th": "10th Pass", "12th": "12th Pass", "hsc": "HSC",
			"iti": "ITI", "diploma": "Diploma", "mba": "MBA", "mca": "MCA",
			"bcom": "B.Com", "bsc": "B.Sc", "mbbs": "MBBS",
			"phd": "Ph.D", "llb": "LLB/LLM",
		},
		Regions: []string{
			"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar",
			"Chhattisgarh", "Goa", "Gujarat", "Haryana", "Himachal Pradesh",
			"Jharkhand", "Karnataka", "Kerala", "Madhya Pradesh",
			"Maharashtra", "Manipur", "Meghalaya", "Mizoram", "Nagaland",
			"Odisha", "Punjab", "Rajasthan", "Sikkim", "Tamil Nadu",
			"Telangana", "Tripura", "Uttar Pradesh", "Uttarakhand",
			"West Bengal", "Delhi", "Mumbai", "Pune", "Bangalore",
			"Bengaluru", "Chennai", "Hyderabad", "Kolkata", "Noida",
			"Gurgaon", "Gurugram", "Ahmedabad", "Jaipur", "Kochi", "Indore",
			"Coimbatore", "Remote",
		},
		RegionAliases: map[string]string{
			"Bengaluru": "Bangalore",
			"Gurugram":  "Gurgaon",
		},
		Skills: []string{
			"JavaScript", "TypeScript", "Python", "Java", "C++", "C#", "Go",
			"Rust", "React", "Angular", "Vue", "Next.js", "Node.js",
			"Django", "Flask", "Spring", "AWS", "Azure", "GCP", "Docker",
			"Kubernetes", "Terraform", "Jenkins", "Git", "SQL", "PostgreSQL",
			"MySQL", "MongoDB", "Redis", "Elasticsearch", "Machine Learning",
			"Deep Learning", "TensorFlow", "PyTorch", "REST API", "GraphQL",
			"Microservices", "CI/CD", "Linux", "Bash", "HTML", "CSS",
		},
		Organizations: map[string]string{
			"google llc":                 "Google",
			"google inc":                 "Google",
			"microsoft corporation":      "Microsoft",
			"amazon.com":                 "Amazon",
			"meta platforms":             "Meta",
			"facebook":                   "Meta",
			"apple inc":                  "Apple",
			"infosys limited":            "Infosys",
			"tata consultancy services":  "TCS",
			"wipro limited":              "Wipro",
			"accenture solutions":        "Accenture",
			"cognizant technology":       "Cognizant",
			"hcl technologies":           "HCL",
			"tech mahindra limited":      "Tech Mahindra",
			"standard chartered bank":    "Standard Chartered",
			"jpmorgan chase":             "JPMorgan Chase",
		},
	}
}
