package parser

import "resume-screener/internal/domain/resume"

// Skill taxonomy kept as plain data so extending it never touches extractor
// logic. Ordering is significant: the taxonomy pass emits skills in this
// order, and dedup keeps the first occurrence.
type taxonomyBucket struct {
	Category string
	Skills   []string
}

var skillTaxonomy = []taxonomyBucket{
	{
		Category: resume.CategoryTechnical,
		Skills: []string{
			// Programming languages
			"javascript", "python", "java", "c++", "c#", "php", "ruby", "go", "rust", "swift", "kotlin", "typescript",
			// Frameworks and libraries
			"react", "angular", "vue", "node.js", "express", "django", "flask", "spring", "laravel", ".net",
			// Databases
			"mysql", "postgresql", "mongodb", "redis", "elasticsearch", "oracle", "sql server",
			// Cloud and devops
			"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "terraform", "ansible",
			// Other technical
			"git", "linux", "windows", "html", "css", "sass", "webpack", "babel",
		},
	},
	{
		Category: resume.CategorySoft,
		Skills: []string{
			"leadership", "communication", "teamwork", "problem solving", "analytical thinking",
			"project management", "time management", "adaptability", "creativity", "collaboration",
		},
	},
	{
		Category: resume.CategoryDomain,
		Skills: []string{
			"machine learning", "data science", "artificial intelligence", "cybersecurity",
			"blockchain", "mobile development", "web development", "devops", "ui/ux design",
		},
	},
}

var skillSectionHeaders = []string{"skills", "technical skills", "competencies", "technologies"}

var experienceSectionHeaders = []string{
	"experience", "work experience", "employment", "work history",
	"professional experience", "career history", "employment history",
}

var educationSectionHeaders = []string{"education", "academic background", "qualifications"}

var certificationSectionHeaders = []string{"certifications", "certificates", "licenses"}

var summarySectionHeaders = []string{"summary", "objective", "profile", "about"}

// Words that mark a line as a job-title line.
var roleIndicators = []string{
	"developer", "engineer", "manager", "analyst", "specialist", "consultant", "director", "lead",
}

var degreeKeywords = []string{"bachelor", "master", "phd", "mba", "bs", "ms", "ba", "ma", "degree"}
