package catalog

// defaultCourses is the built-in offering list used when no catalog file is configured.
var defaultCourses = []Course{
	// Core / Foundation
	{Code: "CS101", Title: "Programming I: C/C++", Credits: 3, Domain: "Core"},
	{Code: "CS102", Title: "Data Structures", Credits: 4, Domain: "Core"},
	{Code: "CS103", Title: "Discrete Mathematics", Credits: 3, Domain: "Core"},
	{Code: "CS104", Title: "Digital Logic & Comp Org", Credits: 3, Domain: "Core"},
	{Code: "CS105", Title: "Algorithms", Credits: 4, Domain: "Core"},
	{Code: "CS106", Title: "Operating Systems", Credits: 4, Domain: "Core"},
	{Code: "CS107", Title: "Computer Networks", Credits: 3, Domain: "Core"},
	{Code: "CS108", Title: "Database Systems", Credits: 4, Domain: "Core"},

	// Software Engineering
	{Code: "SE201", Title: "Software Engineering", Credits: 3, Domain: "SE"},
	{Code: "SE202", Title: "Web Technologies", Credits: 3, Domain: "SE"},
	{Code: "SE203", Title: "Mobile App Development", Credits: 2, Domain: "SE"},
	{Code: "SE204", Title: "DevOps & CI/CD", Credits: 2, Domain: "SE"},

	// Theory
	{Code: "TM301", Title: "Theory of Computation", Credits: 3, Domain: "Theory"},
	{Code: "TM302", Title: "Linear Algebra & Numerical Methods", Credits: 3, Domain: "Theory"},
	{Code: "TM303", Title: "Probability & Statistics", Credits: 3, Domain: "Theory"},

	// Systems & Security
	{Code: "SYS401", Title: "Distributed Systems", Credits: 3, Domain: "Systems"},
	{Code: "SYS402", Title: "Cloud Computing", Credits: 3, Domain: "Systems"},
	{Code: "SEC403", Title: "Cybersecurity Fundamentals", Credits: 3, Domain: "Security"},
	{Code: "SEC404", Title: "Cryptography", Credits: 3, Domain: "Security"},

	// AI / Data
	{Code: "AI501", Title: "Introduction to AI", Credits: 3, Domain: "AI"},
	{Code: "AI502", Title: "Machine Learning", Credits: 4, Domain: "AI"},
	{Code: "AI503", Title: "Deep Learning", Credits: 4, Domain: "AI"},
	{Code: "DS504", Title: "Data Mining", Credits: 3, Domain: "Data"},
	{Code: "DS505", Title: "Big Data Technologies", Credits: 3, Domain: "Data"},

	// HCI / Multimedia
	{Code: "HM601", Title: "Human-Computer Interaction", Credits: 2, Domain: "HCI"},
	{Code: "HM602", Title: "Computer Graphics", Credits: 3, Domain: "HCI"},
	{Code: "HM603", Title: "Image Processing", Credits: 3, Domain: "HCI"},
	{Code: "HM604", Title: "AR/VR Basics", Credits: 2, Domain: "HCI"},

	// Interdisciplinary
	{Code: "IS701", Title: "Ethics in Computing", Credits: 1, Domain: "Interdisciplinary"},
	{Code: "IS702", Title: "Entrepreneurship & Startups", Credits: 1, Domain: "Interdisciplinary"},
	{Code: "IS703", Title: "Technical Communication", Credits: 1, Domain: "Interdisciplinary"},
	{Code: "IS704", Title: "Internship / Project Lab", Credits: 4, Domain: "Interdisciplinary"},
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return MustNew(defaultCourses)
}
