package terminal

// DefaultScript is the session shown in the portfolio terminal.
var DefaultScript = []Command{
	{Input: "whoami", Output: []string{
		"guo.zenan - Software Engineer",
		"Currently studying at Taylor's University",
	}},
	{Input: "skills --list", Output: []string{
		"├── Java Development ✓",
		"├── Data Science & Analytics ✓",
		"└── Android Frontend Development ✓",
	}},
	{Input: "status", Output: []string{
		"Status: Available for opportunities",
		"Location: Kuala Lumpur, Malaysia",
		"Currently: WBL Internship at YTL Communications",
	}},
	{Input: "contact --info", Output: []string{
		"Email: g2540652486@gmail.com",
		"GitHub: github.com/blakezenan",
		"LinkedIn: linkedin.com/in/zenan-guo",
	}},
}
