package domain

// OpenPosition is one role from the careers page catalog.
type OpenPosition struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// OpenPositions is the fixed catalog of roles applications are
// accepted for.
var OpenPositions = []OpenPosition{
	{Title: "Software Developer", Description: "Build scalable applications with modern technologies", Type: "Full-time/Interns"},
	{Title: "Front-end Developer", Description: "Create beautiful and responsive user interfaces", Type: "Full-time/Interns"},
	{Title: "Back-end Developer", Description: "Design and implement robust server-side solutions", Type: "Full-time/Interns"},
	{Title: "UI/UX Designer", Description: "Shape exceptional user experiences through design", Type: "Full-time/Interns"},
	{Title: "QA Engineer", Description: "Ensure quality and reliability across our products", Type: "Full-time/Interns"},
	{Title: "AI Engineer", Description: "Develop cutting-edge AI and machine learning solutions", Type: "Full-time/Interns"},
	{Title: "Research Developer", Description: "Explore innovative technologies and methodologies", Type: "Full-time/Interns"},
}

// IsOpenPosition reports whether title is in the catalog.
func IsOpenPosition(title string) bool {
	for _, p := range OpenPositions {
		if p.Title == title {
			return true
		}
	}
	return false
}
