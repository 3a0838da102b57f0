// Package content holds the portfolio copy and section data rendered into
// the pages. Section order here is the order the tracker registers.
package content

// Section is one entry in the navigable content flow of the home page.
type Section struct {
	ID       string
	TitleKey string // translation key for the section heading
}

// Sections lists the home page sections in display order.
var Sections = []Section{
	{ID: "hero", TitleKey: "nav.home"},
	{ID: "about", TitleKey: "about.title"},
	{ID: "experience", TitleKey: "about.subtitle"},
	{ID: "skills", TitleKey: "skills.title"},
	{ID: "projects", TitleKey: "projects.title"},
	{ID: "contact", TitleKey: "contact.title"},
}

// SectionIDs returns the ids of Sections in order.
func SectionIDs() []string {
	ids := make([]string, len(Sections))
	for i, s := range Sections {
		ids[i] = s.ID
	}
	return ids
}

// Project is a portfolio project card.
type Project struct {
	Title       string
	Description string
	Tech        []string
	Highlights  []string
	GithubURL   string
	LiveURL     string
}

// Profile is the site owner's presentation data.
type Profile struct {
	Name   string
	Role   string
	Email  string
	Github string
}

var Owner = Profile{
	Name:   "Ghassen Kharrat",
	Role:   "Full Stack Developer",
	Email:  "contact@ghassen-kharrat.dev",
	Github: "https://github.com/ghassen-kharrat",
}

var Projects = []Project{
	{
		Title:       "JCI Kairouan Platform",
		Description: "A comprehensive full-stack web application developed for the JCI Kairouan chapter, featuring user authentication, social networking, real-time chat, and AI-powered chatbot assistance.",
		Tech:        []string{"React", "Node.js", "MySQL", "Socket.io", "Material UI", "Google Generative AI"},
		Highlights: []string{
			"Implemented real-time chat system using Socket.io with both private and public channels",
			"Integrated Google Generative AI (Gemini) for intelligent chatbot assistance",
			"Built a comprehensive admin dashboard with Chart.js for data visualization",
			"Developed multilingual support system with dynamic content management",
		},
		GithubURL: "https://github.com/ghassen-kharrat/jci-platform",
		LiveURL:   "https://jci-kairouan.example.com",
	},
	{
		Title:       "Fallah SMART – Agricultural App",
		Description: "A smart farming application integrating stock management with low-stock alerts, AI-based plant scanning for disease detection, and financial tracking tools.",
		Tech:        []string{"React Native", "Node.js", "TensorFlow", "MongoDB", "Express"},
		Highlights: []string{
			"Implemented real-time notifications for stock management",
			"Integrated TensorFlow for image recognition and plant disease detection",
			"Built a BI module generating performance insights and personalized advice",
			"Created a responsive UI for both tablet and mobile devices",
		},
		GithubURL: "https://github.com/ghassen-kharrat/fallah-smart",
		LiveURL:   "https://fallah-smart.example.com",
	},
	{
		Title:       "Game Zone – Gaming Platform",
		Description: "An interactive gaming platform featuring 2D/3D games, user authentication, and live chat functionality, with a scoring system spanning games.",
		Tech:        []string{"React", "Three.js", "Socket.io", "Express", "MongoDB"},
		Highlights: []string{
			"Developed multiple game prototypes using Three.js for 3D rendering",
			"Implemented a unified scoring and achievement system",
			"Created real-time chat rooms using Socket.io",
			"Built user authentication with JWT and role-based access",
		},
		GithubURL: "https://github.com/ghassen-kharrat/game-zone",
		LiveURL:   "https://game-zone.example.com",
	},
	{
		Title:       "Dish Dash – Food Delivery App",
		Description: "A full-featured food delivery application with real-time order tracking and secure payment processing, connecting customers with restaurants and couriers.",
		Tech:        []string{"Next.js", "GraphQL", "Stripe", "MongoDB", "Tailwind CSS"},
		Highlights: []string{
			"Implemented real-time order tracking with WebSockets",
			"Integrated Stripe payment gateway for secure transactions",
			"Developed a restaurant dashboard for order management",
			"Created an algorithm for efficient delivery routing",
		},
		GithubURL: "https://github.com/ghassen-kharrat/dish-dash",
		LiveURL:   "https://dish-dash.example.com",
	},
}

// Skills groups the skills section content.
var Skills = map[string][]string{
	"frontend": {"React", "Next.js", "TypeScript", "Tailwind CSS", "Three.js"},
	"backend":  {"Node.js", "Express", "GraphQL", "MySQL", "MongoDB"},
	"tools":    {"Docker", "GitHub Actions", "AWS", "Stripe", "Socket.io"},
}
