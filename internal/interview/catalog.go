package interview

// Position is a job role the candidate is practicing for.
type Position string

const (
	PositionFrontend  Position = "frontend"
	PositionBackend   Position = "backend"
	PositionFullstack Position = "fullstack"
)

// Positions lists every supported position in display order.
func Positions() []Position {
	return []Position{PositionFrontend, PositionBackend, PositionFullstack}
}

// DisplayName returns a human-readable label for the position.
func (p Position) DisplayName() string {
	switch p {
	case PositionFrontend:
		return "Frontend Developer"
	case PositionBackend:
		return "Backend Developer"
	case PositionFullstack:
		return "Fullstack Developer"
	}
	return string(p)
}

// Valid reports whether p names a known position.
func (p Position) Valid() bool {
	_, ok := positionTopics[p]
	return ok
}

// positionTopics is the fixed topic catalog per position. Topics are
// consumed in slice order; the order is part of the interview design
// (fundamentals first, architecture last).
var positionTopics = map[Position][]string{
	PositionFrontend: {
		"JavaScript/TypeScript fundamentals",
		"React/Vue/Angular frameworks",
		"HTML/CSS and web standards",
		"State management and performance",
		"Web security and authentication",
	},
	PositionBackend: {
		"Primary programming language",
		"Server architecture design",
		"Database design and optimization",
		"API design and security",
		"Caching and performance",
		"Microservice architecture",
	},
	PositionFullstack: {
		"Frontend frameworks",
		"Backend architecture",
		"Databases and caching",
		"DevOps and deployment",
		"System design",
	},
}

// TopicsFor returns the full ordered catalog for a position.
// Returns nil for unknown positions.
func TopicsFor(p Position) []string {
	topics := positionTopics[p]
	out := make([]string, len(topics))
	copy(out, topics)
	return out
}
