// Package keywords provides lexical keyword extraction from job description text.
package keywords

import "strings"

// Vocabulary is the curated list of technical terms matched against job
// descriptions. Extraction output preserves this order, so the list itself
// defines the canonical keyword ordering for downstream scoring.
var Vocabulary = []string{
	// Languages
	"Python", "Java", "JavaScript", "TypeScript", "Go", "Rust", "C++", "C#",
	"Ruby", "PHP", "Swift", "Kotlin", "SQL",
	// Frontend
	"React", "Next.js", "Vue.js", "Angular", "HTML", "CSS", "Tailwind",
	"Bootstrap", "Redux",
	// Backend
	"Node.js", "Express", "Django", "Flask", "Spring Boot", "FastAPI",
	"GraphQL", "REST", "gRPC", "WebSocket",
	// Databases
	"PostgreSQL", "MySQL", "MongoDB", "SQLite", "Redis", "Elasticsearch",
	"DynamoDB",
	// Cloud & infra
	"AWS", "GCP", "Azure", "Docker", "Kubernetes", "Terraform", "Nginx",
	"Lambda", "S3", "EC2", "CloudFormation",
	// Practices & tooling
	"CI/CD", "Git", "GitHub", "Agile", "Scrum", "TDD", "Microservices",
	"Linux", "Kafka", "OAuth", "JWT", "Machine Learning",
}

// Extract returns the subset of Vocabulary whose terms appear as
// case-insensitive substrings of text, in vocabulary order. The same input
// always produces the same output; empty input yields an empty set.
func Extract(text string) []string {
	matched := []string{}
	if strings.TrimSpace(text) == "" {
		return matched
	}

	lower := strings.ToLower(text)
	for _, term := range Vocabulary {
		if strings.Contains(lower, strings.ToLower(term)) {
			matched = append(matched, term)
		}
	}

	return matched
}
