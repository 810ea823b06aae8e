// Package agent produces response text from a generative model on behalf of
// one of the mentor personas.
package agent

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownAgent is returned by Lookup for names outside the persona set.
var ErrUnknownAgent = errors.New("unknown agent")

type Persona string

const (
	Career    Persona = "career"
	Skills    Persona = "skills"
	Trends    Persona = "trends"
	Interview Persona = "interview"
)

// Agent is a persona with the system prompt sent ahead of every question.
type Agent struct {
	Name        Persona
	Title       string
	Description string
	Prompt      string
}

var agents = []Agent{
	{
		Name:        Career,
		Title:       "Career Mentor",
		Description: "Suggests career paths with skills, courses and timelines",
		Prompt: `You are a professional AI Career Mentor. A student tells you their current skills, branch, and year.
Suggest 3-5 suitable career paths, including required skills, recommended courses, and estimated timeline to reach entry-level proficiency.
Present the answer in a clear, structured list with emojis for visual appeal. Be encouraging and specific about actionable next steps.`,
	},
	{
		Name:        Skills,
		Title:       "Skills Gap Analyzer",
		Description: "Lists missing skills for a target role with a learning roadmap",
		Prompt: `You are a Skills Gap Analyzer AI. A student provides their current skills and a target career role.
List the skills they are missing, suggest the best resources to learn them, and provide a priority roadmap (which skills to learn first).
Use emojis and present in a clear priority order with estimated learning timeframes.`,
	},
	{
		Name:        Trends,
		Title:       "Market Trends",
		Description: "Top in-demand jobs, skill trends and salary ranges for a sector",
		Prompt: `You are an AI Market Trends Agent. Given a student's preferred career sector, provide the top 5 in-demand jobs in India,
upcoming skill trends, and potential salary ranges. Present it in a structured format with clear sections:

## In-Demand Jobs for [Student Name] (India)

Use a table format with these columns: Rank | Job Title | In-Demand Skills | Salary Range (INR LPA) | Growth Indicator | Market Outlook

**Upcoming Skill Trends:**
* List key emerging skills
* Focus on what's growing in India's market

**Market Outlook:** Brief summary of the sector's future

Make it clean, professional, and easy to read with proper formatting.`,
	},
	{
		Name:        Interview,
		Title:       "Interview Coach",
		Description: "Asks role-specific interview questions and coaches the answers",
		Prompt: `You are an AI Interview Coach. Ask the student 3-5 relevant interview questions for their target role.
Evaluate their answers and provide tips to improve, including examples of better responses. Be supportive and constructive in your feedback.`,
	},
}

// Agents returns every persona in display order.
func Agents() []Agent {
	return append([]Agent(nil), agents...)
}

// Names returns the persona names in display order.
func Names() []string {
	out := make([]string, len(agents))
	for i, a := range agents {
		out[i] = string(a.Name)
	}
	return out
}

// Lookup finds a persona by name, ignoring case and surrounding space.
func Lookup(name string) (Agent, error) {
	n := Persona(strings.ToLower(strings.TrimSpace(name)))
	for _, a := range agents {
		if a.Name == n {
			return a, nil
		}
	}
	return Agent{}, fmt.Errorf("%w: %q", ErrUnknownAgent, name)
}

// Profile is the optional student context appended to prompts.
type Profile struct {
	Name   string
	Branch string
	Year   int
	Skills []string
}

func (p Profile) empty() bool {
	return p.Name == "" && p.Branch == "" && p.Year == 0 && len(p.Skills) == 0
}

// Context renders the profile as a single prompt line, or "" when empty.
func (p Profile) Context() string {
	if p.empty() {
		return ""
	}
	year := ""
	if p.Year > 0 {
		year = strconv.Itoa(p.Year)
	}
	return fmt.Sprintf("Student Profile: %s, %s, Year %s, Skills: %s",
		p.Name, p.Branch, year, strings.Join(p.Skills, ", "))
}

// BuildPrompt joins the persona prompt, profile context and question.
func BuildPrompt(a Agent, p Profile, question string) string {
	return a.Prompt + "\n\n" + p.Context() + "\n\nStudent Question: " + strings.TrimSpace(question)
}
