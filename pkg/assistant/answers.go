package assistant

import (
	"fmt"
	"strings"

	"github.com/chatfolio/chatfolio-go/pkg/profile"
)

// detailTriggers switch an answer from brief to detailed mode when any
// of them appears in the current utterance.
var detailTriggers = []string{
	"detail", "more", "elaborate", "explain", "comprehensive", "full",
	"complete", "in depth",
}

// detailRequested reports whether the utterance asks for a detailed
// answer. Absence of any trigger means brief.
func detailRequested(utterance string) bool {
	msg := strings.ToLower(utterance)
	for _, trigger := range detailTriggers {
		if strings.Contains(msg, trigger) {
			return true
		}
	}
	return false
}

func possessive(name string) string {
	if name == "" {
		return "The owner's"
	}
	return name + "'s"
}

// formatEducation renders the education section. Brief mode lists
// degree, school, period and GPA; detailed mode adds location and
// coursework.
func formatEducation(p *profile.Record, detailed bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Education:\n\n", possessive(p.Name))

	degrees := []*profile.Degree{p.Education.Masters, p.Education.Bachelors}
	for _, d := range degrees {
		if d == nil {
			continue
		}
		fmt.Fprintf(&b, "%s\n%s", d.Degree, d.School)
		if detailed && d.Location != "" {
			fmt.Fprintf(&b, ", %s", d.Location)
		}
		if d.Period != "" {
			fmt.Fprintf(&b, " (%s)", d.Period)
		}
		b.WriteString("\n")
		if d.GPA != "" {
			fmt.Fprintf(&b, "GPA: %s\n", d.GPA)
		}
		if detailed && len(d.Courses) > 0 {
			b.WriteString("\nRelevant Coursework:\n")
			for _, course := range d.Courses {
				fmt.Fprintf(&b, "- %s\n", course)
			}
		}
		b.WriteString("\n")
	}

	if !detailed {
		b.WriteString("Would you like more details about the coursework or specific courses?")
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatExperience renders work experience. Brief mode lists up to
// three roles; detailed mode lists all roles with descriptions and key
// achievements. An empty experience list still renders the header and
// the follow-up prompt.
func formatExperience(p *profile.Record, detailed bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Work Experience:\n\n", possessive(p.Name))

	roles := p.Experience
	if !detailed && len(roles) > 3 {
		roles = roles[:3]
	}

	for i, role := range roles {
		fmt.Fprintf(&b, "%d. %s at %s", i+1, role.Title, role.Company)
		if role.Client != "" {
			fmt.Fprintf(&b, " (%s)", role.Client)
		}
		b.WriteString("\n")
		if role.Period != "" || role.Location != "" {
			fmt.Fprintf(&b, "%s\n", strings.TrimSuffix(strings.TrimPrefix(role.Period+", "+role.Location, ", "), ", "))
		}
		if detailed {
			if role.Description != "" {
				fmt.Fprintf(&b, "%s\n", role.Description)
			}
			if len(role.Achievements) > 0 {
				b.WriteString("\nKey Achievements:\n")
				for _, achievement := range role.Achievements {
					fmt.Fprintf(&b, "- %s\n", achievement)
				}
			}
		}
		b.WriteString("\n")
	}

	if !detailed {
		b.WriteString("Would you like more details about any specific role or the achievements?")
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatProjects renders the project list. Brief mode shows up to five
// projects with truncated descriptions; detailed mode shows everything
// with highlights and technologies.
func formatProjects(p *profile.Record, detailed bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Major Projects:\n\n", possessive(p.Name))

	projects := p.Projects
	if !detailed && len(projects) > 5 {
		projects = projects[:5]
	}

	for i, project := range projects {
		fmt.Fprintf(&b, "%d. %s", i+1, project.Name)
		if project.Period != "" {
			fmt.Fprintf(&b, " (%s)", project.Period)
		}
		if detailed && project.Company != "" {
			fmt.Fprintf(&b, " - %s", project.Company)
		}
		b.WriteString("\n")

		description := project.Description
		if !detailed && len(description) > 150 {
			description = description[:150] + "..."
		}
		fmt.Fprintf(&b, "%s\n", description)

		if detailed {
			if len(project.Highlights) > 0 {
				b.WriteString("\nKey highlights:\n")
				for _, highlight := range project.Highlights {
					fmt.Fprintf(&b, "- %s\n", highlight)
				}
			}
			if len(project.Technologies) > 0 {
				fmt.Fprintf(&b, "\nTechnologies: %s\n", strings.Join(project.Technologies, ", "))
			}
		}
		b.WriteString("\n")
	}

	if !detailed {
		b.WriteString("Would you like more details about any specific project?")
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatSkills renders skills. Brief mode lists only the category
// names; detailed mode lists every technology per category.
func formatSkills(p *profile.Record, detailed bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Technical Skills:\n\n", possessive(p.Name))

	categories := []struct {
		name  string
		items []string
	}{
		{"AI & Machine Learning", p.Skills.AIML},
		{"Frontend Development", p.Skills.Frontend},
		{"Backend Development", p.Skills.Backend},
		{"Cloud & DevOps", p.Skills.CloudDevOps},
	}

	if !detailed {
		var names []string
		for _, c := range categories {
			if len(c.items) > 0 {
				names = append(names, c.name)
			}
		}
		b.WriteString(strings.Join(names, ", "))
		b.WriteString("\n\nWould you like more details about specific technologies in any category?")
		return b.String()
	}

	for _, c := range categories {
		if len(c.items) > 0 {
			fmt.Fprintf(&b, "%s:\n%s\n\n", c.name, strings.Join(c.items, ", "))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatAchievements renders awards and certifications. Brief mode
// shows counts only; detailed mode itemizes both lists.
func formatAchievements(p *profile.Record, detailed bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Achievements:\n\n", possessive(p.Name))

	if !detailed {
		if len(p.Achievements) > 0 {
			fmt.Fprintf(&b, "Awards: %d award(s)\n", len(p.Achievements))
		}
		if len(p.Certifications) > 0 {
			fmt.Fprintf(&b, "Certifications: %d certification(s)\n", len(p.Certifications))
		}
		b.WriteString("\nWould you like more details about specific awards or certifications?")
		return b.String()
	}

	if len(p.Achievements) > 0 {
		b.WriteString("Awards:\n")
		for _, award := range p.Achievements {
			fmt.Fprintf(&b, "- %s", award.Title)
			if award.Event != "" {
				fmt.Fprintf(&b, " - %s", award.Event)
			} else if award.Description != "" {
				fmt.Fprintf(&b, " - %s", award.Description)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(p.Certifications) > 0 {
		b.WriteString("Certifications:\n")
		for _, cert := range p.Certifications {
			fmt.Fprintf(&b, "- %s", cert.Name)
			if cert.Issuer != "" {
				fmt.Fprintf(&b, " (%s)", cert.Issuer)
			}
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// formatContact renders the full structured contact block; there is no
// brief variant.
func formatContact(p *profile.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Contact Information:\n\n", possessive(p.Name))

	fields := []struct {
		label string
		value string
	}{
		{"Email", p.Contact.Email},
		{"Phone", p.Contact.Phone},
		{"Location", p.Contact.Location},
		{"LinkedIn", p.Contact.LinkedIn},
		{"GitHub", p.Contact.GitHub},
		{"Website", p.Contact.Website},
	}

	for _, f := range fields {
		value := f.value
		if value == "" {
			value = "Available on request"
		}
		fmt.Fprintf(&b, "%s: %s\n", f.label, value)
	}

	return strings.TrimRight(b.String(), "\n")
}

// formatBackground renders the narrative sections: summary in brief
// mode, background plus summary in detailed mode.
func formatBackground(p *profile.Record, detailed bool) string {
	if detailed {
		return strings.TrimSpace(p.Background + "\n\n" + p.Summary)
	}
	return strings.TrimSpace(p.Summary) + "\n\nWould you like more details about the background?"
}

// formatGoals renders goals: a count in brief mode, the numbered list
// in detailed mode.
func formatGoals(p *profile.Record, detailed bool) string {
	if detailed {
		var b strings.Builder
		fmt.Fprintf(&b, "%s goals include:\n\n", possessive(p.Name))
		for i, goal := range p.Goals {
			fmt.Fprintf(&b, "%d. %s\n", i+1, goal)
		}
		return strings.TrimRight(b.String(), "\n")
	}
	return fmt.Sprintf("%s has %d main goals. Would you like to know the specific goals?",
		p.Name, len(p.Goals))
}

// formatInterests renders interests from the likes list.
func formatInterests(p *profile.Record, detailed bool) string {
	if detailed && len(p.Likes) > 0 {
		var b strings.Builder
		fmt.Fprintf(&b, "%s enjoys:\n\n", p.Name)
		for _, like := range p.Likes {
			fmt.Fprintf(&b, "- %s\n", like)
		}
		return strings.TrimRight(b.String(), "\n")
	}
	return fmt.Sprintf("%s is passionate about building things, solving technical challenges, and continuous learning.\n\nWould you like more details about the interests?",
		p.Name)
}

// smallTalkReply is the static fallback when the external model cannot
// handle a greeting.
func smallTalkReply(p *profile.Record, utterance string) string {
	msg := strings.ToLower(utterance)

	if strings.Contains(msg, "how are you") || strings.Contains(msg, "how do you do") {
		return fmt.Sprintf("I'm doing great, thanks for asking! I'm here and ready to help you learn about %s. What would you like to know?", p.Name)
	}
	if strings.Contains(msg, "thank") {
		return fmt.Sprintf("You're very welcome! Is there anything else I can help you with about %s?", p.Name)
	}
	return fmt.Sprintf("Hello! I'm %s's AI assistant. I can tell you about %s background, experience and projects, or help you schedule a meeting. What would you like to know?",
		p.Name, possessive(p.Name))
}

// resumeReply hands out the resume link.
func resumeReply(p *profile.Record) string {
	return fmt.Sprintf("Sure! Here is %s latest resume: %s\n\nIf you need any specific information from the resume, feel free to ask!",
		possessive(p.Name), p.ResumeURL)
}

// scheduleReply confirms a meeting when both slots are present, and
// prompts for the missing details otherwise.
func scheduleReply(p *profile.Record, date, timeOfDay string) string {
	if date != "" && timeOfDay != "" {
		return fmt.Sprintf("Perfect! I've noted your meeting request with %s for %s at %s. You can confirm and manage the booking here: %s",
			p.Name, date, timeOfDay, p.SchedulerURL)
	}
	return fmt.Sprintf("I'd be happy to help you schedule a meeting with %s! Could you please provide:\n\n1. Your preferred date (e.g., \"tomorrow\", \"next Monday\", or a specific date)\n2. Your preferred time (e.g., \"2 PM\", \"10:30 AM\")\n\nYou can also book directly here: %s",
		p.Name, p.SchedulerURL)
}

// genericFallback is the terminal answer when nothing more specific
// could be produced.
func genericFallback(p *profile.Record) string {
	return fmt.Sprintf("I'd be happy to help! Could you be more specific? For example, you can ask about %s background, education, work experience, projects, skills, or schedule a meeting. What would you like to know?",
		possessive(p.Name))
}

// generalBriefAnswer is the who-is style response when no topic was
// resolved at all.
func generalBriefAnswer(p *profile.Record) string {
	summary := strings.TrimSpace(p.Summary)
	if summary == "" {
		return genericFallback(p)
	}
	return fmt.Sprintf("%s\n\nWould you like to know more about %s education, work experience, projects, skills, or achievements?",
		summary, possessive(p.Name))
}
