package service

import "careerpath/internal/domain"

type roadmapTemplate func() []domain.Topic

var roadmapTemplates = map[string]roadmapTemplate{
	"Full Stack Developer": fullStackRoadmap,
	"Data Scientist":       dataScientistRoadmap,
}

func lookupRoadmapTemplate(jobRole string) roadmapTemplate {
	if tmpl, ok := roadmapTemplates[jobRole]; ok {
		return tmpl
	}
	return defaultRoadmap
}

func newTopic(name string, subtopics ...string) domain.Topic {
	return domain.Topic{
		Name:      name,
		Status:    domain.StatusNotStarted,
		Subtopics: subtopics,
	}
}

func fullStackRoadmap() []domain.Topic {
	return []domain.Topic{
		newTopic("Frontend Development", "HTML & CSS", "JavaScript ES6+", "React.js", "State Management", "Responsive Design"),
		newTopic("Backend Development", "Node.js", "Express.js", "RESTful APIs", "Authentication", "Database Design"),
		newTopic("Database Management", "SQL Basics", "MongoDB", "Database Optimization", "Data Modeling"),
		newTopic("DevOps & Deployment", "Git & GitHub", "Docker", "CI/CD", "Cloud Platforms", "Server Management"),
	}
}

func dataScientistRoadmap() []domain.Topic {
	return []domain.Topic{
		newTopic("Programming Fundamentals", "Python Basics", "NumPy", "Pandas", "Data Structures", "Algorithms"),
		newTopic("Statistics & Mathematics", "Probability", "Statistical Analysis", "Linear Algebra", "Calculus"),
		newTopic("Machine Learning", "Supervised Learning", "Unsupervised Learning", "Model Evaluation", "Feature Engineering"),
		newTopic("Data Visualization", "Matplotlib", "Seaborn", "Plotly", "Dashboard Creation"),
	}
}

func defaultRoadmap() []domain.Topic {
	return []domain.Topic{
		newTopic("Core Skills", "Industry Knowledge", "Technical Skills", "Soft Skills", "Problem Solving"),
		newTopic("Tools & Technologies", "Essential Tools", "Software Proficiency", "Best Practices"),
		newTopic("Professional Development", "Communication", "Teamwork", "Leadership", "Time Management"),
	}
}
