package service

import (
	"fmt"

	"careerpath/internal/domain"
)

// quizTemplate builds a fresh question set. Only the default template uses the topic.
type quizTemplate func(topic string) []domain.Question

var quizTemplates = map[string]quizTemplate{
	"JavaScript": javaScriptQuiz,
	"React":      reactQuiz,
}

// lookupQuizTemplate matches the topic exactly (case-sensitive) and falls
// back to the generic template.
func lookupQuizTemplate(topic string) quizTemplate {
	if tmpl, ok := quizTemplates[topic]; ok {
		return tmpl
	}
	return defaultQuiz
}

func javaScriptQuiz(string) []domain.Question {
	return []domain.Question{
		{
			Question:      "What is the output of: typeof null?",
			Options:       []string{"null", "undefined", "object", "number"},
			CorrectAnswer: 2,
		},
		{
			Question:      "Which method is used to add elements to the end of an array?",
			Options:       []string{"push()", "pop()", "shift()", "unshift()"},
			CorrectAnswer: 0,
		},
		{
			Question:      `What does "===" check in JavaScript?`,
			Options:       []string{"Value only", "Type only", "Both value and type", "Neither"},
			CorrectAnswer: 2,
		},
		{
			Question:      "Which keyword is used to declare a constant in JavaScript?",
			Options:       []string{"var", "let", "const", "constant"},
			CorrectAnswer: 2,
		},
		{
			Question: "What is a closure in JavaScript?",
			Options: []string{
				"A function that returns another function",
				"A function with access to its outer scope",
				"A way to close the browser",
				"A type of loop",
			},
			CorrectAnswer: 1,
		},
	}
}

func reactQuiz(string) []domain.Question {
	return []domain.Question{
		{
			Question: "What is JSX?",
			Options: []string{
				"A JavaScript library",
				"A syntax extension for JavaScript",
				"A CSS framework",
				"A database",
			},
			CorrectAnswer: 1,
		},
		{
			Question:      "Which hook is used for side effects in React?",
			Options:       []string{"useState", "useEffect", "useContext", "useReducer"},
			CorrectAnswer: 1,
		},
		{
			Question: "What is the virtual DOM?",
			Options: []string{
				"A copy of the real DOM kept in memory",
				"A new browser API",
				"A CSS technique",
				"A database structure",
			},
			CorrectAnswer: 0,
		},
		{
			Question:      "How do you pass data from parent to child component?",
			Options:       []string{"State", "Props", "Context", "Redux"},
			CorrectAnswer: 1,
		},
		{
			Question: "What does useState return?",
			Options: []string{
				"A single value",
				"An array with state and setter",
				"An object",
				"A function",
			},
			CorrectAnswer: 1,
		},
	}
}

func defaultQuiz(topic string) []domain.Question {
	return []domain.Question{
		{
			Question: fmt.Sprintf("What is the most important skill for a %s professional?", topic),
			Options: []string{
				"Technical knowledge",
				"Communication skills",
				"Problem-solving ability",
				"All of the above",
			},
			CorrectAnswer: 3,
		},
		{
			Question: fmt.Sprintf("Which of these is essential for learning %s?", topic),
			Options: []string{
				"Practice and hands-on experience",
				"Reading documentation",
				"Working on projects",
				"All of the above",
			},
			CorrectAnswer: 3,
		},
		{
			Question: fmt.Sprintf("What is the best way to stay updated in %s?", topic),
			Options: []string{
				"Follow industry blogs",
				"Attend conferences",
				"Join online communities",
				"All of the above",
			},
			CorrectAnswer: 3,
		},
		{
			Question: fmt.Sprintf("How important is continuous learning in %s?", topic),
			Options: []string{
				"Not important",
				"Somewhat important",
				"Very important",
				"Critical for success",
			},
			CorrectAnswer: 3,
		},
		{
			Question: fmt.Sprintf("What mindset is most helpful when learning %s?", topic),
			Options: []string{
				"Fixed mindset",
				"Growth mindset",
				"Competitive mindset",
				"Passive mindset",
			},
			CorrectAnswer: 1,
		},
	}
}
