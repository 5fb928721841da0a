package cache

import "strings"

const (
	DefaultNamespace = "careerpath"
)

// GenerateStoreKey scopes a logical key (quizHistory, roadmap, lastActivity)
// under a namespace so several deployments can share one backend.
// An empty namespace leaves the key untouched.
func GenerateStoreKey(namespace, key string, qualifiers ...string) string {
	parts := make([]string, 0, 2+len(qualifiers))
	if namespace != "" {
		parts = append(parts, namespace)
	}
	parts = append(parts, key)
	if len(qualifiers) > 0 {
		parts = append(parts, strings.Join(qualifiers, "_"))
	}
	return strings.Join(parts, ":")
}
