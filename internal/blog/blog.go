// Package blog holds the domain services behind the HTTP surface: the post
// lifecycle manager, the comment interaction engine and the user profile
// service. Authorization rules are evaluated here, by the consuming
// operation; the transport guard only authenticates.
package blog

import "fmt"

// Logger is the minimal logging surface the services need.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Error(format string, args ...any)
}

type defLogger struct{}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] BLOG "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] BLOG "+newline(format), args...)
}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] BLOG "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}

// ListQuery is the shared pagination envelope for the admin listings.
// Start/Limit default to 0/9 when unset.
type ListQuery struct {
	Start int
	Limit int
	Sort  string
}

func (q ListQuery) limit() int {
	if q.Limit <= 0 {
		return 9
	}
	return q.Limit
}

func (q ListQuery) start() int {
	if q.Start < 0 {
		return 0
	}
	return q.Start
}
