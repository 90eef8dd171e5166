// Package catalog holds the fixed list of course offerings and answers
// read-only queries against it.
package catalog

import (
	"fmt"
	"strings"
)

// AllDomains is the wildcard domain accepted by Filter.
const AllDomains = "All"

// Catalog is immutable once built.
type Catalog struct {
	courses []Course
	byCode  map[string]int
}

// New builds a catalog from records, keeping their order.
// Every record must be valid and codes must be unique.
func New(courses []Course) (*Catalog, error) {
	c := &Catalog{
		courses: make([]Course, 0, len(courses)),
		byCode:  make(map[string]int, len(courses)),
	}

	for _, course := range courses {
		if err := course.Validate(); err != nil {
			return nil, err
		}
		if _, exists := c.byCode[course.Code]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCode, course.Code)
		}
		c.byCode[course.Code] = len(c.courses)
		c.courses = append(c.courses, course)
	}

	return c, nil
}

// MustNew is like New but panics on an invalid catalog.
func MustNew(courses []Course) *Catalog {
	c, err := New(courses)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of courses.
func (c *Catalog) Len() int {
	return len(c.courses)
}

// Courses returns a copy of every record in catalog order.
func (c *Catalog) Courses() []Course {
	out := make([]Course, len(c.courses))
	copy(out, c.courses)
	return out
}

// Lookup returns the course with the given code.
func (c *Catalog) Lookup(code string) (Course, bool) {
	if code == "" {
		return Course{}, false
	}
	idx, ok := c.byCode[code]
	if !ok {
		return Course{}, false
	}
	return c.courses[idx], true
}

// Filter returns the courses in domain (or any domain for AllDomains) whose
// code or title contains search, ignoring case. An empty search matches everything.
func (c *Catalog) Filter(domain, search string) []Course {
	needle := strings.ToLower(search)

	var out []Course
	for _, course := range c.courses {
		if domain != AllDomains && course.Domain != domain {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(course.Code), needle) &&
			!strings.Contains(strings.ToLower(course.Title), needle) {
			continue
		}
		out = append(out, course)
	}
	return out
}

// Domains returns AllDomains followed by each distinct domain in the order it
// first appears in the catalog.
func (c *Catalog) Domains() []string {
	seen := make(map[string]bool)
	domains := []string{AllDomains}
	for _, course := range c.courses {
		if seen[course.Domain] {
			continue
		}
		seen[course.Domain] = true
		domains = append(domains, course.Domain)
	}
	return domains
}

// Resolve maps codes to their records in the given order. Codes with no
// matching record are returned separately and contribute nothing.
func (c *Catalog) Resolve(codes []string) (resolved []Course, unknown []string) {
	resolved = make([]Course, 0, len(codes))
	for _, code := range codes {
		course, ok := c.Lookup(code)
		if !ok {
			unknown = append(unknown, code)
			continue
		}
		resolved = append(resolved, course)
	}
	return resolved, unknown
}
