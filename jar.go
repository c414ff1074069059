package nescookie

// CookieJar holds cookies grouped by domain. Cookies keep the order they
// were read in, both within a domain and globally; domains keep
// first-appearance order. Every cookie stored under a domain key has a
// matching Domain field.
//
// A jar is populated only by the parser or a CookieJarBuilder and carries
// no locking; concurrent use requires external synchronization.
type CookieJar struct {
	order    []string
	byDomain map[string][]Cookie
	all      []Cookie
}

// NewCookieJar returns an empty jar.
func NewCookieJar() *CookieJar {
	return &CookieJar{byDomain: make(map[string][]Cookie)}
}

func (j *CookieJar) add(c Cookie) {
	if _, ok := j.byDomain[c.Domain]; !ok {
		j.order = append(j.order, c.Domain)
	}
	j.byDomain[c.Domain] = append(j.byDomain[c.Domain], c)
	j.all = append(j.all, c)
}

// Cookies returns the cookies stored under domain, in file order.
// The returned slice is the jar's own; callers must not modify it.
func (j *CookieJar) Cookies(domain string) []Cookie {
	return j.byDomain[domain]
}

// Domains returns the jar's domain keys in first-appearance order.
func (j *CookieJar) Domains() []string {
	out := make([]string, len(j.order))
	copy(out, j.order)
	return out
}

// All returns every cookie in the jar in file order, across domains.
// The returned slice is the jar's own; callers must not modify it.
func (j *CookieJar) All() []Cookie {
	return j.all
}

// Len returns the total number of cookies across all domains.
func (j *CookieJar) Len() int {
	return len(j.all)
}

// Get returns the cookie with the given name. When the name occurs more
// than once, the latest occurrence in file order wins, matching the
// replace-on-add behavior of conventional cookie jars.
func (j *CookieJar) Get(name string) (Cookie, bool) {
	for i := len(j.all) - 1; i >= 0; i-- {
		if j.all[i].Name == name {
			return j.all[i], true
		}
	}
	return Cookie{}, false
}
