package taxonomy

import "sort"

// Domain represents a parent content domain in the topic taxonomy.
type Domain string

const (
	DomainArithmetic   Domain = "Arithmetic"
	DomainAlgebra      Domain = "Algebra"
	DomainGeometry     Domain = "Geometry"
	DomainData         Domain = "Data & Probability"
	DomainWordProblems Domain = "Word Problems"
)

// AllDomains returns all domains in display order.
func AllDomains() []Domain {
	return []Domain{
		DomainArithmetic,
		DomainAlgebra,
		DomainGeometry,
		DomainData,
		DomainWordProblems,
	}
}

// Topic is a single detectable topic node.
type Topic struct {
	Name     string
	Parent   Domain
	Keywords []string
}

// Taxonomy is the two-level parent-domain → topic → keyword mapping used
// for transcript topic detection. It is immutable after construction and
// passed explicitly to the detector, so tests and tenants can swap it.
type Taxonomy struct {
	topics []Topic
	byName map[string]*Topic
}

// New builds a Taxonomy from a topic list. Later entries with a duplicate
// name override earlier ones in name lookups.
func New(topics []Topic) *Taxonomy {
	t := &Taxonomy{
		topics: make([]Topic, len(topics)),
		byName: make(map[string]*Topic, len(topics)),
	}
	copy(t.topics, topics)
	for i := range t.topics {
		t.byName[t.topics[i].Name] = &t.topics[i]
	}
	return t
}

// Topics returns every topic, ordered by parent domain then topic name.
func (t *Taxonomy) Topics() []Topic {
	out := make([]Topic, len(t.topics))
	copy(out, t.topics)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Parent != out[j].Parent {
			return out[i].Parent < out[j].Parent
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// TopicsIn returns the topics under a single parent domain, sorted by name.
func (t *Taxonomy) TopicsIn(d Domain) []Topic {
	var out []Topic
	for _, tp := range t.topics {
		if tp.Parent == d {
			out = append(out, tp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Lookup returns the topic with the given name, or nil if unknown.
func (t *Taxonomy) Lookup(name string) *Topic {
	return t.byName[name]
}

// ParentOf returns the parent domain of a topic name, or "" if unknown.
func (t *Taxonomy) ParentOf(name string) Domain {
	if tp := t.byName[name]; tp != nil {
		return tp.Parent
	}
	return ""
}
