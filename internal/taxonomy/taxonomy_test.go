package taxonomy

import "testing"

func TestDefault_TopicCount(t *testing.T) {
	tax := Default()
	if got := len(tax.Topics()); got != 19 {
		t.Errorf("got %d topics, want 19", got)
	}
}

func TestTopicsIn_Counts(t *testing.T) {
	tax := Default()
	tests := []struct {
		domain Domain
		want   int
	}{
		{DomainArithmetic, 5},
		{DomainAlgebra, 6},
		{DomainGeometry, 5},
		{DomainData, 2},
		{DomainWordProblems, 1},
	}
	for _, tt := range tests {
		if got := len(tax.TopicsIn(tt.domain)); got != tt.want {
			t.Errorf("TopicsIn(%s) = %d topics, want %d", tt.domain, got, tt.want)
		}
	}
}

func TestLookup_Found(t *testing.T) {
	tp := Default().Lookup("Fractions")
	if tp == nil {
		t.Fatal("Lookup(Fractions) returned nil")
	}
	if tp.Parent != DomainArithmetic {
		t.Errorf("parent = %q, want %q", tp.Parent, DomainArithmetic)
	}
	if len(tp.Keywords) == 0 {
		t.Error("keywords are empty")
	}
}

func TestLookup_NotFound(t *testing.T) {
	if tp := Default().Lookup("Calculus"); tp != nil {
		t.Errorf("Lookup(Calculus) = %v, want nil", tp)
	}
}

func TestParentOf(t *testing.T) {
	tax := Default()
	if got := tax.ParentOf("Quadratics"); got != DomainAlgebra {
		t.Errorf("ParentOf(Quadratics) = %q, want %q", got, DomainAlgebra)
	}
	if got := tax.ParentOf("nonexistent"); got != "" {
		t.Errorf("ParentOf(nonexistent) = %q, want empty", got)
	}
}

func TestTopics_Ordering(t *testing.T) {
	topics := Default().Topics()
	for i := 1; i < len(topics); i++ {
		prev, cur := topics[i-1], topics[i]
		if prev.Parent > cur.Parent {
			t.Fatalf("topics not ordered by parent: %q after %q", cur.Parent, prev.Parent)
		}
		if prev.Parent == cur.Parent && prev.Name > cur.Name {
			t.Fatalf("topics not ordered by name within %q: %q after %q", cur.Parent, cur.Name, prev.Name)
		}
	}
}

func TestNew_DuplicateNameLookup(t *testing.T) {
	tax := New([]Topic{
		{Name: "Fractions", Parent: DomainArithmetic, Keywords: []string{"old"}},
		{Name: "Fractions", Parent: DomainArithmetic, Keywords: []string{"new"}},
	})
	tp := tax.Lookup("Fractions")
	if tp == nil {
		t.Fatal("Lookup returned nil")
	}
	if len(tp.Keywords) != 1 || tp.Keywords[0] != "new" {
		t.Errorf("keywords = %v, want later entry to win", tp.Keywords)
	}
}
