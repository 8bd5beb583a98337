package modkit

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/lodestar-social/lodestar/lemmy"
)

// EntityStore interns Person and Community entities so that every hydrated
// report or comment referencing the same account holds the same pointer.
// Interning is what makes a single ban mutation visible everywhere; entities
// must never copy a Person out of the store.
//
// Persons are held for the lifetime of the store (a session's working set is
// small). Communities sit behind an LRU since browsing can touch many of
// them and they carry no moderation-mutable state worth pinning.
type EntityStore struct {
	persons     *xsync.MapOf[int64, *Person]
	communities *lru.Cache[int64, *Community]
}

const communityCacheSize = 256

func NewEntityStore() *EntityStore {
	communities, err := lru.New[int64, *Community](communityCacheSize)
	if err != nil {
		// lru.New only fails on a non-positive size
		panic(err)
	}
	return &EntityStore{
		persons:     xsync.NewMapOf[int64, *Person](),
		communities: communities,
	}
}

// Person interns the record, refreshing the shared entity's fields from it.
// The server record is canonical for everything except community-scoped ban
// state, which accumulates from report views.
func (s *EntityStore) Person(rec lemmy.Person) *Person {
	p, _ := s.persons.LoadOrStore(rec.ID, &Person{ID: rec.ID})
	p.refresh(rec)
	return p
}

// LookupPerson returns the interned person, if any.
func (s *EntityStore) LookupPerson(id int64) (*Person, bool) {
	return s.persons.Load(id)
}

func (s *EntityStore) Community(rec lemmy.Community) *Community {
	c, ok := s.communities.Get(rec.ID)
	if !ok {
		c = &Community{ID: rec.ID}
		s.communities.Add(rec.ID, c)
	}
	c.refresh(rec)
	return c
}

// HydrateCommentReport builds a Report from a listing/moderation view,
// interning the persons and community it references.
func (s *EntityStore) HydrateCommentReport(view *lemmy.CommentReportView) *Report {
	r := &Report{
		ID:   view.CommentReport.ID,
		Kind: KindCommentReport,
	}
	r.applyCommentReportRecord(s, view)
	return r
}

func (s *EntityStore) HydratePostReport(view *lemmy.PostReportView) *Report {
	r := &Report{
		ID:   view.PostReport.ID,
		Kind: KindPostReport,
	}
	r.applyPostReportRecord(s, view)
	return r
}
