package modkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityStoreInterning(t *testing.T) {
	assert := assert.New(t)
	store := NewEntityStore()

	rec := PersonRecordFixture(7, false)
	p1 := store.Person(rec)
	p2 := store.Person(rec)
	assert.Same(p1, p2)

	// a refreshed record updates the shared entity in place
	rec.Name = "renamed"
	p3 := store.Person(rec)
	assert.Same(p1, p3)
	assert.Equal("renamed", p1.Name)

	comm := CommunityRecordFixture(3)
	c1 := store.Community(comm)
	c2 := store.Community(comm)
	assert.Same(c1, c2)
}

func TestHydrateSharesCreator(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	store := NewEntityStore()

	reporter := PersonRecordFixture(1, false)
	creator := PersonRecordFixture(2, false)
	community := CommunityRecordFixture(10)

	v1 := CommentReportViewFixture(100, 500, reporter, creator, community)
	v2 := CommentReportViewFixture(101, 501, reporter, creator, community)
	v2.CreatorBannedFromCommunity = true

	r1 := store.HydrateCommentReport(&v1)
	r2 := store.HydrateCommentReport(&v2)

	require.NotNil(r1.Creator())
	assert.Same(r1.Creator(), r2.Creator())
	assert.Same(r1.Reporter, r2.Reporter)
	assert.Same(r1.Community, r2.Community)

	// the second view carried the community ban; both reports see it through
	// the shared person
	assert.True(r1.CreatorBannedFromCommunity())
	assert.True(r2.CreatorBannedFromCommunity())

	assert.Equal(ContentKey{Kind: KindCommentReport, ID: 100}, r1.Key())
	assert.False(r1.Resolved)
	assert.False(r1.Purged)
	assert.Equal(int64(3), r1.Votes.Score)

	p, ok := store.LookupPerson(2)
	require.True(ok)
	assert.Same(r1.Creator(), p)

	// the parent post of the reported comment comes along during hydration
	require.NotNil(r1.Post)
	assert.Equal(r1.Comment.PostID, r1.Post.ID)
	assert.Equal(v1.Post.Name, r1.Post.Title)
	assert.Same(r1.Community, r1.Post.Community)
}

func TestHydratePostReport(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	store := NewEntityStore()

	reporter := PersonRecordFixture(1, false)
	creator := PersonRecordFixture(2, false)
	community := CommunityRecordFixture(10)

	v := PostReportViewFixture(200, 700, reporter, creator, community)
	v.CreatorBannedFromCommunity = true
	r := store.HydratePostReport(&v)

	assert.Equal(ContentKey{Kind: KindPostReport, ID: 200}, r.Key())
	require.NotNil(r.Post)
	assert.Equal(v.Post.Name, r.Post.Title)
	require.NotNil(v.Post.Body)
	assert.Equal(*v.Post.Body, r.Post.Body)
	require.NotNil(r.Creator())
	assert.Equal(creator.ID, r.Creator().ID)
	assert.True(r.CreatorBannedFromCommunity())
	assert.Equal(int64(2), r.ReplyCount)
	assert.False(r.TargetRemoved())

	// same creator interned across comment and post reports
	cv := CommentReportViewFixture(100, 500, reporter, creator, community)
	cr := store.HydrateCommentReport(&cv)
	assert.Same(r.Creator(), cr.Creator())
}

func TestPersonInstanceHost(t *testing.T) {
	assert := assert.New(t)

	p := &Person{ID: 1, Name: "alice", ActorID: "https://lemmy.example.com/u/alice"}
	host, err := p.InstanceHost()
	assert.NoError(err)
	assert.Equal("lemmy.example.com", host)
	assert.Equal("alice@lemmy.example.com", p.Handle())

	bad := &Person{ID: 2, Name: "bob", ActorID: "not a url"}
	_, err = bad.InstanceHost()
	assert.Error(err)
	assert.Equal("bob", bad.Handle())
}
