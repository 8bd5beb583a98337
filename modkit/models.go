package modkit

import (
	"fmt"
	"net/url"

	"github.com/lodestar-social/lodestar/lemmy"
)

// Person is the shared, mutable view of an account. A single *Person is held
// by every report and comment mentioning that account; mutation happens only
// on the tracker's apply goroutine.
type Person struct {
	ID          int64
	Name        string
	DisplayName string
	ActorID     string
	Local       bool
	Admin       bool
	BotAccount  bool
	// Banned is the instance-wide ban flag.
	Banned bool
	// communityBans tracks community-scoped bans, keyed by community id.
	communityBans map[int64]bool
}

func (p *Person) Key() ContentKey {
	return ContentKey{Kind: KindPerson, ID: p.ID}
}

// BannedFrom reports whether this person is banned from the given community.
// An instance-wide ban does not imply community bans here; the two scopes are
// tracked separately, as the API reports them.
func (p *Person) BannedFrom(communityID int64) bool {
	return p.communityBans[communityID]
}

func (p *Person) setBannedFrom(communityID int64, banned bool) {
	if p.communityBans == nil {
		p.communityBans = make(map[int64]bool)
	}
	p.communityBans[communityID] = banned
}

// InstanceHost returns the hostname of the person's home instance, derived
// from the federation actor URL.
func (p *Person) InstanceHost() (string, error) {
	u, err := url.Parse(p.ActorID)
	if err != nil {
		return "", fmt.Errorf("parsing actor url %q: %w", p.ActorID, err)
	}
	if u.Hostname() == "" {
		return "", fmt.Errorf("actor url %q has no host", p.ActorID)
	}
	return u.Hostname(), nil
}

// Handle renders the fully-qualified "name@host" form, falling back to the
// bare name when the actor URL is unusable.
func (p *Person) Handle() string {
	host, err := p.InstanceHost()
	if err != nil {
		return p.Name
	}
	return p.Name + "@" + host
}

func (p *Person) refresh(rec lemmy.Person) {
	p.Name = rec.Name
	if rec.DisplayName != nil {
		p.DisplayName = *rec.DisplayName
	}
	p.ActorID = rec.ActorID
	p.Local = rec.Local
	p.Admin = rec.Admin
	p.BotAccount = rec.BotAccount
	p.Banned = rec.Banned
}

type Community struct {
	ID      int64
	Name    string
	Title   string
	ActorID string
	Local   bool
	Removed bool
}

func (c *Community) Key() ContentKey {
	return ContentKey{Kind: KindCommunity, ID: c.ID}
}

func (c *Community) refresh(rec lemmy.Community) {
	c.Name = rec.Name
	c.Title = rec.Title
	c.ActorID = rec.ActorID
	c.Local = rec.Local
	c.Removed = rec.Removed
}

// Comment is the content snapshot of a reported (or browsed) comment. Removed
// is flipped by moderation actions; Purged marks irreversible deletion.
type Comment struct {
	ID      int64
	Creator *Person
	PostID  int64
	Content string
	Removed bool
	Deleted bool
	Purged  bool
}

func (c *Comment) Key() ContentKey {
	return ContentKey{Kind: KindComment, ID: c.ID}
}

type Post struct {
	ID        int64
	Creator   *Person
	Community *Community
	Title     string
	Body      string
	URL       string
	Removed   bool
	Deleted   bool
	Purged    bool
}

func (p *Post) Key() ContentKey {
	return ContentKey{Kind: KindPost, ID: p.ID}
}

// Votes is the aggregate score snapshot for a piece of content.
type Votes struct {
	Score     int64
	Upvotes   int64
	Downvotes int64
}

// Report is a user-filed report against a comment or post. Reports are
// mutated in place as moderation actions complete and are never deleted by
// this package; a purged report stays in whatever list holds it, marked dead,
// so feeds do not reshuffle mid-scroll. Hiding it is the UI's call.
type Report struct {
	ID   int64
	Kind ContentKind // KindCommentReport or KindPostReport

	Reporter *Person
	// Resolver is set once the report has been resolved, from the server's
	// record of who resolved it.
	Resolver *Person
	Reason   string

	// Comment is set for comment reports; Post is the reported post for post
	// reports and the parent post for comment reports.
	Comment   *Comment
	Post      *Post
	Community *Community

	Votes      Votes
	ReplyCount int64
	Published  string

	Resolved bool
	// Purged is monotonic: once true, no further action mutates this report
	// or its content snapshot.
	Purged bool
}

func (r *Report) Key() ContentKey {
	return ContentKey{Kind: r.Kind, ID: r.ID}
}

// Creator is the author of the reported content (not the reporter).
func (r *Report) Creator() *Person {
	if r.Kind == KindCommentReport && r.Comment != nil {
		return r.Comment.Creator
	}
	if r.Post != nil {
		return r.Post.Creator
	}
	return nil
}

// CreatorBannedFromCommunity reports the community-scoped ban state of the
// content author, read through the shared person.
func (r *Report) CreatorBannedFromCommunity() bool {
	creator := r.Creator()
	if creator == nil || r.Community == nil {
		return false
	}
	return creator.BannedFrom(r.Community.ID)
}

// TargetRemoved is the removed flag of the reported content snapshot.
func (r *Report) TargetRemoved() bool {
	if r.Kind == KindCommentReport && r.Comment != nil {
		return r.Comment.Removed
	}
	if r.Post != nil {
		return r.Post.Removed
	}
	return false
}

// applyCommentReportRecord replaces the report's state wholesale from a
// server record. Replace-not-merge: the server may have applied side effects
// (eg, auto-set the resolver), and merging field-by-field would risk keeping
// stale values. No-op once purged.
func (r *Report) applyCommentReportRecord(store *EntityStore, view *lemmy.CommentReportView) {
	if r.Purged {
		return
	}
	r.Reason = view.CommentReport.Reason
	r.Resolved = view.CommentReport.Resolved
	r.Published = view.CommentReport.Published
	r.Reporter = store.Person(view.Creator)
	if view.Resolver != nil {
		r.Resolver = store.Person(*view.Resolver)
	} else {
		r.Resolver = nil
	}
	r.Community = store.Community(view.Community)

	creator := store.Person(view.CommentCreator)
	creator.setBannedFrom(view.Community.ID, view.CreatorBannedFromCommunity)
	r.Comment = &Comment{
		ID:      view.Comment.ID,
		Creator: creator,
		PostID:  view.Comment.PostID,
		Content: view.Comment.Content,
		Removed: view.Comment.Removed,
		Deleted: view.Comment.Deleted,
	}
	// parent post of the reported comment; the view carries no person record
	// for the post author, so Creator stays nil here
	body := ""
	if view.Post.Body != nil {
		body = *view.Post.Body
	}
	postURL := ""
	if view.Post.URL != nil {
		postURL = *view.Post.URL
	}
	r.Post = &Post{
		ID:        view.Post.ID,
		Community: r.Community,
		Title:     view.Post.Name,
		Body:      body,
		URL:       postURL,
		Removed:   view.Post.Removed,
		Deleted:   view.Post.Deleted,
	}
	r.Votes = Votes{
		Score:     view.Counts.Score,
		Upvotes:   view.Counts.Upvotes,
		Downvotes: view.Counts.Downvotes,
	}
	r.ReplyCount = view.Counts.ChildCount
}

func (r *Report) applyPostReportRecord(store *EntityStore, view *lemmy.PostReportView) {
	if r.Purged {
		return
	}
	r.Reason = view.PostReport.Reason
	r.Resolved = view.PostReport.Resolved
	r.Published = view.PostReport.Published
	r.Reporter = store.Person(view.Creator)
	if view.Resolver != nil {
		r.Resolver = store.Person(*view.Resolver)
	} else {
		r.Resolver = nil
	}
	r.Community = store.Community(view.Community)

	creator := store.Person(view.PostCreator)
	creator.setBannedFrom(view.Community.ID, view.CreatorBannedFromCommunity)
	body := ""
	if view.Post.Body != nil {
		body = *view.Post.Body
	}
	postURL := ""
	if view.Post.URL != nil {
		postURL = *view.Post.URL
	}
	r.Post = &Post{
		ID:        view.Post.ID,
		Creator:   creator,
		Community: r.Community,
		Title:     view.Post.Name,
		Body:      body,
		URL:       postURL,
		Removed:   view.Post.Removed,
		Deleted:   view.Post.Deleted,
	}
	r.Votes = Votes{
		Score:     view.Counts.Score,
		Upvotes:   view.Counts.Upvotes,
		Downvotes: view.Counts.Downvotes,
	}
	r.ReplyCount = view.Counts.Comments
}
