package modkit

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/lodestar-social/lodestar/lemmy"
)

// Scripted transport and record fixtures for tests. Lives outside _test.go so
// downstream consumers can drive a ModTracker without a live instance.

// ScriptedTransport implements ModTransport with canned behavior. Every call
// is appended to Calls as "name:args"; when Err is set, every call fails with
// it and returns no data.
type ScriptedTransport struct {
	Calls []string
	Err   error

	// BanResult is what ban calls report as the resulting ban state.
	BanResult bool

	OnResolveCommentReport func(reportID int64, resolved bool) *lemmy.CommentReportView
	OnResolvePostReport    func(reportID int64, resolved bool) *lemmy.PostReportView
	OnRemoveComment        func(commentID int64, removed bool) *lemmy.CommentView
	OnRemovePost           func(postID int64, removed bool) *lemmy.PostView
}

var _ ModTransport = (*ScriptedTransport)(nil)

func (s *ScriptedTransport) record(call string) {
	s.Calls = append(s.Calls, call)
}

// CallCount returns how many recorded calls start with the given name.
func (s *ScriptedTransport) CallCount(name string) int {
	n := 0
	for _, c := range s.Calls {
		if c == name || len(c) > len(name) && c[:len(name)+1] == name+":" {
			n++
		}
	}
	return n
}

func (s *ScriptedTransport) ResolveCommentReport(ctx context.Context, reportID int64, resolved bool) (*lemmy.CommentReportView, error) {
	s.record(fmt.Sprintf("resolve_comment_report:%d:%t", reportID, resolved))
	if s.Err != nil {
		return nil, s.Err
	}
	if s.OnResolveCommentReport == nil {
		return nil, fmt.Errorf("no scripted response for resolve_comment_report")
	}
	return s.OnResolveCommentReport(reportID, resolved), nil
}

func (s *ScriptedTransport) ResolvePostReport(ctx context.Context, reportID int64, resolved bool) (*lemmy.PostReportView, error) {
	s.record(fmt.Sprintf("resolve_post_report:%d:%t", reportID, resolved))
	if s.Err != nil {
		return nil, s.Err
	}
	if s.OnResolvePostReport == nil {
		return nil, fmt.Errorf("no scripted response for resolve_post_report")
	}
	return s.OnResolvePostReport(reportID, resolved), nil
}

func (s *ScriptedTransport) RemoveComment(ctx context.Context, commentID int64, removed bool, reason *string) (*lemmy.CommentView, error) {
	s.record(fmt.Sprintf("remove_comment:%d:%t", commentID, removed))
	if s.Err != nil {
		return nil, s.Err
	}
	if s.OnRemoveComment == nil {
		return nil, fmt.Errorf("no scripted response for remove_comment")
	}
	return s.OnRemoveComment(commentID, removed), nil
}

func (s *ScriptedTransport) RemovePost(ctx context.Context, postID int64, removed bool, reason *string) (*lemmy.PostView, error) {
	s.record(fmt.Sprintf("remove_post:%d:%t", postID, removed))
	if s.Err != nil {
		return nil, s.Err
	}
	if s.OnRemovePost == nil {
		return nil, fmt.Errorf("no scripted response for remove_post")
	}
	return s.OnRemovePost(postID, removed), nil
}

func (s *ScriptedTransport) PurgeComment(ctx context.Context, commentID int64, reason *string) error {
	s.record(fmt.Sprintf("purge_comment:%d", commentID))
	return s.Err
}

func (s *ScriptedTransport) PurgePost(ctx context.Context, postID int64, reason *string) error {
	s.record(fmt.Sprintf("purge_post:%d", postID))
	return s.Err
}

func (s *ScriptedTransport) PurgePerson(ctx context.Context, personID int64, reason *string) error {
	s.record(fmt.Sprintf("purge_person:%d", personID))
	return s.Err
}

func (s *ScriptedTransport) BanPerson(ctx context.Context, personID int64, ban bool, reason *string, expires *int64) (bool, error) {
	s.record(fmt.Sprintf("ban_person:%d:%t", personID, ban))
	if s.Err != nil {
		return false, s.Err
	}
	return s.BanResult, nil
}

func (s *ScriptedTransport) BanFromCommunity(ctx context.Context, communityID, personID int64, ban bool, reason *string, expires *int64) (bool, error) {
	s.record(fmt.Sprintf("ban_from_community:%d:%d:%t", communityID, personID, ban))
	if s.Err != nil {
		return false, s.Err
	}
	return s.BanResult, nil
}

func (s *ScriptedTransport) CreatePrivateMessage(ctx context.Context, recipientID int64, content string) error {
	s.record(fmt.Sprintf("private_message:%d", recipientID))
	return s.Err
}

// CollectingErrorSink retains every reported error.
type CollectingErrorSink struct {
	Errors []error
}

func (s *CollectingErrorSink) Handle(err error) {
	s.Errors = append(s.Errors, err)
}

// RecordingFeedback retains every feedback cue played.
type RecordingFeedback struct {
	Played []FeedbackKind
}

func (f *RecordingFeedback) Play(kind FeedbackKind, priority FeedbackPriority) {
	f.Played = append(f.Played, kind)
}

// TrackerTestFixture wires a tracker against a scripted transport, a fresh
// store, and collecting sinks. Callers must Shutdown the tracker.
func TrackerTestFixture() (*ModTracker, *ScriptedTransport, *CollectingErrorSink, *RecordingFeedback, *EntityStore) {
	transport := &ScriptedTransport{}
	store := NewEntityStore()
	errs := &CollectingErrorSink{}
	feedback := &RecordingFeedback{}
	tracker := NewModTracker(transport, store, errs, feedback, nil)
	return tracker, transport, errs, feedback, store
}

// PersonRecordFixture builds a plausible person record with a synthetic
// username.
func PersonRecordFixture(id int64, admin bool) lemmy.Person {
	name := gofakeit.Username()
	return lemmy.Person{
		ID:        id,
		Name:      name,
		ActorID:   fmt.Sprintf("https://lemmy.example.com/u/%s", name),
		Local:     true,
		Admin:     admin,
		Published: time.Now().UTC().Format(time.RFC3339),
	}
}

func CommunityRecordFixture(id int64) lemmy.Community {
	name := gofakeit.Word()
	return lemmy.Community{
		ID:      id,
		Name:    name,
		Title:   gofakeit.BookTitle(),
		ActorID: fmt.Sprintf("https://lemmy.example.com/c/%s", name),
		Local:   true,
	}
}

// CommentReportViewFixture builds an unresolved report view over a fresh
// comment by commentCreator, filed by reporter.
func CommentReportViewFixture(reportID, commentID int64, reporter, commentCreator lemmy.Person, community lemmy.Community) lemmy.CommentReportView {
	content := gofakeit.Sentence(8)
	return lemmy.CommentReportView{
		CommentReport: lemmy.CommentReport{
			ID:                  reportID,
			CreatorID:           reporter.ID,
			CommentID:           commentID,
			OriginalCommentText: content,
			Reason:              gofakeit.Sentence(4),
			Published:           time.Now().UTC().Format(time.RFC3339),
		},
		Comment: lemmy.Comment{
			ID:        commentID,
			CreatorID: commentCreator.ID,
			PostID:    commentID + 1000,
			Content:   content,
			Published: time.Now().UTC().Format(time.RFC3339),
		},
		Post: lemmy.Post{
			ID:          commentID + 1000,
			Name:        gofakeit.Sentence(5),
			CommunityID: community.ID,
			Published:   time.Now().UTC().Format(time.RFC3339),
		},
		Community:      community,
		Creator:        reporter,
		CommentCreator: commentCreator,
		Counts: lemmy.CommentAggregates{
			CommentID: commentID,
			Score:     3,
			Upvotes:   4,
			Downvotes: 1,
		},
	}
}

// PostReportViewFixture builds an unresolved report view over a fresh post by
// postCreator, filed by reporter.
func PostReportViewFixture(reportID, postID int64, reporter, postCreator lemmy.Person, community lemmy.Community) lemmy.PostReportView {
	title := gofakeit.Sentence(5)
	body := gofakeit.Sentence(12)
	return lemmy.PostReportView{
		PostReport: lemmy.PostReport{
			ID:               reportID,
			CreatorID:        reporter.ID,
			PostID:           postID,
			OriginalPostName: title,
			Reason:           gofakeit.Sentence(4),
			Published:        time.Now().UTC().Format(time.RFC3339),
		},
		Post: lemmy.Post{
			ID:          postID,
			Name:        title,
			Body:        &body,
			CreatorID:   postCreator.ID,
			CommunityID: community.ID,
			Published:   time.Now().UTC().Format(time.RFC3339),
		},
		Community:   community,
		Creator:     reporter,
		PostCreator: postCreator,
		Counts: lemmy.PostAggregates{
			PostID:    postID,
			Score:     5,
			Upvotes:   6,
			Downvotes: 1,
			Comments:  2,
		},
	}
}
