package modkit

import (
	"context"
	"log/slog"
	"time"

	"github.com/lodestar-social/lodestar/lemmy"
)

// ModTransport is the slice of the API client the tracker needs. Satisfied
// by *lemmy.Client; tests substitute a scripted implementation.
type ModTransport interface {
	ResolveCommentReport(ctx context.Context, reportID int64, resolved bool) (*lemmy.CommentReportView, error)
	ResolvePostReport(ctx context.Context, reportID int64, resolved bool) (*lemmy.PostReportView, error)
	RemoveComment(ctx context.Context, commentID int64, removed bool, reason *string) (*lemmy.CommentView, error)
	RemovePost(ctx context.Context, postID int64, removed bool, reason *string) (*lemmy.PostView, error)
	PurgeComment(ctx context.Context, commentID int64, reason *string) error
	PurgePost(ctx context.Context, postID int64, reason *string) error
	PurgePerson(ctx context.Context, personID int64, reason *string) error
	BanPerson(ctx context.Context, personID int64, ban bool, reason *string, expires *int64) (bool, error)
	BanFromCommunity(ctx context.Context, communityID, personID int64, ban bool, reason *string, expires *int64) (bool, error)
	CreatePrivateMessage(ctx context.Context, recipientID int64, content string) error
}

var _ ModTransport = (*lemmy.Client)(nil)

// ErrorSink receives every failed action. Fire-and-forget; the tracker never
// returns errors to callers.
type ErrorSink interface {
	Handle(err error)
}

type FeedbackKind int

const (
	FeedbackSuccess = FeedbackKind(iota)
	FeedbackWarning
	FeedbackError
)

type FeedbackPriority int

const (
	FeedbackPriorityLow = FeedbackPriority(iota)
	FeedbackPriorityHigh
)

// FeedbackSink plays best-effort UI feedback (haptics, sounds). Must never
// block or fail observably.
type FeedbackSink interface {
	Play(kind FeedbackKind, priority FeedbackPriority)
}

// Viewer is the read-only identity of the current account.
type Viewer struct {
	PersonID int64
	Admin    bool
}

type slogErrorSink struct {
	logger *slog.Logger
}

func (s slogErrorSink) Handle(err error) {
	s.logger.Error("moderation action failed", "err", err)
}

type noopFeedback struct{}

func (noopFeedback) Play(kind FeedbackKind, priority FeedbackPriority) {}

// ModTracker is the single mutation point for moderation actions. Every
// ban/remove/purge/resolve goes through it, so every entity referencing the
// same underlying content converges to one post-action state.
//
// Entity writes are marshaled onto one apply goroutine; each public method
// blocks until its state change (if any) has been applied, so post-conditions
// hold when the call returns. The tracker performs no per-entity locking and
// assumes the caller issues at most one action per entity at a time.
type ModTracker struct {
	logger   *slog.Logger
	api      ModTransport
	store    *EntityStore
	errs     ErrorSink
	feedback FeedbackSink

	apply chan func()
	done  chan struct{}
}

func NewModTracker(api ModTransport, store *EntityStore, errs ErrorSink, feedback FeedbackSink, logger *slog.Logger) *ModTracker {
	if logger == nil {
		logger = slog.Default().With("system", "modkit")
	}
	if errs == nil {
		errs = slogErrorSink{logger: logger}
	}
	if feedback == nil {
		feedback = noopFeedback{}
	}
	t := &ModTracker{
		logger:   logger,
		api:      api,
		store:    store,
		errs:     errs,
		feedback: feedback,
		apply:    make(chan func()),
		done:     make(chan struct{}),
	}
	go t.run()
	return t
}

func (t *ModTracker) run() {
	defer close(t.done)
	for fn := range t.apply {
		fn()
	}
}

// Shutdown stops the apply goroutine. No action may be in flight or issued
// afterwards.
func (t *ModTracker) Shutdown() {
	close(t.apply)
	<-t.done
}

// applySync runs fn on the apply goroutine and waits for it to complete.
func (t *ModTracker) applySync(fn func()) {
	ack := make(chan struct{})
	t.apply <- func() {
		fn()
		close(ack)
	}
	<-ack
}

func (t *ModTracker) fail(action string, err error) {
	modActionErrorCount.WithLabelValues(action).Inc()
	t.logger.Warn("moderation action failed", "action", action, "err", err)
	t.errs.Handle(err)
}

// BanPerson issues a ban or unban for the person, scoped to the community if
// one is given, instance-wide otherwise. On success the shared person's ban
// state is updated and onSuccess (if any) runs — callers use it to
// auto-resolve an associated report. On failure nothing is mutated and
// onSuccess does not run; all-or-nothing per call.
//
// onSuccess runs on the calling goroutine, after the ban state has been
// applied, so it may itself issue tracker actions.
func (t *ModTracker) BanPerson(ctx context.Context, person *Person, community *Community, shouldBan bool, reason *string, expires *time.Time, onSuccess func()) {
	modActionCount.WithLabelValues("ban").Inc()
	var banned bool
	var err error
	if community != nil {
		banned, err = t.api.BanFromCommunity(ctx, community.ID, person.ID, shouldBan, reason, lemmy.ExpiresUnix(expires))
	} else {
		banned, err = t.api.BanPerson(ctx, person.ID, shouldBan, reason, lemmy.ExpiresUnix(expires))
	}
	if err != nil {
		t.fail("ban", err)
		return
	}
	t.applySync(func() {
		if community != nil {
			person.setBannedFrom(community.ID, banned)
		} else {
			person.Banned = banned
		}
	})
	t.logger.Info("ban state updated", "person", person.Key(), "banned", banned, "communityScoped", community != nil)
	if onSuccess != nil {
		onSuccess()
	}
}

// RemoveComment removes or restores a comment. When the triggering context is
// an unresolved report, a resolve call is chained after the removal lands.
func (t *ModTracker) RemoveComment(ctx context.Context, comment *Comment, report *Report, shouldRemove bool, reason *string) {
	modActionCount.WithLabelValues("remove_comment").Inc()
	view, err := t.api.RemoveComment(ctx, comment.ID, shouldRemove, reason)
	if err != nil {
		t.fail("remove_comment", err)
		return
	}
	t.applySync(func() {
		comment.Removed = view.Comment.Removed
	})
	t.logger.Info("comment removal updated", "comment", comment.Key(), "removed", view.Comment.Removed)
	if shouldRemove && report != nil {
		t.resolveIfNeeded(ctx, report)
	}
}

// RemovePost is the post equivalent of RemoveComment.
func (t *ModTracker) RemovePost(ctx context.Context, post *Post, report *Report, shouldRemove bool, reason *string) {
	modActionCount.WithLabelValues("remove_post").Inc()
	view, err := t.api.RemovePost(ctx, post.ID, shouldRemove, reason)
	if err != nil {
		t.fail("remove_post", err)
		return
	}
	t.applySync(func() {
		post.Removed = view.Post.Removed
	})
	t.logger.Info("post removal updated", "post", post.Key(), "removed", view.Post.Removed)
	if shouldRemove && report != nil {
		t.resolveIfNeeded(ctx, report)
	}
}

// PurgeComment irreversibly deletes a comment. A purge implicitly resolves
// the associated report: the report is marked purged and force-resolved
// locally without a separate resolve round trip.
func (t *ModTracker) PurgeComment(ctx context.Context, comment *Comment, report *Report, reason *string) {
	modActionCount.WithLabelValues("purge_comment").Inc()
	if err := t.api.PurgeComment(ctx, comment.ID, reason); err != nil {
		t.fail("purge_comment", err)
		return
	}
	t.applySync(func() {
		comment.Removed = true
		comment.Purged = true
		if report != nil {
			report.Purged = true
			report.Resolved = true
		}
	})
	t.logger.Info("comment purged", "comment", comment.Key())
}

func (t *ModTracker) PurgePost(ctx context.Context, post *Post, report *Report, reason *string) {
	modActionCount.WithLabelValues("purge_post").Inc()
	if err := t.api.PurgePost(ctx, post.ID, reason); err != nil {
		t.fail("purge_post", err)
		return
	}
	t.applySync(func() {
		post.Removed = true
		post.Purged = true
		if report != nil {
			report.Purged = true
			report.Resolved = true
		}
	})
	t.logger.Info("post purged", "post", post.Key())
}

// PurgePerson irreversibly deletes an account and everything it created.
func (t *ModTracker) PurgePerson(ctx context.Context, person *Person, reason *string) {
	modActionCount.WithLabelValues("purge_person").Inc()
	if err := t.api.PurgePerson(ctx, person.ID, reason); err != nil {
		t.fail("purge_person", err)
		return
	}
	t.applySync(func() {
		person.Banned = true
	})
	t.logger.Info("person purged", "person", person.Key())
}

// ToggleResolved flips a report's resolved state, optimistic-update style:
// feedback plays immediately, the remote call carries the inverse of the
// current state, and on success the local report is replaced wholesale with
// the server's canonical record. On failure state is untouched; there is no
// automatic retry.
func (t *ModTracker) ToggleResolved(ctx context.Context, report *Report, withFeedback bool) {
	if withFeedback {
		t.feedback.Play(FeedbackSuccess, FeedbackPriorityLow)
	}
	t.setResolved(ctx, report, !report.Resolved)
}

// resolveIfNeeded marks the report resolved as a side effect of another
// successful action, skipping reports already resolved or purged.
func (t *ModTracker) resolveIfNeeded(ctx context.Context, report *Report) {
	if report.Resolved || report.Purged {
		return
	}
	reportAutoResolveCount.WithLabelValues(string(report.Kind)).Inc()
	t.setResolved(ctx, report, true)
}

func (t *ModTracker) setResolved(ctx context.Context, report *Report, resolved bool) {
	modActionCount.WithLabelValues("resolve").Inc()
	switch report.Kind {
	case KindPostReport:
		view, err := t.api.ResolvePostReport(ctx, report.ID, resolved)
		if err != nil {
			t.fail("resolve", err)
			return
		}
		t.applySync(func() {
			report.applyPostReportRecord(t.store, view)
		})
	default:
		view, err := t.api.ResolveCommentReport(ctx, report.ID, resolved)
		if err != nil {
			t.fail("resolve", err)
			return
		}
		t.applySync(func() {
			report.applyCommentReportRecord(t.store, view)
		})
	}
	t.logger.Info("report resolution updated", "report", report.Key(), "resolved", report.Resolved)
}

// SendMessage delivers a private message to the person. Failures land in the
// error sink like every other action.
func (t *ModTracker) SendMessage(ctx context.Context, recipient *Person, content string) {
	modActionCount.WithLabelValues("send_message").Inc()
	if err := t.api.CreatePrivateMessage(ctx, recipient.ID, content); err != nil {
		t.fail("send_message", err)
		return
	}
	t.logger.Info("private message sent", "recipient", recipient.Key())
}
