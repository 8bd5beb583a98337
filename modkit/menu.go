package modkit

import (
	"context"
	"fmt"
	"log/slog"
)

// Menu entries are a closed tagged union: standard, toggle, navigation, and
// divider. This is the only contract the core exposes to a rendering layer;
// each entry carries its own data plus a zero-argument effect.

type MenuEntry interface {
	isMenuEntry()
}

// StandardAction is a one-shot menu item. Destructive entries should be
// rendered accordingly; a non-empty Confirm is a prompt to show before
// running the effect.
type StandardAction struct {
	Label       string
	Icon        string
	Destructive bool
	Confirm     string
	Run         func()
}

func (StandardAction) isMenuEntry() {}

// DestructiveWhen classifies when a toggle counts as destructive, relative to
// its current state.
type DestructiveWhen int

const (
	DestructiveNever = DestructiveWhen(iota)
	DestructiveWhenTrue
	DestructiveWhenFalse
)

// ToggleAction is a two-state menu item. State is the current value; the
// label/icon pair for each state is carried alongside so the renderer never
// needs to know what the toggle means. Run flips the state.
type ToggleAction struct {
	State       bool
	TrueLabel   string
	TrueIcon    string
	FalseLabel  string
	FalseIcon   string
	Destructive DestructiveWhen
	Run         func()
}

func (ToggleAction) isMenuEntry() {}

// NavigationAction points at an external location instead of running an
// effect.
type NavigationAction struct {
	Label  string
	Icon   string
	Target string
}

func (NavigationAction) isMenuEntry() {}

// Divider separates destructive/moderation entries from informational ones.
type Divider struct{}

func (Divider) isMenuEntry() {}

// MenuHost is the UI collaborator behind the informational entries:
// clipboard, share sheet, and the viewer's local block list.
type MenuHost interface {
	CopyText(text string)
	ShareURL(url string)
	BlockPerson(person *Person)
}

// PersonMenu computes the ordered action list for a person, as seen by the
// viewer. Moderation entries (ban, purge) appear only when the viewer is an
// admin, the target is not an admin, and a tracker is present — a nil tracker
// means the capability is absent, not merely hidden. Self-targets never get
// block/ban/purge.
//
// Order: instance link (when the actor URL resolves), copy username, share,
// block, divider, ban, purge.
func PersonMenu(ctx context.Context, person *Person, community *Community, viewer Viewer, host MenuHost, tracker *ModTracker, logger *slog.Logger) []MenuEntry {
	if logger == nil {
		logger = slog.Default()
	}
	menuBuildCount.WithLabelValues("person").Inc()
	self := person.ID == viewer.PersonID

	var entries []MenuEntry
	if instanceHost, err := person.InstanceHost(); err != nil {
		// a malformed actor URL costs just this entry, not the whole menu
		logger.Warn("omitting instance link", "person", person.Key(), "err", err)
	} else {
		entries = append(entries, NavigationAction{
			Label:  instanceHost,
			Icon:   "globe",
			Target: "https://" + instanceHost,
		})
	}
	entries = append(entries, StandardAction{
		Label: "Copy Username",
		Icon:  "clipboard",
		Run: func() {
			host.CopyText("@" + person.Handle())
		},
	})
	entries = append(entries, StandardAction{
		Label: "Share",
		Icon:  "share",
		Run: func() {
			host.ShareURL(person.ActorID)
		},
	})
	if !self {
		entries = append(entries, StandardAction{
			Label:       "Block",
			Icon:        "block",
			Destructive: true,
			Confirm:     fmt.Sprintf("Really block %s?", person.Handle()),
			Run: func() {
				host.BlockPerson(person)
			},
		})
	}
	entries = append(entries, Divider{})

	if tracker != nil && viewer.Admin && !person.Admin && !self {
		entries = append(entries, BanToggle(ctx, person, community, nil, tracker))
		entries = append(entries, StandardAction{
			Label:       "Purge",
			Icon:        "purge",
			Destructive: true,
			Confirm:     fmt.Sprintf("Permanently delete %s and all their content?", person.Handle()),
			Run: func() {
				tracker.PurgePerson(ctx, person, nil)
			},
		})
	}
	return entries
}

// BanToggle builds the ban/unban toggle for a person. With a community the
// toggle drives a community-scoped ban; without one, an instance-wide ban.
// When a report is given, a successful ban chains an auto-resolve of it.
func BanToggle(ctx context.Context, person *Person, community *Community, report *Report, tracker *ModTracker) ToggleAction {
	banned := person.Banned
	if community != nil {
		banned = person.BannedFrom(community.ID)
	}
	return ToggleAction{
		State:       banned,
		TrueLabel:   "Unban",
		TrueIcon:    "ban.slash",
		FalseLabel:  "Ban",
		FalseIcon:   "ban",
		Destructive: DestructiveWhenFalse,
		Run: func() {
			shouldBan := !person.Banned
			if community != nil {
				shouldBan = !person.BannedFrom(community.ID)
			}
			var onSuccess func()
			if report != nil {
				onSuccess = func() {
					tracker.resolveIfNeeded(ctx, report)
				}
			}
			tracker.BanPerson(ctx, person, community, shouldBan, nil, nil, onSuccess)
		},
	}
}

// ReportMenu computes the ordered moderation actions for a report: resolve
// toggle, remove toggle, ban toggle, purge. Nil when no tracker is present,
// and nil for purged reports — a purged report is terminal and offers no
// further actions. The ban toggle is suppressed when the content author is
// the viewer; nobody bans themselves.
func ReportMenu(ctx context.Context, report *Report, viewer Viewer, tracker *ModTracker) []MenuEntry {
	if tracker == nil {
		return nil
	}
	if report.Purged {
		return nil
	}
	menuBuildCount.WithLabelValues("report").Inc()

	entries := []MenuEntry{
		ToggleAction{
			State:      report.Resolved,
			TrueLabel:  "Unresolve",
			TrueIcon:   "flag.slash",
			FalseLabel: "Resolve",
			FalseIcon:  "flag.check",
			Run: func() {
				tracker.ToggleResolved(ctx, report, true)
			},
		},
		ToggleAction{
			State:       report.TargetRemoved(),
			TrueLabel:   "Restore",
			TrueIcon:    "restore",
			FalseLabel:  "Remove",
			FalseIcon:   "trash",
			Destructive: DestructiveWhenFalse,
			Run: func() {
				shouldRemove := !report.TargetRemoved()
				if report.Kind == KindPostReport {
					tracker.RemovePost(ctx, report.Post, report, shouldRemove, nil)
				} else {
					tracker.RemoveComment(ctx, report.Comment, report, shouldRemove, nil)
				}
			},
		},
	}
	if creator := report.Creator(); creator != nil && creator.ID != viewer.PersonID {
		entries = append(entries, BanToggle(ctx, creator, report.Community, report, tracker))
	}
	entries = append(entries, StandardAction{
		Label:       "Purge",
		Icon:        "purge",
		Destructive: true,
		Confirm:     "Permanently delete the reported content?",
		Run: func() {
			if report.Kind == KindPostReport {
				tracker.PurgePost(ctx, report.Post, report, nil)
			} else {
				tracker.PurgeComment(ctx, report.Comment, report, nil)
			}
		},
	})
	return entries
}
