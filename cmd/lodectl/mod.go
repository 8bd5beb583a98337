package main

import (
	"fmt"

	cli "github.com/urfave/cli/v2"

	"github.com/lodestar-social/lodestar/modkit"
)

// commandErrorSink captures tracker failures so a command can exit non-zero.
// The tracker itself never returns errors to callers.
type commandErrorSink struct {
	err error
}

func (s *commandErrorSink) Handle(err error) {
	s.err = err
}

func newTracker(cctx *cli.Context) (*modkit.ModTracker, *modkit.EntityStore, *commandErrorSink) {
	logger := setupLogger(cctx)
	store := modkit.NewEntityStore()
	sink := &commandErrorSink{}
	tracker := modkit.NewModTracker(configClient(cctx), store, sink, nil, logger)
	return tracker, store, sink
}

var cmdReports = &cli.Command{
	Name:  "reports",
	Usage: "list comment or post reports awaiting action",
	Flags: append([]cli.Flag{
		&cli.Int64Flag{
			Name:  "community-id",
			Usage: "restrict to one community",
		},
		&cli.BoolFlag{
			Name:  "all",
			Usage: "include already-resolved reports",
		},
		&cli.BoolFlag{
			Name:  "posts",
			Usage: "list post reports instead of comment reports",
		},
		&cli.Int64Flag{
			Name:  "limit",
			Value: 20,
		},
	}, instanceFlags...),
	Action: func(cctx *cli.Context) error {
		setupLogger(cctx)
		client := configClient(cctx)
		store := modkit.NewEntityStore()

		var communityID *int64
		if cctx.IsSet("community-id") {
			id := cctx.Int64("community-id")
			communityID = &id
		}
		var reports []*modkit.Report
		if cctx.Bool("posts") {
			views, err := client.ListPostReports(cctx.Context, 1, cctx.Int64("limit"), !cctx.Bool("all"), communityID)
			if err != nil {
				return err
			}
			for i := range views {
				reports = append(reports, store.HydratePostReport(&views[i]))
			}
		} else {
			views, err := client.ListCommentReports(cctx.Context, 1, cctx.Int64("limit"), !cctx.Bool("all"), communityID)
			if err != nil {
				return err
			}
			for i := range views {
				reports = append(reports, store.HydrateCommentReport(&views[i]))
			}
		}
		for _, r := range reports {
			status := "open"
			if r.Resolved {
				status = "resolved"
			}
			fmt.Printf("%s\t[%s]\t%s\treported by %s: %s\n", r.Key(), status, r.Creator().Handle(), r.Reporter.Handle(), r.Reason)
		}
		return nil
	},
}

// findCommentReport pages through report listings until it sees the given id.
func findCommentReport(cctx *cli.Context, store *modkit.EntityStore, reportID int64) (*modkit.Report, error) {
	client := configClient(cctx)
	for page := int64(1); page <= 10; page++ {
		views, err := client.ListCommentReports(cctx.Context, page, 50, false, nil)
		if err != nil {
			return nil, err
		}
		if len(views) == 0 {
			break
		}
		for i := range views {
			if views[i].CommentReport.ID == reportID {
				return store.HydrateCommentReport(&views[i]), nil
			}
		}
	}
	return nil, fmt.Errorf("comment report %d not found", reportID)
}

var cmdResolve = &cli.Command{
	Name:      "resolve",
	Usage:     "toggle the resolved state of a comment report",
	ArgsUsage: "<report-id>",
	Flags:     instanceFlags,
	Action: func(cctx *cli.Context) error {
		var reportID int64
		if _, err := fmt.Sscanf(cctx.Args().First(), "%d", &reportID); err != nil {
			return fmt.Errorf("need a numeric report id")
		}
		tracker, store, sink := newTracker(cctx)
		defer tracker.Shutdown()

		report, err := findCommentReport(cctx, store, reportID)
		if err != nil {
			return err
		}
		tracker.ToggleResolved(cctx.Context, report, false)
		if sink.err != nil {
			return sink.err
		}
		fmt.Printf("%s resolved=%t\n", report.Key(), report.Resolved)
		return nil
	},
}

var cmdRemove = &cli.Command{
	Name:      "remove",
	Usage:     "remove (or restore) a comment or post",
	ArgsUsage: "<comment|post> <id>",
	Flags: append([]cli.Flag{
		&cli.BoolFlag{
			Name:  "restore",
			Usage: "restore instead of remove",
		},
		&cli.StringFlag{
			Name:  "reason",
			Usage: "mod log reason",
		},
	}, instanceFlags...),
	Action: func(cctx *cli.Context) error {
		kind, id, err := contentArgs(cctx)
		if err != nil {
			return err
		}
		var reason *string
		if cctx.IsSet("reason") {
			s := cctx.String("reason")
			reason = &s
		}
		tracker, _, sink := newTracker(cctx)
		defer tracker.Shutdown()

		shouldRemove := !cctx.Bool("restore")
		switch kind {
		case "comment":
			tracker.RemoveComment(cctx.Context, &modkit.Comment{ID: id}, nil, shouldRemove, reason)
		case "post":
			tracker.RemovePost(cctx.Context, &modkit.Post{ID: id}, nil, shouldRemove, reason)
		default:
			return fmt.Errorf("unknown content kind: %s", kind)
		}
		return sink.err
	},
}

var cmdBan = &cli.Command{
	Name:      "ban",
	Usage:     "ban (or unban) a person, instance-wide or from one community",
	ArgsUsage: "<person-id>",
	Flags: append([]cli.Flag{
		&cli.Int64Flag{
			Name:  "community-id",
			Usage: "scope the ban to this community",
		},
		&cli.BoolFlag{
			Name:  "unban",
			Usage: "lift the ban instead",
		},
		&cli.StringFlag{
			Name:  "reason",
			Usage: "mod log reason",
		},
	}, instanceFlags...),
	Action: func(cctx *cli.Context) error {
		var personID int64
		if _, err := fmt.Sscanf(cctx.Args().First(), "%d", &personID); err != nil {
			return fmt.Errorf("need a numeric person id")
		}
		var reason *string
		if cctx.IsSet("reason") {
			s := cctx.String("reason")
			reason = &s
		}
		tracker, _, sink := newTracker(cctx)
		defer tracker.Shutdown()

		person := &modkit.Person{ID: personID}
		var community *modkit.Community
		if cctx.IsSet("community-id") {
			community = &modkit.Community{ID: cctx.Int64("community-id")}
		}
		tracker.BanPerson(cctx.Context, person, community, !cctx.Bool("unban"), reason, nil, nil)
		return sink.err
	},
}

var cmdPurge = &cli.Command{
	Name:      "purge",
	Usage:     "permanently delete a comment, post, or person (admin only)",
	ArgsUsage: "<comment|post|person> <id>",
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:  "reason",
			Usage: "admin log reason",
		},
	}, instanceFlags...),
	Action: func(cctx *cli.Context) error {
		kind, id, err := contentArgs(cctx)
		if err != nil {
			return err
		}
		var reason *string
		if cctx.IsSet("reason") {
			s := cctx.String("reason")
			reason = &s
		}
		tracker, _, sink := newTracker(cctx)
		defer tracker.Shutdown()

		switch kind {
		case "comment":
			tracker.PurgeComment(cctx.Context, &modkit.Comment{ID: id}, nil, reason)
		case "post":
			tracker.PurgePost(cctx.Context, &modkit.Post{ID: id}, nil, reason)
		case "person":
			tracker.PurgePerson(cctx.Context, &modkit.Person{ID: id}, reason)
		default:
			return fmt.Errorf("unknown content kind: %s", kind)
		}
		return sink.err
	},
}

func contentArgs(cctx *cli.Context) (string, int64, error) {
	if cctx.NArg() < 2 {
		return "", 0, fmt.Errorf("need a content kind and a numeric id")
	}
	kind := cctx.Args().Get(0)
	var id int64
	if _, err := fmt.Sscanf(cctx.Args().Get(1), "%d", &id); err != nil {
		return "", 0, fmt.Errorf("need a numeric id, got %q", cctx.Args().Get(1))
	}
	return kind, id, nil
}
